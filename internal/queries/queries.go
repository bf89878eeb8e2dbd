// Package queries is the catalog of numbered demonstration queries run against the
// sample dataset. Each query is written against the seq operator library.
package queries

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

// ErrUnknownSection is returned by Lookup for a section name that does not exist.
var ErrUnknownSection = errors.New("unknown section")

// Section names a group of related queries.
type Section string

const (
	SectionRestriction    Section = "restriction"
	SectionElement        Section = "element"
	SectionAggregate      Section = "aggregate"
	SectionOrdering       Section = "ordering"
	SectionTransformation Section = "transformation"
	SectionSet            Section = "set"
	SectionQuantifier     Section = "quantifier"
	SectionPartitioning   Section = "partitioning"
	SectionGrouping       Section = "grouping"
)

// Title is the heading printed above the section.
func (s Section) Title() string {
	switch s {
	case SectionRestriction:
		return "Restriction Operators"
	case SectionElement:
		return "Element Operators"
	case SectionAggregate:
		return "Aggregate Operators"
	case SectionOrdering:
		return "Ordering Operators"
	case SectionTransformation:
		return "Transformation Operators"
	case SectionSet:
		return "Set Operators"
	case SectionQuantifier:
		return "Quantifiers"
	case SectionPartitioning:
		return "Partitioning Operators"
	case SectionGrouping:
		return "Grouping Operators"
	default:
		return string(s)
	}
}

// Result is the output of one query.
type Result struct {
	// Lines is the human readable rendering, one entry per output line.
	Lines []string
	// Value is the structured result used for machine readable output.
	Value any
}

func newResult(value any, lines ...string) Result {
	return Result{Lines: lines, Value: value}
}

// Query is a single numbered demonstration.
type Query struct {
	Section Section
	Number  int
	Title   string
	Run     func(*catalog.Dataset) (Result, error)
}

// Name identifies the query as section.number.
func (q Query) Name() string {
	return fmt.Sprintf("%s.%d", q.Section, q.Number)
}

// Sections returns every section in presentation order.
func Sections() []Section {
	return []Section{
		SectionRestriction,
		SectionElement,
		SectionAggregate,
		SectionOrdering,
		SectionTransformation,
		SectionSet,
		SectionQuantifier,
		SectionPartitioning,
		SectionGrouping,
	}
}

// All returns every query in presentation order.
func All() []Query {
	return slices.Concat(
		restrictionQueries(),
		elementQueries(),
		aggregateQueries(),
		orderingQueries(),
		transformationQueries(),
		setQueries(),
		quantifierQueries(),
		partitioningQueries(),
		groupingQueries(),
	)
}

// Lookup returns the queries of the named sections in presentation order. No names
// selects every query. Names are matched case-insensitively.
func Lookup(names ...string) ([]Query, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make([]Section, 0, len(names))
	for _, name := range names {
		section := Section(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(Sections(), section) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
		wanted = append(wanted, section)
	}

	return slices.Collect(seq.Filter(seq.Values(all), func(q Query) bool {
		return slices.Contains(wanted, q.Section)
	})), nil
}

func numbered(section Section, queries ...Query) []Query {
	for i := range queries {
		queries[i].Section = section
		queries[i].Number = i + 1
	}
	return queries
}

func money(d decimal.Decimal) string {
	return "$" + amount(d)
}

// amount formats d with two decimal places. Structured results carry amounts in
// this form so every output format shows the same figures.
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func price(p catalog.Product) decimal.Decimal {
	return p.UnitPrice
}

func productName(p catalog.Product) string {
	return p.Name
}

func productCategory(p catalog.Product) string {
	return p.Category
}

func join[T any](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}

// averageDecimal is the decimal counterpart of seq.Average.
func averageDecimal[T any](s []T, sel func(T) decimal.Decimal) (decimal.Decimal, error) {
	values := slices.Collect(seq.Map(seq.Values(s), sel))
	if len(values) == 0 {
		return decimal.Zero, seq.ErrEmptySequence
	}
	return decimal.Avg(values[0], values[1:]...), nil
}
