package queries

import (
	"strconv"
	"strings"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

// Group is a key and the members that share it.
type Group[K any, T any] struct {
	Key     K   `json:"key"`
	Members []T `json:"members"`
}

func quantifierQueries() []Query {
	return numbered(SectionQuantifier,
		Query{Title: "Any word contains 'ei'", Run: anyWordContainsEI},
		Query{Title: "Categories with out-of-stock products", Run: categoriesWithOutOfStock},
		Query{Title: "Categories with all products in stock", Run: categoriesAllInStock},
	)
}

func anyWordContainsEI(ds *catalog.Dataset) (Result, error) {
	found := seq.Any(seq.Values(ds.Dictionary), func(w string) bool { return strings.Contains(w, "ei") })
	return newResult(found, strconv.FormatBool(found)), nil
}

func categoriesWhere(ds *catalog.Dataset, keep func(seq.Grouping[string, catalog.Product]) bool) Result {
	var (
		groups []Group[string, string]
		lines  []string
	)
	for g := range seq.Filter(seq.Values(byCategory(ds)), keep) {
		members := groupNames(g)
		groups = append(groups, Group[string, string]{Key: g.Key, Members: members})
		lines = append(lines, g.Key+": "+join(members))
	}
	return newResult(groups, lines...)
}

func groupNames(g seq.Grouping[string, catalog.Product]) []string {
	names := make([]string, 0, g.Len())
	for p := range seq.Map(g.All(), productName) {
		names = append(names, p)
	}
	return names
}

func categoriesWithOutOfStock(ds *catalog.Dataset) (Result, error) {
	return categoriesWhere(ds, func(g seq.Grouping[string, catalog.Product]) bool {
		return seq.Any(g.All(), func(p catalog.Product) bool { return p.UnitsInStock == 0 })
	}), nil
}

func categoriesAllInStock(ds *catalog.Dataset) (Result, error) {
	return categoriesWhere(ds, func(g seq.Grouping[string, catalog.Product]) bool {
		return seq.All(g.All(), catalog.Product.InStock)
	}), nil
}
