// Package report runs a selection of queries and renders their results.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/openfga/seqops/internal/queries"
)

//go:generate mockgen -source renderer.go -destination ../mocks/mock_renderer.go -package mocks

// ErrUnknownFormat is returned by NewRenderer for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Renderer receives query results in presentation order. Section is called before
// the first query of each section. Flush is called once after the last query.
type Renderer interface {
	Section(section queries.Section) error
	Query(query queries.Query, result queries.Result) error
	Flush() error
}

// NewRenderer returns a Renderer writing format to w.
func NewRenderer(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return &textRenderer{w: w}, nil
	case FormatJSON:
		return &documentRenderer{w: w, marshal: marshalJSON}, nil
	case FormatYAML:
		return &documentRenderer{w: w, marshal: yaml.Marshal}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// textRenderer writes results as they arrive, in the layout of a console report.
type textRenderer struct {
	w        io.Writer
	sections int
	queries  int
}

func (r *textRenderer) Section(section queries.Section) error {
	var prefix string
	if r.sections > 0 {
		prefix = "\n"
	}
	r.sections++
	r.queries = 0
	_, err := fmt.Fprintf(r.w, "%s=== %s ===\n", prefix, section.Title())
	return err
}

func (r *textRenderer) Query(query queries.Query, result queries.Result) error {
	var b strings.Builder
	if r.queries > 0 {
		b.WriteString("\n")
	}
	r.queries++

	fmt.Fprintf(&b, "%d. %s:\n", query.Number, query.Title)
	for _, line := range result.Lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) Flush() error {
	return nil
}

type document struct {
	Sections []sectionDocument `json:"sections"`
}

type sectionDocument struct {
	Name    queries.Section `json:"name"`
	Title   string          `json:"title"`
	Queries []queryDocument `json:"queries"`
}

type queryDocument struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Result any    `json:"result"`
}

// documentRenderer buffers every result and marshals them as one document on Flush.
type documentRenderer struct {
	w       io.Writer
	marshal func(any) ([]byte, error)
	doc     document
}

func (r *documentRenderer) Section(section queries.Section) error {
	r.doc.Sections = append(r.doc.Sections, sectionDocument{
		Name:    section,
		Title:   section.Title(),
		Queries: []queryDocument{},
	})
	return nil
}

func (r *documentRenderer) Query(query queries.Query, result queries.Result) error {
	if len(r.doc.Sections) == 0 {
		return fmt.Errorf("query %s rendered before its section", query.Name())
	}
	current := &r.doc.Sections[len(r.doc.Sections)-1]
	current.Queries = append(current.Queries, queryDocument{
		Number: query.Number,
		Title:  query.Title,
		Result: result.Value,
	})
	return nil
}

func (r *documentRenderer) Flush() error {
	if r.doc.Sections == nil {
		r.doc.Sections = []sectionDocument{}
	}
	out, err := r.marshal(r.doc)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = r.w.Write(out)
	return err
}

func marshalJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
