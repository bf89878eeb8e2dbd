package queries

import (
	"slices"
	"unicode/utf8"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

func setQueries() []Query {
	return numbered(SectionSet,
		Query{Title: "Unique categories", Run: uniqueCategories},
		Query{Title: "Unique first letters", Run: uniqueFirstLetters},
		Query{Title: "Common first letters", Run: commonFirstLetters},
		Query{Title: "Product-only first letters", Run: productOnlyFirstLetters},
		Query{Title: "Last three characters of names", Run: lastThreeCharacters},
	)
}

func firstLetter(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}

func productInitials(ds *catalog.Dataset) []string {
	return slices.Collect(seq.Map(seq.Values(ds.Products), func(p catalog.Product) string { return firstLetter(p.Name) }))
}

func customerInitials(ds *catalog.Dataset) []string {
	return slices.Collect(seq.Map(seq.Values(ds.Customers), func(c catalog.Customer) string { return firstLetter(c.Name) }))
}

func lastThree(name string) string {
	if len(name) < 3 {
		return name
	}
	return name[len(name)-3:]
}

func uniqueCategories(ds *catalog.Dataset) (Result, error) {
	return joined(slices.Collect(seq.Distinct(seq.Map(seq.Values(ds.Products), productCategory)))), nil
}

func uniqueFirstLetters(ds *catalog.Dataset) (Result, error) {
	return joined(slices.Collect(seq.Union(seq.Values(productInitials(ds)), seq.Values(customerInitials(ds))))), nil
}

func commonFirstLetters(ds *catalog.Dataset) (Result, error) {
	return joined(slices.Collect(seq.Intersect(seq.Values(productInitials(ds)), seq.Values(customerInitials(ds))))), nil
}

func productOnlyFirstLetters(ds *catalog.Dataset) (Result, error) {
	return joined(slices.Collect(seq.Except(seq.Values(productInitials(ds)), seq.Values(customerInitials(ds))))), nil
}

func lastThreeCharacters(ds *catalog.Dataset) (Result, error) {
	products := seq.Map(seq.Values(ds.Products), func(p catalog.Product) string { return lastThree(p.Name) })
	customers := seq.Map(seq.Values(ds.Customers), func(c catalog.Customer) string { return lastThree(c.Name) })
	return joined(slices.Collect(seq.Concat(products, customers))), nil
}
