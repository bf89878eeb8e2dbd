package queries

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

var (
	byLength          = seq.Key(func(s string) int { return len(s) })
	byValue           = seq.Key(func(s string) string { return s })
	byValueIgnoreCase = seq.KeyFunc(func(s string) string { return s }, seq.CaseInsensitive)
)

func orderingQueries() []Query {
	return numbered(SectionOrdering,
		Query{Title: "Products sorted by name", Run: productsByName},
		Query{Title: "Case-insensitive sorted words", Run: wordsIgnoreCase},
		Query{Title: "Products sorted by stock (desc)", Run: productsByStockDesc},
		Query{Title: "Digits sorted by length then name", Run: digitsByLengthThenName},
		Query{Title: "Words sorted by length then case-insensitive", Run: wordsByLengthThenIgnoreCase},
		Query{Title: "Products sorted by category then price (desc)", Run: productsByCategoryThenPriceDesc},
		Query{Title: "Words sorted by length then case-insensitive (desc)", Run: wordsByLengthThenIgnoreCaseDesc},
		Query{Title: "Digits with second letter 'i' (reversed)", Run: digitsSecondLetterIReversed},
	)
}

func joined(words []string) Result {
	return newResult(words, join(words))
}

func productsByName(ds *catalog.Dataset) (Result, error) {
	names := slices.Collect(seq.Map(
		seq.OrderBy(seq.Values(ds.Products), seq.Key(productName)).All(),
		productName,
	))
	return newResult(names, names...), nil
}

func wordsIgnoreCase(ds *catalog.Dataset) (Result, error) {
	return joined(seq.OrderBy(seq.Values(ds.MixedCase), byValueIgnoreCase).Collect()), nil
}

func productsByStockDesc(ds *catalog.Dataset) (Result, error) {
	sorted := seq.OrderByDescending(seq.Values(ds.Products), seq.Key(func(p catalog.Product) int {
		return p.UnitsInStock
	})).Collect()

	counts := make([]NamedCount, 0, len(sorted))
	for _, p := range sorted {
		counts = append(counts, NamedCount{Name: p.Name, Count: p.UnitsInStock})
	}
	return namedCounts(counts), nil
}

func digitsByLengthThenName(ds *catalog.Dataset) (Result, error) {
	return joined(seq.OrderBy(seq.Values(ds.Digits), byLength).ThenBy(byValue).Collect()), nil
}

func wordsByLengthThenIgnoreCase(ds *catalog.Dataset) (Result, error) {
	return joined(seq.OrderBy(seq.Values(ds.MixedCase), byLength).ThenBy(byValueIgnoreCase).Collect()), nil
}

func productsByCategoryThenPriceDesc(ds *catalog.Dataset) (Result, error) {
	sorted := seq.OrderBy(seq.Values(ds.Products), seq.Key(productCategory)).
		ThenByDescending(seq.KeyFunc(price, decimal.Decimal.Cmp)).
		Collect()

	products := make([]CategoryProduct, 0, len(sorted))
	lines := make([]string, 0, len(sorted))
	for _, p := range sorted {
		products = append(products, CategoryProduct{Category: p.Category, Name: p.Name, Price: amount(p.UnitPrice)})
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", p.Category, p.Name, money(p.UnitPrice)))
	}
	return newResult(products, lines...), nil
}

func wordsByLengthThenIgnoreCaseDesc(ds *catalog.Dataset) (Result, error) {
	return joined(seq.OrderBy(seq.Values(ds.MixedCase), byLength).ThenByDescending(byValueIgnoreCase).Collect()), nil
}

func digitsSecondLetterIReversed(ds *catalog.Dataset) (Result, error) {
	matching := seq.Filter(seq.Values(ds.Digits), func(d string) bool {
		return len(d) > 1 && d[1] == 'i'
	})
	return joined(slices.Collect(seq.Reverse(matching))), nil
}
