package queries

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

// PricedProduct is a product name and its unit price.
type PricedProduct struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func restrictionQueries() []Query {
	return numbered(SectionRestriction,
		Query{Title: "Out of stock products", Run: outOfStock},
		Query{Title: "In stock and > $3.00", Run: inStockExpensive},
		Query{Title: "Digits with name shorter than value", Run: digitsShorterThanValue},
	)
}

func outOfStock(ds *catalog.Dataset) (Result, error) {
	names := slices.Collect(seq.Map(
		seq.Filter(seq.Values(ds.Products), func(p catalog.Product) bool { return p.UnitsInStock == 0 }),
		productName,
	))
	return newResult(names, names...), nil
}

func inStockExpensive(ds *catalog.Dataset) (Result, error) {
	threshold := decimal.NewFromInt(3)
	products := slices.Collect(seq.Map(
		seq.Filter(seq.Values(ds.Products), func(p catalog.Product) bool {
			return p.InStock() && p.UnitPrice.GreaterThan(threshold)
		}),
		func(p catalog.Product) PricedProduct { return PricedProduct{Name: p.Name, Price: amount(p.UnitPrice)} },
	))

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, p.Name+": $"+p.Price)
	}
	return newResult(products, lines...), nil
}

func digitsShorterThanValue(ds *catalog.Dataset) (Result, error) {
	short := slices.Collect(seq.Map(
		seq.Filter(seq.Range(0, len(ds.Digits)), func(i int) bool { return len(ds.Digits[i]) < i }),
		func(i int) string { return ds.Digits[i] },
	))
	return newResult(short, join(short)), nil
}
