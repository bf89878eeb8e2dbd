package queries

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

const none = "None"

func elementQueries() []Query {
	return numbered(SectionElement,
		Query{Title: "First out of stock", Run: firstOutOfStock},
		Query{Title: "First product > $1000", Run: firstOverThousand},
		Query{Title: "Second number > 5", Run: secondGreaterThanFive},
	)
}

func firstProductName(ds *catalog.Dataset, pred func(catalog.Product) bool) Result {
	p, ok := seq.FirstWhere(seq.Values(ds.Products), pred)
	if !ok {
		return newResult(nil, none)
	}
	return newResult(p.Name, p.Name)
}

func firstOutOfStock(ds *catalog.Dataset) (Result, error) {
	return firstProductName(ds, func(p catalog.Product) bool { return p.UnitsInStock == 0 }), nil
}

func firstOverThousand(ds *catalog.Dataset) (Result, error) {
	limit := decimal.NewFromInt(1000)
	return firstProductName(ds, func(p catalog.Product) bool { return p.UnitPrice.GreaterThan(limit) }), nil
}

func secondGreaterThanFive(ds *catalog.Dataset) (Result, error) {
	n, ok := seq.Nth(seq.Filter(seq.Values(ds.Numbers), func(n int) bool { return n > 5 }), 1)
	if !ok {
		return newResult(nil, none), nil
	}
	return newResult(n, strconv.Itoa(n)), nil
}
