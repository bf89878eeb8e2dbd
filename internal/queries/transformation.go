package queries

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

const dateLayout = "2006-01-02"

// CaseVersions holds a word converted to upper and lower case.
type CaseVersions struct {
	Upper string `json:"upper"`
	Lower string `json:"lower"`
}

// ProductInfo is a product projection with the price field renamed.
type ProductInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// IndexedNumber records whether a number equals its position.
type IndexedNumber struct {
	Number  int  `json:"number"`
	Index   int  `json:"index"`
	Matches bool `json:"matches"`
}

// Pair is an ordered pair drawn from two number lists.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

func transformationQueries() []Query {
	return numbered(SectionTransformation,
		Query{Title: "Product names", Run: productNames},
		Query{Title: "Uppercase and lowercase words", Run: caseVersions},
		Query{Title: "Product info with renamed price", Run: productInfo},
		Query{Title: "Numbers matching position", Run: numbersMatchingPosition},
		Query{Title: "Pairs where A < B", Run: pairsALessThanB},
		Query{Title: "Orders with total < $500", Run: smallOrders},
		Query{Title: "Orders from 1998 or later", Run: recentOrders},
	)
}

func productNames(ds *catalog.Dataset) (Result, error) {
	return joined(slices.Collect(seq.Map(seq.Values(ds.Products), productName))), nil
}

func caseVersions(ds *catalog.Dataset) (Result, error) {
	versions := slices.Collect(seq.Map(seq.Values(ds.CaseWords), func(w string) CaseVersions {
		return CaseVersions{Upper: strings.ToUpper(w), Lower: strings.ToLower(w)}
	}))

	lines := make([]string, 0, len(versions))
	for _, v := range versions {
		lines = append(lines, fmt.Sprintf("Upper: %s, Lower: %s", v.Upper, v.Lower))
	}
	return newResult(versions, lines...), nil
}

func productInfo(ds *catalog.Dataset) (Result, error) {
	infos := slices.Collect(seq.Map(seq.Values(ds.Products), func(p catalog.Product) ProductInfo {
		return ProductInfo{Name: p.Name, Category: p.Category, Price: amount(p.UnitPrice)}
	}))

	lines := make([]string, 0, len(infos))
	for _, p := range infos {
		lines = append(lines, fmt.Sprintf("%s, %s, $%s", p.Name, p.Category, p.Price))
	}
	return newResult(infos, lines...), nil
}

func numbersMatchingPosition(ds *catalog.Dataset) (Result, error) {
	indexed := slices.Collect(seq.MapIndexed(seq.Values(ds.Numbers), func(n, i int) IndexedNumber {
		return IndexedNumber{Number: n, Index: i, Matches: n == i}
	}))

	lines := make([]string, 0, len(indexed))
	for _, m := range indexed {
		lines = append(lines, fmt.Sprintf("%d at %d: %t", m.Number, m.Index, m.Matches))
	}
	return newResult(indexed, lines...), nil
}

func pairsALessThanB(ds *catalog.Dataset) (Result, error) {
	pairs := slices.Collect(seq.Filter(
		seq.FlatMap(seq.Values(ds.NumbersA),
			func(int) iter.Seq[int] { return seq.Values(ds.NumbersB) },
			func(a, b int) Pair { return Pair{A: a, B: b} },
		),
		func(p Pair) bool { return p.A < p.B },
	))

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("(%d, %d)", p.A, p.B))
	}
	return newResult(pairs, lines...), nil
}

// allOrders flattens every customer's orders, customer-major.
func allOrders(customers iter.Seq[catalog.Customer]) iter.Seq[catalog.Order] {
	return seq.FlatMap(customers,
		func(c catalog.Customer) iter.Seq[catalog.Order] { return seq.Values(c.Orders) },
		func(_ catalog.Customer, o catalog.Order) catalog.Order { return o },
	)
}

// OrderSummary is an order with its total formatted to two decimal places.
type OrderSummary struct {
	Total     string `json:"total"`
	OrderDate string `json:"order_date"`
}

func orderLines(list []catalog.Order) Result {
	summaries := make([]OrderSummary, 0, len(list))
	lines := make([]string, 0, len(list))
	for _, o := range list {
		s := OrderSummary{Total: amount(o.Total), OrderDate: o.OrderDate.Format(dateLayout)}
		summaries = append(summaries, s)
		lines = append(lines, fmt.Sprintf("Total: $%s, Date: %s", s.Total, s.OrderDate))
	}
	return newResult(summaries, lines...)
}

func smallOrders(ds *catalog.Dataset) (Result, error) {
	limit := decimal.NewFromInt(500)
	return orderLines(slices.Collect(seq.Filter(allOrders(seq.Values(ds.Customers)), func(o catalog.Order) bool {
		return o.Total.LessThan(limit)
	}))), nil
}

func recentOrders(ds *catalog.Dataset) (Result, error) {
	return orderLines(slices.Collect(seq.Filter(allOrders(seq.Values(ds.Customers)), func(o catalog.Order) bool {
		return o.OrderDate.Year() >= 1998
	}))), nil
}
