package queries

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

// NamedCount pairs a name with a count.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryPrice pairs a category with a price derived from its products.
type CategoryPrice struct {
	Category string `json:"category"`
	Price    string `json:"price"`
}

// CategoryProduct is a product listed under its category.
type CategoryProduct struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

func aggregateQueries() []Query {
	return numbered(SectionAggregate,
		Query{Title: "Count of odd numbers", Run: oddCount},
		Query{Title: "Customer order counts", Run: customerOrderCounts},
		Query{Title: "Category product counts", Run: categoryProductCounts},
		Query{Title: "Total of numbers", Run: numbersTotal},
		Query{Title: "Total characters in dictionary", Run: dictionaryCharacters},
		Query{Title: "Shortest word length", Run: shortestWord},
		Query{Title: "Longest word length", Run: longestWord},
		Query{Title: "Average word length", Run: averageWordLength},
		Query{Title: "Total units in stock by category", Run: unitsByCategory},
		Query{Title: "Cheapest price by category", Run: cheapestPriceByCategory},
		Query{Title: "Cheapest products by category", Run: cheapestProductsByCategory},
		Query{Title: "Most expensive price by category", Run: highestPriceByCategory},
		Query{Title: "Most expensive products by category", Run: mostExpensiveProductsByCategory},
		Query{Title: "Average price by category", Run: averagePriceByCategory},
	)
}

func scalar(n int) Result {
	return newResult(n, strconv.Itoa(n))
}

func wordLength(w string) int {
	return len(w)
}

func byCategory(ds *catalog.Dataset) []seq.Grouping[string, catalog.Product] {
	return seq.GroupBy(seq.Values(ds.Products), productCategory)
}

func namedCounts(counts []NamedCount) Result {
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("%s: %d", c.Name, c.Count))
	}
	return newResult(counts, lines...)
}

func oddCount(ds *catalog.Dataset) (Result, error) {
	return scalar(seq.CountWhere(seq.Values(ds.Numbers), func(n int) bool { return n%2 != 0 })), nil
}

func customerOrderCounts(ds *catalog.Dataset) (Result, error) {
	counts := seq.Map(seq.Values(ds.Customers), func(c catalog.Customer) NamedCount {
		return NamedCount{Name: c.Name, Count: seq.Count(seq.Values(c.Orders))}
	})
	return namedCounts(slices.Collect(counts)), nil
}

func categoryProductCounts(ds *catalog.Dataset) (Result, error) {
	counts := seq.Map(seq.Values(byCategory(ds)), func(g seq.Grouping[string, catalog.Product]) NamedCount {
		return NamedCount{Name: g.Key, Count: g.Len()}
	})
	return namedCounts(slices.Collect(counts)), nil
}

func numbersTotal(ds *catalog.Dataset) (Result, error) {
	return scalar(seq.Sum(seq.Values(ds.Numbers), func(n int) int { return n })), nil
}

func dictionaryCharacters(ds *catalog.Dataset) (Result, error) {
	return scalar(seq.Sum(seq.Values(ds.Dictionary), wordLength)), nil
}

func shortestWord(ds *catalog.Dataset) (Result, error) {
	n, err := seq.Min(seq.Values(ds.Dictionary), wordLength)
	if err != nil {
		return Result{}, err
	}
	return scalar(n), nil
}

func longestWord(ds *catalog.Dataset) (Result, error) {
	n, err := seq.Max(seq.Values(ds.Dictionary), wordLength)
	if err != nil {
		return Result{}, err
	}
	return scalar(n), nil
}

func averageWordLength(ds *catalog.Dataset) (Result, error) {
	avg, err := seq.Average(seq.Values(ds.Dictionary), wordLength)
	if err != nil {
		return Result{}, err
	}
	return newResult(avg, strconv.FormatFloat(avg, 'f', 2, 64)), nil
}

func unitsByCategory(ds *catalog.Dataset) (Result, error) {
	units := seq.Map(seq.Values(byCategory(ds)), func(g seq.Grouping[string, catalog.Product]) NamedCount {
		return NamedCount{Name: g.Key, Count: seq.Sum(g.All(), func(p catalog.Product) int { return p.UnitsInStock })}
	})
	return namedCounts(slices.Collect(units)), nil
}

type priceReducer func(g seq.Grouping[string, catalog.Product]) (decimal.Decimal, error)

func cheapest(g seq.Grouping[string, catalog.Product]) (decimal.Decimal, error) {
	return seq.MinFunc(g.All(), price, decimal.Decimal.Cmp)
}

func mostExpensive(g seq.Grouping[string, catalog.Product]) (decimal.Decimal, error) {
	return seq.MaxFunc(g.All(), price, decimal.Decimal.Cmp)
}

func averagePrice(g seq.Grouping[string, catalog.Product]) (decimal.Decimal, error) {
	return averageDecimal(g.Items, price)
}

func categoryPrices(ds *catalog.Dataset, reduce priceReducer) (Result, error) {
	groups := byCategory(ds)
	prices := make([]CategoryPrice, 0, len(groups))
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		p, err := reduce(g)
		if err != nil {
			return Result{}, fmt.Errorf("category %q: %w", g.Key, err)
		}
		prices = append(prices, CategoryPrice{Category: g.Key, Price: amount(p)})
		lines = append(lines, g.Key+": "+money(p))
	}
	return newResult(prices, lines...), nil
}

// productsMatching returns, per category, every product whose price equals the
// category's reduced price. Ties all appear, in source order.
func productsMatching(ds *catalog.Dataset, reduce priceReducer) (Result, error) {
	var (
		products []CategoryProduct
		lines    []string
	)
	for _, g := range byCategory(ds) {
		target, err := reduce(g)
		if err != nil {
			return Result{}, fmt.Errorf("category %q: %w", g.Key, err)
		}
		for p := range seq.Filter(g.All(), func(p catalog.Product) bool { return p.UnitPrice.Equal(target) }) {
			products = append(products, CategoryProduct{Category: g.Key, Name: p.Name, Price: amount(p.UnitPrice)})
			lines = append(lines, fmt.Sprintf("%s: %s (%s)", g.Key, p.Name, money(p.UnitPrice)))
		}
	}
	return newResult(products, lines...), nil
}

func cheapestPriceByCategory(ds *catalog.Dataset) (Result, error) {
	return categoryPrices(ds, cheapest)
}

func cheapestProductsByCategory(ds *catalog.Dataset) (Result, error) {
	return productsMatching(ds, cheapest)
}

func highestPriceByCategory(ds *catalog.Dataset) (Result, error) {
	return categoryPrices(ds, mostExpensive)
}

func mostExpensiveProductsByCategory(ds *catalog.Dataset) (Result, error) {
	return productsMatching(ds, mostExpensive)
}

func averagePriceByCategory(ds *catalog.Dataset) (Result, error) {
	return categoryPrices(ds, averagePrice)
}
