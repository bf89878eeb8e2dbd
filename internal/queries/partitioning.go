package queries

import (
	"iter"
	"slices"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

const (
	washington = "Washington"
	pageSize   = 3
)

func partitioningQueries() []Query {
	return numbered(SectionPartitioning,
		Query{Title: "First 3 orders from Washington", Run: firstThreeWashingtonOrders},
		Query{Title: "Orders from Washington (skip first 2)", Run: washingtonOrdersAfterTwo},
		Query{Title: "Elements until number < position", Run: untilNumberBelowPosition},
		Query{Title: "Elements from first divisible by 3", Run: fromFirstDivisibleByThree},
		Query{Title: "Numbers in pages of 3", Run: numberPages},
	)
}

func washingtonOrders(ds *catalog.Dataset) iter.Seq[catalog.Order] {
	return allOrders(seq.Filter(seq.Values(ds.Customers), func(c catalog.Customer) bool {
		return c.Region == washington
	}))
}

func firstThreeWashingtonOrders(ds *catalog.Dataset) (Result, error) {
	return orderLines(slices.Collect(seq.Take(washingtonOrders(ds), 3))), nil
}

func washingtonOrdersAfterTwo(ds *catalog.Dataset) (Result, error) {
	return orderLines(slices.Collect(seq.Skip(washingtonOrders(ds), 2))), nil
}

func untilNumberBelowPosition(ds *catalog.Dataset) (Result, error) {
	return joinedNumbers(slices.Collect(seq.TakeWhile(seq.Values(ds.Numbers), func(n, i int) bool {
		return n >= i
	}))), nil
}

func fromFirstDivisibleByThree(ds *catalog.Dataset) (Result, error) {
	return joinedNumbers(slices.Collect(seq.SkipWhile(seq.Values(ds.Numbers), func(n, _ int) bool {
		return n%3 != 0
	}))), nil
}

func numberPages(ds *catalog.Dataset) (Result, error) {
	var (
		pages [][]int
		lines []string
	)
	for page := range seq.Chunk(seq.Values(ds.Numbers), pageSize) {
		pages = append(pages, page)
		lines = append(lines, join(page))
	}
	return newResult(pages, lines...), nil
}

func joinedNumbers(numbers []int) Result {
	return newResult(numbers, join(numbers))
}
