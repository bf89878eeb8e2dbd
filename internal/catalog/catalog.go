// Package catalog holds the in-memory sample data the query catalog runs against.
package catalog

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openfga/seqops/pkg/seq"
)

// Product is an item for sale.
type Product struct {
	Name         string          `json:"name"`
	UnitsInStock int             `json:"units_in_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Category     string          `json:"category"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.UnitsInStock > 0
}

// Order is a single purchase placed by a customer.
type Order struct {
	Total     decimal.Decimal `json:"total"`
	OrderDate time.Time       `json:"order_date"`
}

// Customer is a buyer and the orders they placed, oldest first.
type Customer struct {
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Orders []Order `json:"orders"`
}

// Dataset bundles every collection the queries read.
type Dataset struct {
	Products  []Product
	Customers []Customer

	// Dictionary stands in for an English word list.
	Dictionary []string
	// Digits are the English names of 0 through 9, indexed by value.
	Digits []string

	Numbers  []int
	NumbersA []int
	NumbersB []int

	// Sequential holds 0 through 15 in ascending order.
	Sequential []int

	// MixedCase are words with irregular capitalization for case-insensitive sorts.
	MixedCase []string
	// CaseWords are converted to upper and lower case by the transformation queries.
	CaseWords []string
	// Anagrams contains words that group into anagram families.
	Anagrams []string
}

// Default returns a fresh copy of the sample data. Callers may modify the result.
func Default() *Dataset {
	return &Dataset{
		Products: []Product{
			{Name: "Laptop", UnitsInStock: 0, UnitPrice: decimal.RequireFromString("999.99"), Category: "Electronics"},
			{Name: "Mouse", UnitsInStock: 50, UnitPrice: decimal.RequireFromString("25.00"), Category: "Electronics"},
			{Name: "Apple", UnitsInStock: 100, UnitPrice: decimal.RequireFromString("2.50"), Category: "Food"},
			{Name: "Bread", UnitsInStock: 0, UnitPrice: decimal.RequireFromString("3.50"), Category: "Food"},
			{Name: "TV", UnitsInStock: 10, UnitPrice: decimal.RequireFromString("1500.00"), Category: "Electronics"},
		},
		Customers: []Customer{
			{
				Name:   "John Doe",
				Region: "Washington",
				Orders: []Order{
					{Total: decimal.RequireFromString("300.00"), OrderDate: date(1997, time.January, 1)},
					{Total: decimal.RequireFromString("600.00"), OrderDate: date(1998, time.February, 1)},
				},
			},
			{
				Name:   "Jane Smith",
				Region: "Washington",
				Orders: []Order{
					{Total: decimal.RequireFromString("450.00"), OrderDate: date(1999, time.March, 1)},
					{Total: decimal.RequireFromString("700.00"), OrderDate: date(2000, time.April, 1)},
				},
			},
		},
		Dictionary: []string{"hello", "world", "weird", "code", "programming"},
		Digits:     []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
		Numbers:    []int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0},
		NumbersA:   []int{0, 2, 4, 5, 6, 8, 9},
		NumbersB:   []int{1, 3, 5, 7, 8},
		Sequential: slices.Collect(seq.Range(0, 16)),
		MixedCase:  []string{"aPPLE", "AbAcUs", "bRaNcH", "BlUeBeRrY", "ClOvEr", "cHeRry"},
		CaseWords:  []string{"aPPLE", "BlUeBeRrY", "cHeRry"},
		Anagrams:   []string{"from", "salt", "earn", "last", "near", "form"},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
