package queries

import (
	"fmt"
	"slices"
	"strings"

	"github.com/openfga/seqops/internal/catalog"
	"github.com/openfga/seqops/pkg/seq"
)

func groupingQueries() []Query {
	return numbered(SectionGrouping,
		Query{Title: "Numbers grouped by remainder (mod 5)", Run: numbersByRemainder},
		Query{Title: "Words grouped by first letter", Run: wordsByFirstLetter},
		Query{Title: "Words grouped by anagram", Run: wordsByAnagram},
	)
}

func groupLines[K comparable, T any](grouped []seq.Grouping[K, T], label func(K) string) Result {
	out := make([]Group[K, T], 0, len(grouped))
	lines := make([]string, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, Group[K, T]{Key: g.Key, Members: g.Items})
		lines = append(lines, label(g.Key)+": "+join(g.Items))
	}
	return newResult(out, lines...)
}

func numbersByRemainder(ds *catalog.Dataset) (Result, error) {
	grouped := seq.GroupBy(seq.Values(ds.Sequential), func(n int) int { return n % 5 })
	return groupLines(grouped, func(k int) string { return fmt.Sprintf("Remainder %d", k) }), nil
}

func wordsByFirstLetter(ds *catalog.Dataset) (Result, error) {
	return groupLines(seq.GroupBy(seq.Values(ds.Dictionary), firstLetter), func(k string) string { return k }), nil
}

// anagramKey is the word's letters in sorted order.
func anagramKey(word string) string {
	letters := []rune(word)
	slices.Sort(letters)
	return string(letters)
}

func wordsByAnagram(ds *catalog.Dataset) (Result, error) {
	grouped := seq.GroupByFunc(seq.Values(ds.Anagrams), anagramKey, strings.EqualFold)
	return groupLines(grouped, func(k string) string { return k }), nil
}
