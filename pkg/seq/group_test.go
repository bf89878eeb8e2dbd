package seq

import (
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupBy(t *testing.T) {
	groups := GroupBy(Values(sampleItems()), func(it item) string { return it.Category })
	require.Len(t, groups, 2)

	t.Run("first_occurrence_order", func(t *testing.T) {
		require.Equal(t, "Electronics", groups[0].Key)
		require.Equal(t, "Food", groups[1].Key)
		require.Equal(t, []string{"Laptop", "Mouse", "TV"}, names(groups[0].Items))
		require.Equal(t, []string{"Apple", "Bread"}, names(groups[1].Items))
	})

	t.Run("cheapest_per_group", func(t *testing.T) {
		cheapest := make(map[string]float64, len(groups))
		var order []string
		for _, g := range groups {
			price, err := Min(g.All(), func(it item) float64 { return it.Price })
			require.NoError(t, err)
			cheapest[g.Key] = price
			order = append(order, g.Key)
		}
		require.Equal(t, map[string]float64{"Electronics": 25.00, "Food": 2.50}, cheapest)
		require.Equal(t, []string{"Electronics", "Food"}, order)
	})

	t.Run("groups_are_queryable", func(t *testing.T) {
		require.Equal(t, 3, groups[0].Len())
		require.Equal(t, 60, Sum(groups[0].All(), func(it item) int { return it.Stock }))
		require.True(t, Any(groups[1].All(), func(it item) bool { return it.Stock == 0 }))
		require.False(t, All(groups[1].All(), func(it item) bool { return it.Stock > 0 }))
	})

	t.Run("empty_input", func(t *testing.T) {
		require.Empty(t, GroupBy(Values([]int{}), func(n int) int { return n }))
	})
}

func TestGroupByPartitionCoverage(t *testing.T) {
	input := slices.Collect(Range(0, 16))
	groups := GroupBy(Values(input), func(n int) int { return n % 5 })

	require.Len(t, groups, 5)
	require.Equal(t, []int{0, 5, 10, 15}, groups[0].Items)
	require.Equal(t, []int{4, 9, 14}, groups[4].Items)

	var members []int
	for _, g := range groups {
		members = append(members, g.Items...)
	}
	require.ElementsMatch(t, input, members)
}

func TestGroupByFunc(t *testing.T) {
	sorted := func(w string) string {
		letters := strings.Split(w, "")
		sort.Strings(letters)
		return strings.Join(letters, "")
	}

	words := []string{"from", "salt", "earn", "last", "near", "Form"}
	groups := GroupByFunc(Values(words), sorted, strings.EqualFold)

	require.Len(t, groups, 3)
	require.Equal(t, "fmor", groups[0].Key)
	require.Equal(t, []string{"from", "Form"}, groups[0].Items)
	require.Equal(t, []string{"salt", "last"}, groups[1].Items)
	require.Equal(t, []string{"earn", "near"}, groups[2].Items)
}
