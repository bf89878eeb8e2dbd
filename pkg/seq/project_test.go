package seq

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	got := slices.Collect(Map(Values(sampleItems()), func(it item) string { return it.Name }))
	require.Equal(t, []string{"Laptop", "Mouse", "Apple", "Bread", "TV"}, got)

	upper := slices.Collect(Map(Values([]string{"aPPLE", "cHeRry"}), strings.ToUpper))
	require.Equal(t, []string{"APPLE", "CHERRY"}, upper)
}

func TestMapIndexed(t *testing.T) {
	type position struct {
		Number  int
		Index   int
		Matches bool
	}

	got := slices.Collect(MapIndexed(Values(numbers), func(n, i int) position {
		return position{Number: n, Index: i, Matches: n == i}
	}))
	require.Len(t, got, len(numbers))

	var matching []int
	for _, p := range got {
		if p.Matches {
			matching = append(matching, p.Number)
		}
	}
	require.Equal(t, []int{3, 6, 7}, matching)
}

func TestFlatMap(t *testing.T) {
	type pair struct{ A, B int }

	t.Run("cross_product_outer_major", func(t *testing.T) {
		a := []int{0, 2, 4, 5, 6, 8, 9}
		b := []int{1, 3, 5, 7, 8}

		pairs := Filter(
			FlatMap(Values(a), func(int) iter.Seq[int] { return Values(b) }, func(x, y int) pair {
				return pair{x, y}
			}),
			func(p pair) bool { return p.A < p.B },
		)

		got := slices.Collect(pairs)
		require.Len(t, got, 16)
		if diff := cmp.Diff([]pair{{0, 1}, {0, 3}, {0, 5}, {0, 7}, {0, 8}, {2, 3}}, got[:6]); diff != "" {
			t.Errorf("unexpected pairs (-want +got):\n%s", diff)
		}
		require.Equal(t, pair{6, 8}, got[len(got)-1])
	})

	t.Run("empty_inner_contributes_nothing", func(t *testing.T) {
		got := slices.Collect(FlatMap(Values([][]int{{1, 2}, {}, {3}}), func(s []int) iter.Seq[int] {
			return Values(s)
		}, func(_ []int, v int) int { return v }))
		require.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("early_stop", func(t *testing.T) {
		s := FlatMap(Values([][]int{{1, 2}, {3, 4}}), func(s []int) iter.Seq[int] {
			return Values(s)
		}, func(_ []int, v int) int { return v })
		require.Equal(t, []int{1, 2, 3}, slices.Collect(Take(s, 3)))
	})
}
