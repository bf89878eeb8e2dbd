package seq

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistinct(t *testing.T) {
	categories := Map(Values(sampleItems()), func(it item) string { return it.Category })
	require.Equal(t, []string{"Electronics", "Food"}, slices.Collect(Distinct(categories)))

	t.Run("idempotent", func(t *testing.T) {
		input := []int{3, 1, 3, 2, 1, 4}
		once := slices.Collect(Distinct(Values(input)))
		twice := slices.Collect(Distinct(Distinct(Values(input))))
		require.Equal(t, []int{3, 1, 2, 4}, once)
		require.Equal(t, once, twice)
	})

	t.Run("custom_equality", func(t *testing.T) {
		got := slices.Collect(DistinctFunc(Values([]string{"Apple", "apple", "BANANA", "banana", "cherry"}), strings.EqualFold))
		require.Equal(t, []string{"Apple", "BANANA", "cherry"}, got)
	})
}

func TestUnion(t *testing.T) {
	productLetters := []rune{'L', 'M', 'A', 'B', 'T'}
	customerLetters := []rune{'J', 'J'}

	got := slices.Collect(Union(Values(productLetters), Values(customerLetters)))
	require.Equal(t, []rune{'L', 'M', 'A', 'B', 'T', 'J'}, got)

	t.Run("no_duplicates_and_covers_both", func(t *testing.T) {
		a := []int{1, 2, 2, 5}
		b := []int{5, 3, 1, 3}
		union := slices.Collect(Union(Values(a), Values(b)))
		require.Equal(t, []int{1, 2, 5, 3}, union)

		unique := slices.Compact(slices.Sorted(Values(union)))
		require.Len(t, unique, len(union))
		for _, v := range slices.Concat(a, b) {
			require.Contains(t, union, v)
		}
	})

	t.Run("custom_equality", func(t *testing.T) {
		got := slices.Collect(UnionFunc(Values([]string{"a", "B"}), Values([]string{"b", "C", "A"}), strings.EqualFold))
		require.Equal(t, []string{"a", "B", "C"}, got)
	})
}

func TestIntersect(t *testing.T) {
	got := slices.Collect(Intersect(Values([]int{1, 2, 2, 3}), Values([]int{3, 2, 5})))
	require.Equal(t, []int{2, 3}, got)

	none := slices.Collect(Intersect(Values([]rune{'L', 'M'}), Values([]rune{'J'})))
	require.Empty(t, none)

	folded := slices.Collect(IntersectFunc(Values([]string{"x", "Y", "y", "z"}), Values([]string{"y", "X"}), strings.EqualFold))
	require.Equal(t, []string{"x", "Y"}, folded)
}

func TestExcept(t *testing.T) {
	got := slices.Collect(Except(Values([]int{1, 2, 2, 3, 4, 1}), Values([]int{2})))
	require.Equal(t, []int{1, 3, 4}, got)

	folded := slices.Collect(ExceptFunc(Values([]string{"a", "B", "c", "C"}), Values([]string{"b"}), strings.EqualFold))
	require.Equal(t, []string{"a", "c"}, folded)

	t.Run("restartable", func(t *testing.T) {
		s := Except(Values([]int{1, 2, 3}), Values([]int{2}))
		require.Equal(t, slices.Collect(s), slices.Collect(s))
	})
}

func TestConcat(t *testing.T) {
	got := slices.Collect(Concat(Values([]string{"top", "use"}), Values([]string{"Doe", "ith", "Doe"})))
	require.Equal(t, []string{"top", "use", "Doe", "ith", "Doe"}, got)

	first := slices.Collect(Take(Concat(Values([]int{1}), Values([]int{2, 3})), 2))
	require.Equal(t, []int{1, 2}, first)
}
