package seq

import (
	"cmp"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	require.Equal(t, 10, Count(Values(numbers)))
	require.Equal(t, 5, CountWhere(Values(numbers), func(n int) bool { return n%2 != 0 }))
	require.Zero(t, Count(Values([]string{})))
}

func TestSum(t *testing.T) {
	identity := func(n int) int { return n }

	require.Equal(t, 45, Sum(Values(numbers), identity))
	require.Equal(t, 30, Sum(Values(words), func(w string) int { return len(w) }))
	require.Zero(t, Sum(Values([]int{}), identity))
	require.InDelta(t, 2530.99, Sum(Values(sampleItems()), func(it item) float64 { return it.Price }), 0.001)
}

func TestMinMax(t *testing.T) {
	length := func(w string) int { return len(w) }

	shortest, err := Min(Values(words), length)
	require.NoError(t, err)
	require.Equal(t, 4, shortest)

	longest, err := Max(Values(words), length)
	require.NoError(t, err)
	require.Equal(t, 11, longest)

	t.Run("empty_sequence", func(t *testing.T) {
		_, err := Min(Values([]string{}), length)
		require.ErrorIs(t, err, ErrEmptySequence)

		_, err = Max(Values([]string{}), length)
		require.ErrorIs(t, err, ErrEmptySequence)
	})

	t.Run("strings_are_ordered", func(t *testing.T) {
		first, err := Min(Values(digits), func(d string) string { return d })
		require.NoError(t, err)
		require.Equal(t, "eight", first)
	})

	t.Run("nan_is_independent_of_input_order", func(t *testing.T) {
		nan := math.NaN()
		self := func(f float64) float64 { return f }

		for _, input := range [][]float64{{nan, 1, 0}, {1, nan, 0}, {1, 0, nan}} {
			lowest, err := Min(Values(input), self)
			require.NoError(t, err)
			require.True(t, math.IsNaN(lowest), "Min(%v)", input)

			highest, err := Max(Values(input), self)
			require.NoError(t, err)
			require.InDelta(t, 1.0, highest, 0, "Max(%v)", input)

			first, ok := First(OrderBy(Values(input), Key(self)).All())
			require.True(t, ok)
			require.True(t, math.IsNaN(first), "OrderBy(%v)", input)
		}
	})
}

func TestMinMaxFunc(t *testing.T) {
	type priced struct {
		name  string
		price int
	}
	items := []priced{{"a", 3}, {"b", 1}, {"c", 1}, {"d", 3}}
	byPrice := func(a, b priced) int { return cmp.Compare(a.price, b.price) }
	self := func(p priced) priced { return p }

	lowest, err := MinFunc(Values(items), self, byPrice)
	require.NoError(t, err)
	require.Equal(t, "b", lowest.name)

	highest, err := MaxFunc(Values(items), self, byPrice)
	require.NoError(t, err)
	require.Equal(t, "a", highest.name)

	_, err = MaxFunc(Values([]priced{}), self, byPrice)
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestAverage(t *testing.T) {
	avg, err := Average(Values(words), func(w string) int { return len(w) })
	require.NoError(t, err)
	require.InDelta(t, 6.0, avg, 1e-9)

	_, err = Average(Values([]int{}), func(n int) int { return n })
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestAggregate(t *testing.T) {
	product := Aggregate(Values([]int{1, 2, 3, 4}), 1, func(acc, n int) int { return acc * n })
	require.Equal(t, 24, product)

	joined := Aggregate(Values([]string{"a", "b"}), "", func(acc, s string) string { return acc + s })
	require.Equal(t, "ab", joined)
}
