package seq

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// Number is the set of element types Sum and Average accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count returns the number of elements in s.
func Count[T any](s iter.Seq[T]) int {
	var n int
	for range s {
		n++
	}
	return n
}

// CountWhere returns the number of elements in s matching pred.
func CountWhere[T any](s iter.Seq[T], pred func(T) bool) int {
	return Count(Filter(s, pred))
}

// Aggregate folds s into a single value, starting from seed.
func Aggregate[T, A any](s iter.Seq[T], seed A, fn func(A, T) A) A {
	acc := seed
	for v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds up the values selected from s. An empty s sums to zero.
func Sum[T any, N Number](s iter.Seq[T], sel func(T) N) N {
	return Aggregate(s, N(0), func(acc N, v T) N {
		return acc + sel(v)
	})
}

// Min returns the smallest value selected from s, or ErrEmptySequence. Values are
// compared with cmp.Compare, so a NaN is smaller than any other float.
func Min[T any, V cmp.Ordered](s iter.Seq[T], sel func(T) V) (V, error) {
	return MinFunc(s, sel, cmp.Compare[V])
}

// Max returns the largest value selected from s, or ErrEmptySequence. Values are
// compared with cmp.Compare, so a NaN is smaller than any other float.
func Max[T any, V cmp.Ordered](s iter.Seq[T], sel func(T) V) (V, error) {
	return MaxFunc(s, sel, cmp.Compare[V])
}

// MinFunc is like Min for values ordered by cmp rather than by <.
// The first of several equal minimums is returned.
func MinFunc[T, V any](s iter.Seq[T], sel func(T) V, cmp func(a, b V) int) (V, error) {
	return extreme(s, sel, func(candidate, current V) bool {
		return cmp(candidate, current) < 0
	})
}

// MaxFunc is like Max for values ordered by cmp rather than by <.
// The first of several equal maximums is returned.
func MaxFunc[T, V any](s iter.Seq[T], sel func(T) V, cmp func(a, b V) int) (V, error) {
	return extreme(s, sel, func(candidate, current V) bool {
		return cmp(candidate, current) > 0
	})
}

func extreme[T, V any](s iter.Seq[T], sel func(T) V, better func(candidate, current V) bool) (V, error) {
	var (
		result V
		seen   bool
	)
	for v := range s {
		candidate := sel(v)
		if !seen || better(candidate, result) {
			result = candidate
			seen = true
		}
	}
	if !seen {
		return result, ErrEmptySequence
	}
	return result, nil
}

// Average returns the arithmetic mean of the values selected from s, or
// ErrEmptySequence.
func Average[T any, N Number](s iter.Seq[T], sel func(T) N) (float64, error) {
	var values []float64
	for v := range s {
		values = append(values, float64(sel(v)))
	}
	if len(values) == 0 {
		return 0, ErrEmptySequence
	}
	return stat.Mean(values, nil), nil
}
