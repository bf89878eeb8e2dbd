package seq

import (
	"iter"
	"slices"

	"github.com/emirpasic/gods/sets/hashset"
)

// Concat returns the elements of a followed by the elements of b. Duplicates are kept.
func Concat[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range a {
			if !yield(v) {
				return
			}
		}
		for v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// Distinct returns the elements of s with duplicates removed, keeping the first
// occurrence of each.
func Distinct[T comparable](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := hashset.New()
		for v := range s {
			if seen.Contains(v) {
				continue
			}
			seen.Add(v)
			if !yield(v) {
				return
			}
		}
	}
}

// DistinctFunc is like Distinct but decides equality with eq.
func DistinctFunc[T any](s iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen []T
		for v := range s {
			if containsFunc(seen, v, eq) {
				continue
			}
			seen = append(seen, v)
			if !yield(v) {
				return
			}
		}
	}
}

// Union returns the distinct elements of a in a's order, followed by the distinct
// elements of b that do not occur in a, in b's order.
func Union[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return Distinct(Concat(a, b))
}

// UnionFunc is like Union but decides equality with eq.
func UnionFunc[T any](a, b iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return DistinctFunc(Concat(a, b), eq)
}

// Intersect returns the distinct elements of a that also occur in b, in a's order.
// b is read in full the first time the result is ranged over.
func Intersect[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		remaining := toSet(b)
		for v := range a {
			if !remaining.Contains(v) {
				continue
			}
			remaining.Remove(v)
			if !yield(v) {
				return
			}
		}
	}
}

// IntersectFunc is like Intersect but decides equality with eq.
func IntersectFunc[T any](a, b iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		other := slices.Collect(b)
		var emitted []T
		for v := range a {
			if !containsFunc(other, v, eq) || containsFunc(emitted, v, eq) {
				continue
			}
			emitted = append(emitted, v)
			if !yield(v) {
				return
			}
		}
	}
}

// Except returns the distinct elements of a that do not occur in b, in a's order.
// b is read in full the first time the result is ranged over.
func Except[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		excluded := toSet(b)
		for v := range a {
			if excluded.Contains(v) {
				continue
			}
			excluded.Add(v)
			if !yield(v) {
				return
			}
		}
	}
}

// ExceptFunc is like Except but decides equality with eq.
func ExceptFunc[T any](a, b iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		excluded := slices.Collect(b)
		for v := range a {
			if containsFunc(excluded, v, eq) {
				continue
			}
			excluded = append(excluded, v)
			if !yield(v) {
				return
			}
		}
	}
}

func toSet[T comparable](s iter.Seq[T]) *hashset.Set {
	set := hashset.New()
	for v := range s {
		set.Add(v)
	}
	return set
}

func containsFunc[T any](items []T, v T, eq func(a, b T) bool) bool {
	return slices.ContainsFunc(items, func(item T) bool {
		return eq(item, v)
	})
}
