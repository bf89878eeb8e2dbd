package seq

import (
	"iter"
	"slices"
)

// Take returns at most the first n elements of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var taken int
		for v := range s {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Skip returns the elements of s after the first n.
func Skip[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		var skipped int
		for v := range s {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile returns elements of s as long as pred holds. pred also receives the
// zero-based position of the element.
func TakeWhile[T any](s iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var i int
		for v := range s {
			if !pred(v, i) || !yield(v) {
				return
			}
			i++
		}
	}
}

// SkipWhile drops elements of s as long as pred holds and returns the rest. pred also
// receives the zero-based position of the element.
func SkipWhile[T any](s iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			i        int
			yielding bool
		)
		for v := range s {
			if !yielding && pred(v, i) {
				i++
				continue
			}
			yielding = true
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse returns the elements of s in reverse order. s is read in full the first time
// the result is ranged over.
func Reverse[T any](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		items := slices.Collect(s)
		for _, v := range slices.Backward(items) {
			if !yield(v) {
				return
			}
		}
	}
}
