package seq

import "iter"

// Map projects every element of s through fn.
func Map[T, R any](s iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// MapIndexed is like Map but also passes the zero-based position of each element.
func MapIndexed[T, R any](s iter.Seq[T], fn func(T, int) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		var i int
		for v := range s {
			if !yield(fn(v, i)) {
				return
			}
			i++
		}
	}
}

// FlatMap expands every element of s into the sequence returned by inner and combines
// each outer/inner pair with result. Output is outer-major, inner-minor, so it can
// express both cross products and correlated sub-collections.
func FlatMap[T, U, R any](s iter.Seq[T], inner func(T) iter.Seq[U], result func(T, U) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for outer := range s {
			for v := range inner(outer) {
				if !yield(result(outer, v)) {
					return
				}
			}
		}
	}
}
