package seq

import "iter"

// First returns the first element of s. ok is false if s is empty.
func First[T any](s iter.Seq[T]) (v T, ok bool) {
	for v := range s {
		return v, true
	}
	return v, false
}

// FirstWhere returns the first element of s matching pred. ok is false if no element
// matches.
func FirstWhere[T any](s iter.Seq[T], pred func(T) bool) (T, bool) {
	return First(Filter(s, pred))
}

// Nth returns the element at zero-based position n. ok is false if s has n or fewer
// elements or n is negative.
func Nth[T any](s iter.Seq[T], n int) (v T, ok bool) {
	if n < 0 {
		return v, false
	}
	return First(Skip(s, n))
}
