package seq

import "iter"

// Any reports whether any element of s matches pred. It stops at the first match and
// is false for an empty s.
func Any[T any](s iter.Seq[T], pred func(T) bool) bool {
	for v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element of s matches pred. It stops at the first
// mismatch and is true for an empty s.
func All[T any](s iter.Seq[T], pred func(T) bool) bool {
	for v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s iter.Seq[T], v T) bool {
	return Any(s, func(item T) bool {
		return item == v
	})
}
