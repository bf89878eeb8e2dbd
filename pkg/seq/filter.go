package seq

import (
	"iter"
	"slices"
)

// Values returns a sequence over the elements of s in index order.
func Values[S ~[]T, T any](s S) iter.Seq[T] {
	return slices.Values(s)
}

// Range returns a sequence of count consecutive integers starting at start.
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range max(count, 0) {
			if !yield(start + i) {
				return
			}
		}
	}
}

// Filter returns the elements of s for which pred returns true.
func Filter[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterErr collects the elements of s that pass every filter. Filters are applied in
// order and the first error returned by any of them stops the scan and is returned
// unchanged.
func FilterErr[T any](s iter.Seq[T], filters ...FilterFunc[T]) ([]T, error) {
	var out []T
	for v := range s {
		ok, err := applyFilters(v, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func applyFilters[T any](v T, filters []FilterFunc[T]) (bool, error) {
	for _, filter := range filters {
		passes, err := filter(v)
		if err != nil {
			return false, err
		}
		if !passes {
			return false, nil
		}
	}
	return true, nil
}
