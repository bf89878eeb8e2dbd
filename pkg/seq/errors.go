package seq

import "errors"

// ErrEmptySequence is returned by aggregates that have no meaningful result for an
// empty source.
var ErrEmptySequence = errors.New("sequence contains no elements")

// FilterFunc is a predicate that may fail. It returns true if the item passes the
// filter, false otherwise.
type FilterFunc[T any] func(T) (bool, error)
