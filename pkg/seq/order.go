package seq

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Comparison orders two elements. It returns a negative number when a sorts before b,
// a positive number when a sorts after b and zero when they are equal.
type Comparison[T any] func(a, b T) int

// Key returns a Comparison that orders elements by the natural order of the key
// selected by sel.
func Key[T any, K cmp.Ordered](sel func(T) K) Comparison[T] {
	return func(a, b T) int {
		return cmp.Compare(sel(a), sel(b))
	}
}

// KeyFunc returns a Comparison that orders elements by the key selected by sel,
// compared with compare.
func KeyFunc[T, K any](sel func(T) K, compare func(a, b K) int) Comparison[T] {
	return func(a, b T) int {
		return compare(sel(a), sel(b))
	}
}

// Reverse returns the descending form of c.
func (c Comparison[T]) Reverse() Comparison[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// CaseInsensitive compares two strings ordinally after folding them to upper case.
func CaseInsensitive(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

// Ordered is a sort over a source sequence. Additional keys break ties between
// elements that compare equal on every earlier key. The sort runs each time the
// sequence returned by All is ranged over.
type Ordered[T any] struct {
	src  iter.Seq[T]
	keys []Comparison[T]
}

// OrderBy sorts s ascending by c.
func OrderBy[T any](s iter.Seq[T], c Comparison[T]) *Ordered[T] {
	return &Ordered[T]{src: s, keys: []Comparison[T]{c}}
}

// OrderByDescending sorts s descending by c.
func OrderByDescending[T any](s iter.Seq[T], c Comparison[T]) *Ordered[T] {
	return OrderBy(s, c.Reverse())
}

// ThenBy returns a new Ordered that additionally sorts ascending by c.
func (o *Ordered[T]) ThenBy(c Comparison[T]) *Ordered[T] {
	return &Ordered[T]{src: o.src, keys: append(slices.Clip(o.keys), c)}
}

// ThenByDescending returns a new Ordered that additionally sorts descending by c.
func (o *Ordered[T]) ThenByDescending(c Comparison[T]) *Ordered[T] {
	return o.ThenBy(c.Reverse())
}

// All returns the sorted sequence. Elements equal on every key keep their source
// order.
func (o *Ordered[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range o.Collect() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect sorts the source into a new slice.
func (o *Ordered[T]) Collect() []T {
	items := slices.Collect(o.src)
	slices.SortStableFunc(items, o.compare)
	return items
}

func (o *Ordered[T]) compare(a, b T) int {
	for _, key := range o.keys {
		if c := key(a, b); c != 0 {
			return c
		}
	}
	return 0
}
