package seq

import (
	"iter"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Grouping is one partition produced by GroupBy. Items keep the relative order they
// had in the source.
type Grouping[K, T any] struct {
	Key   K
	Items []T
}

// All returns a sequence over the members of the group so they can be queried with
// the other operators in this package.
func (g Grouping[K, T]) All() iter.Seq[T] {
	return slices.Values(g.Items)
}

// Len returns the number of members in the group.
func (g Grouping[K, T]) Len() int {
	return len(g.Items)
}

// GroupBy partitions s by the key returned from key. Groups are returned in the order
// their key first occurred in s. Every element of s lands in exactly one group.
func GroupBy[T any, K comparable](s iter.Seq[T], key func(T) K) []Grouping[K, T] {
	buckets := linkedhashmap.New()
	for v := range s {
		k := key(v)
		if found, ok := buckets.Get(k); ok {
			group := found.(*Grouping[K, T])
			group.Items = append(group.Items, v)
			continue
		}
		buckets.Put(k, &Grouping[K, T]{Key: k, Items: []T{v}})
	}

	groups := make([]Grouping[K, T], 0, buckets.Size())
	it := buckets.Iterator()
	for it.Next() {
		groups = append(groups, *it.Value().(*Grouping[K, T]))
	}
	return groups
}

// GroupByFunc is like GroupBy but decides key equality with eq. The key of a group is
// the first key that opened it.
func GroupByFunc[T, K any](s iter.Seq[T], key func(T) K, eq func(a, b K) bool) []Grouping[K, T] {
	var groups []Grouping[K, T]
	for v := range s {
		k := key(v)
		i := slices.IndexFunc(groups, func(g Grouping[K, T]) bool {
			return eq(g.Key, k)
		})
		if i < 0 {
			groups = append(groups, Grouping[K, T]{Key: k, Items: []T{v}})
			continue
		}
		groups[i].Items = append(groups[i].Items, v)
	}
	return groups
}
