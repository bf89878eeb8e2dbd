// Package seq provides generic, composable query operators over iter.Seq values.
//
// Operators fall into three groups:
//
//   - lazy adapters (Filter, Map, FlatMap, Concat, Distinct, Union, Take, ...) that
//     return a new iter.Seq and read their source only when ranged over. They can be
//     ranged over again only if their source can.
//   - materializing operators (GroupBy, OrderBy, Reverse) that read the whole source
//     before producing anything.
//   - terminal operators (First, Nth, Count, Sum, Min, Max, Average, Any, All) that
//     consume the source once and return a value.
//
// Ordering is always preserved unless the operator is defined to change it. Sorting
// is stable and grouping keeps keys in order of first occurrence.
//
// Min, Max and Average report ErrEmptySequence on an empty source; Sum and Count
// return zero. Single element lookups (First, FirstWhere, Nth) return ok == false
// when nothing matches, which is not an error.
package seq
