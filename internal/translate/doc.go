// Package translate implements the almanac translation table and the
// recursive range resolver.
//
// The table is an ordered collection of piecewise offset rules from
// (Category, Span) source keys to equally long destination spans in the
// chain successor, backed by a B-tree. Keys of the same category compare
// equal when their spans overlap, which turns the tree's ascend operations
// into interval lookups: probing with a query span lands on the first
// stored rule intersecting it. That comparator is a search predicate, not a
// total order, so it never leaves this package, and the table refuses to
// hold two overlapping keys for one category (AddMapping deletes every
// overlapping rule before inserting its replacement).
package translate
