// Package lattice holds the static cast table of a proxied type hierarchy.
//
// Every type has at most one parent and may declare any number of
// descendants it can be cast down to. A Lattice is built once from a list
// of TypeSpecs, validated, and never changes afterwards, so it can be
// shared between goroutines without locking.
//
// The reachable set of a type T is T itself, every ancestor of T and every
// descendant T declares in its casts. Casting to a type outside that set is
// an *InvalidCastError, as is a downcast whose target does not match the
// runtime type of the wrapped object.
package lattice
