// Package proxy exposes fields of foreign objects as typed, read-only
// values.
//
// A Proxy pairs a handle with the lattice type it is viewed as. Every read
// goes back to the handle; nothing is cached. Absent values are not errors:
// scalar getters return the zero value of their kind (0.0 for floats) and
// object and list getters return nil.
//
// Cast returns a view of the same handle that can be re-typed at any type
// in the lattice's reachable set of the current view.
package proxy
