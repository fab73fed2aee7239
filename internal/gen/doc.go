// Package gen generates typed proxy packages from a lattice.
//
// Generation uses text/template + go/format and is deterministic: types are
// emitted parent first and files are returned sorted by name.
//
// Generated code per type T:
//   - type T wrapping a *proxy.Proxy, with WrapT and Proxy
//   - one getter per own and inherited property
//   - TCastTo with one method per reachable type
//
// plus lattice_gen.go holding the type table, Lattice() and Wrap().
package gen
