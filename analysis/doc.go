// Package analysis holds typed proxies for the system model analysis
// lattice: analysis cases (system deflection, dynamic analysis, steady-state
// synchronous response) and their per-component results.
//
// Everything except this file is generated from
// examples/analysis/lattice.yaml.
package analysis

//go:generate go run ../cmd/proxy-lattice gen ../examples/analysis/lattice.yaml --out . --package analysis
