// Package naming renders lattice type identifiers for people and for files.
//
// Type names arrive in CamelCase from the foreign runtime
// ("AdvancedSystemDeflection"). The package splits them into tokens,
// renders titles for error messages ("Advanced System Deflection"),
// snake_case names for generated files, and ranks near-miss names by edit
// distance so cast errors can suggest what the caller probably meant.
package naming
