// Package diagnostic collects schema problems found while validating a
// lattice schema, so a single run can report all of them at once.
//
// Errors block code generation; warnings are printed but do not fail a run.
package diagnostic
