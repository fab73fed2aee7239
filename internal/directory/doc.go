// Package directory is a file-backed user and group directory.
//
// The file is YAML:
//
//	users:
//	  - id: mrossi
//	    fullname: Mario Rossi
//	groups:
//	  operatori_pratiche: [mrossi, gverdi]
//
// A Directory serves lookups from an immutable snapshot and can watch its
// file to swap in a new snapshot when it changes. A file that fails to parse
// leaves the previous snapshot in place.
package directory
