// Package schema defines the YAML description of a proxy lattice, loads
// it, validates it and converts it into lattice.TypeSpecs.
//
// # Schema overview
//
//	version: "1.0.0"
//	namespace: SMT.MastaAPI.SystemModelAnalyses   # default foreign namespace
//	package: analysis                             # default Go package for gen
//	infer_casts: false                            # cast to every descendant when casts are omitted
//	types:
//	  - name: AnalysisCase
//	    abstract: true
//	    properties:
//	      - name: Name
//	        type: string
//	  - name: AdvancedSystemDeflection
//	    parent: AnalysisCase
//	    casts: AdvancedSystemDeflectionSubAnalysis  # string or list
//	    properties:
//	      - TimeToComplete: float                   # shorthand
//	      - Results: "[]ComponentResult"            # list shorthand
//	      - name: Design
//	        kind: object
//	        type: Design
//
// # Property kinds
//
// When kind is omitted it is inferred from type:
//   - "[]T" is a list of T
//   - a scalar name (float, double, int, int32, string, bool, ...) is a scalar
//   - empty type is a float scalar
//   - anything else is an object of that lattice type
//
// # Validation
//
// Validate reports every problem as a diagnostic with a stable code instead
// of stopping at the first one. Codes are listed in validate.go.
package schema
