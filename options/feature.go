package options

import (
	"strings"
)

// FeatureEnum selects what the proxy generator emits for each type.
type FeatureEnum int

const (
	FeatureProperties FeatureEnum = 1 << iota // one getter per own and inherited property
	FeatureCasts                              // CastTo view with one method per reachable type
	FeatureRegistry                           // package-level spec table and Lattice() accessor
	FeatureDocs                               // doc comments copied from the schema

	FeatureAll  FeatureEnum = (1 << iota) - 1 // all features combined
	FeatureNone FeatureEnum = 0               // bare wrapper types only
)

var featureNames = []struct {
	f    FeatureEnum
	name string
}{
	{FeatureProperties, "properties"},
	{FeatureCasts, "casts"},
	{FeatureRegistry, "registry"},
	{FeatureDocs, "docs"},
}

// Has reports whether every feature in want is enabled.
func (f FeatureEnum) Has(want FeatureEnum) bool {
	return f&want == want
}

// Without returns f with the given features cleared.
func (f FeatureEnum) Without(drop FeatureEnum) FeatureEnum {
	return f &^ drop
}

// Names returns the names of the enabled features in declaration order.
func (f FeatureEnum) Names() []string {
	var out []string

	for _, fn := range featureNames {
		if f.Has(fn.f) {
			out = append(out, fn.name)
		}
	}

	return out
}

func (f FeatureEnum) String() string {
	if f == FeatureNone {
		return "none"
	}

	return strings.Join(f.Names(), "|")
}

// ParseFeature resolves a single feature name. It returns FeatureNone and
// false for unknown names.
func ParseFeature(name string) (FeatureEnum, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "all" {
		return FeatureAll, true
	}

	for _, fn := range featureNames {
		if fn.name == name {
			return fn.f, true
		}
	}

	return FeatureNone, false
}
