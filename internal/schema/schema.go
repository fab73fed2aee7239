package schema

import (
	"slices"

	"proxy-lattice/internal/common"
)

// File is the root of a lattice schema.
type File struct {
	// Version of the schema format, a semantic version satisfying ^1.
	Version string `yaml:"version,omitempty"`

	// Namespace is the foreign namespace of types that do not set their own.
	Namespace string `yaml:"namespace,omitempty"`

	// Package is the default Go package name for generated proxies.
	Package string `yaml:"package,omitempty"`

	// InferCasts lets types without casts reach all their descendants.
	InferCasts bool `yaml:"infer_casts,omitempty"`

	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one proxied type.
type TypeDef struct {
	Name       string        `yaml:"name"`
	Namespace  string        `yaml:"namespace,omitempty"`
	Parent     string        `yaml:"parent,omitempty"`
	Abstract   bool          `yaml:"abstract,omitempty"`
	Doc        string        `yaml:"doc,omitempty"`
	Casts      StringOrArray `yaml:"casts,omitempty"`
	Properties []PropertyDef `yaml:"properties,omitempty"`
}

// PropertyDef declares one property of a type.
type PropertyDef struct {
	Name string `yaml:"name"`
	// Kind is "scalar", "object" or "list"; inferred from Type when empty.
	Kind string `yaml:"kind,omitempty"`
	// Type is the scalar kind or the lattice type of the object/elements.
	Type string `yaml:"type,omitempty"`
	Doc  string `yaml:"doc,omitempty"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// Type finds a type definition by name.
func (f *File) Type(name string) (*TypeDef, bool) {
	for i := range f.Types {
		if f.Types[i].Name == name {
			return &f.Types[i], true
		}
	}

	return nil, false
}

// TypeNames returns the declared type names in declaration order.
func (f *File) TypeNames() []string {
	out := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		out = append(out, t.Name)
	}

	return out
}
