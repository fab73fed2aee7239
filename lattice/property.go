package lattice

import (
	"strings"

	"proxy-lattice/primitive"
)

//go:generate go tool stringer -type=PropertyKind -output=propertykind_string.go

// PropertyKind says how a property value is converted when read.
type PropertyKind int

const (
	_ PropertyKind = iota

	PropertyScalar // primitive passthrough
	PropertyObject // single object, wrapped by its runtime type
	PropertyList   // sequence of objects, wrapped element by element
)

var propertyKindNames = map[PropertyKind]string{
	PropertyScalar: "scalar",
	PropertyObject: "object",
	PropertyList:   "list",
}

// ParsePropertyKind resolves "scalar", "object" or "list". It returns 0 for
// anything else.
func ParsePropertyKind(s string) PropertyKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range propertyKindNames {
		if n == s {
			return k
		}
	}

	return 0
}

// Name returns the schema spelling of the kind.
func (k PropertyKind) Name() string {
	return propertyKindNames[k]
}

// Property describes one field of a proxied type.
type Property struct {
	// Name of the field on the foreign object.
	Name string
	Kind PropertyKind
	// Scalar is the value kind of a PropertyScalar.
	Scalar primitive.KindEnum
	// Type is the lattice type name of a PropertyObject or the element type
	// of a PropertyList.
	Type string
	Doc  string
}

// IsReference reports whether the property holds objects rather than a scalar.
func (p Property) IsReference() bool {
	return p.Kind == PropertyObject || p.Kind == PropertyList
}
