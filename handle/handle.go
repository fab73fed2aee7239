package handle

import "strings"

// TypeName identifies a type in the foreign runtime.
type TypeName struct {
	Namespace string // e.g. "SMT.MastaAPI.SystemModelAnalyses"
	Name      string // e.g. "AdvancedSystemDeflection"
}

// ParseTypeName splits a dotted "Namespace.Name" string on its last dot.
// A string without dots is a bare name with an empty namespace.
func ParseTypeName(s string) TypeName {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return TypeName{Name: s}
	}

	return TypeName{Namespace: s[:i], Name: s[i+1:]}
}

// String returns the dotted form of the name.
func (t TypeName) String() string {
	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}

// IsZero reports whether the name is empty.
func (t TypeName) IsZero() bool {
	return t.Name == "" && t.Namespace == ""
}

// Handle is an opaque reference to a foreign object.
type Handle interface {
	// Type returns the runtime type of the referenced object.
	Type() TypeName
	// Field reads a field of the referenced object.
	// The boolean is false when the field is absent or null.
	Field(name string) (any, bool)
}

// Sequence is a homogeneous foreign sequence of objects.
type Sequence interface {
	Len() int
	At(i int) Handle
}
