package handle

import "maps"

// Object is an in-process Handle backed by a field map.
// Values are stored as given; a nil value reads as absent.
type Object struct {
	typ    TypeName
	fields map[string]any
}

var _ Handle = (*Object)(nil)

// NewObject creates an Object of the given runtime type.
// The fields map is copied.
func NewObject(typ TypeName, fields map[string]any) *Object {
	return &Object{typ: typ, fields: maps.Clone(fields)}
}

// Type implements Handle.
func (o *Object) Type() TypeName {
	if o == nil {
		return TypeName{}
	}

	return o.typ
}

// Field implements Handle.
func (o *Object) Field(name string) (any, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.fields[name]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Slice is an in-process Sequence.
type Slice []Handle

var _ Sequence = Slice(nil)

// Len implements Sequence.
func (s Slice) Len() int { return len(s) }

// At implements Sequence.
func (s Slice) At(i int) Handle { return s[i] }
