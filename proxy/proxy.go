package proxy

import (
	"errors"
	"fmt"

	"proxy-lattice/handle"
	"proxy-lattice/internal/naming"
	"proxy-lattice/lattice"
	"proxy-lattice/marshal"
	"proxy-lattice/primitive"
)

var (
	ErrUnknownType     = errors.New("handle type is not part of the lattice")
	ErrUnknownProperty = errors.New("unknown property")
	ErrPropertyType    = errors.New("property value has an unexpected type")
)

// Proxy is a typed view over a foreign handle.
type Proxy struct {
	lat     *lattice.Lattice
	h       handle.Handle
	view    *lattice.Node
	runtime *lattice.Node // nil when the runtime type is unknown to the lattice
}

// Wrap views h as its own runtime type. A nil handle yields a nil proxy.
func Wrap(l *lattice.Lattice, h handle.Handle) (*Proxy, error) {
	if isNil(h) {
		return nil, nil
	}

	n, ok := l.Resolve(h)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, h.Type())
	}

	return &Proxy{lat: l, h: h, view: n, runtime: n}, nil
}

// MustWrap is Wrap that panics on error.
func MustWrap(l *lattice.Lattice, h handle.Handle) *Proxy {
	p, err := Wrap(l, h)
	if err != nil {
		panic(err)
	}

	return p
}

// wrapAs wraps h by its runtime type, falling back to the declared type
// when the runtime type is unknown. It returns nil when neither is known.
func wrapAs(l *lattice.Lattice, h handle.Handle, declared string) *Proxy {
	if isNil(h) {
		return nil
	}

	if n, ok := l.Resolve(h); ok {
		return &Proxy{lat: l, h: h, view: n, runtime: n}
	}

	if n, ok := l.Lookup(declared); ok {
		return &Proxy{lat: l, h: h, view: n}
	}

	return nil
}

// isNil reports whether h refers to no object. A typed nil, such as a nil
// *handle.Object, has no runtime type.
func isNil(h handle.Handle) bool {
	return h == nil || h.Type().IsZero()
}

// Handle returns the wrapped handle.
func (p *Proxy) Handle() handle.Handle { return p.h }

// Lattice returns the lattice the proxy navigates.
func (p *Proxy) Lattice() *lattice.Lattice { return p.lat }

// Node returns the type the proxy is currently viewed as.
func (p *Proxy) Node() *lattice.Node { return p.view }

// Runtime returns the runtime type of the handle, or nil when the lattice
// does not know it.
func (p *Proxy) Runtime() *lattice.Node { return p.runtime }

// TypeName returns the name of the view type.
func (p *Proxy) TypeName() string { return p.view.Name() }

// Is reports whether the runtime type is target or one of its descendants.
func (p *Proxy) Is(target string) bool {
	n, ok := p.lat.Lookup(target)
	return ok && p.runtime.IsA(n)
}

// SameHandle reports whether two proxies wrap the same foreign object.
func (p *Proxy) SameHandle(other *Proxy) bool {
	return p != nil && other != nil && p.h == other.h
}

// Describe renders the proxy for logs: view type, and runtime type when it
// differs.
func (p *Proxy) Describe() string {
	if p == nil {
		return "<nil proxy>"
	}

	s := naming.Title(p.view.Name())
	if p.runtime != nil && p.runtime != p.view {
		s += " (runtime " + naming.Title(p.runtime.Name()) + ")"
	}

	return s
}

func (p *Proxy) raw(name string) (any, bool) {
	if p == nil || p.h == nil {
		return nil, false
	}

	return p.h.Field(name)
}

// Float reads a numeric field as float64; absent reads as 0.0.
func (p *Proxy) Float(name string) float64 {
	v, _ := primitive.AsFloat(p.rawOrNil(name))
	return v
}

// Int reads an integer field as int64; absent reads as 0.
func (p *Proxy) Int(name string) int64 {
	v, _ := primitive.AsInt(p.rawOrNil(name))
	return v
}

// Uint reads a non-negative integer field as uint64; absent reads as 0.
func (p *Proxy) Uint(name string) uint64 {
	v, _ := primitive.AsUint(p.rawOrNil(name))
	return v
}

// Bool reads a boolean field; absent reads as false.
func (p *Proxy) Bool(name string) bool {
	v, _ := primitive.AsBool(p.rawOrNil(name))
	return v
}

// String reads a string field; absent reads as "".
func (p *Proxy) String(name string) string {
	v, _ := primitive.AsString(p.rawOrNil(name))
	return v
}

// Object reads a reference field and wraps it by its runtime type; absent
// reads as nil.
func (p *Proxy) Object(name string) *Proxy {
	h, ok := p.rawOrNil(name).(handle.Handle)
	if !ok {
		return nil
	}

	return wrapAs(p.lat, h, p.declaredType(name))
}

// List reads a collection field and wraps each element; absent reads as nil.
// Element order and count are preserved.
func (p *Proxy) List(name string) []*Proxy {
	seq, err := marshal.FromValue(p.rawOrNil(name))
	if err != nil || seq == nil {
		return nil
	}

	declared := p.declaredType(name)

	return marshal.List(seq, func(h handle.Handle) *Proxy {
		return wrapAs(p.lat, h, declared)
	})
}

// Get reads a declared property and converts it according to its kind.
// Absent values yield the kind's default without error. Undeclared names
// fail with ErrUnknownProperty; values of the wrong shape with
// ErrPropertyType.
func (p *Proxy) Get(name string) (any, error) {
	if p == nil || p.view == nil {
		return nil, fmt.Errorf("%w: %q read through a nil proxy", ErrUnknownProperty, name)
	}

	prop, ok := p.view.Property(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no property %q", ErrUnknownProperty, naming.Title(p.view.Name()), name)
	}

	raw, present := p.raw(name)

	switch prop.Kind {
	case lattice.PropertyScalar:
		if !present {
			return primitive.Zero(prop.Scalar), nil
		}

		v, ok := primitive.Convert(prop.Scalar, raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T, want %s", ErrPropertyType, name, raw, prop.Scalar.Name())
		}

		return v, nil

	case lattice.PropertyObject:
		if !present {
			return (*Proxy)(nil), nil
		}

		h, ok := raw.(handle.Handle)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T, want a handle", ErrPropertyType, name, raw)
		}

		return wrapAs(p.lat, h, prop.Type), nil

	case lattice.PropertyList:
		if !present {
			return []*Proxy(nil), nil
		}

		seq, err := marshal.FromValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPropertyType, name, err)
		}

		return marshal.List(seq, func(h handle.Handle) *Proxy {
			return wrapAs(p.lat, h, prop.Type)
		}), nil

	default:
		return nil, fmt.Errorf("%w: %s has kind %v", ErrPropertyType, name, prop.Kind)
	}
}

func (p *Proxy) rawOrNil(name string) any {
	v, _ := p.raw(name)
	return v
}

func (p *Proxy) declaredType(name string) string {
	if p == nil || p.view == nil {
		return ""
	}

	prop, _ := p.view.Property(name)

	return prop.Type
}
