package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"proxy-lattice/lattice"
	"proxy-lattice/primitive"
)

const (
	// DefaultVersion is assumed when a schema has no version.
	DefaultVersion = "1.0.0"

	listPrefix = "[]"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File with defaults applied.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in the version and resolves every property to an
// explicit kind with a bare type.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	for i := range f.Types {
		t := &f.Types[i]
		for j := range t.Properties {
			normalizeProperty(&t.Properties[j])
		}
	}
}

func normalizeProperty(p *PropertyDef) {
	p.Type = strings.TrimSpace(p.Type)

	if p.Kind == "" {
		p.Kind = inferKind(p.Type).Name()
	} else {
		p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
	}

	if lattice.ParsePropertyKind(p.Kind) == lattice.PropertyScalar && p.Type == "" {
		p.Type = primitive.KindFloat64.Name()
	}

	p.Type = strings.TrimPrefix(p.Type, listPrefix)
}

// inferKind derives the property kind from a type expression.
func inferKind(typ string) lattice.PropertyKind {
	switch {
	case strings.HasPrefix(typ, listPrefix):
		return lattice.PropertyList
	case typ == "" || primitive.ParseKind(typ).IsValid():
		return lattice.PropertyScalar
	default:
		return lattice.PropertyObject
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
