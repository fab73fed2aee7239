package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"proxy-lattice/lattice"
)

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// propertyDefFull has the same fields as PropertyDef without its YAML
// methods, so decoding into it does not recurse.
type propertyDefFull PropertyDef

// UnmarshalYAML accepts:
//   - full form: {name: Mass, kind: scalar, type: float}
//   - shorthand: {Mass: float}, {Design: Design}, {Results: "[]ComponentResult"}
//   - bare name: Mass (float scalar)
func (p *PropertyDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*p = PropertyDef{Name: name}

		return nil

	case yaml.MappingNode:
		if hasKey(node, "name") {
			var full propertyDefFull
			if err := node.Decode(&full); err != nil {
				return err
			}

			*p = PropertyDef(full)

			return nil
		}

		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: expected {name: ...} or a single {Property: type} pair", node.Line)
		}

		var name, typ string
		if err := node.Content[0].Decode(&name); err != nil {
			return fmt.Errorf("invalid property name: %w", err)
		}

		if err := node.Content[1].Decode(&typ); err != nil {
			return fmt.Errorf("invalid type of property %s: %w", name, err)
		}

		*p = PropertyDef{Name: name, Type: typ}

		return nil

	default:
		return fmt.Errorf("line %d: expected property name or map, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the shorthand form when it round-trips, the full form
// otherwise.
func (p PropertyDef) MarshalYAML() (any, error) {
	kind := lattice.ParsePropertyKind(p.Kind)

	short := p.Type
	if kind == lattice.PropertyList && !strings.HasPrefix(short, listPrefix) {
		short = listPrefix + short
	}

	if p.Doc == "" && (kind == 0 || inferKind(short) == kind) {
		return map[string]string{p.Name: short}, nil
	}

	return propertyDefFull(p), nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}
