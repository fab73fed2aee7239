package schema

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/Masterminds/semver/v3"

	"proxy-lattice/internal/diagnostic"
	"proxy-lattice/internal/naming"
	"proxy-lattice/lattice"
	"proxy-lattice/primitive"
)

// Diagnostic codes reported by Validate.
const (
	CodeSchemaNil           = "schema_is_nil"
	CodeUnsupportedVersion  = "unsupported_version"
	CodeEmptyTypeName       = "empty_type_name"
	CodeInvalidIdentifier   = "invalid_identifier"
	CodeReservedTypeName    = "reserved_type_name"
	CodeDuplicateType       = "duplicate_type"
	CodeUnknownParent       = "unknown_parent"
	CodeParentCycle         = "parent_cycle"
	CodeUnknownCastTarget   = "unknown_cast_target"
	CodeCastNotDescendant   = "cast_not_descendant"
	CodeCastToSelf          = "cast_to_self"
	CodeInvalidPropertyKind = "invalid_property_kind"
	CodeUnknownPropertyType = "unknown_property_type"
	CodeReservedProperty    = "reserved_property_name"
	CodeDuplicateProperty   = "duplicate_property"
	CodeAbstractLeaf        = "abstract_leaf"
)

// SupportedVersions is the semver constraint the schema version must meet.
const SupportedVersions = "^1"

// Affixes of the per-type identifiers in a generated package.
const (
	castHelperSuffix = "CastTo"
	wrapPrefix       = "Wrap"
)

// maxSuggestions bounds the "did you mean" list of a diagnostic.
const maxSuggestions = 3

var (
	// Method names of generated proxies that a property getter would shadow.
	reservedProperties = map[string]struct{}{
		"Proxy":  {},
		"CastTo": {},
	}

	// Package-level identifiers of a generated package.
	reservedTypes = map[string]struct{}{
		"Lattice": {},
		"Specs":   {},
		"Wrap":    {},
	}
)

// Validate checks a schema file and reports every problem it finds.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeSchemaNil, "schema file is nil", "", "")
		return res
	}

	validateVersion(res, f.Version)

	types := collectTypes(res, f)
	names := make([]string, 0, len(types))

	for name := range types {
		names = append(names, name)
	}

	validateGeneratedNames(res, f, types)

	cyclic := validateParents(res, f, types, names)

	for i := range f.Types {
		t := &f.Types[i]
		if t.Name == "" {
			continue
		}

		if !cyclic[t.Name] {
			validateCasts(res, t, types, names, cyclic)
		}

		validateProperties(res, t, types, names, cyclic)
	}

	validateAbstractLeaves(res, f)

	return res
}

func validateVersion(res *diagnostic.Diagnostics, version string) {
	if version == "" {
		return
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		res.AddError(CodeUnsupportedVersion, fmt.Sprintf("invalid version %q: %v", version, err), "", "")
		return
	}

	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		panic(err)
	}

	if !c.Check(v) {
		res.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("version %s does not satisfy %s", v, SupportedVersions), "", "")
	}
}

// collectTypes indexes the declared types by name, reporting empty,
// malformed, reserved and duplicate names. The first declaration wins.
func collectTypes(res *diagnostic.Diagnostics, f *File) map[string]*TypeDef {
	types := make(map[string]*TypeDef, len(f.Types))

	for i := range f.Types {
		t := &f.Types[i]

		switch {
		case t.Name == "":
			res.AddError(CodeEmptyTypeName, fmt.Sprintf("type #%d has no name", i), "", "")
			continue
		case !isExported(t.Name):
			res.AddError(CodeInvalidIdentifier,
				fmt.Sprintf("type name %q is not an exported Go identifier", t.Name), t.Name, "")
		case isReserved(reservedTypes, t.Name):
			res.AddError(CodeReservedTypeName,
				fmt.Sprintf("type name %q clashes with a generated identifier", t.Name), t.Name, "")
		}

		if _, dup := types[t.Name]; dup {
			res.AddError(CodeDuplicateType, fmt.Sprintf("duplicate type %q", t.Name), t.Name, "")
			continue
		}

		types[t.Name] = t
	}

	return types
}

// validateGeneratedNames reports types whose name equals an identifier
// generated for another type: its CastTo helper or its Wrap constructor.
func validateGeneratedNames(res *diagnostic.Diagnostics, f *File, types map[string]*TypeDef) {
	for i := range f.Types {
		name := f.Types[i].Name
		if name == "" || types[name] != &f.Types[i] {
			continue
		}

		if base, ok := strings.CutSuffix(name, castHelperSuffix); ok {
			if _, clash := types[base]; clash {
				res.AddError(CodeReservedTypeName,
					fmt.Sprintf("type name %q clashes with the cast helper of %q", name, base), name, "")
			}
		}

		if base, ok := strings.CutPrefix(name, wrapPrefix); ok {
			if _, clash := types[base]; clash {
				res.AddError(CodeReservedTypeName,
					fmt.Sprintf("type name %q clashes with the constructor of %q", name, base), name, "")
			}
		}
	}
}

// validateParents checks parent references and returns the set of types
// whose ancestor chain loops.
func validateParents(
	res *diagnostic.Diagnostics,
	f *File,
	types map[string]*TypeDef,
	names []string,
) map[string]bool {
	cyclic := make(map[string]bool)

	for i := range f.Types {
		t := &f.Types[i]
		if t.Name == "" || t.Parent == "" {
			continue
		}

		if _, ok := types[t.Parent]; !ok {
			res.AddError(CodeUnknownParent, fmt.Sprintf("unknown parent %q", t.Parent), t.Name, "",
				naming.Suggest(t.Parent, names, maxSuggestions)...)

			continue
		}

		seen := map[string]bool{t.Name: true}

		for cur := types[t.Parent]; cur != nil; cur = types[cur.Parent] {
			if seen[cur.Name] {
				cyclic[t.Name] = true
				res.AddError(CodeParentCycle, fmt.Sprintf("parent cycle through %q", cur.Name), t.Name, "")

				break
			}

			seen[cur.Name] = true
		}
	}

	return cyclic
}

func validateCasts(
	res *diagnostic.Diagnostics,
	t *TypeDef,
	types map[string]*TypeDef,
	names []string,
	cyclic map[string]bool,
) {
	for _, target := range t.Casts {
		if target == t.Name {
			res.AddWarning(CodeCastToSelf, "cast to self is implicit", t.Name, "")
			continue
		}

		if _, ok := types[target]; !ok {
			res.AddError(CodeUnknownCastTarget, fmt.Sprintf("unknown cast target %q", target), t.Name, "",
				naming.Suggest(target, names, maxSuggestions)...)

			continue
		}

		if cyclic[target] {
			continue
		}

		if !descends(types, target, t.Name) {
			res.AddError(CodeCastNotDescendant,
				fmt.Sprintf("cast target %q is not a descendant", target), t.Name, "")
		}
	}
}

func validateProperties(
	res *diagnostic.Diagnostics,
	t *TypeDef,
	types map[string]*TypeDef,
	names []string,
	cyclic map[string]bool,
) {
	inherited := make(map[string]string)
	if !cyclic[t.Name] {
		for cur := types[t.Parent]; cur != nil; cur = types[cur.Parent] {
			for _, p := range cur.Properties {
				if _, ok := inherited[p.Name]; !ok {
					inherited[p.Name] = cur.Name
				}
			}
		}
	}

	own := make(map[string]struct{}, len(t.Properties))

	for _, p := range t.Properties {
		switch {
		case p.Name == "" || !isExported(p.Name):
			res.AddError(CodeInvalidIdentifier,
				fmt.Sprintf("property name %q is not an exported Go identifier", p.Name), t.Name, p.Name)
		case isReserved(reservedProperties, p.Name):
			res.AddError(CodeReservedProperty,
				fmt.Sprintf("property name %q clashes with a generated method", p.Name), t.Name, p.Name)
		}

		if _, dup := own[p.Name]; dup {
			res.AddError(CodeDuplicateProperty, "property is declared twice", t.Name, p.Name)
		} else if owner, ok := inherited[p.Name]; ok {
			res.AddError(CodeDuplicateProperty,
				fmt.Sprintf("property is already declared by %s", owner), t.Name, p.Name)
		}

		own[p.Name] = struct{}{}

		validatePropertyType(res, t, p, types, names)
	}
}

func validatePropertyType(
	res *diagnostic.Diagnostics,
	t *TypeDef,
	p PropertyDef,
	types map[string]*TypeDef,
	names []string,
) {
	switch lattice.ParsePropertyKind(p.Kind) {
	case lattice.PropertyScalar:
		if !primitive.ParseKind(p.Type).IsValid() {
			res.AddError(CodeUnknownPropertyType, fmt.Sprintf("unknown scalar type %q", p.Type), t.Name, p.Name)
		}
	case lattice.PropertyObject, lattice.PropertyList:
		if _, ok := types[p.Type]; !ok {
			res.AddError(CodeUnknownPropertyType, fmt.Sprintf("unknown %s type %q", p.Kind, p.Type), t.Name, p.Name,
				naming.Suggest(p.Type, names, maxSuggestions)...)
		}
	default:
		res.AddError(CodeInvalidPropertyKind,
			fmt.Sprintf("invalid kind %q, expected scalar, object or list", p.Kind), t.Name, p.Name)
	}
}

// validateAbstractLeaves warns about abstract types nothing can instantiate.
func validateAbstractLeaves(res *diagnostic.Diagnostics, f *File) {
	parents := make(map[string]struct{}, len(f.Types))
	for _, t := range f.Types {
		if t.Parent != "" {
			parents[t.Parent] = struct{}{}
		}
	}

	for _, t := range f.Types {
		if _, ok := parents[t.Name]; t.Abstract && !ok {
			res.AddWarning(CodeAbstractLeaf, "abstract type has no subtypes", t.Name, "")
		}
	}
}

// descends reports whether name has ancestor among its parents. The parent
// chain must be acyclic.
func descends(types map[string]*TypeDef, name, ancestor string) bool {
	for cur := types[types[name].Parent]; cur != nil; cur = types[cur.Parent] {
		if cur.Name == ancestor {
			return true
		}
	}

	return false
}

func isExported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}

func isReserved(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
