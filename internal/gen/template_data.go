package gen

import (
	"fmt"

	"proxy-lattice/lattice"
	"proxy-lattice/options"
)

// fileData is the input of both templates.
type fileData struct {
	PackageName string
	Source      string
	Filename    string
	StdImports  []string
	ModImports  []string

	// Type is set for per-type files.
	Type *typeData
	// Types is set for the registry file, parent first.
	Types []*typeData
}

type typeData struct {
	Name      string
	External  string
	Namespace string
	Parent    string
	Abstract  bool
	Doc       string

	// Properties are the getters, inherited first.
	Properties    []propertyData
	OwnProperties []propertyData

	// Casts are the CastTo methods: every reachable type.
	Casts []string
	// SpecCasts are the declared cast targets for the type table.
	SpecCasts []string
}

type propertyData struct {
	Name      string
	Kind      lattice.PropertyKind
	Doc       string
	GoType    string
	Expr      string
	Inherited bool
	Owner     string
	// Spec is the lattice.Property literal of the type table.
	Spec string
}

var scalarGetters = map[string]string{
	"float64": "Float",
	"int64":   "Int",
	"uint64":  "Uint",
	"bool":    "Bool",
	"string":  "String",
}

func (g *Generator) buildTypeData(n *lattice.Node) *typeData {
	docs := g.config.Features.Has(options.FeatureDocs)

	td := &typeData{
		Name:      n.Name(),
		External:  n.External().String(),
		Namespace: n.External().Namespace,
		Abstract:  n.Abstract(),
	}

	if p := n.Parent(); p != nil {
		td.Parent = p.Name()
	}

	if docs {
		td.Doc = n.Doc()
	}

	owners := propertyOwners(n)

	for _, p := range n.OwnProperties() {
		td.OwnProperties = append(td.OwnProperties, g.buildProperty(p, n.Name(), owners[p.Name], docs))
	}

	if g.config.Features.Has(options.FeatureProperties) {
		for _, p := range n.Properties() {
			td.Properties = append(td.Properties, g.buildProperty(p, n.Name(), owners[p.Name], docs))
		}
	}

	for _, c := range n.Casts() {
		td.SpecCasts = append(td.SpecCasts, c.Name())
	}

	if g.config.Features.Has(options.FeatureCasts) {
		for _, r := range n.Reachable() {
			td.Casts = append(td.Casts, r.Name())
		}
	}

	return td
}

func (g *Generator) buildProperty(p lattice.Property, typeName, owner string, docs bool) propertyData {
	pd := propertyData{
		Name:      p.Name,
		Kind:      p.Kind,
		Owner:     owner,
		Inherited: owner != typeName,
	}

	if docs {
		pd.Doc = p.Doc
	}

	switch p.Kind {
	case lattice.PropertyScalar:
		pd.GoType = p.Scalar.GoType()
		pd.Expr = fmt.Sprintf("t.Proxy().%s(%q)", scalarGetters[pd.GoType], p.Name)
		pd.Spec = fmt.Sprintf("{Name: %q, Kind: lattice.%s, Scalar: primitive.%s", p.Name, p.Kind, p.Scalar)
	case lattice.PropertyObject:
		pd.GoType = "*" + p.Type
		pd.Expr = fmt.Sprintf("Wrap%s(t.Proxy().Object(%q))", p.Type, p.Name)
		pd.Spec = fmt.Sprintf("{Name: %q, Kind: lattice.%s, Type: %q", p.Name, p.Kind, p.Type)
	case lattice.PropertyList:
		pd.GoType = "[]*" + p.Type
		pd.Expr = fmt.Sprintf("marshal.Map(t.Proxy().List(%q), Wrap%s)", p.Name, p.Type)
		pd.Spec = fmt.Sprintf("{Name: %q, Kind: lattice.%s, Type: %q", p.Name, p.Kind, p.Type)
	}

	if pd.Doc != "" {
		pd.Spec += fmt.Sprintf(", Doc: %q", pd.Doc)
	}

	pd.Spec += "}"

	return pd
}

// propertyOwners maps every property of n to the type declaring it.
func propertyOwners(n *lattice.Node) map[string]string {
	out := make(map[string]string)

	for cur := n; cur != nil; cur = cur.Parent() {
		for _, p := range cur.OwnProperties() {
			if _, ok := out[p.Name]; !ok {
				out[p.Name] = cur.Name()
			}
		}
	}

	return out
}
