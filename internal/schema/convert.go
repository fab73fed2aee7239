package schema

import (
	"proxy-lattice/lattice"
	"proxy-lattice/primitive"
)

// TypeSpecs converts the schema into lattice declarations. Namespaces are
// left as declared; pass the file namespace to lattice.Build through
// LatticeOptions.
func (f *File) TypeSpecs() []lattice.TypeSpec {
	specs := make([]lattice.TypeSpec, 0, len(f.Types))

	for _, t := range f.Types {
		spec := lattice.TypeSpec{
			Name:      t.Name,
			Namespace: t.Namespace,
			Parent:    t.Parent,
			Casts:     append([]string(nil), t.Casts...),
			Abstract:  t.Abstract,
			Doc:       t.Doc,
		}

		for _, p := range t.Properties {
			spec.Properties = append(spec.Properties, p.toLattice())
		}

		specs = append(specs, spec)
	}

	return specs
}

func (p PropertyDef) toLattice() lattice.Property {
	out := lattice.Property{
		Name: p.Name,
		Kind: lattice.ParsePropertyKind(p.Kind),
		Doc:  p.Doc,
	}

	if out.Kind == lattice.PropertyScalar {
		out.Scalar = primitive.ParseKind(p.Type)
	} else {
		out.Type = p.Type
	}

	return out
}

// LatticeOptions returns the build options the file header asks for.
func (f *File) LatticeOptions() []lattice.Option {
	opts := []lattice.Option{lattice.WithDefaultNamespace(f.Namespace)}
	if f.InferCasts {
		opts = append(opts, lattice.WithInferredCasts())
	}

	return opts
}

// Build validates the file and builds its lattice. Schema diagnostics are
// returned as the error when validation fails.
func (f *File) Build(opts ...lattice.Option) (*lattice.Lattice, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, diags.Err()
	}

	return lattice.Build(f.TypeSpecs(), append(f.LatticeOptions(), opts...)...)
}
