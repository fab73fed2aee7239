package lattice

import (
	"errors"
	"fmt"
	"sort"

	"proxy-lattice/handle"
)

// ErrInvalidSpec is wrapped by every problem Build reports.
var ErrInvalidSpec = errors.New("invalid lattice spec")

// Lattice is an immutable, validated type hierarchy.
type Lattice struct {
	nodes    map[string]*Node
	external map[handle.TypeName]*Node
	order    []*Node
}

type buildConfig struct {
	bridge     handle.Bridge
	inferCasts bool
	defaultNS  string
}

// Option configures Build.
type Option func(*buildConfig)

// WithBridge requires every type to resolve through the bridge.
func WithBridge(b handle.Bridge) Option {
	return func(c *buildConfig) { c.bridge = b }
}

// WithInferredCasts makes every type without declared casts castable to all
// of its transitive descendants.
func WithInferredCasts() Option {
	return func(c *buildConfig) { c.inferCasts = true }
}

// WithDefaultNamespace sets the foreign namespace of specs that leave it empty.
func WithDefaultNamespace(ns string) Option {
	return func(c *buildConfig) { c.defaultNS = ns }
}

// Build validates specs and links them into a Lattice. All problems are
// reported together, each wrapping ErrInvalidSpec.
func Build(specs []TypeSpec, opts ...Option) (*Lattice, error) {
	var cfg buildConfig
	for _, o := range opts {
		o(&cfg)
	}

	l := &Lattice{
		nodes:    make(map[string]*Node, len(specs)),
		external: make(map[handle.TypeName]*Node, len(specs)),
	}

	var errs []error

	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...))
	}

	declared := make([]*Node, 0, len(specs))

	for i := range specs {
		spec := specs[i]
		spec.Casts = append([]string(nil), spec.Casts...)
		spec.Properties = append([]Property(nil), spec.Properties...)

		if spec.Name == "" {
			fail("type #%d has no name", i)
			continue
		}

		if _, dup := l.nodes[spec.Name]; dup {
			fail("duplicate type %q", spec.Name)
			continue
		}

		if spec.Namespace == "" {
			spec.Namespace = cfg.defaultNS
		}

		n := &Node{spec: spec, external: handle.TypeName{Namespace: spec.Namespace, Name: spec.Name}}
		l.nodes[spec.Name] = n
		l.external[n.external] = n
		declared = append(declared, n)
	}

	// Parents.
	for _, n := range declared {
		if n.spec.Parent == "" {
			continue
		}

		p, ok := l.nodes[n.spec.Parent]
		if !ok {
			fail("type %q: unknown parent %q", n.Name(), n.spec.Parent)
			continue
		}

		n.parent = p
		p.children = append(p.children, n)
	}

	// Ancestor chains; a repeated node means a parent cycle.
	cyclic := make(map[*Node]bool)

	for _, n := range declared {
		seen := map[*Node]bool{n: true}

		for cur := n.parent; cur != nil; cur = cur.parent {
			if seen[cur] {
				cyclic[n] = true
				fail("type %q: parent cycle through %q", n.Name(), cur.Name())

				break
			}

			seen[cur] = true
			n.ancestors = append(n.ancestors, cur)
		}

		n.depth = len(n.ancestors)
	}

	if len(cyclic) > 0 {
		return nil, errors.Join(errs...)
	}

	// Casts.
	for _, n := range declared {
		if cfg.inferCasts && len(n.spec.Casts) == 0 {
			n.casts = n.Descendants()
			for _, c := range n.casts {
				n.spec.Casts = append(n.spec.Casts, c.Name())
			}

			continue
		}

		seen := make(map[*Node]bool, len(n.spec.Casts))

		for _, name := range n.spec.Casts {
			target, ok := l.nodes[name]
			if !ok {
				fail("type %q: unknown cast target %q", n.Name(), name)
				continue
			}

			if target == n || seen[target] {
				continue
			}

			if !target.IsA(n) {
				fail("type %q: cast target %q is not a descendant", n.Name(), name)
				continue
			}

			seen[target] = true
			n.casts = append(n.casts, target)
		}
	}

	// Properties, inherited first. Ancestors are linked already, so walk
	// the chain from the root down.
	for _, n := range declared {
		n.propIndex = make(map[string]int)

		chain := make([]*Node, 0, len(n.ancestors)+1)
		for i := len(n.ancestors) - 1; i >= 0; i-- {
			chain = append(chain, n.ancestors[i])
		}

		chain = append(chain, n)

		for _, owner := range chain {
			for _, p := range owner.spec.Properties {
				if _, dup := n.propIndex[p.Name]; dup {
					if owner == n {
						fail("type %q: property %q is already declared", n.Name(), p.Name)
					}

					continue
				}

				n.propIndex[p.Name] = len(n.props)
				n.props = append(n.props, p)
			}
		}

		for _, p := range n.spec.Properties {
			if err := l.checkProperty(p); err != nil {
				fail("type %q: property %q: %v", n.Name(), p.Name, err)
			}
		}
	}

	if cfg.bridge != nil {
		for _, n := range declared {
			if _, err := cfg.bridge.Import(n.external.Namespace, n.external.Name); err != nil {
				fail("type %q: %w", n.Name(), err)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	l.order = declared
	sort.SliceStable(l.order, func(i, j int) bool { return l.order[i].depth < l.order[j].depth })

	return l, nil
}

// MustBuild is Build that panics on invalid specs. It is meant for
// generated package-level tables.
func MustBuild(specs []TypeSpec, opts ...Option) *Lattice {
	l, err := Build(specs, opts...)
	if err != nil {
		panic(err)
	}

	return l
}

func (l *Lattice) checkProperty(p Property) error {
	if p.Name == "" {
		return errors.New("empty name")
	}

	switch p.Kind {
	case PropertyScalar:
		if !p.Scalar.IsValid() {
			return fmt.Errorf("invalid scalar kind %v", p.Scalar)
		}
	case PropertyObject, PropertyList:
		if _, ok := l.nodes[p.Type]; !ok {
			return fmt.Errorf("unknown %s type %q", p.Kind.Name(), p.Type)
		}
	default:
		return fmt.Errorf("invalid kind %v", p.Kind)
	}

	return nil
}

// Lookup finds a type by lattice name.
func (l *Lattice) Lookup(name string) (*Node, bool) {
	n, ok := l.nodes[name]
	return n, ok
}

// ByExternal finds the type paired with a foreign type.
func (l *Lattice) ByExternal(tn handle.TypeName) (*Node, bool) {
	n, ok := l.external[tn]
	return n, ok
}

// Resolve finds the type of a handle's runtime type. A runtime type without
// a namespace matches by name alone.
func (l *Lattice) Resolve(h handle.Handle) (*Node, bool) {
	if h == nil {
		return nil, false
	}

	tn := h.Type()
	if n, ok := l.external[tn]; ok {
		return n, true
	}

	if tn.Namespace == "" {
		return l.Lookup(tn.Name)
	}

	return nil, false
}

// Nodes returns all types, parents before children, declaration order
// within a level.
func (l *Lattice) Nodes() []*Node {
	return append([]*Node(nil), l.order...)
}

// Names returns the sorted lattice names.
func (l *Lattice) Names() []string {
	out := make([]string, 0, len(l.nodes))
	for name := range l.nodes {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Len returns the number of types.
func (l *Lattice) Len() int { return len(l.nodes) }
