package lattice

import "proxy-lattice/handle"

// TypeSpec declares one type of the lattice.
type TypeSpec struct {
	// Name is the lattice name, unique within a lattice.
	Name string
	// Namespace of the paired foreign type. The foreign type name equals Name.
	Namespace string
	// Parent is the name of the single direct ancestor, empty for roots.
	Parent string
	// Casts lists the descendants this type may be cast down to.
	Casts []string
	// Abstract types are never the runtime type of an object.
	Abstract   bool
	Properties []Property
	Doc        string
}

// Node is a built lattice type.
type Node struct {
	spec      TypeSpec
	external  handle.TypeName
	parent    *Node
	ancestors []*Node // nearest first
	casts     []*Node
	children  []*Node
	props     []Property // inherited first
	propIndex map[string]int
	depth     int
}

// Name returns the lattice name of the type.
func (n *Node) Name() string { return n.spec.Name }

// External returns the paired foreign type.
func (n *Node) External() handle.TypeName { return n.external }

// Spec returns the declaration the node was built from.
func (n *Node) Spec() TypeSpec { return n.spec }

// Doc returns the type documentation.
func (n *Node) Doc() string { return n.spec.Doc }

// Abstract reports whether the type is abstract.
func (n *Node) Abstract() bool { return n.spec.Abstract }

// Parent returns the direct ancestor, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Depth is the number of ancestors.
func (n *Node) Depth() int { return n.depth }

// Ancestors returns the ancestor chain, nearest first.
func (n *Node) Ancestors() []*Node { return append([]*Node(nil), n.ancestors...) }

// Casts returns the declared downcast targets in declaration order.
func (n *Node) Casts() []*Node { return append([]*Node(nil), n.casts...) }

// Children returns the types whose parent is n, in declaration order.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// Properties returns own and inherited properties, root ancestor's first.
func (n *Node) Properties() []Property { return append([]Property(nil), n.props...) }

// OwnProperties returns the properties declared on the type itself.
func (n *Node) OwnProperties() []Property {
	return append([]Property(nil), n.spec.Properties...)
}

// Property looks up an own or inherited property.
func (n *Node) Property(name string) (Property, bool) {
	i, ok := n.propIndex[name]
	if !ok {
		return Property{}, false
	}

	return n.props[i], true
}

// IsA reports whether n is other or one of its descendants.
func (n *Node) IsA(other *Node) bool {
	if n == nil || other == nil {
		return false
	}

	for cur := n; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}

	return false
}

// Reachable returns the types n may be cast to: n itself, its ancestors
// nearest first, then its declared casts.
func (n *Node) Reachable() []*Node {
	out := make([]*Node, 0, 1+len(n.ancestors)+len(n.casts))
	out = append(out, n)
	out = append(out, n.ancestors...)
	out = append(out, n.casts...)

	return out
}

// CanCast reports whether target is in the reachable set of n.
func (n *Node) CanCast(target *Node) bool {
	if target == nil {
		return false
	}

	if n.IsA(target) {
		return true
	}

	for _, c := range n.casts {
		if c == target {
			return true
		}
	}

	return false
}

// Descendants returns every transitive descendant, breadth first.
func (n *Node) Descendants() []*Node {
	var out []*Node

	queue := append([]*Node(nil), n.children...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		queue = append(queue, cur.children...)
	}

	return out
}
