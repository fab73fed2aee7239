package gen

import (
	"errors"
	"fmt"
	"strings"

	"proxy-lattice/internal/naming"
	"proxy-lattice/lattice"
)

// ErrUnknownType is returned when a requested type is not in the lattice.
var ErrUnknownType = errors.New("unknown type")

// dealer is a worklist of type names: each name is handed out once.
type dealer struct {
	needs []string
	done  map[string]struct{}
}

func (d *dealer) Needs(name string) {
	if d.done == nil {
		d.done = make(map[string]struct{})
	}

	if _, exists := d.done[name]; !exists {
		d.done[name] = struct{}{}
		d.needs = append(d.needs, name)
	}
}

func (d *dealer) NextNeeds() (name string, ok bool) {
	if len(d.needs) == 0 {
		return "", false
	}

	name, d.needs = d.needs[0], d.needs[1:]

	return name, true
}

// closure returns the named types plus everything their generated code
// refers to: parents, cast targets and property types. An empty only list
// selects every type.
func closure(l *lattice.Lattice, only []string) ([]*lattice.Node, error) {
	if len(only) == 0 {
		return l.Nodes(), nil
	}

	var d dealer

	for _, name := range only {
		if _, ok := l.Lookup(name); !ok {
			err := fmt.Errorf("%w %q", ErrUnknownType, name)
			if s := naming.Suggest(name, l.Names(), 3); len(s) > 0 {
				err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(s, ", "))
			}

			return nil, err
		}

		d.Needs(name)
	}

	var out []*lattice.Node

	for name, ok := d.NextNeeds(); ok; name, ok = d.NextNeeds() {
		n, _ := l.Lookup(name)
		out = append(out, n)

		if p := n.Parent(); p != nil {
			d.Needs(p.Name())
		}

		for _, c := range n.Casts() {
			d.Needs(c.Name())
		}

		for _, p := range n.Properties() {
			if p.IsReference() {
				d.Needs(p.Type)
			}
		}
	}

	return out, nil
}

// parentFirst orders nodes by name, then moves every parent ahead of its
// children.
func parentFirst(nodes []*lattice.Node) ([]*lattice.Node, error) {
	return orderAfter(nodes, (*lattice.Node).Name, func(n *lattice.Node) []*lattice.Node {
		if p := n.Parent(); p != nil {
			return []*lattice.Node{p}
		}

		return nil
	})
}
