package proxy

import "proxy-lattice/lattice"

// CastView re-types a proxy within its reachable set.
type CastView struct {
	p *Proxy
}

// Cast returns the cast helper of the proxy.
func (p *Proxy) Cast() CastView {
	return CastView{p: p}
}

// To returns a view of the same handle typed as target. Failures are
// *lattice.InvalidCastError values.
func (c CastView) To(target string) (*Proxy, error) {
	var view, runtime *lattice.Node
	if c.p != nil {
		view, runtime = c.p.view, c.p.runtime
	}

	l := c.lat()
	if l == nil {
		return nil, &lattice.InvalidCastError{Target: target, Reason: lattice.CastUndeclared}
	}

	n, err := l.Cast(view, runtime, target)
	if err != nil {
		return nil, err
	}

	return &Proxy{lat: l, h: c.p.h, view: n, runtime: runtime}, nil
}

// Targets returns the names of every type the view can be cast to.
func (c CastView) Targets() []string {
	if c.p == nil || c.p.view == nil {
		return nil
	}

	reachable := c.p.view.Reachable()

	out := make([]string, len(reachable))
	for i, n := range reachable {
		out[i] = n.Name()
	}

	return out
}

func (c CastView) lat() *lattice.Lattice {
	if c.p == nil {
		return nil
	}

	return c.p.lat
}
