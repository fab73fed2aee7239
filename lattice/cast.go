package lattice

import (
	"errors"
	"fmt"
	"strings"

	"proxy-lattice/internal/naming"
)

// ErrInvalidCast matches every *InvalidCastError through errors.Is.
var ErrInvalidCast = errors.New("invalid cast")

// CastFailure says why a cast was refused.
type CastFailure int

const (
	// CastUndeclared means the target is not in the reachable set.
	CastUndeclared CastFailure = iota + 1
	// CastRuntimeMismatch means a declared downcast did not match the
	// runtime type of the object.
	CastRuntimeMismatch
)

// InvalidCastError reports a refused cast.
type InvalidCastError struct {
	From    string
	Target  string
	Runtime string
	Reason  CastFailure
	// Suggestions are reachable type names close to Target.
	Suggestions []string
}

func (e *InvalidCastError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "failed to cast %s to %s", naming.Title(e.From), naming.Title(e.Target))

	switch e.Reason {
	case CastRuntimeMismatch:
		runtime := e.Runtime
		if runtime == "" {
			runtime = "unknown"
		}

		fmt.Fprintf(&b, ": runtime type is %s", naming.Title(runtime))
	default:
		b.WriteString(": not a declared cast target")
	}

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}

		b.WriteString("; did you mean " + strings.Join(quoted, " or ") + "?")
	}

	return b.String()
}

// Is makes errors.Is(err, ErrInvalidCast) hold.
func (e *InvalidCastError) Is(target error) bool {
	return target == ErrInvalidCast
}

const maxSuggestions = 3

// Cast checks a cast of an object viewed as `from` whose runtime type is
// `runtime` to the type named target, and returns the target node.
// Upcasts never look at the runtime type. runtime may be nil when the
// object's type is unknown to the lattice; downcasts then fail.
func (l *Lattice) Cast(from, runtime *Node, target string) (*Node, error) {
	if from == nil {
		return nil, &InvalidCastError{Target: target, Reason: CastUndeclared}
	}

	to, ok := l.nodes[target]
	if !ok || !from.CanCast(to) {
		return nil, &InvalidCastError{
			From:        from.Name(),
			Target:      target,
			Reason:      CastUndeclared,
			Suggestions: suggestReachable(from, target),
		}
	}

	if from.IsA(to) {
		return to, nil
	}

	if !runtime.IsA(to) {
		e := &InvalidCastError{From: from.Name(), Target: target, Reason: CastRuntimeMismatch}
		if runtime != nil {
			e.Runtime = runtime.Name()
		}

		return nil, e
	}

	return to, nil
}

func suggestReachable(from *Node, target string) []string {
	reachable := from.Reachable()

	names := make([]string, 0, len(reachable))
	for _, n := range reachable {
		names = append(names, n.Name())
	}

	return naming.Suggest(target, names, maxSuggestions)
}
