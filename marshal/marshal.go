// Package marshal converts foreign sequences into slices of proxies.
package marshal

import (
	"fmt"

	"proxy-lattice/handle"
)

// List wraps every element of seq in order. A nil sequence yields nil; an
// empty one yields an empty, non-nil slice.
func List[T any](seq handle.Sequence, wrap func(handle.Handle) T) []T {
	if seq == nil {
		return nil
	}

	out := make([]T, seq.Len())
	for i := range out {
		out[i] = wrap(seq.At(i))
	}

	return out
}

// Map converts every element of in, keeping nil as nil.
func Map[S, T any](in []S, conv func(S) T) []T {
	if in == nil {
		return nil
	}

	out := make([]T, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}

	return out
}

// Handles copies the elements of seq into a slice.
func Handles(seq handle.Sequence) []handle.Handle {
	return List(seq, func(h handle.Handle) handle.Handle { return h })
}

// FromValue adapts a raw field value to a Sequence. It accepts a Sequence,
// a []handle.Handle, or a slice of a concrete handle type such as
// []*handle.Object. nil yields a nil Sequence.
func FromValue(raw any) (handle.Sequence, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case handle.Sequence:
		return v, nil
	case []handle.Handle:
		return handle.Slice(v), nil
	case []*handle.Object:
		s := make(handle.Slice, len(v))
		for i, o := range v {
			s[i] = o
		}

		return s, nil
	default:
		return nil, fmt.Errorf("%T is not a sequence of handles", raw)
	}
}
