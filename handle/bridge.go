package handle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrTypeNotFound is returned by a Bridge that does not know a type.
var ErrTypeNotFound = errors.New("foreign type not found")

// Bridge resolves foreign types by namespace and name.
type Bridge interface {
	Import(namespace, name string) (TypeName, error)
}

// MemoryBridge is a Bridge over a fixed set of registered types.
// The zero value is ready to use.
type MemoryBridge struct {
	mu    sync.RWMutex
	types map[TypeName]struct{}
}

var _ Bridge = (*MemoryBridge)(nil)

// NewMemoryBridge creates a bridge that knows the given types.
func NewMemoryBridge(types ...TypeName) *MemoryBridge {
	b := &MemoryBridge{}
	b.Register(types...)

	return b
}

// Register adds types to the bridge.
func (b *MemoryBridge) Register(types ...TypeName) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.types == nil {
		b.types = make(map[TypeName]struct{}, len(types))
	}

	for _, t := range types {
		b.types[t] = struct{}{}
	}
}

// Import implements Bridge.
func (b *MemoryBridge) Import(namespace, name string) (TypeName, error) {
	tn := TypeName{Namespace: namespace, Name: name}

	b.mu.RLock()
	_, ok := b.types[tn]
	b.mu.RUnlock()

	if !ok {
		return TypeName{}, fmt.Errorf("importing %s: %w", tn, ErrTypeNotFound)
	}

	return tn, nil
}

// Types returns the registered types sorted by their dotted name.
func (b *MemoryBridge) Types() []TypeName {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]TypeName, 0, len(b.types))
	for t := range b.types {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}
