package adapters

import (
	"github.com/mesh-intelligence/traits/pkg/scene"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// Host is the owner an adapter reads its scene node from.
type Host interface {
	trait.Owner
	// Node returns the scene node, or nil when none is attached.
	Node() *scene.Node
	// Flat reports whether the owner is a flat, 2D-style object.
	Flat() bool
}

// base carries the property and host shared by every adapter.
type base[T any] struct {
	*trait.Property[T]
	host Host
}

func newBase[T any](host Host, kind trait.Kind, initial T, acc trait.Accessor[T], opts []trait.Option) (base[T], error) {
	if host == nil {
		return base[T]{}, types.ErrOwnerRequired
	}
	p, err := trait.New[T](host, kind, initial, acc, opts...)
	if err != nil {
		return base[T]{}, err
	}
	return base[T]{Property: p, host: host}, nil
}

func (b base[T]) node() *scene.Node {
	return b.host.Node()
}

// Destroy releases the container. Adapters that create scene resources
// override it.
func (b base[T]) Destroy() error {
	b.Release()
	return nil
}
