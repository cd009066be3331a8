package adapters

import (
	"fmt"

	"github.com/mesh-intelligence/traits/pkg/scene"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// Physics toggles physics simulation of the node. Enabling creates the
// node's rigid body on first use; disabling only turns its forces off
// (kinematic, no gravity) so settings made elsewhere survive. The value read
// back is the stored flag, not derived from the body.
type Physics struct {
	base[bool]
	created bool // the root body was created by this adapter
}

// NewPhysics returns a Physics adapter. If enabled is true the body is set
// up immediately.
func NewPhysics(host Host, enabled bool, opts ...trait.Option) (*Physics, error) {
	a := &Physics{}
	b, err := newBase[bool](host, KindPhysics, false, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	if enabled {
		if err := a.SetValue(true); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Physics) OnGet() bool {
	return a.Get()
}

func (a *Physics) OnSet(v bool) error {
	a.Set(v)
	n := a.node()
	if n == nil {
		return nil
	}
	if v {
		body, created := n.EnsureBody()
		if created {
			a.created = true
		}
		body.UseGravity = true
		body.Kinematic = false
		return nil
	}
	if n.Body != nil {
		n.Body.UseGravity = false
		n.Body.Kinematic = true
	}
	return nil
}

// Destroy removes the root body if this adapter created it.
func (a *Physics) Destroy() error {
	if n := a.node(); n != nil && a.created {
		n.RemoveBody()
	}
	a.created = false
	a.Release()
	return nil
}

// HighFidelityPhysics switches every rigid body of the node between discrete
// and continuous collision detection.
type HighFidelityPhysics struct {
	base[bool]
}

func NewHighFidelityPhysics(host Host, enabled bool, opts ...trait.Option) (*HighFidelityPhysics, error) {
	a := &HighFidelityPhysics{}
	b, err := newBase[bool](host, KindHighFidelity, false, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	if enabled {
		if err := a.SetValue(true); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *HighFidelityPhysics) OnGet() bool {
	return a.Get()
}

func (a *HighFidelityPhysics) OnSet(v bool) error {
	a.Set(v)
	n := a.node()
	if n == nil {
		return nil
	}
	mode := types.CollisionDiscrete
	if v {
		mode = types.CollisionContinuous
	}
	for _, body := range n.RigidBodies() {
		body.Mode = mode
	}
	return nil
}

// Collider generates a collider of the chosen shape on every part of the
// node. Regeneration happens only when the shape changes; the value read
// back is the last shape applied.
type Collider struct {
	base[types.ColliderShape]
	applied types.ColliderShape
}

// NewCollider returns a Collider and applies initial.
// Returns ErrInvalidShape if initial is not a recognized shape.
func NewCollider(host Host, initial types.ColliderShape, opts ...trait.Option) (*Collider, error) {
	if !initial.Valid() {
		return nil, fmt.Errorf("collider %q: %w", initial, types.ErrInvalidShape)
	}
	a := &Collider{applied: types.ColliderNone}
	b, err := newBase[types.ColliderShape](host, KindCollider, types.ColliderNone, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	if err := a.SetValue(initial); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Collider) OnGet() types.ColliderShape {
	return a.applied
}

// OnSet regenerates colliders when shape differs from the applied shape.
// Returns ErrInvalidShape for unrecognized shapes.
func (a *Collider) OnSet(shape types.ColliderShape) error {
	if !shape.Valid() {
		return fmt.Errorf("collider %q: %w", shape, types.ErrInvalidShape)
	}
	if shape == a.applied {
		return nil
	}
	n := a.node()
	if n == nil {
		return nil
	}
	generated := make([]*scene.Collider, len(n.Parts))
	for i, part := range n.Parts {
		c, err := scene.GenerateCollider(shape, part.Bounds)
		if err != nil {
			return err
		}
		generated[i] = c
	}
	for i, part := range n.Parts {
		n.RemoveGeneratedColliders(part)
		if generated[i] != nil {
			n.AddCollider(part, generated[i])
		}
	}
	a.applied = shape
	a.Set(shape)
	return nil
}

// Destroy removes the generated colliders from every part.
func (a *Collider) Destroy() error {
	if n := a.node(); n != nil {
		for _, part := range n.Parts {
			n.RemoveGeneratedColliders(part)
		}
	}
	a.applied = types.ColliderNone
	a.Release()
	return nil
}
