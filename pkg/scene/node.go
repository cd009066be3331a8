package scene

import (
	"math"

	"github.com/mesh-intelligence/traits/pkg/types"
)

// Transform is the spatial state of a node. Rotation holds euler angles in
// degrees.
type Transform struct {
	Position types.Vec3 `json:"position"`
	Rotation types.Vec3 `json:"rotation"`
	Scale    types.Vec3 `json:"scale"`
}

// Collider is a collision shape attached to a part.
type Collider struct {
	Shape     types.ColliderShape
	Size      types.Vec3
	Generated bool // created by a trait rather than authored with the asset
}

// RigidBody is a physics body.
type RigidBody struct {
	Mass       float64
	UseGravity bool
	Kinematic  bool
	Mode       types.CollisionMode
}

// Part is a renderable sub-part of a node. Bounds is the part's extent along
// each axis.
type Part struct {
	Name      string
	Bounds    types.Vec3
	Colliders []*Collider
	Body      *RigidBody
}

// Stats counts resources created and destroyed through Node methods.
type Stats struct {
	CollidersCreated   int
	CollidersDestroyed int
	BodiesCreated      int
	BodiesDestroyed    int
}

// Node is the scene representation of an object.
type Node struct {
	Name      string
	Active    bool
	Transform Transform
	Parts     []*Part
	Body      *RigidBody

	stats Stats
}

// NewNode returns an active node at the origin with unit scale.
func NewNode(name string, parts ...*Part) *Node {
	return &Node{
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: types.V3(1, 1, 1),
		},
		Parts: parts,
	}
}

// NewPart returns a part with the given bounds.
func NewPart(name string, bounds types.Vec3) *Part {
	return &Part{Name: name, Bounds: bounds}
}

// Stats returns the resource counters.
func (n *Node) Stats() Stats {
	return n.stats
}

// AddCollider attaches c to part.
func (n *Node) AddCollider(part *Part, c *Collider) {
	part.Colliders = append(part.Colliders, c)
	n.stats.CollidersCreated++
}

// RemoveGeneratedColliders detaches every generated collider from part and
// returns how many were removed. Authored colliders stay.
func (n *Node) RemoveGeneratedColliders(part *Part) int {
	kept := part.Colliders[:0]
	removed := 0
	for _, c := range part.Colliders {
		if c.Generated {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(part.Colliders); i++ {
		part.Colliders[i] = nil
	}
	part.Colliders = kept
	n.stats.CollidersDestroyed += removed
	return removed
}

// EnsureBody returns the node's root rigid body, creating one with unit mass
// if absent. created reports whether a new body was made.
func (n *Node) EnsureBody() (body *RigidBody, created bool) {
	if n.Body != nil {
		return n.Body, false
	}
	n.Body = &RigidBody{Mass: 1, Mode: types.CollisionDiscrete}
	n.stats.BodiesCreated++
	return n.Body, true
}

// RemoveBody destroys the node's root rigid body, if any.
func (n *Node) RemoveBody() {
	if n.Body == nil {
		return
	}
	n.Body = nil
	n.stats.BodiesDestroyed++
}

// RigidBodies returns the root body and every part body, in that order.
func (n *Node) RigidBodies() []*RigidBody {
	var out []*RigidBody
	if n.Body != nil {
		out = append(out, n.Body)
	}
	for _, p := range n.Parts {
		if p.Body != nil {
			out = append(out, p.Body)
		}
	}
	return out
}

// GenerateCollider builds a collider of the given shape fitted to bounds.
// Returns nil for ColliderNone and ErrInvalidShape for unrecognized shapes.
func GenerateCollider(shape types.ColliderShape, bounds types.Vec3) (*Collider, error) {
	var size types.Vec3
	switch shape {
	case types.ColliderNone:
		return nil, nil
	case types.ColliderBox, types.ColliderMesh:
		size = bounds
	case types.ColliderSphere:
		d := math.Max(bounds.X, math.Max(bounds.Y, bounds.Z))
		size = types.V3(d, d, d)
	case types.ColliderCapsule:
		d := math.Max(bounds.X, bounds.Z)
		size = types.V3(d, bounds.Y, d)
	default:
		return nil, types.ErrInvalidShape
	}
	return &Collider{Shape: shape, Size: size, Generated: true}, nil
}
