package types

// ColliderShape selects the collision geometry generated for each part of a
// scene node.
type ColliderShape string

// Collider shapes. ColliderNone generates nothing.
const (
	ColliderNone    ColliderShape = "none"
	ColliderBox     ColliderShape = "box"
	ColliderSphere  ColliderShape = "sphere"
	ColliderCapsule ColliderShape = "capsule"
	ColliderMesh    ColliderShape = "mesh"
)

// validColliderShapes is the set of recognized collider shapes.
var validColliderShapes = map[ColliderShape]bool{
	ColliderNone:    true,
	ColliderBox:     true,
	ColliderSphere:  true,
	ColliderCapsule: true,
	ColliderMesh:    true,
}

// Valid reports whether s is a recognized collider shape.
func (s ColliderShape) Valid() bool {
	return validColliderShapes[s]
}

// CollisionMode controls how a rigid body detects collisions between steps.
type CollisionMode string

// Collision modes.
const (
	CollisionDiscrete   CollisionMode = "discrete"
	CollisionContinuous CollisionMode = "continuous"
)

// Valid reports whether m is a recognized collision mode.
func (m CollisionMode) Valid() bool {
	return m == CollisionDiscrete || m == CollisionContinuous
}

// ObjectKind distinguishes ordinary 3D objects from flat, 2D-style objects.
// Adapters that depend on orientation read it once at construction.
type ObjectKind string

// Object kinds.
const (
	ObjectModel  ObjectKind = "model"
	ObjectSymbol ObjectKind = "symbol"
)

// Valid reports whether k is a recognized object kind.
func (k ObjectKind) Valid() bool {
	return k == ObjectModel || k == ObjectSymbol
}

// Flat reports whether objects of this kind are flat (2D-style).
func (k ObjectKind) Flat() bool {
	return k == ObjectSymbol
}
