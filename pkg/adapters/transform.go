package adapters

import (
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// Position3D mirrors the node's world position.
type Position3D struct {
	base[types.Vec3]
}

// NewPosition3D returns a Position3D reading and writing host's node.
func NewPosition3D(host Host, opts ...trait.Option) (*Position3D, error) {
	a := &Position3D{}
	b, err := newBase[types.Vec3](host, KindPosition3D, types.Vec3{}, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Position3D) OnGet() types.Vec3 {
	n := a.node()
	if n == nil {
		return types.Vec3{}
	}
	return n.Transform.Position
}

func (a *Position3D) OnSet(v types.Vec3) error {
	if n := a.node(); n != nil {
		n.Transform.Position = v
	}
	return nil
}

// Position2D mirrors the ground-plane projection of the node position:
// X maps to x and Y maps to z. Writes keep the height.
type Position2D struct {
	base[types.Vec2]
}

func NewPosition2D(host Host, opts ...trait.Option) (*Position2D, error) {
	a := &Position2D{}
	b, err := newBase[types.Vec2](host, KindPosition2D, types.Vec2{}, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Position2D) OnGet() types.Vec2 {
	n := a.node()
	if n == nil {
		return types.Vec2{}
	}
	p := n.Transform.Position
	return types.Vec2{X: p.X, Y: p.Z}
}

func (a *Position2D) OnSet(v types.Vec2) error {
	if n := a.node(); n != nil {
		n.Transform.Position.X = v.X
		n.Transform.Position.Z = v.Y
	}
	return nil
}

// Altitude mirrors the y component of the node position.
type Altitude struct {
	base[float64]
}

func NewAltitude(host Host, opts ...trait.Option) (*Altitude, error) {
	a := &Altitude{}
	b, err := newBase[float64](host, KindAltitude, 0, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Altitude) OnGet() float64 {
	n := a.node()
	if n == nil {
		return 0
	}
	return n.Transform.Position.Y
}

func (a *Altitude) OnSet(v float64) error {
	if n := a.node(); n != nil {
		n.Transform.Position.Y = v
	}
	return nil
}

// Rotation3D mirrors the node's euler rotation.
type Rotation3D struct {
	base[types.Vec3]
}

func NewRotation3D(host Host, opts ...trait.Option) (*Rotation3D, error) {
	a := &Rotation3D{}
	b, err := newBase[types.Vec3](host, KindRotation3D, types.Vec3{}, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Rotation3D) OnGet() types.Vec3 {
	n := a.node()
	if n == nil {
		return types.Vec3{}
	}
	return n.Transform.Rotation
}

func (a *Rotation3D) OnSet(v types.Vec3) error {
	if n := a.node(); n != nil {
		n.Transform.Rotation = v
	}
	return nil
}

// Axis selects one component of a Vec3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (ax Axis) get(v types.Vec3) float64 {
	switch ax {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (ax Axis) set(v *types.Vec3, f float64) {
	switch ax {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	default:
		v.Z = f
	}
}

// Rotation1D mirrors a single rotation axis: yaw (y) for ordinary objects,
// z for flat objects. The axis is fixed when the adapter is created.
type Rotation1D struct {
	base[float64]
	axis Axis
}

func NewRotation1D(host Host, opts ...trait.Option) (*Rotation1D, error) {
	a := &Rotation1D{axis: AxisY}
	if host != nil && host.Flat() {
		a.axis = AxisZ
	}
	b, err := newBase[float64](host, KindRotation1D, 0, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

// Axis returns the mirrored rotation axis.
func (a *Rotation1D) Axis() Axis { return a.axis }

func (a *Rotation1D) OnGet() float64 {
	n := a.node()
	if n == nil {
		return 0
	}
	return a.axis.get(n.Transform.Rotation)
}

func (a *Rotation1D) OnSet(v float64) error {
	if n := a.node(); n != nil {
		a.axis.set(&n.Transform.Rotation, v)
	}
	return nil
}

// Scale3D mirrors the node's per-axis scale.
type Scale3D struct {
	base[types.Vec3]
}

func NewScale3D(host Host, opts ...trait.Option) (*Scale3D, error) {
	a := &Scale3D{}
	b, err := newBase[types.Vec3](host, KindScale3D, types.Vec3{}, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Scale3D) OnGet() types.Vec3 {
	n := a.node()
	if n == nil {
		return types.Vec3{}
	}
	return n.Transform.Scale
}

func (a *Scale3D) OnSet(v types.Vec3) error {
	if n := a.node(); n != nil {
		n.Transform.Scale = v
	}
	return nil
}

// Scale1D exposes the magnitude of the node's scale vector. Writing s scales
// the vector by s/|scale|; a non-finite ratio leaves the scale untouched.
type Scale1D struct {
	base[float64]
}

func NewScale1D(host Host, opts ...trait.Option) (*Scale1D, error) {
	a := &Scale1D{}
	b, err := newBase[float64](host, KindScale1D, 0, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Scale1D) OnGet() float64 {
	n := a.node()
	if n == nil {
		return 0
	}
	return n.Transform.Scale.Mag()
}

func (a *Scale1D) OnSet(s float64) error {
	n := a.node()
	if n == nil {
		return nil
	}
	ratio := s / n.Transform.Scale.Mag()
	if !types.IsFinite(ratio) {
		return nil
	}
	n.Transform.Scale = n.Transform.Scale.Scale(ratio)
	return nil
}

// Active mirrors the node's active flag.
type Active struct {
	base[bool]
}

func NewActive(host Host, opts ...trait.Option) (*Active, error) {
	a := &Active{}
	b, err := newBase[bool](host, KindActive, false, a, opts)
	if err != nil {
		return nil, err
	}
	a.base = b
	return a, nil
}

func (a *Active) OnGet() bool {
	n := a.node()
	if n == nil {
		return false
	}
	return n.Active
}

func (a *Active) OnSet(v bool) error {
	if n := a.node(); n != nil {
		n.Active = v
	}
	return nil
}
