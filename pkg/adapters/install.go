package adapters

import (
	"github.com/mesh-intelligence/traits/pkg/object"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// Install returns an installer that attaches the standard adapters to an
// object in a fixed order: transform mirrors first, then Active, Physics,
// HighFidelityPhysics and Collider.
func Install(opts ...trait.Option) object.Installer {
	return func(o *object.Object) error {
		builders := []func() (trait.Trait, error){
			func() (trait.Trait, error) { return NewPosition3D(o, opts...) },
			func() (trait.Trait, error) { return NewPosition2D(o, opts...) },
			func() (trait.Trait, error) { return NewAltitude(o, opts...) },
			func() (trait.Trait, error) { return NewRotation3D(o, opts...) },
			func() (trait.Trait, error) { return NewRotation1D(o, opts...) },
			func() (trait.Trait, error) { return NewScale3D(o, opts...) },
			func() (trait.Trait, error) { return NewScale1D(o, opts...) },
			func() (trait.Trait, error) { return NewActive(o, opts...) },
			func() (trait.Trait, error) { return NewPhysics(o, false, opts...) },
			func() (trait.Trait, error) { return NewHighFidelityPhysics(o, false, opts...) },
			func() (trait.Trait, error) { return NewCollider(o, types.ColliderNone, opts...) },
		}
		for _, build := range builders {
			t, err := build()
			if err != nil {
				return err
			}
			if err := o.Attach(t); err != nil {
				_ = t.Destroy()
				return err
			}
		}
		return nil
	}
}

// InstallExpressions returns an installer that attaches one Expression trait
// per entry of sources, keyed by trait name, in the order of names.
func InstallExpressions(names []string, sources map[string]string, opts ...trait.Option) object.Installer {
	return func(o *object.Object) error {
		for _, name := range names {
			e, err := NewExpression(o, name, sources[name], opts...)
			if err != nil {
				return err
			}
			if err := o.Attach(e); err != nil {
				_ = e.Destroy()
				return err
			}
		}
		return nil
	}
}
