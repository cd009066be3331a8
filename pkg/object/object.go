// Package object implements the owning object: a runtime entity that holds a
// scene node and a collection of traits keyed by identifier.
//
// Traits are attached during Init and destroyed exactly once, in reverse
// attach order, during Deinit. Attaching two traits with the same identifier
// is rejected with ErrDuplicateTrait; the first one stays.
package object

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/traits/pkg/scene"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

type lifecycle int

const (
	stateNew lifecycle = iota
	stateInitialized
	stateDestroyed
)

// Installer attaches traits to an object during Init.
type Installer func(o *Object) error

// Object is an owning object. It is not safe for concurrent use.
type Object struct {
	id     uuid.UUID
	name   string
	kind   types.ObjectKind
	node   *scene.Node
	logger *slog.Logger

	traits map[uuid.UUID]trait.Trait
	order  []uuid.UUID
	state  lifecycle
}

// Option configures New.
type Option func(*Object)

// WithID sets the object identifier instead of generating a UUID v7.
func WithID(id uuid.UUID) Option {
	return func(o *Object) {
		if id != uuid.Nil {
			o.id = id
		}
	}
}

// WithLogger replaces the object logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Object) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an uninitialized object owning node. node may be nil.
// Returns ErrInvalidObjectKind if kind is not recognized.
func New(name string, kind types.ObjectKind, node *scene.Node, opts ...Option) (*Object, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%q: %w", kind, types.ErrInvalidObjectKind)
	}
	o := &Object{
		id:     generateID(),
		name:   name,
		kind:   kind,
		node:   node,
		traits: make(map[uuid.UUID]trait.Trait),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default().With(
			slog.String("component", "object"),
			slog.String("object", o.id.String()),
		)
	}
	return o, nil
}

// generateID generates a new UUID v7 for objects.
func generateID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New()
	}
	return id
}

// ID returns the object identifier.
func (o *Object) ID() uuid.UUID { return o.id }

// Name returns the object name.
func (o *Object) Name() string { return o.name }

// Kind returns the object kind.
func (o *Object) Kind() types.ObjectKind { return o.kind }

// Flat reports whether the object is a flat, 2D-style object.
func (o *Object) Flat() bool { return o.kind.Flat() }

// Node returns the scene node, or nil once detached.
func (o *Object) Node() *scene.Node { return o.node }

// DetachNode clears the scene node and returns it. Traits keep working
// against the missing node by reading zero values and skipping writes.
func (o *Object) DetachNode() *scene.Node {
	n := o.node
	o.node = nil
	return n
}

// Initialized reports whether Init has completed and Deinit has not run.
func (o *Object) Initialized() bool { return o.state == stateInitialized }

// Init runs each installer in order. If one fails, traits attached so far are
// destroyed and the error is returned.
// Returns ErrAlreadyInitialized on a second call.
func (o *Object) Init(installers ...Installer) error {
	if o.state != stateNew {
		return types.ErrAlreadyInitialized
	}
	for _, install := range installers {
		if install == nil {
			continue
		}
		if err := install(o); err != nil {
			if derr := o.destroyAll(); derr != nil {
				err = errors.Join(err, derr)
			}
			o.state = stateDestroyed
			return fmt.Errorf("init %s: %w", o.name, err)
		}
	}
	o.state = stateInitialized
	return nil
}

// Attach adds t to the trait collection.
// Returns ErrOwnerRequired if t belongs to another owner, ErrDuplicateTrait
// if a trait with the same identifier is attached, and ErrNotInitialized
// after Deinit.
func (o *Object) Attach(t trait.Trait) error {
	if o.state == stateDestroyed {
		return types.ErrNotInitialized
	}
	if t == nil || t.Owner() != trait.Owner(o) {
		return types.ErrOwnerRequired
	}
	id := t.ID()
	if existing, ok := o.traits[id]; ok {
		o.logger.Warn("duplicate trait rejected",
			slog.String("trait", t.Name()),
			slog.String("existing", existing.Name()),
			slog.String("id", id.String()),
		)
		return fmt.Errorf("%s (%s): %w", t.Name(), id, types.ErrDuplicateTrait)
	}
	o.traits[id] = t
	o.order = append(o.order, id)
	o.logger.Debug("trait attached", slog.String("trait", t.Name()), slog.String("id", id.String()))
	return nil
}

// Trait returns the trait attached under id.
// Returns ErrTraitNotFound if none is attached.
func (o *Object) Trait(id uuid.UUID) (trait.Trait, error) {
	t, ok := o.traits[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, types.ErrTraitNotFound)
	}
	return t, nil
}

// TraitByName returns the first attached trait with the given display name.
// Returns ErrTraitNotFound if none matches.
func (o *Object) TraitByName(name string) (trait.Trait, error) {
	for _, id := range o.order {
		if t := o.traits[id]; t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, types.ErrTraitNotFound)
}

// Traits returns the attached traits in attach order.
func (o *Object) Traits() []trait.Trait {
	out := make([]trait.Trait, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.traits[id])
	}
	return out
}

// Deinit destroys every trait exactly once, in reverse attach order, then
// detaches the scene node. Destroy errors are joined and returned after all
// traits have been destroyed.
// Returns ErrNotInitialized unless Init has completed.
func (o *Object) Deinit() error {
	if o.state != stateInitialized {
		return types.ErrNotInitialized
	}
	err := o.destroyAll()
	o.node = nil
	o.state = stateDestroyed
	return err
}

func (o *Object) destroyAll() error {
	var errs []error
	for i := len(o.order) - 1; i >= 0; i-- {
		t := o.traits[o.order[i]]
		if err := t.Destroy(); err != nil {
			o.logger.Warn("trait destroy failed", slog.String("trait", t.Name()), slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("destroy %s: %w", t.Name(), err))
			continue
		}
		o.logger.Debug("trait destroyed", slog.String("trait", t.Name()))
	}
	o.traits = make(map[uuid.UUID]trait.Trait)
	o.order = nil
	return errors.Join(errs...)
}

// Lookup returns the first attached trait that is a T, typically a concrete
// adapter type or a capability interface.
func Lookup[T any](o *Object) (T, bool) {
	for _, id := range o.order {
		if t, ok := o.traits[id].(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Value reads the trait under id and asserts its value to T.
// Returns ErrTraitNotFound or ErrTypeMismatch.
func Value[T any](o *Object, id uuid.UUID) (T, error) {
	var zero T
	t, err := o.Trait(id)
	if err != nil {
		return zero, err
	}
	v, ok := t.ValueAny().(T)
	if !ok {
		return zero, fmt.Errorf("%s: got %T, want %T: %w", t.Name(), t.ValueAny(), zero, types.ErrTypeMismatch)
	}
	return v, nil
}
