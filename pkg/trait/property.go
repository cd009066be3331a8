package trait

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/traits/pkg/types"
)

// Owner is the object a trait belongs to for its whole lifetime.
type Owner interface {
	ID() uuid.UUID
}

// Accessor supplies the intercepted read and write behavior of a Property.
// Implementations may call the property's Value and SetValue; nested calls in
// the same direction reach raw storage.
type Accessor[T any] interface {
	OnGet() T
	OnSet(v T) error
}

// Trait is the type-erased surface every trait exposes to owners, tooling and
// the snapshot store.
type Trait interface {
	ID() uuid.UUID
	Name() string
	Tooltip() string
	Kind() Kind
	Owner() Owner
	ValueAny() any
	SetValueAny(v any) error
	MarshalValue() ([]byte, error)
	UnmarshalValue(data []byte) error
	Destroy() error
}

// Property is an intercepted, identified, typed value bound to one owner.
// Concrete traits embed *Property and implement Accessor plus Destroy.
type Property[T any] struct {
	*Container[T]
	kind  Kind
	owner Owner
	acc   Accessor[T]

	getting bool
	setting bool
}

// Option configures trait construction.
type Option func(*settings)

type settings struct {
	registry *Registry
	tooltip  string
}

// WithRegistry resolves identity against r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithTooltip overrides the tooltip declared for the kind.
func WithTooltip(tooltip string) Option {
	return func(s *settings) {
		s.tooltip = tooltip
	}
}

func buildSettings(opts []Option) settings {
	s := settings{registry: defaultRegistry}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// New constructs a Property of a statically declared kind. Identity is
// resolved synchronously. In strict mode a resolution failure is returned;
// otherwise it is logged and the property is built with the partial
// identity. acc may be nil, in which case reads and writes hit raw storage.
func New[T any](owner Owner, kind Kind, initial T, acc Accessor[T], opts ...Option) (*Property[T], error) {
	if owner == nil {
		return nil, types.ErrOwnerRequired
	}
	s := buildSettings(opts)

	ident, err := s.registry.Resolve(kind)
	if err != nil && s.registry.Strict() {
		return nil, err
	}
	tooltip := s.tooltip
	if tooltip == "" {
		if meta, ok := s.registry.Lookup(kind); ok {
			tooltip = meta.Tooltip
		}
	}
	return &Property[T]{
		Container: NewContainer(ident.ID, ident.Name, tooltip, initial),
		kind:      kind,
		owner:     owner,
		acc:       acc,
	}, nil
}

// NewNamed constructs a Property whose identity is derived from name via
// AnonymousID. Its Kind is empty.
func NewNamed[T any](owner Owner, name string, initial T, acc Accessor[T], opts ...Option) (*Property[T], error) {
	if owner == nil {
		return nil, types.ErrOwnerRequired
	}
	s := buildSettings(opts)
	ident := ResolveName(name)
	return &Property[T]{
		Container: NewContainer(ident.ID, ident.Name, s.tooltip, initial),
		owner:     owner,
		acc:       acc,
	}, nil
}

// Kind returns the declared kind, or "" for dynamically named traits.
func (p *Property[T]) Kind() Kind { return p.kind }

// Owner returns the owning object.
func (p *Property[T]) Owner() Owner { return p.owner }

// Value returns the accessor's view of the value. A read issued while a read
// is already in flight on p returns the raw stored value.
func (p *Property[T]) Value() T {
	if p.getting || p.acc == nil {
		return p.Get()
	}
	p.getting = true
	defer func() { p.getting = false }()
	return p.acc.OnGet()
}

// SetValue hands v to the accessor. A write issued while a write is already
// in flight on p stores v directly.
func (p *Property[T]) SetValue(v T) error {
	if p.setting || p.acc == nil {
		p.Set(v)
		return nil
	}
	p.setting = true
	defer func() { p.setting = false }()
	return p.acc.OnSet(v)
}

// ValueAny returns Value as an untyped value.
func (p *Property[T]) ValueAny() any {
	return p.Value()
}

// SetValueAny calls SetValue after asserting v to T.
// Returns ErrTypeMismatch if v is not a T.
func (p *Property[T]) SetValueAny(v any) error {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return fmt.Errorf("%s: got %T, want %T: %w", p.Name(), v, zero, types.ErrTypeMismatch)
	}
	return p.SetValue(tv)
}

// MarshalValue encodes Value as JSON.
func (p *Property[T]) MarshalValue() ([]byte, error) {
	return json.Marshal(p.Value())
}

// UnmarshalValue decodes JSON into a T and writes it through SetValue.
func (p *Property[T]) UnmarshalValue(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%s: decode value: %w", p.Name(), err)
	}
	return p.SetValue(v)
}
