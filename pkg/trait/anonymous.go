package trait

// Anonymous is a trait whose kind is not declared statically. Its identity is
// derived from its name, and its behavior comes from optional delegates. A
// missing delegate falls back to raw storage.
type Anonymous[T any] struct {
	*Property[T]
	get func() T
	set func(T) error
}

// NewAnonymous constructs an anonymous trait named name. get and set may be
// nil.
func NewAnonymous[T any](owner Owner, name string, initial T, get func() T, set func(T) error, opts ...Option) (*Anonymous[T], error) {
	a := &Anonymous[T]{get: get, set: set}
	p, err := NewNamed[T](owner, name, initial, a, opts...)
	if err != nil {
		return nil, err
	}
	a.Property = p
	return a, nil
}

// OnGet calls the read delegate, or returns the raw stored value.
func (a *Anonymous[T]) OnGet() T {
	if a.get != nil {
		return a.get()
	}
	// Re-entrant read: served from the container.
	return a.Value()
}

// OnSet calls the write delegate, or stores v.
func (a *Anonymous[T]) OnSet(v T) error {
	if a.set != nil {
		return a.set(v)
	}
	return a.SetValue(v)
}

// Destroy releases the underlying container.
func (a *Anonymous[T]) Destroy() error {
	a.Release()
	return nil
}
