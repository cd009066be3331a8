package trait

import "github.com/google/uuid"

// Container is named, typed raw storage with a stable identifier and
// descriptive text. It performs no interception; Property layers that on top.
type Container[T any] struct {
	id       uuid.UUID
	name     string
	tooltip  string
	value    T
	watchers []func(old, new T)
	released bool
}

// NewContainer returns a Container holding initial.
func NewContainer[T any](id uuid.UUID, name, tooltip string, initial T) *Container[T] {
	return &Container[T]{id: id, name: name, tooltip: tooltip, value: initial}
}

// ID returns the identifier of the container's kind.
func (c *Container[T]) ID() uuid.UUID { return c.id }

// Name returns the display name.
func (c *Container[T]) Name() string { return c.name }

// Tooltip returns the descriptive text.
func (c *Container[T]) Tooltip() string { return c.tooltip }

// Get returns the raw stored value.
func (c *Container[T]) Get() T { return c.value }

// Set stores v and notifies watchers with the previous and new values.
func (c *Container[T]) Set(v T) {
	old := c.value
	c.value = v
	for _, w := range c.watchers {
		w(old, v)
	}
}

// Watch registers fn to be called after every Set. Watchers run in
// registration order on the caller's goroutine.
func (c *Container[T]) Watch(fn func(old, new T)) {
	if fn == nil || c.released {
		return
	}
	c.watchers = append(c.watchers, fn)
}

// Release drops watchers and marks the container as released. Further Watch
// calls are ignored; Get and Set keep working on the raw value.
func (c *Container[T]) Release() {
	c.watchers = nil
	c.released = true
}

// Released reports whether Release has been called.
func (c *Container[T]) Released() bool { return c.released }
