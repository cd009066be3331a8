package trait

import (
	"crypto/md5"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/traits/pkg/types"
)

// Kind names a statically declared trait kind, for example "transform.position".
type Kind string

// Meta is the static metadata declared for a Kind.
type Meta struct {
	Kind    Kind
	Name    string
	ID      uuid.UUID
	Tooltip string
}

// Identity is the resolved display name and identifier of a trait.
type Identity struct {
	Name string
	ID   uuid.UUID
}

// Registry maps trait kinds to their static metadata. Declarations normally
// happen from package init functions; resolution happens during trait
// construction.
type Registry struct {
	mu     sync.RWMutex
	kinds  map[Kind]Meta
	strict bool
	logger *slog.Logger
}

// NewRegistry returns an empty registry in strict mode.
func NewRegistry() *Registry {
	return &Registry{
		kinds:  make(map[Kind]Meta),
		strict: true,
		logger: slog.Default().With(slog.String("component", "trait.registry")),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used when no WithRegistry option
// is given.
func Default() *Registry {
	return defaultRegistry
}

// SetStrict controls whether a resolution failure aborts trait construction.
// When strict is false the failure is logged and the trait is built with an
// empty name and uuid.Nil.
func (r *Registry) SetStrict(strict bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strict = strict
}

// Strict reports the current strict mode.
func (r *Registry) Strict() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.strict
}

// SetLogger replaces the registry logger.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Declare records static metadata for kind. id is the canonical UUID text
// form. Malformed metadata is recorded as given and reported when the kind is
// resolved. Redeclaring a kind with identical metadata is a no-op.
// Returns ErrKindConflict if the kind is already declared differently or the
// identifier is already used by another kind.
func (r *Registry) Declare(kind Kind, name, id, tooltip string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		parsed = uuid.Nil
	}
	meta := Meta{Kind: kind, Name: name, ID: parsed, Tooltip: tooltip}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.kinds[kind]; ok {
		if prev == meta {
			return nil
		}
		return fmt.Errorf("declare %q: %w", kind, types.ErrKindConflict)
	}
	if parsed != uuid.Nil {
		for other, m := range r.kinds {
			if m.ID == parsed {
				return fmt.Errorf("declare %q: identifier %s used by %q: %w", kind, parsed, other, types.ErrKindConflict)
			}
		}
	}
	r.kinds[kind] = meta
	return nil
}

// MustDeclare is like Declare but panics on conflict. It is meant for
// package-level declarations of built-in kinds.
func (r *Registry) MustDeclare(kind Kind, name, id, tooltip string) Kind {
	if err := r.Declare(kind, name, id, tooltip); err != nil {
		panic(err)
	}
	return kind
}

// Lookup returns the metadata declared for kind.
func (r *Registry) Lookup(kind Kind) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.kinds[kind]
	return m, ok
}

// Resolve returns the identity declared for kind. A missing declaration,
// name or identifier is logged at error level and returned as an error
// alongside whatever partial identity is known.
func (r *Registry) Resolve(kind Kind) (Identity, error) {
	r.mu.RLock()
	meta, ok := r.kinds[kind]
	logger := r.logger
	r.mu.RUnlock()

	var err error
	switch {
	case !ok:
		err = types.ErrKindUnknown
	case meta.ID == uuid.Nil:
		err = types.ErrIdentityMissing
	case meta.Name == "":
		err = types.ErrNameMissing
	}
	if err != nil {
		logger.Error("trait identity resolution failed",
			slog.String("kind", string(kind)),
			slog.String("name", meta.Name),
			slog.String("id", meta.ID.String()),
			slog.String("error", err.Error()),
		)
		return Identity{Name: meta.Name, ID: meta.ID}, fmt.Errorf("resolve %q: %w", kind, err)
	}
	return Identity{Name: meta.Name, ID: meta.ID}, nil
}

// Kinds returns every declared kind's metadata sorted by name, then kind.
func (r *Registry) Kinds() []Meta {
	r.mu.RLock()
	out := make([]Meta, 0, len(r.kinds))
	for _, m := range r.kinds {
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Declare records static metadata in the default registry.
func Declare(kind Kind, name, id, tooltip string) error {
	return defaultRegistry.Declare(kind, name, id, tooltip)
}

// MustDeclare records static metadata in the default registry and panics on
// conflict.
func MustDeclare(kind Kind, name, id, tooltip string) Kind {
	return defaultRegistry.MustDeclare(kind, name, id, tooltip)
}

// Resolve resolves kind against the default registry.
func Resolve(kind Kind) (Identity, error) {
	return defaultRegistry.Resolve(kind)
}

// AnonymousID derives the identifier of a dynamically named trait: the MD5
// digest of the UTF-8 bytes of name, taken as a 128-bit UUID without
// version or variant bits applied. The result is identical on every
// platform and across runs.
func AnonymousID(name string) uuid.UUID {
	return uuid.UUID(md5.Sum([]byte(name)))
}

// ResolveName returns the identity of a dynamically named trait.
func ResolveName(name string) Identity {
	return Identity{Name: name, ID: AnonymousID(name)}
}
