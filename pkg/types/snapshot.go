package types

import (
	"encoding/json"
	"time"
)

// ObjectSnapshot captures the externally visible trait values of an object
// so they can be restored in a later session. Trait values are keyed by the
// trait identifier, which is stable across runs.
type ObjectSnapshot struct {
	ObjectID string       `json:"object_id"`
	Name     string       `json:"name"`
	Kind     ObjectKind   `json:"kind"`
	Traits   []TraitValue `json:"traits"`
	SavedAt  time.Time    `json:"saved_at"`
}

// TraitValue is one trait's value inside an ObjectSnapshot.
type TraitValue struct {
	TraitID string          `json:"trait_id"`
	Name    string          `json:"name"`
	Value   json.RawMessage `json:"value"`
}

// Trait returns the value recorded for traitID, or false if absent.
func (s *ObjectSnapshot) Trait(traitID string) (TraitValue, bool) {
	for _, tv := range s.Traits {
		if tv.TraitID == traitID {
			return tv, true
		}
	}
	return TraitValue{}, false
}

// SnapshotStore persists object snapshots across sessions.
type SnapshotStore interface {
	// Attach opens the store described by config.
	// Returns ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases store resources. Idempotent.
	Detach() error

	// Save creates or replaces the snapshot of snap.ObjectID.
	Save(snap ObjectSnapshot) error

	// Load returns the snapshot of objectID, or ErrNotFound.
	Load(objectID string) (ObjectSnapshot, error)

	// List returns stored snapshots without trait values.
	List() ([]ObjectSnapshot, error)

	// Delete removes the snapshot of objectID, or returns ErrNotFound.
	Delete(objectID string) error
}
