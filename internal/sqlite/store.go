package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/traits/pkg/types"
)

// DatabaseFile is the file name of the store inside the data directory.
const DatabaseFile = "traits.db"

// Store persists object snapshots in SQLite. Trait values are stored as the
// JSON produced by each trait's MarshalValue, keyed by object and trait
// identifier.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a detached store. Call Attach with a Config to open it.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database in config.DataDir and applies the
// schema. Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DatabaseFile))
	if err != nil {
		return err
	}
	// A single connection keeps PRAGMA foreign_keys in effect for every query.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// Save replaces the stored snapshot of snap.ObjectID.
// Returns ErrInvalidID if the object ID is not a UUID.
func (s *Store) Save(snap types.ObjectSnapshot) error {
	if _, err := uuid.Parse(snap.ObjectID); err != nil {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO objects (object_id, name, kind, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(object_id) DO UPDATE SET name = excluded.name, kind = excluded.kind, saved_at = excluded.saved_at`,
		snap.ObjectID, snap.Name, string(snap.Kind), savedAt.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("saving object: %w", err)
	}
	// Delete existing, re-insert all.
	if _, err := tx.Exec("DELETE FROM trait_values WHERE object_id = ?", snap.ObjectID); err != nil {
		return fmt.Errorf("clearing trait values: %w", err)
	}
	for i, tv := range snap.Traits {
		if _, err := tx.Exec(
			"INSERT INTO trait_values (object_id, trait_id, name, value, ordinal) VALUES (?, ?, ?, ?, ?)",
			snap.ObjectID, tv.TraitID, tv.Name, string(tv.Value), i); err != nil {
			return fmt.Errorf("inserting trait value %s: %w", tv.Name, err)
		}
	}
	return tx.Commit()
}

// Load returns the snapshot stored for objectID with traits in saved order.
// Returns ErrNotFound if none is stored.
func (s *Store) Load(objectID string) (types.ObjectSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return types.ObjectSnapshot{}, types.ErrStoreDetached
	}

	row := s.db.QueryRow("SELECT object_id, name, kind, saved_at FROM objects WHERE object_id = ?", objectID)
	snap, err := scanObject(row)
	if err != nil {
		return types.ObjectSnapshot{}, err
	}

	rows, err := s.db.Query(
		"SELECT trait_id, name, value FROM trait_values WHERE object_id = ? ORDER BY ordinal", objectID)
	if err != nil {
		return types.ObjectSnapshot{}, fmt.Errorf("loading trait values: %w", err)
	}
	defer rows.Close()
	snap.Traits = []types.TraitValue{}
	for rows.Next() {
		var tv types.TraitValue
		var value string
		if err := rows.Scan(&tv.TraitID, &tv.Name, &value); err != nil {
			return types.ObjectSnapshot{}, fmt.Errorf("scanning trait value: %w", err)
		}
		tv.Value = []byte(value)
		snap.Traits = append(snap.Traits, tv)
	}
	return snap, rows.Err()
}

// List returns every stored object ordered by name then ID. Traits are not
// loaded; use Load for the values.
func (s *Store) List() ([]types.ObjectSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query("SELECT object_id, name, kind, saved_at FROM objects ORDER BY name, object_id")
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}
	defer rows.Close()
	out := []types.ObjectSnapshot{}
	for rows.Next() {
		snap, err := scanObject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Delete removes the snapshot of objectID and its trait values.
// Returns ErrNotFound if none is stored.
func (s *Store) Delete(objectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM objects WHERE object_id = ?", objectID)
	if err != nil {
		return fmt.Errorf("deleting object: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	// The foreign key cascades too, but only while the pragma is on for
	// this connection.
	if _, err := tx.Exec("DELETE FROM trait_values WHERE object_id = ?", objectID); err != nil {
		return fmt.Errorf("deleting trait values: %w", err)
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObject(row scanner) (types.ObjectSnapshot, error) {
	var snap types.ObjectSnapshot
	var kind, savedAt string
	err := row.Scan(&snap.ObjectID, &snap.Name, &kind, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ObjectSnapshot{}, types.ErrNotFound
	}
	if err != nil {
		return types.ObjectSnapshot{}, fmt.Errorf("scanning object: %w", err)
	}
	snap.Kind = types.ObjectKind(kind)
	snap.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return types.ObjectSnapshot{}, fmt.Errorf("parsing object saved_at: %w", err)
	}
	return snap, nil
}
