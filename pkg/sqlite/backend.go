// Package sqlite provides the public API for the SQLite snapshot store.
// This package exposes the factory function while keeping implementation
// details internal.
package sqlite

import (
	"github.com/mesh-intelligence/traits/internal/sqlite"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// NewStore creates a new SQLite snapshot store.
// The store is not attached; call Attach with a Config to open it.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".traits-db",
//	})
//	defer store.Detach()
func NewStore() types.SnapshotStore {
	return sqlite.NewStore()
}
