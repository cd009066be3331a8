// Package sqlite implements the SQLite snapshot store for trait values.
package sqlite

// Schema DDL. Statements are idempotent so an existing database survives
// across sessions.
const (
	createObjects = `CREATE TABLE IF NOT EXISTS objects (
    object_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    saved_at TEXT NOT NULL
);`

	createTraitValues = `CREATE TABLE IF NOT EXISTS trait_values (
    object_id TEXT NOT NULL,
    trait_id TEXT NOT NULL,
    name TEXT NOT NULL,
    value TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    PRIMARY KEY (object_id, trait_id),
    FOREIGN KEY (object_id) REFERENCES objects(object_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxObjectsName    = `CREATE INDEX IF NOT EXISTS idx_objects_name ON objects(name);`
	idxTraitValuesID  = `CREATE INDEX IF NOT EXISTS idx_trait_values_trait ON trait_values(trait_id);`
	pragmaForeignKeys = `PRAGMA foreign_keys = ON;`
)

// schemaDDL lists all statements executed on Attach, in dependency order.
var schemaDDL = []string{
	pragmaForeignKeys,
	createObjects,
	createTraitValues,
	idxObjectsName,
	idxTraitValuesID,
}
