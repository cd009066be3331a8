// Package types defines the value types, enumerations, configuration and
// standard error values shared by the trait, scene, object and storage
// packages.
//
// Vectors and enums here are plain values; they carry no reference to a
// scene node or owner so they can be stored raw inside a trait container
// and persisted in snapshots.
package types
