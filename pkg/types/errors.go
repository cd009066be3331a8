package types

import "errors"

// Identity resolution errors.
var (
	ErrIdentityMissing = errors.New("trait kind has no identifier")
	ErrNameMissing     = errors.New("trait kind has no name")
	ErrKindUnknown     = errors.New("trait kind not declared")
	ErrKindConflict    = errors.New("trait kind declared with conflicting metadata")
)

// Trait and owner errors.
var (
	ErrOwnerRequired        = errors.New("trait requires an owner")
	ErrDuplicateTrait       = errors.New("trait kind already attached")
	ErrTraitNotFound        = errors.New("trait not found")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrInvalidShape         = errors.New("invalid collider shape")
	ErrInvalidCollisionMode = errors.New("invalid collision mode")
	ErrInvalidObjectKind    = errors.New("invalid object kind")
	ErrAlreadyInitialized   = errors.New("object is already initialized")
	ErrNotInitialized       = errors.New("object is not initialized")
	ErrInvalidExpression    = errors.New("invalid trait expression")
)

// Snapshot store errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNotFound        = errors.New("snapshot not found")
	ErrInvalidID       = errors.New("invalid object ID")
)
