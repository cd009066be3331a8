// Package adapters binds trait accessors to scene node state.
//
// Each adapter embeds a trait.Property and mirrors, derives or side-effects
// one characteristic of its host's scene node. Adapters read the node through
// the host on every access, so a host whose node has been detached yields
// zero values and ignores writes.
//
// Built-in kinds are declared in the default trait registry when the package
// is loaded. Install attaches the standard set to an object.
package adapters
