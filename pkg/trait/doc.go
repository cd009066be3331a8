// Package trait implements intercepted, identified, typed properties that
// expose a characteristic of an owning object.
//
// A Property wraps a raw Container and routes reads and writes through an
// Accessor. Each direction has its own re-entrancy guard: a read issued
// while a read is already in flight on the same property returns the raw
// stored value instead of calling the Accessor again, and likewise for
// writes. Accessors may therefore call back into Value and SetValue to reach
// their own storage.
//
// Identity comes from a Registry. Statically declared kinds carry a name and
// a 128-bit identifier registered with Declare; dynamically named traits
// derive the identifier from an MD5 digest of the name, so two anonymous
// traits with the same name always share an identifier.
//
// Properties are not safe for concurrent use. All access is expected on the
// owner's update goroutine.
package trait
