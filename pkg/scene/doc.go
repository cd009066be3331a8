// Package scene models the mutable visual and physical representation an
// object exposes to its traits: a transform, an active flag, a set of parts
// with generated colliders, and rigid bodies.
//
// Resources created through Node methods are counted in Stats so callers can
// check exactly how many colliders and bodies a change produced.
package scene
