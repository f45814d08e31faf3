// Package sdf builds signed distance fields from primitives, boolean and
// smooth combinators, and domain transforms. Scenes are composed once ahead
// of rendering; combinators are generic over their operand types, so a
// composed tree is monomorphized and the only dynamic dispatch left is at the
// root when the finished scene is stored as a Field.
package sdf

import "sdfmarch/internal/vec"

// Field maps a point to a signed distance: negative inside, zero on the
// surface, positive outside. Implementations must never overestimate the
// true distance to the nearest surface (the distance-bound guarantee sphere
// tracing relies on), and must be pure — a composed field is immutable and
// safe to evaluate concurrently.
type Field interface {
	Distance(p vec.Vec3) float32
}
