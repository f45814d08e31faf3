package sdf

import (
	"github.com/chewxy/math32"

	"sdfmarch/internal/vec"
)

// Sphere is a sphere of radius R centered at the origin.
type Sphere struct {
	R float32
}

func NewSphere(radius float32) Sphere {
	return Sphere{R: radius}
}

func (s Sphere) Distance(p vec.Vec3) float32 {
	return p.Len() - s.R
}

// Box is an axis-aligned box with half-extents H, centered at the origin.
// Exact outside; inside it reports negative penetration depth.
type Box struct {
	H vec.Vec3
}

func NewBox(half vec.Vec3) Box {
	return Box{H: half}
}

func (b Box) Distance(p vec.Vec3) float32 {
	q := p.Abs().Sub(b.H)
	outside := vec.Max(q, vec.Vec3{}).Len()
	inside := min(max(q[0], max(q[1], q[2])), 0)
	return outside + inside
}

// Plane is a half-space boundary. N must be unit length; that is a caller
// precondition, not validated here.
type Plane struct {
	N      vec.Vec3
	Offset float32
}

func NewPlane(normal vec.Vec3, offset float32) Plane {
	return Plane{N: normal, Offset: offset}
}

func (pl Plane) Distance(p vec.Vec3) float32 {
	return p.Dot(pl.N) + pl.Offset
}

// Torus is a torus about the Y axis: Major is the ring radius, Minor the
// tube radius.
type Torus struct {
	Major, Minor float32
}

func NewTorus(major, minor float32) Torus {
	return Torus{Major: major, Minor: minor}
}

func (t Torus) Distance(p vec.Vec3) float32 {
	q := math32.Hypot(p[0], p[2]) - t.Major
	return math32.Hypot(q, p[1]) - t.Minor
}

// Cylinder is a capped cylinder along the Y axis.
type Cylinder struct {
	R, HalfH float32
}

func NewCylinder(radius, halfHeight float32) Cylinder {
	return Cylinder{R: radius, HalfH: halfHeight}
}

func (c Cylinder) Distance(p vec.Vec3) float32 {
	dr := math32.Hypot(p[0], p[2]) - c.R
	dy := math32.Abs(p[1]) - c.HalfH
	inside := min(max(dr, dy), 0)
	outside := math32.Hypot(max(dr, 0), max(dy, 0))
	return inside + outside
}
