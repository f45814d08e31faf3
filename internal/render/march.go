// Package render implements the per-pixel pipeline: sphere tracing against a
// composed distance field, gradient normals, ambient occlusion, soft
// shadows, Blinn-Phong shading, and the full-frame loop filling a
// FrameBuffer.
package render

import (
	"sdfmarch/internal/sdf"
	"sdfmarch/internal/vec"
)

// Sphere-tracing limits. Marching always terminates within these bounds, so
// a miss is a normal outcome, never an error.
const (
	maxSteps   = 64
	maxDist    = 100.0
	surfaceEps = 0.001

	normalEps = 1e-4
)

// Hit records where a march reached the surface.
type Hit struct {
	Pos   vec.Vec3
	Dist  float32
	Steps int
}

// March sphere-traces from origin along the unit direction dir. Each step
// advances by the field's reported distance, which the distance-bound
// guarantee makes a safe step size. Returns false once the traveled distance
// exceeds the cap.
func March(origin, dir vec.Vec3, f sdf.Field) (Hit, bool) {
	var t float32
	for i := 0; i < maxSteps; i++ {
		p := origin.Add(dir.Scale(t))
		d := f.Distance(p)
		if d < surfaceEps {
			return Hit{Pos: p, Dist: t, Steps: i + 1}, true
		}
		t += d
		if t > maxDist {
			break
		}
	}
	return Hit{}, false
}

// Normal estimates the surface normal at p by central differences of the
// field along each axis.
func Normal(p vec.Vec3, f sdf.Field) vec.Vec3 {
	e := float32(normalEps)
	return vec.Vec3{
		f.Distance(vec.Vec3{p[0] + e, p[1], p[2]}) - f.Distance(vec.Vec3{p[0] - e, p[1], p[2]}),
		f.Distance(vec.Vec3{p[0], p[1] + e, p[2]}) - f.Distance(vec.Vec3{p[0], p[1] - e, p[2]}),
		f.Distance(vec.Vec3{p[0], p[1], p[2] + e}) - f.Distance(vec.Vec3{p[0], p[1], p[2] - e}),
	}.Normalize()
}
