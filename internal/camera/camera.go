// Package camera implements an orbit camera: yaw/pitch/distance around a
// target point, producing one world-space ray per normalized screen
// coordinate.
package camera

import (
	"github.com/chewxy/math32"

	"sdfmarch/internal/vec"
)

// Discrete input nudges applied by the viewers.
const (
	RotateStep = 0.1 // radians per rotate event
	ZoomStep   = 0.2 // distance units per zoom event

	minDistance = 1.0
	// pitchLimit keeps pitch strictly inside ±π/2 so the look-at basis
	// never degenerates against the world up vector.
	pitchLimit = math32.Pi/2 - 0.01
)

// Camera is an orbit parameterization around Target. Yaw is unconstrained
// (trig wraps it); Pitch and Distance are clamped by the mutators below.
type Camera struct {
	Yaw      float32
	Pitch    float32
	Distance float32
	FOV      float32
	Target   vec.Vec3
}

// Default returns the camera the viewers start from: slightly above and to
// the side of the origin.
func Default() Camera {
	return Camera{
		Yaw:      0.6,
		Pitch:    0.4,
		Distance: 6,
		FOV:      0.9,
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() vec.Vec3 {
	cp := math32.Cos(c.Pitch)
	return c.Target.Add(vec.Vec3{
		c.Distance * cp * math32.Sin(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		c.Distance * cp * math32.Cos(c.Yaw),
	})
}

// Rotate nudges yaw and pitch, clamping pitch away from the poles.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// Zoom nudges the orbit distance, clamped to a positive floor so the eye
// cannot pass through the target.
func (c *Camera) Zoom(d float32) {
	c.Distance += d
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

// Basis is the orthonormal view frame produced by LookAt.
type Basis struct {
	Right, Up, Forward vec.Vec3
}

// LookAt builds the view basis. Forward parallel to up is not guarded;
// callers keep pitch inside the clamp above to avoid it.
func LookAt(eye, target, up vec.Vec3) Basis {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	return Basis{
		Right:   right,
		Up:      right.Cross(forward),
		Forward: forward,
	}
}

// Ray is a world-space ray: origin plus unit direction.
type Ray struct {
	Origin, Dir vec.Vec3
}

// Ray maps screen coordinates u, v ∈ [−1, 1] through the FOV and aspect
// scaling into a world ray from the eye.
func (c *Camera) Ray(u, v, aspect float32) Ray {
	eye := c.Eye()
	b := LookAt(eye, c.Target, vec.Vec3{0, 1, 0})
	dir := b.Right.Scale(u * c.FOV * aspect).
		Add(b.Up.Scale(v * c.FOV)).
		Add(b.Forward)
	return Ray{Origin: eye, Dir: dir.Normalize()}
}
