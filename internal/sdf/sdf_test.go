package sdf

import (
	"testing"

	"github.com/chewxy/math32"

	"sdfmarch/internal/vec"
)

const eps = 1e-4

func almostEqual(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func TestSphereDistance(t *testing.T) {
	s := NewSphere(2)
	cases := []struct {
		p    vec.Vec3
		want float32
	}{
		{vec.Vec3{2, 0, 0}, 0},  // on the surface
		{vec.Vec3{0, 3, 0}, 1},  // one unit outside
		{vec.Vec3{0, 0, 1}, -1}, // one unit inside
		{vec.Vec3{0, 0, 0}, -2}, // center
		{vec.Vec3{3, 4, 0}, 3},  // |p|=5
	}
	for _, c := range cases {
		if got := s.Distance(c.p); !almostEqual(got, c.want) {
			t.Errorf("sphere(%v): got %v, want %v", c.p, got, c.want)
		}
	}
}

func TestBoxDistance(t *testing.T) {
	b := NewBox(vec.Splat(1))
	cases := []struct {
		p    vec.Vec3
		want float32
	}{
		{vec.Vec3{2, 0, 0}, 1},            // face
		{vec.Vec3{2, 2, 0}, math32.Sqrt2}, // edge
		{vec.Vec3{0.5, 0, 0}, -0.5},       // inside
		{vec.Vec3{1, 1, 1}, 0},            // corner on surface
	}
	for _, c := range cases {
		if got := b.Distance(c.p); !almostEqual(got, c.want) {
			t.Errorf("box(%v): got %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPlaneDistance(t *testing.T) {
	// Floor at y = -1.
	pl := NewPlane(vec.Vec3{0, 1, 0}, 1)
	if got := pl.Distance(vec.Vec3{5, -1, 3}); !almostEqual(got, 0) {
		t.Errorf("plane surface: got %v", got)
	}
	if got := pl.Distance(vec.Vec3{0, 1, 0}); !almostEqual(got, 2) {
		t.Errorf("plane above: got %v", got)
	}
	if got := pl.Distance(vec.Vec3{0, -3, 0}); !almostEqual(got, -2) {
		t.Errorf("plane below: got %v", got)
	}
}

func TestTorusDistance(t *testing.T) {
	tor := NewTorus(2, 0.5)
	if got := tor.Distance(vec.Vec3{2.5, 0, 0}); !almostEqual(got, 0) {
		t.Errorf("torus outer equator: got %v", got)
	}
	if got := tor.Distance(vec.Vec3{2, 0.5, 0}); !almostEqual(got, 0) {
		t.Errorf("torus tube top: got %v", got)
	}
	if got := tor.Distance(vec.Vec3{0, 0, 2}); !almostEqual(got, -0.5) {
		t.Errorf("torus tube center: got %v", got)
	}
	if got := tor.Distance(vec.Vec3{0, 0, 0}); !almostEqual(got, 1.5) {
		t.Errorf("torus hole center: got %v", got)
	}
}

func TestCylinderDistance(t *testing.T) {
	c := NewCylinder(0.5, 1)
	if got := c.Distance(vec.Vec3{1, 0, 0}); !almostEqual(got, 0.5) {
		t.Errorf("cylinder side: got %v", got)
	}
	if got := c.Distance(vec.Vec3{0, 2, 0}); !almostEqual(got, 1) {
		t.Errorf("cylinder cap: got %v", got)
	}
	if got := c.Distance(vec.Vec3{0, 0, 0}); !almostEqual(got, -0.5) {
		t.Errorf("cylinder center: got %v", got)
	}
	if got := c.Distance(vec.Vec3{1, 2, 0}); !almostEqual(got, math32.Hypot(0.5, 1)) {
		t.Errorf("cylinder rim: got %v", got)
	}
}

// fixed pins a constant distance, for exercising combinators on raw values.
type fixed float32

func (f fixed) Distance(vec.Vec3) float32 { return float32(f) }

func TestBooleanOps(t *testing.T) {
	var p vec.Vec3
	values := []float32{-2, -0.5, 0, 0.3, 1, 4}
	for _, d1 := range values {
		for _, d2 := range values {
			if got := Union(fixed(d1), fixed(d2)).Distance(p); got != min(d1, d2) {
				t.Errorf("union(%v,%v): got %v", d1, d2, got)
			}
			if got := Intersect(fixed(d1), fixed(d2)).Distance(p); got != max(d1, d2) {
				t.Errorf("intersect(%v,%v): got %v", d1, d2, got)
			}
			if got := Subtract(fixed(d1), fixed(d2)).Distance(p); got != max(-d1, d2) {
				t.Errorf("subtract(%v,%v): got %v", d1, d2, got)
			}
		}
	}
}

func TestSmoothUnionBlendsBelowMin(t *testing.T) {
	var p vec.Vec3
	for _, d := range []float32{-1, 0, 0.5, 2} {
		for _, k := range []float32{0.1, 0.5, 2} {
			got := SmoothUnion(k, fixed(d), fixed(d)).Distance(p)
			if got >= d {
				t.Errorf("smoothUnion(%v,%v,k=%v): got %v, want < %v", d, d, k, got, d)
			}
		}
	}
}

func TestSmoothUnionReducesToHardUnion(t *testing.T) {
	var p vec.Vec3
	const k = 0.5
	cases := [][2]float32{{0, 0.5}, {0, 2}, {-1, 1}, {3, 3.5}}
	for _, c := range cases {
		got := SmoothUnion(k, fixed(c[0]), fixed(c[1])).Distance(p)
		if !almostEqual(got, min(c[0], c[1])) {
			t.Errorf("smoothUnion(%v,%v): got %v, want hard min %v", c[0], c[1], got, min(c[0], c[1]))
		}
	}
}

func TestSmoothSubtract(t *testing.T) {
	var p vec.Vec3
	const k = 0.5
	// Far from the blend region it matches hard subtraction.
	got := SmoothSubtract(k, fixed(-3), fixed(1)).Distance(p)
	if !almostEqual(got, 3) {
		t.Errorf("smoothSubtract far: got %v, want 3", got)
	}
	// At the crossover it cuts deeper than the hard edge.
	got = SmoothSubtract(k, fixed(-1), fixed(1)).Distance(p)
	if got <= 1 {
		t.Errorf("smoothSubtract crossover: got %v, want > 1", got)
	}
}

func TestTranslate(t *testing.T) {
	f := Translate(vec.Vec3{3, 0, 0}, NewSphere(1))
	if got := f.Distance(vec.Vec3{3, 0, 0}); !almostEqual(got, -1) {
		t.Errorf("translate center: got %v", got)
	}
	if got := f.Distance(vec.Vec3{5, 0, 0}); !almostEqual(got, 1) {
		t.Errorf("translate outside: got %v", got)
	}
}

func TestRotateY(t *testing.T) {
	// A box stretched along X, rotated 90°, presents its long side along Z.
	f := RotateY(math32.Pi/2, NewBox(vec.Vec3{2, 0.5, 0.5}))
	if got := f.Distance(vec.Vec3{0, 0, 2}); !almostEqual(got, 0) {
		t.Errorf("rotated long side: got %v, want 0", got)
	}
	if got := f.Distance(vec.Vec3{1.5, 0, 0}); !almostEqual(got, 1) {
		t.Errorf("rotated short side: got %v, want 1", got)
	}
}

func TestRepeatTiles(t *testing.T) {
	f := Repeat(vec.Vec3{4, 0, 4}, NewSphere(1))
	// Every lattice point hosts a copy.
	for _, p := range []vec.Vec3{{0, 0, 0}, {4, 0, 0}, {-8, 0, 4}, {12, 0, -12}} {
		if got := f.Distance(p); !almostEqual(got, -1) {
			t.Errorf("repeat at %v: got %v, want -1", p, got)
		}
	}
	// Zero spacing leaves the Y axis untouched.
	if got := f.Distance(vec.Vec3{0, 3, 0}); !almostEqual(got, 2) {
		t.Errorf("repeat vertical: got %v, want 2", got)
	}
}

// The single-tile fold only sees the local copy, so near a seam the field
// can overestimate the distance to a closer neighbor. That is the accepted
// approximation: marching still converges, just with smaller steps.
func TestRepeatSeamKnownInexact(t *testing.T) {
	f := Repeat(vec.Vec3{4, 0, 0}, Translate(vec.Vec3{1, 0, 0}, NewSphere(0.5)))
	p := vec.Vec3{-1.9, 0, 0}

	// Folded evaluation sees the local copy at x=1.
	got := f.Distance(p)
	if !almostEqual(got, 2.4) {
		t.Errorf("seam fold: got %v, want 2.4", got)
	}

	// The copy in the neighboring tile (centered at x=-3) is closer.
	trueDist := float32(0.6)
	if got <= trueDist {
		t.Errorf("seam: expected the documented overestimate, got %v <= %v", got, trueDist)
	}
}
