// Package scene holds the built-in demo scenes: named pairings of a
// composed distance field with a material function. The catalog is static,
// read-only configuration — built once at init, never mutated, safe to read
// from anywhere.
package scene

import (
	"github.com/chewxy/math32"

	"sdfmarch/internal/render"
	"sdfmarch/internal/sdf"
	"sdfmarch/internal/vec"
)

// Scene pairs a distance field with its material. The field is immutable
// once composed; both functions are pure.
type Scene struct {
	Name     string
	Info     string
	Field    sdf.Field
	Material render.Material
}

var catalog = []Scene{
	{
		Name:     "blobs",
		Info:     "three spheres melting together over a checkered floor",
		Field:    blobsField(),
		Material: floorOr(render.Color{R: 235, G: 120, B: 90}),
	},
	{
		Name:     "carved",
		Info:     "a cube with a sphere bitten out of it",
		Field:    carvedField(),
		Material: floorOr(render.Color{R: 110, G: 170, B: 235}),
	},
	{
		Name:     "ring",
		Info:     "a tilted torus resting on a cylinder pedestal",
		Field:    ringField(),
		Material: floorOr(render.Color{R: 230, G: 200, B: 90}),
	},
	{
		Name:     "dome",
		Info:     "sphere-box intersection with a softened cap",
		Field:    domeField(),
		Material: floorOr(render.Color{R: 150, G: 230, B: 140}),
	},
	{
		Name:     "orchard",
		Info:     "an infinite grid of orbs on stems",
		Field:    orchardField(),
		Material: floorOr(render.Color{R: 220, G: 110, B: 200}),
	},
}

// Names lists the catalog in declaration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}

// Default returns the scene the viewers open with.
func Default() Scene {
	return catalog[0]
}

const floorY = 1.0 // plane offset; the floor sits at y = -1

func blobsField() sdf.Field {
	blobs := sdf.SmoothUnion(0.9,
		sdf.Translate(vec.Vec3{-0.9, 0.1, 0}, sdf.NewSphere(0.8)),
		sdf.SmoothUnion(0.9,
			sdf.Translate(vec.Vec3{0.9, -0.1, 0.2}, sdf.NewSphere(0.7)),
			sdf.Translate(vec.Vec3{0, 0.9, -0.4}, sdf.NewSphere(0.55)),
		),
	)
	return sdf.Union(blobs, sdf.NewPlane(vec.Vec3{0, 1, 0}, floorY))
}

func carvedField() sdf.Field {
	body := sdf.Subtract(
		sdf.Translate(vec.Vec3{0.6, 0.6, 0.6}, sdf.NewSphere(0.8)),
		sdf.RotateY(0.5, sdf.NewBox(vec.Splat(0.7))),
	)
	return sdf.Union(body, sdf.NewPlane(vec.Vec3{0, 1, 0}, floorY))
}

func ringField() sdf.Field {
	ring := sdf.Translate(vec.Vec3{0, 0.4, 0},
		sdf.RotateY(0.7, sdf.NewTorus(1.0, 0.25)))
	pedestal := sdf.Translate(vec.Vec3{0, -0.7, 0},
		sdf.NewCylinder(0.45, 0.3))
	return sdf.Union(sdf.Union(ring, pedestal),
		sdf.NewPlane(vec.Vec3{0, 1, 0}, floorY))
}

func domeField() sdf.Field {
	shell := sdf.Intersect(
		sdf.NewSphere(1.1),
		sdf.NewBox(vec.Vec3{1.2, 0.6, 1.2}),
	)
	hollow := sdf.SmoothSubtract(0.3,
		sdf.Translate(vec.Vec3{0, 0.9, 0}, sdf.NewSphere(0.6)),
		shell,
	)
	return sdf.Union(hollow, sdf.NewPlane(vec.Vec3{0, 1, 0}, floorY))
}

func orchardField() sdf.Field {
	orb := sdf.SmoothUnion(0.25,
		sdf.Translate(vec.Vec3{0, 0.35, 0}, sdf.NewSphere(0.35)),
		sdf.Translate(vec.Vec3{0, -0.35, 0}, sdf.NewCylinder(0.08, 0.4)),
	)
	grid := sdf.Repeat(vec.Vec3{2.4, 0, 2.4}, orb)
	return sdf.Union(grid, sdf.NewPlane(vec.Vec3{0, 1, 0}, floorY))
}

// floorOr colors points near the floor plane as a checkerboard and
// everything else with the scene's body color.
func floorOr(body render.Color) render.Material {
	light := render.Color{R: 200, G: 200, B: 205}
	dark := render.Color{R: 70, G: 72, B: 80}
	return func(p vec.Vec3) render.Color {
		if p[1] > -floorY+0.02 {
			return body
		}
		ix := int(math32.Floor(p[0]))
		iz := int(math32.Floor(p[2]))
		if (ix+iz)&1 == 0 {
			return light
		}
		return dark
	}
}
