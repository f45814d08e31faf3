package render

import (
	"github.com/chewxy/math32"

	"sdfmarch/internal/sdf"
	"sdfmarch/internal/vec"
)

// Fixed lighting parameters. One point light, Blinn-Phong specular.
const (
	ambient      = 0.08
	specPow      = 32.0
	specScale    = 0.5
	aoSteps      = 5
	aoStepSize   = 0.01
	shadowBias   = 0.02
	shadowRange  = 10.0
	shadowSoft   = 8.0
	shadowMinAdv = 0.01
)

var lightPos = vec.Vec3{3, 4, 2}

// Occlusion samples the field at a few fixed offsets along the normal and
// compares the reported distance against the offset. Open space reports the
// full offset; nearby geometry reports less, and the accumulated deficit
// becomes an occlusion factor. Returns a visibility multiplier in [0, 1].
func Occlusion(p, n vec.Vec3, f sdf.Field) float32 {
	var occ float32
	for i := 1; i <= aoSteps; i++ {
		h := float32(i) * aoStepSize
		d := f.Distance(p.Add(n.Scale(h)))
		occ += (h - d) / h / float32(aoSteps)
	}
	if occ < 0 {
		occ = 0
	}
	if occ > 1 {
		occ = 1
	}
	return 1 - occ
}

// SoftShadow marches from p toward the light, starting slightly off the
// surface to avoid self-intersection. A hit means full shadow; otherwise the
// smallest penumbra ratio seen along the way softens the light.
func SoftShadow(p, lightDir vec.Vec3, f sdf.Field) float32 {
	res := float32(1)
	t := float32(shadowBias)
	for t < shadowRange {
		d := f.Distance(p.Add(lightDir.Scale(t)))
		if d < surfaceEps {
			return 0
		}
		res = min(res, shadowSoft*d/t)
		t += max(d, shadowMinAdv)
	}
	if res < 0 {
		return 0
	}
	if res > 1 {
		return 1
	}
	return res
}

// Shade computes the brightness scalar in [0, 1] for a surface point:
// ambient plus shadowed, occluded diffuse and specular terms.
func Shade(p, n, viewDir vec.Vec3, f sdf.Field) float32 {
	lightDir := lightPos.Sub(p).Normalize()

	diffuse := max(0, n.Dot(lightDir))

	half := lightDir.Sub(viewDir).Normalize()
	specular := math32.Pow(max(0, n.Dot(half)), specPow) * specScale

	shadow := SoftShadow(p, lightDir, f)
	ao := Occlusion(p, n, f)

	b := ambient + (diffuse+specular)*shadow*ao
	if b < 0 {
		return 0
	}
	if b > 1 {
		return 1
	}
	return b
}
