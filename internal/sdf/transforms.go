package sdf

import (
	"github.com/chewxy/math32"

	"sdfmarch/internal/vec"
)

// OpTranslate shifts the inner field by Offset.
type OpTranslate[F Field] struct {
	Offset vec.Vec3
	Inner  F
}

func Translate[F Field](offset vec.Vec3, inner F) OpTranslate[F] {
	return OpTranslate[F]{Offset: offset, Inner: inner}
}

func (t OpTranslate[F]) Distance(p vec.Vec3) float32 {
	return t.Inner.Distance(p.Sub(t.Offset))
}

// OpRotateY rotates the inner field about the Y axis. The sample point is
// rotated by the inverse angle; sin/cos are fixed at construction.
type OpRotateY[F Field] struct {
	sin, cos float32
	Inner    F
}

func RotateY[F Field](angle float32, inner F) OpRotateY[F] {
	return OpRotateY[F]{sin: math32.Sin(angle), cos: math32.Cos(angle), Inner: inner}
}

func (r OpRotateY[F]) Distance(p vec.Vec3) float32 {
	q := vec.Vec3{
		r.cos*p[0] - r.sin*p[2],
		p[1],
		r.sin*p[0] + r.cos*p[2],
	}
	return r.Inner.Distance(q)
}

// OpRepeat tiles the inner field infinitely with the given per-axis Spacing.
// A zero spacing component disables repetition along that axis. The fold
// only considers the local tile, so the distance bound degrades near tile
// seams where a neighboring copy is actually closer; sphere tracing still
// converges, just in smaller steps there.
type OpRepeat[F Field] struct {
	Spacing vec.Vec3
	Inner   F
}

func Repeat[F Field](spacing vec.Vec3, inner F) OpRepeat[F] {
	return OpRepeat[F]{Spacing: spacing, Inner: inner}
}

func (r OpRepeat[F]) Distance(p vec.Vec3) float32 {
	q := vec.Vec3{
		foldAxis(p[0], r.Spacing[0]),
		foldAxis(p[1], r.Spacing[1]),
		foldAxis(p[2], r.Spacing[2]),
	}
	return r.Inner.Distance(q)
}

// foldAxis maps x into [−s/2, s/2) like GLSL mod(x + s/2, s) − s/2.
func foldAxis(x, s float32) float32 {
	if s == 0 {
		return x
	}
	m := math32.Mod(x+s*0.5, s)
	if m < 0 {
		m += s
	}
	return m - s*0.5
}
