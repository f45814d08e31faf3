package sdf

import (
	"github.com/chewxy/math32"

	"sdfmarch/internal/vec"
)

// OpUnion is the union of two fields: min(d1, d2). Exact.
type OpUnion[A, B Field] struct {
	A A
	B B
}

// Union joins two fields. Prefer this constructor; the operand types are
// inferred, keeping dispatch static through the whole tree.
func Union[A, B Field](a A, b B) OpUnion[A, B] {
	return OpUnion[A, B]{A: a, B: b}
}

func (u OpUnion[A, B]) Distance(p vec.Vec3) float32 {
	return min(u.A.Distance(p), u.B.Distance(p))
}

// OpIntersect is the intersection of two fields: max(d1, d2).
type OpIntersect[A, B Field] struct {
	A A
	B B
}

func Intersect[A, B Field](a A, b B) OpIntersect[A, B] {
	return OpIntersect[A, B]{A: a, B: b}
}

func (u OpIntersect[A, B]) Distance(p vec.Vec3) float32 {
	return max(u.A.Distance(p), u.B.Distance(p))
}

// OpSubtract removes A's solid from B: max(−d1, d2).
type OpSubtract[A, B Field] struct {
	A A
	B B
}

func Subtract[A, B Field](a A, b B) OpSubtract[A, B] {
	return OpSubtract[A, B]{A: a, B: b}
}

func (u OpSubtract[A, B]) Distance(p vec.Vec3) float32 {
	return max(-u.A.Distance(p), u.B.Distance(p))
}

// OpSmoothUnion blends two fields continuously over the radius K. For
// |d1−d2| ≥ K it reduces exactly to the hard union.
type OpSmoothUnion[A, B Field] struct {
	A A
	B B
	K float32
}

func SmoothUnion[A, B Field](k float32, a A, b B) OpSmoothUnion[A, B] {
	return OpSmoothUnion[A, B]{A: a, B: b, K: k}
}

func (u OpSmoothUnion[A, B]) Distance(p vec.Vec3) float32 {
	return smoothMin(u.A.Distance(p), u.B.Distance(p), u.K)
}

// OpSmoothSubtract is the smooth mirror of subtraction, blending the carved
// edge over the radius K.
type OpSmoothSubtract[A, B Field] struct {
	A A
	B B
	K float32
}

func SmoothSubtract[A, B Field](k float32, a A, b B) OpSmoothSubtract[A, B] {
	return OpSmoothSubtract[A, B]{A: a, B: b, K: k}
}

func (u OpSmoothSubtract[A, B]) Distance(p vec.Vec3) float32 {
	return -smoothMin(u.A.Distance(p), -u.B.Distance(p), u.K)
}

// smoothMin is the polynomial smooth minimum: the blend pulls the result
// below min(d1, d2) by up to k/4 where the operands cross.
func smoothMin(d1, d2, k float32) float32 {
	h := max(k-math32.Abs(d1-d2), 0) / k
	return min(d1, d2) - h*h*k*0.25
}
