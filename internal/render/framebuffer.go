package render

import "sdfmarch/internal/vec"

// Color is one output pixel, 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Gray returns a gray level from a brightness scalar in [0, 1].
func Gray(b float32) Color {
	v := uint8(b*255 + 0.5)
	return Color{v, v, v}
}

// Modulate scales each channel by a brightness scalar in [0, 1].
func (c Color) Modulate(b float32) Color {
	return Color{
		uint8(float32(c.R)*b + 0.5),
		uint8(float32(c.G)*b + 0.5),
		uint8(float32(c.B)*b + 0.5),
	}
}

// Material maps a point to a surface color. It is queried only at confirmed
// hit points, never during marching.
type Material func(p vec.Vec3) Color

// FrameBuffer holds the render target as one flat slice for cache locality.
// The height is in logical pixels; the terminal layer passes 2× its row
// count since it packs two pixels per character cell.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []Color
}

// NewFrameBuffer allocates a zeroed buffer of w×h pixels.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]Color, w*h),
	}
}

// Clear overwrites every pixel with c.
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// At returns the pixel at (x, y). Row-major, y down.
func (fb *FrameBuffer) At(x, y int) Color {
	return fb.Pix[y*fb.Width+x]
}

// Set overwrites the pixel at (x, y).
func (fb *FrameBuffer) Set(x, y int, c Color) {
	fb.Pix[y*fb.Width+x] = c
}
