package render

import (
	"sdfmarch/internal/camera"
	"sdfmarch/internal/sdf"
)

// Background is the clear color misses leave behind.
var Background = Color{R: 10, G: 12, B: 24}

// Frame renders one full frame into fb: clear to Background, then for every
// pixel generate a camera ray, march it, and shade the hit. material may be
// nil, in which case hits are grayscale brightness. Pixels are independent;
// the buffer must not be read by a consumer until Frame returns.
func Frame(fb *FrameBuffer, f sdf.Field, material Material, cam *camera.Camera) {
	fb.Clear(Background)

	aspect := float32(fb.Width) / float32(fb.Height)
	invW := 1 / float32(fb.Width)
	invH := 1 / float32(fb.Height)

	for y := 0; y < fb.Height; y++ {
		// v runs bottom-up: buffer row 0 is the top of the image.
		v := 1 - (2*float32(y)+1)*invH
		for x := 0; x < fb.Width; x++ {
			u := (2*float32(x)+1)*invW - 1

			ray := cam.Ray(u, v, aspect)
			hit, ok := March(ray.Origin, ray.Dir, f)
			if !ok {
				continue
			}

			n := Normal(hit.Pos, f)
			b := Shade(hit.Pos, n, ray.Dir, f)

			c := Gray(b)
			if material != nil {
				c = material(hit.Pos).Modulate(b)
			}
			fb.Set(x, y, c)
		}
	}
}
