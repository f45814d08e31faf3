// Package snapshot renders demo scenes to still images: supersampled
// render, CatmullRom downsample, and encoding to WebP, PNG, or TGA.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"sdfmarch/internal/camera"
	"sdfmarch/internal/render"
	"sdfmarch/internal/scene"
)

// Shot renders sc through cam into a size×size image. supersample > 1
// renders at a multiple of the target size and downsamples; the output is
// fully opaque, so no premultiplication pass is needed before scaling.
func Shot(sc scene.Scene, cam camera.Camera, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	fb := render.NewFrameBuffer(renderSize, renderSize)
	render.Frame(fb, sc.Field, sc.Material, &cam)

	img := ToImage(fb)
	if supersample > 1 {
		img = downsample(img, size)
	}
	return img
}

// ToImage copies a frame buffer into an NRGBA image, alpha fully opaque.
func ToImage(fb *render.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xFF
	}
	return img
}

func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FormatForPath derives the encoding format from a file extension,
// defaulting to webp.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".tga":
		return "tga"
	default:
		return "webp"
	}
}

// Encode writes img to w in the named format (webp, png, or tga).
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("snapshot: webp encode: %w", err)
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: png encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("snapshot: unknown format %q", format)
	}
	return nil
}
