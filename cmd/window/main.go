// Command window shows the renderer in a desktop window. Same controls as
// the terminal viewer: WASD/arrows rotate, +/- zoom, tab cycles scenes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sdfmarch/internal/camera"
	"sdfmarch/internal/render"
	"sdfmarch/internal/scene"
)

const (
	viewWidth  = 480
	viewHeight = 360
)

func main() {
	sceneName := flag.String("scene", "", "Scene to open (default: first in catalog)")
	flag.Parse()

	g := &game{
		cam:   camera.Default(),
		names: scene.Names(),
		fb:    render.NewFrameBuffer(viewWidth, viewHeight),
		dirty: true,
	}

	if *sceneName != "" {
		found := false
		for i, name := range g.names {
			if name == *sceneName {
				g.sceneIdx, found = i, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q. Available: %s\n",
				*sceneName, strings.Join(g.names, ", "))
			os.Exit(1)
		}
	}
	g.scene, _ = scene.Lookup(g.names[g.sceneIdx])

	ebiten.SetWindowTitle("sdfmarch")
	ebiten.SetWindowSize(viewWidth*2, viewHeight*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type game struct {
	cam      camera.Camera
	scene    scene.Scene
	names    []string
	sceneIdx int

	fb    *render.FrameBuffer
	img   *ebiten.Image
	pix   []byte
	dirty bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.cam.Rotate(-camera.RotateStep, 0)
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.cam.Rotate(camera.RotateStep, 0)
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.cam.Rotate(0, camera.RotateStep)
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.cam.Rotate(0, -camera.RotateStep)
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.cam.Zoom(-camera.ZoomStep)
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.cam.Zoom(camera.ZoomStep)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.sceneIdx = (g.sceneIdx + 1) % len(g.names)
		g.scene, _ = scene.Lookup(g.names[g.sceneIdx])
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
		g.pix = make([]byte, g.fb.Width*g.fb.Height*4)
	}

	if g.dirty {
		render.Frame(g.fb, g.scene.Field, g.scene.Material, &g.cam)
		for i, c := range g.fb.Pix {
			j := i * 4
			g.pix[j+0] = c.R
			g.pix[j+1] = c.G
			g.pix[j+2] = c.B
			g.pix[j+3] = 0xFF
		}
		g.img.WritePixels(g.pix)
		g.dirty = false
	}

	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
