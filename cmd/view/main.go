// Command view is the interactive terminal viewer: it renders the active
// scene into a half-block truecolor frame and orbits the camera from
// keyboard input. WASD/arrows rotate, +/- zoom, tab cycles scenes, q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"sdfmarch/internal/camera"
	"sdfmarch/internal/render"
	"sdfmarch/internal/scene"
	"sdfmarch/internal/termview"
)

func main() {
	sceneName := flag.String("scene", "", "Scene to open (default: first in catalog)")
	list := flag.Bool("list", false, "List available scenes and exit")
	flag.Parse()

	if *list {
		for _, name := range scene.Names() {
			sc, _ := scene.Lookup(name)
			fmt.Printf("%-10s %s\n", name, sc.Info)
		}
		return
	}

	sceneIdx := 0
	names := scene.Names()
	if *sceneName != "" {
		found := false
		for i, name := range names {
			if name == *sceneName {
				sceneIdx, found = i, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q. Available: %s\n",
				*sceneName, strings.Join(names, ", "))
			os.Exit(1)
		}
	}

	if err := run(sceneIdx, names); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneIdx int, names []string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// Alternate screen, hidden cursor; restored on exit.
	os.Stdout.WriteString("\x1b[?1049h\x1b[?25l")
	defer os.Stdout.WriteString("\x1b[?25h\x1b[?1049l")

	cam := camera.Default()
	sc, _ := scene.Lookup(names[sceneIdx])

	var fb *render.FrameBuffer
	var out []byte
	key := make([]byte, 8)

	for {
		cols, rows, err := term.GetSize(fd)
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		h := termview.PixelRows(rows)
		if fb == nil || fb.Width != cols || fb.Height != h {
			fb = render.NewFrameBuffer(cols, h)
		}

		render.Frame(fb, sc.Field, sc.Material, &cam)

		out = termview.AppendFrame(out[:0], fb)
		out = append(out, fmt.Sprintf("\x1b[0m %s — wasd/arrows rotate, +/- zoom, tab scene, q quit\x1b[K", sc.Name)...)
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}

		n, err := os.Stdin.Read(key)
		if err != nil {
			return err
		}

		switch termview.DecodeKey(key[:n]) {
		case termview.CmdRotateLeft:
			cam.Rotate(-camera.RotateStep, 0)
		case termview.CmdRotateRight:
			cam.Rotate(camera.RotateStep, 0)
		case termview.CmdRotateUp:
			cam.Rotate(0, camera.RotateStep)
		case termview.CmdRotateDown:
			cam.Rotate(0, -camera.RotateStep)
		case termview.CmdZoomIn:
			cam.Zoom(-camera.ZoomStep)
		case termview.CmdZoomOut:
			cam.Zoom(camera.ZoomStep)
		case termview.CmdNextScene:
			sceneIdx = (sceneIdx + 1) % len(names)
			sc, _ = scene.Lookup(names[sceneIdx])
		case termview.CmdQuit:
			return nil
		}
	}
}
