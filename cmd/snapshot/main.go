// Command snapshot renders the built-in demo scenes to still images.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sdfmarch/internal/batch"
	"sdfmarch/internal/camera"
	"sdfmarch/internal/config"
	"sdfmarch/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", "Render only this scene (default: all)")
	list := flag.Bool("list", false, "List available scenes and exit")
	outputDir := flag.String("out", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp, png, tga (default: webp)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	if *list {
		for _, name := range scene.Names() {
			sc, _ := scene.Lookup(name)
			fmt.Printf("%-10s %s\n", name, sc.Info)
		}
		return
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Format:      *format,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
	})

	switch cfg.Format {
	case "webp", "png", "tga":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want webp, png, or tga)\n", cfg.Format)
		os.Exit(1)
	}

	scenes := allScenes()
	if *sceneName != "" {
		sc, ok := scene.Lookup(*sceneName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q. Available: %s\n",
				*sceneName, strings.Join(scene.Names(), ", "))
			os.Exit(1)
		}
		scenes = []scene.Scene{sc}
	}

	cam := camera.Default()
	if cfg.Yaw != 0 || cfg.Pitch != 0 {
		cam.Yaw = float32(cfg.Yaw)
		cam.Pitch = float32(cfg.Pitch)
	}
	if cfg.Distance > 0 {
		cam.Distance = float32(cfg.Distance)
	}

	fmt.Printf("SDF scene snapshots → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Scenes: %d, Size: %d (x%d supersample), Workers: %d\n",
		len(scenes), cfg.Size, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)

	start := time.Now()
	results := batch.Run(cfg, cam, scenes)
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	failed := 0
	for _, r := range results {
		if r.Success {
			fmt.Printf("  %s\n", r.Path)
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "  %s: %s\n", r.Name, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, cfg.Format, scenes); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func allScenes() []scene.Scene {
	names := scene.Names()
	scenes := make([]scene.Scene, 0, len(names))
	for _, name := range names {
		sc, _ := scene.Lookup(name)
		scenes = append(scenes, sc)
	}
	return scenes
}
