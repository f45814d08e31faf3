// Package batch renders many scene snapshots concurrently with a worker
// pool. One frame stays single-threaded; parallelism is across whole
// snapshots, which are independent by construction.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sdfmarch/internal/camera"
	"sdfmarch/internal/config"
	"sdfmarch/internal/scene"
	"sdfmarch/internal/snapshot"
)

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
}

// Run renders every scene in scenes using cfg.Workers goroutines and
// reports per-scene results in input order. Progress is printed every two
// seconds for long batches.
func Run(cfg config.Config, cam camera.Camera, scenes []scene.Scene) []Result {
	total := len(scenes)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobs := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = renderScene(cfg, cam, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range scenes {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func renderScene(cfg config.Config, cam camera.Camera, sc scene.Scene) Result {
	img := snapshot.Shot(sc, cam, cfg.Size, cfg.Supersample)

	outPath := filepath.Join(cfg.OutputDir, sc.Name+"."+cfg.Format)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Name: sc.Name, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Name: sc.Name, Error: err.Error()}
	}
	defer f.Close()

	if err := snapshot.Encode(f, img, cfg.Format); err != nil {
		return Result{Name: sc.Name, Error: err.Error()}
	}

	return Result{Name: sc.Name, Path: outPath, Success: true}
}
