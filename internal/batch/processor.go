// Package batch frames directories of images with a worker pool and records
// what it produced in a manifest.
package batch

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"framewall/internal/border"
	"framewall/internal/depth"
	"framewall/internal/imageio"
	"framewall/internal/pipeline"
	"framewall/internal/upscale"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir  string
	Preset     string
	FrameWidth int
	Depth      depth.Config
	Format     string
	Quality    int
	Upscale    int // clean-copy upscale factor, 0 disables
	KeepClean  bool
	Workers    int
	Seed       int64 // wood grain seed, 0 leaves the grain random
	Logger     zerolog.Logger
}

// Result holds the outcome of processing one input image. Output paths are
// relative to Config.OutputDir.
type Result struct {
	Name     string
	Source   string
	Framed   string
	Original string
	Upscaled string
	Success  bool
	Error    string
}

// ListInputs returns the decodable image files directly under dir, sorted
// by name.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read input dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !imageio.Decodable(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// Run frames all inputs using a worker pool.
func Run(cfg Config, inputs []string) []Result {
	total := len(inputs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
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
					cfg.Logger.Info().
						Int64("done", p).
						Int("total", total).
						Float64("per_sec", float64(p)/elapsed).
						Msg("framing")
				}
			}
		}
	}()

	// Worker pool
	inputChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range inputChan {
				results[idx] = processItem(cfg, inputs[idx], idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range inputs {
		inputChan <- i
	}
	close(inputChan)

	wg.Wait()
	close(done)

	return results
}

// noiseFor returns the wood grain source for input idx. A non-zero seed
// gives every input its own deterministic stream, so output does not depend
// on worker scheduling.
func (c Config) noiseFor(idx int) border.NoiseSource {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(c.Seed + int64(idx)))
}

func processItem(cfg Config, path string, idx int) Result {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Name: name, Source: filepath.Base(path)}

	img, err := imageio.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	keepClean := cfg.KeepClean || cfg.Upscale > 0
	out, err := pipeline.Run(pipeline.Request{
		Image:      img,
		PresetID:   cfg.Preset,
		FrameWidth: cfg.FrameWidth,
		Depth:      cfg.Depth,
		KeepClean:  keepClean,
		Noise:      cfg.noiseFor(idx),
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	outDir := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	ext := imageio.Extension(cfg.Format)
	if err := imageio.Save(filepath.Join(outDir, "framed."+ext), out.Display, cfg.Format, cfg.Quality); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Framed = name + "/framed." + ext

	if keepClean {
		if err := imageio.Save(filepath.Join(outDir, "original.png"), out.Clean, "png", 0); err != nil {
			res.Error = err.Error()
			return res
		}
		res.Original = name + "/original.png"
	}

	if cfg.Upscale > 0 {
		up, err := upscale.Resize(out.Clean, cfg.Upscale)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		if err := imageio.Save(filepath.Join(outDir, "original_upscaled.png"), up, "png", 0); err != nil {
			res.Error = err.Error()
			return res
		}
		res.Upscaled = name + "/original_upscaled.png"
	}

	res.Success = true
	return res
}
