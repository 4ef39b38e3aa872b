package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"framewall/internal/batch"
	"framewall/internal/config"
	"framewall/internal/depth"
	"framewall/internal/preset"
	"framewall/internal/upscale"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	in := flag.String("in", "", "Input image file or directory")
	out := flag.String("out", "", "Output directory (default: outputs)")
	presetID := flag.String("preset", "", "Frame preset id, see -list-presets (default: brown)")
	width := flag.Int("width", -1, "Frame width in pixels, 0 disables the border (default: 50)")
	noDepth := flag.Bool("no-depth", false, "Disable the 3D wall depth effect")
	style := flag.String("style", "", "Depth style: subtle, realistic, dramatic (default: realistic)")
	intensity := flag.Float64("intensity", 0, "Depth intensity 0.1-1.0 (default: 0.8)")
	wall := flag.Int("wall", 0, "Wall gray level 200-255 (default: 240)")
	format := flag.String("format", "", "Output format: png, webp, jpeg (default: png)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	upscaleFactor := flag.Int("upscale", -1, "Upscale factor 1-4 for the clean copy, 0 disables")
	clean := flag.Bool("clean", false, "Keep the unframed image as original.png next to the framed one")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Wood grain seed for reproducible frames, 0 picks a random grain")
	verbose := flag.Bool("v", false, "Verbose logging")
	listPresets := flag.Bool("list-presets", false, "Print the frame presets and exit")

	flag.Parse()

	logger := newLogger(*verbose)

	if *listPresets {
		for _, id := range preset.IDs() {
			p, _ := preset.Lookup(id)
			fmt.Printf("%-8s %-6s rgb(%d, %d, %d)\n", p.ID, p.Texture, p.Color[0], p.Color[1], p.Color[2])
		}
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("load config")
		}
	}

	cfg.Resolve(config.Flags{
		Input:     *in,
		OutputDir: *out,
		Preset:    *presetID,
		Width:     *width,
		NoDepth:   *noDepth,
		Style:     *style,
		Intensity: *intensity,
		Wall:      *wall,
		Format:    *format,
		Quality:   *quality,
		Upscale:   *upscaleFactor,
		Clean:     *clean,
		Workers:   *workers,
		Seed:      *seed,
	})

	if cfg.InputPath == "" {
		logger.Fatal().Msg("no input: pass -in <file|dir> or set input in config.json")
	}
	if cfg.WallColor < 0 || cfg.WallColor > 255 {
		logger.Fatal().Int("wall", cfg.WallColor).Msg("wall color out of range")
	}
	if cfg.Upscale != 0 && (cfg.Upscale < upscale.MinFactor || cfg.Upscale > upscale.MaxFactor) {
		logger.Fatal().Int("upscale", cfg.Upscale).Msg("upscale factor out of range")
	}

	info, err := os.Stat(cfg.InputPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("stat input")
	}

	inputs := []string{cfg.InputPath}
	if info.IsDir() {
		inputs, err = batch.ListInputs(cfg.InputPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("list inputs")
		}
		if len(inputs) == 0 {
			logger.Info().Str("dir", cfg.InputPath).Msg("no images to frame")
			return
		}
	}

	logger.Info().
		Int("items", len(inputs)).
		Int("workers", cfg.Workers).
		Str("preset", cfg.Preset).
		Str("output", cfg.OutputDir).
		Bool("depth", cfg.Depth).
		Msg("framewall starting")

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir:  cfg.OutputDir,
		Preset:     cfg.Preset,
		FrameWidth: cfg.FrameWidth,
		Depth: depth.Config{
			Enabled:   cfg.Depth,
			Intensity: cfg.Intensity,
			Style:     depth.Style(cfg.DepthStyle),
			WallColor: uint8(cfg.WallColor),
		},
		Format:    cfg.Format,
		Quality:   cfg.Quality,
		Upscale:   cfg.Upscale,
		KeepClean: cfg.KeepClean,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Logger:    logger,
	}, inputs)
	elapsed := time.Since(start)

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			logger.Error().Str("item", r.Name).Str("reason", r.Error).Msg("frame failed")
		}
	}
	logger.Info().Int("ok", success).Int("failed", failed).Dur("elapsed", elapsed).Msg("done")

	os.MkdirAll(cfg.OutputDir, 0755)
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		logger.Error().Err(err).Msg("manifest write failed")
	} else {
		logger.Info().Str("path", manifestPath).Msg("manifest written")
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
