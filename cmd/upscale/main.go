package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"framewall/internal/upscale"
)

// Scans an outputs directory and upscales each folder's original.png to
// original_upscaled.png.
func main() {
	dir := flag.String("dir", "outputs", "Outputs directory to scan")
	scale := flag.Int("scale", upscale.DefaultFactor, "Upscale factor 1-4")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("read outputs dir")
	}

	done, failed, skipped := 0, 0, 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		folder := filepath.Join(*dir, e.Name())
		src := filepath.Join(folder, "original.png")
		if _, err := os.Stat(src); err != nil {
			skipped++
			logger.Debug().Str("folder", e.Name()).Msg("no original.png, skipping")
			continue
		}
		dst := filepath.Join(folder, "original_upscaled.png")
		if err := upscale.File(src, dst, *scale); err != nil {
			failed++
			logger.Error().Err(err).Str("folder", e.Name()).Msg("upscale failed")
			continue
		}
		done++
		logger.Info().Str("from", src).Str("to", dst).Int("scale", *scale).Msg("upscaled")
	}

	logger.Info().Int("ok", done).Int("failed", failed).Int("skipped", skipped).Msg("done")
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
