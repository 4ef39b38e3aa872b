// Package config resolves framing settings from a JSON file, FRAMEWALL_*
// environment variables and CLI flags, in rising order of precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all settings for a framing run.
type Config struct {
	InputPath  string  `json:"input"`
	OutputDir  string  `json:"output_dir"`
	Preset     string  `json:"preset"`
	FrameWidth int     `json:"frame_width"`
	Depth      bool    `json:"depth"`
	DepthStyle string  `json:"depth_style"`
	Intensity  float64 `json:"intensity"`
	WallColor  int     `json:"wall_color"`
	Format     string  `json:"format"`
	Quality    int     `json:"quality"`
	Upscale    int     `json:"upscale"`
	KeepClean  bool    `json:"keep_clean"`
	Workers    int     `json:"workers"`
	Seed       int64   `json:"seed"`
}

// Default returns the settings used when neither file, environment nor
// flags say otherwise.
func Default() Config {
	return Config{
		OutputDir:  "outputs",
		Preset:     "brown",
		FrameWidth: 50,
		Depth:      true,
		DepthStyle: "realistic",
		Intensity:  0.8,
		WallColor:  240,
		Format:     "png",
		Quality:    90,
		Workers:    runtime.NumCPU(),
	}
}

// Load reads a JSON config file on top of the defaults, so omitted fields
// keep their default values and explicit zeroes are honored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values. Strings override when non-empty, Width and
// Upscale when non-negative, the remaining numbers when positive.
type Flags struct {
	Input     string
	OutputDir string
	Preset    string
	Width     int
	NoDepth   bool
	Style     string
	Intensity float64
	Wall      int
	Format    string
	Quality   int
	Upscale   int
	Clean     bool
	Workers   int
	Seed      int64
}

// Resolve layers environment variables and then CLI flags over the config.
func (c *Config) Resolve(flags Flags) {
	c.applyEnv()

	if flags.Input != "" {
		c.InputPath = flags.Input
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.Width >= 0 {
		c.FrameWidth = flags.Width
	}
	if flags.NoDepth {
		c.Depth = false
	}
	if flags.Style != "" {
		c.DepthStyle = flags.Style
	}
	if flags.Intensity > 0 {
		c.Intensity = flags.Intensity
	}
	if flags.Wall > 0 {
		c.WallColor = flags.Wall
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Upscale >= 0 {
		c.Upscale = flags.Upscale
	}
	if flags.Clean {
		c.KeepClean = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// applyEnv overrides fields from FRAMEWALL_* environment variables, loading
// .env files first. Malformed values are ignored.
func (c *Config) applyEnv() {
	_ = godotenv.Load(".env", ".env.local")

	setString(&c.InputPath, "FRAMEWALL_INPUT")
	setString(&c.OutputDir, "FRAMEWALL_OUTPUT_DIR")
	setString(&c.Preset, "FRAMEWALL_PRESET")
	setInt(&c.FrameWidth, "FRAMEWALL_FRAME_WIDTH")
	setBool(&c.Depth, "FRAMEWALL_DEPTH")
	setString(&c.DepthStyle, "FRAMEWALL_DEPTH_STYLE")
	setFloat(&c.Intensity, "FRAMEWALL_INTENSITY")
	setInt(&c.WallColor, "FRAMEWALL_WALL_COLOR")
	setString(&c.Format, "FRAMEWALL_FORMAT")
	setInt(&c.Quality, "FRAMEWALL_QUALITY")
	setInt(&c.Upscale, "FRAMEWALL_UPSCALE")
	setBool(&c.KeepClean, "FRAMEWALL_KEEP_CLEAN")
	setInt(&c.Workers, "FRAMEWALL_WORKERS")
	setInt64(&c.Seed, "FRAMEWALL_SEED")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setInt64(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = parsed
		}
	}
}

func setFloat(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}
