// Package config loads LocalSketch settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"LocalSketch/internal/state"

	"github.com/joho/godotenv"
)

const (
	EnvTool         = "LOCALSKETCH_TOOL"
	EnvColor        = "LOCALSKETCH_COLOR"
	EnvStrokeWidth  = "LOCALSKETCH_STROKE_WIDTH"
	EnvHistoryLimit = "LOCALSKETCH_HISTORY_LIMIT"
	EnvMirror       = "LOCALSKETCH_MIRROR"
	EnvMirrorPort   = "LOCALSKETCH_MIRROR_PORT"
	EnvWindowWidth  = "LOCALSKETCH_WINDOW_WIDTH"
	EnvWindowHeight = "LOCALSKETCH_WINDOW_HEIGHT"
)

// The stroke slider offers 1 to 10.
const (
	MinStrokeWidth = 1.0
	MaxStrokeWidth = 10.0
)

type Config struct {
	Editor state.Settings

	Mirror     bool
	MirrorPort int

	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		Editor:       state.DefaultSettings(),
		Mirror:       true,
		MirrorPort:   8888,
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// Load reads .env files (if present) into the environment and then builds
// the config from it.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read env file: %w", err)
		}
		log.Println("[CONFIG] No .env file found, using environment and defaults")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the config from a variable lookup. Unset variables keep
// their defaults; malformed ones are errors.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvTool); ok {
		t, err := state.ParseTool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTool, err)
		}
		cfg.Editor.Tool = t
	}
	if v, ok := lookup(EnvColor); ok {
		c, err := state.ParseHexColor(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColor, err)
		}
		cfg.Editor.Color = c
	}
	if v, ok := lookup(EnvStrokeWidth); ok {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStrokeWidth, err)
		}
		if w < MinStrokeWidth || w > MaxStrokeWidth {
			return Config{}, fmt.Errorf("%s: %v is outside %v-%v", EnvStrokeWidth, w, MinStrokeWidth, MaxStrokeWidth)
		}
		cfg.Editor.StrokeWidth = w
	}
	if v, ok := lookup(EnvHistoryLimit); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: want a non-negative integer, got %q", EnvHistoryLimit, v)
		}
		cfg.Editor.HistoryLimit = n
	}
	if v, ok := lookup(EnvMirror); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMirror, err)
		}
		cfg.Mirror = b
	}
	if v, ok := lookup(EnvMirrorPort); ok {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return Config{}, fmt.Errorf("%s: invalid port %q", EnvMirrorPort, v)
		}
		cfg.MirrorPort = p
	}
	var err error
	if cfg.WindowWidth, err = dimension(lookup, EnvWindowWidth, cfg.WindowWidth); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = dimension(lookup, EnvWindowHeight, cfg.WindowHeight); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func dimension(lookup func(string) (string, bool), key string, def float32) (float32, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s: invalid size %q", key, v)
	}
	return float32(f), nil
}
