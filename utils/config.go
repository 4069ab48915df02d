package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// MaxRenderFPS bounds RenderFPS so the frame interval never rounds to zero
const MaxRenderFPS = 1000

// Config holds the configuration for the simulation and its consumers
type Config struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TicksPerSecond   float64 `json:"ticks_per_second"`
	AliveProbability float64 `json:"alive_probability"`
	Seed             uint64  `json:"seed"` // 0 means unseeded
	CommandCapacity  int     `json:"command_capacity"`
	UseParallel      bool    `json:"use_parallel"`
	Workers          int     `json:"workers"` // 0 means one per CPU
	RenderFPS        int     `json:"render_fps"`
	Headless         bool    `json:"headless"`
	AutoStart        bool    `json:"auto_start"`
	HistorySize      int     `json:"history_size"`
	LogLevel         string  `json:"log_level"`
	LogFile          string  `json:"log_file"` // empty logs to stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            50,
		Height:           30,
		TicksPerSecond:   30,
		AliveProbability: 0.5,
		CommandCapacity:  100,
		UseParallel:      false,
		RenderFPS:        10,
		HistorySize:      5,
		LogLevel:         "info",
		LogFile:          "logs/gol.log",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind registers flags that override the config values they point at
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Float64Var(&c.TicksPerSecond, "tps", c.TicksPerSecond, "generations per second while running")
	fs.Float64Var(&c.AliveProbability, "density", c.AliveProbability, "probability a cell starts alive")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one")
	fs.IntVar(&c.CommandCapacity, "commands", c.CommandCapacity, "pending command capacity")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute generations on several goroutines")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers, 0 uses one per CPU")
	fs.IntVar(&c.RenderFPS, "fps", c.RenderFPS, "frames drawn per second")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "print frames to stdout instead of the terminal UI")
	fs.BoolVar(&c.AutoStart, "start", c.AutoStart, "start running immediately")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log destination, empty for stderr")
}

// Validate checks the values a simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.TicksPerSecond <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] ticks per second must be positive, got %v", c.TicksPerSecond)
	case c.AliveProbability < 0 || c.AliveProbability > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive probability must be in [0,1], got %v", c.AliveProbability)
	case c.CommandCapacity <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] command capacity must be positive, got %d", c.CommandCapacity)
	case c.RenderFPS <= 0 || c.RenderFPS > MaxRenderFPS:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] render fps must be in [1,%d], got %d", MaxRenderFPS, c.RenderFPS)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// TickInterval returns the time between generations while running
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TicksPerSecond)
}

// FrameInterval returns the time between rendered frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.RenderFPS)
}
