package config

import (
	"errors"
	"fmt"
	"os"

	"gridsnake/game/types"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a play session
type Config struct {
	TileSize      int    `yaml:"tile_size"`
	TicksPerSec   int    `yaml:"ticks_per_second"`
	InitialLength int    `yaml:"initial_length"`
	WindowWidth   int    `yaml:"window_width"`
	WindowHeight  int    `yaml:"window_height"`
	HUDHeight     int    `yaml:"hud_height"`
	Seed          uint64 `yaml:"seed"`
	AutoStart     bool   `yaml:"autostart"`
	TargetFPS     int    `yaml:"target_fps"`
}

// Default returns the settings of the classic browser board
func Default() Config {
	return Config{
		TileSize:      types.DefaultTileSize,
		TicksPerSec:   types.DefaultTicksPerSec,
		InitialLength: types.DefaultInitialLength,
		WindowWidth:   800,
		WindowHeight:  600,
		HUDHeight:     30,
		TargetFPS:     60,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalid, c.TileSize)
	case c.TicksPerSec <= 0:
		return fmt.Errorf("%w: ticks_per_second must be positive, got %d", ErrInvalid, c.TicksPerSec)
	case c.InitialLength <= 0:
		return fmt.Errorf("%w: initial_length must be positive, got %d", ErrInvalid, c.InitialLength)
	case c.WindowWidth < c.TileSize || c.WindowHeight-c.HUDHeight < c.TileSize:
		return fmt.Errorf("%w: window %dx%d cannot hold a %dpx tile", ErrInvalid, c.WindowWidth, c.WindowHeight, c.TileSize)
	case c.HUDHeight < 0:
		return fmt.Errorf("%w: hud_height must not be negative, got %d", ErrInvalid, c.HUDHeight)
	case c.TargetFPS < c.TicksPerSec:
		return fmt.Errorf("%w: target_fps %d is below ticks_per_second %d", ErrInvalid, c.TargetFPS, c.TicksPerSec)
	}
	return nil
}
