// Package config loads YAML settings for the tilepath commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Log holds logger settings shared by the commands.
type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`
	// Development switches to the console encoder.
	Development bool `yaml:"development"`
	// File is the output path; empty means stderr.
	File string `yaml:"file"`
}

// Demo holds configuration for the interactive cave walker.
type Demo struct {
	Seed uint64 `yaml:"seed"`

	// Map size is the terminal size clamped to these.
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`

	FOVRadius    int `yaml:"fov_radius"`
	MaxFOVRadius int `yaml:"max_fov_radius"`

	// Workspace sizes in points.
	FloodSlots int `yaml:"flood_slots"`
	PathSlots  int `yaml:"path_slots"`

	Log Log `yaml:"log"`
}

// Bench holds configuration for the batch search runner.
type Bench struct {
	Seed     uint64 `yaml:"seed"`
	Maps     int    `yaml:"maps"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Searches int    `yaml:"searches"`
	Workers  int    `yaml:"workers"`

	// Move is one of "8", "4", "bishop".
	Move string `yaml:"move"`

	// WorkspaceSlots bounds every search; 0 sizes the workspace so that
	// no search on the map can run out of it.
	WorkspaceSlots int `yaml:"workspace_slots"`

	Log Log `yaml:"log"`
}

// DefaultDemo returns Demo config with the classic demo sizes.
func DefaultDemo() Demo {
	return Demo{
		Seed:         1,
		MaxWidth:     200,
		MaxHeight:    60,
		FOVRadius:    8,
		MaxFOVRadius: 40,
		FloodSlots:   256,
		PathSlots:    1024,
		Log: Log{
			Level: "info",
			File:  "cavewalk.log",
		},
	}
}

// DefaultBench returns Bench config with sensible defaults.
func DefaultBench() Bench {
	return Bench{
		Seed:     1,
		Maps:     8,
		Width:    120,
		Height:   60,
		Searches: 500,
		Workers:  4,
		Move:     "8",
		Log: Log{
			Level: "info",
		},
	}
}

// LoadDemo loads demo config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDemo(path string) (Demo, error) {
	cfg := DefaultDemo()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadBench loads bench config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBench(path string) (Bench, error) {
	cfg := DefaultBench()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(path string, cfg any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate reports the first out-of-range field.
func (d Demo) Validate() error {
	switch {
	case d.MaxWidth < 3 || d.MaxHeight < 3:
		return fmt.Errorf("%w: max size %dx%d below 3x3", ErrInvalidConfig, d.MaxWidth, d.MaxHeight)
	case d.FOVRadius < 0 || d.FOVRadius > d.MaxFOVRadius:
		return fmt.Errorf("%w: fov_radius %d outside 0..%d", ErrInvalidConfig, d.FOVRadius, d.MaxFOVRadius)
	case d.FloodSlots < 1:
		return fmt.Errorf("%w: flood_slots %d", ErrInvalidConfig, d.FloodSlots)
	case d.PathSlots < 1:
		return fmt.Errorf("%w: path_slots %d", ErrInvalidConfig, d.PathSlots)
	}
	return nil
}

// Validate reports the first out-of-range field.
func (b Bench) Validate() error {
	switch {
	case b.Maps < 1:
		return fmt.Errorf("%w: maps %d", ErrInvalidConfig, b.Maps)
	case b.Width < 3 || b.Height < 3:
		return fmt.Errorf("%w: size %dx%d below 3x3", ErrInvalidConfig, b.Width, b.Height)
	case b.Searches < 0:
		return fmt.Errorf("%w: searches %d", ErrInvalidConfig, b.Searches)
	case b.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, b.Workers)
	case b.WorkspaceSlots < 0:
		return fmt.Errorf("%w: workspace_slots %d", ErrInvalidConfig, b.WorkspaceSlots)
	}
	switch b.Move {
	case "8", "4", "bishop":
	default:
		return fmt.Errorf("%w: move %q", ErrInvalidConfig, b.Move)
	}
	return nil
}
