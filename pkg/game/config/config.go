// Package config loads simulation settings from a YAML file and converts
// them into state parameters. Settings omitted from the file keep their
// defaults, so a partial file is fine.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/etha37521-jpg/sigma-wasm/pkg/game/mapgen"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

// DefaultPath is where the simulation looks for settings when no path is
// given on the command line.
const DefaultPath = "pathfinder.yaml"

// File mirrors the YAML settings file.
type File struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	ObstacleDensity  float64 `yaml:"obstacle_density"`
	Seed             int64   `yaml:"seed"`
	DiagonalMovement bool    `yaml:"diagonal_movement"`
	MaxExpansions    int     `yaml:"max_expansions"`
	Generator        string  `yaml:"generator"`
	Renderer         string  `yaml:"renderer"`
}

// Default returns the settings used when no file is present.
func Default() File {
	cfg := state.DefaultConfig()
	return File{
		Width:           cfg.Width,
		Height:          cfg.Height,
		ObstacleDensity: cfg.ObstacleDensity,
		Generator:       mapgen.DefaultGenerator.Name(),
		Renderer:        "tui",
	}
}

// Load reads and parses the settings file at path. Keys missing from the
// file keep their default values.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return f, nil
}

// LoadOrDefault reads the settings file at path, falling back to defaults
// when the file does not exist. Any other failure is returned.
func LoadOrDefault(path string) (File, error) {
	f, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return File{}, err
	}
	return f, nil
}

// StateConfig converts the file into simulation parameters.
func (f File) StateConfig() (state.Config, error) {
	cfg := state.Config{
		Width:            f.Width,
		Height:           f.Height,
		ObstacleDensity:  f.ObstacleDensity,
		Seed:             f.Seed,
		DiagonalMovement: f.DiagonalMovement,
		MaxExpansions:    f.MaxExpansions,
	}
	if f.Generator != "" {
		gen := mapgen.ByName(f.Generator)
		if gen == nil {
			return state.Config{}, fmt.Errorf("config: unknown generator %q", f.Generator)
		}
		cfg.Generator = gen
	}
	return cfg, nil
}
