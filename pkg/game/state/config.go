package state

import (
	"errors"
	"fmt"

	"github.com/etha37521-jpg/sigma-wasm/pkg/game/mapgen"
)

// ErrInvalidConfig reports a configuration that can never produce a playable
// simulation.
var ErrInvalidConfig = errors.New("state: invalid config")

// Config holds the simulation parameters. The zero value is not usable, see
// DefaultConfig.
type Config struct {
	// Map dimensions in cells.
	Width  int
	Height int

	// ObstacleDensity is the fraction of cells the generator should block,
	// in [0,1).
	ObstacleDensity float64

	// Seed drives map generation. Zero selects a clock-based seed, so runs
	// vary; set any other value for reproducible maps.
	Seed int64

	// DiagonalMovement enables 8-way neighbors for the agent and the
	// search.
	DiagonalMovement bool

	// MaxExpansions caps how many cells a single search may finalize
	// before giving up. Zero derives the cap from the map area, which a
	// grid search can never exceed.
	MaxExpansions int

	// Generator picks the map generation algorithm. Nil selects
	// mapgen.DefaultGenerator.
	Generator mapgen.GridGenerator
}

// DefaultConfig returns the parameters used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Width:           24,
		Height:          16,
		ObstacleDensity: 0.3,
	}
}

// Validate reports whether the config describes a runnable simulation.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ObstacleDensity < 0 || c.ObstacleDensity >= 1 {
		return fmt.Errorf("%w: obstacle density %v not in [0,1)", ErrInvalidConfig, c.ObstacleDensity)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: negative expansion budget %d", ErrInvalidConfig, c.MaxExpansions)
	}
	return nil
}

// expansionBudget resolves the effective search budget.
func (c Config) expansionBudget() int {
	if c.MaxExpansions > 0 {
		return c.MaxExpansions
	}
	return c.Width * c.Height
}

// generator resolves the effective map generator.
func (c Config) generator() mapgen.GridGenerator {
	if c.Generator != nil {
		return c.Generator
	}
	return mapgen.DefaultGenerator
}
