// Package mapgen produces occupancy grids for the pathfinding engine.
// All generators are deterministic for a given Params value: the same seed
// always yields the same map.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// Sentinel errors for map generation.
var (
	// ErrInvalidParams is returned for out-of-range generation parameters.
	ErrInvalidParams = errors.New("mapgen: invalid generation params")

	// ErrMapGeneration is returned when no valid map could be produced within
	// the retry budget. Callers recover by keeping their previous grid or
	// falling back to an all-clear one.
	ErrMapGeneration = errors.New("mapgen: no valid map after retries")
)

// maxGenerationRetries bounds how many seeds a generator may try before
// giving up with ErrMapGeneration.
const maxGenerationRetries = 10

// Params describe one map generation request.
type Params struct {
	Width  int
	Height int

	// ObstacleDensity is the probability in [0,1) that a cell starts blocked.
	ObstacleDensity float64

	// Seed drives the deterministic random source. Zero selects a fixed
	// default stream.
	Seed int64

	// DiagonalMovement is carried onto the produced grid.
	DiagonalMovement bool

	// Start is force-cleared together with its immediate neighborhood, so
	// the agent never spawns trapped.
	Start grid.Cell
}

func (p Params) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if p.ObstacleDensity < 0 || p.ObstacleDensity >= 1 {
		return fmt.Errorf("%w: obstacle density %v not in [0,1)", ErrInvalidParams, p.ObstacleDensity)
	}
	if p.Start.X < 0 || p.Start.X >= p.Width || p.Start.Y < 0 || p.Start.Y >= p.Height {
		return fmt.Errorf("%w: start %s outside %dx%d grid", ErrInvalidParams, p.Start, p.Width, p.Height)
	}
	return nil
}

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(p Params) (*grid.Grid, error)
	Name() string
}

// Available generators
var (
	Noise     = &NoiseGenerator{}
	Regions   = &RegionGenerator{}
	Corridors = &CorridorGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Noise

// ByName returns the generator registered under name, or nil for an unknown
// name.
func ByName(name string) GridGenerator {
	switch name {
	case Noise.Name():
		return Noise
	case Regions.Name():
		return Regions
	case Corridors.Name():
		return Corridors
	default:
		return nil
	}
}

// withRetries runs carve on freshly derived seeds until the produced grid
// passes the start-connectivity check or the retry budget runs out. Each
// attempt starts from a clear grid.
func withRetries(p Params, name string, carve func(rng *rand.Rand, g *grid.Grid)) (*grid.Grid, error) {
	seed := p.Seed
	for attempt := 0; attempt < maxGenerationRetries; attempt++ {
		g, err := grid.New(p.Width, p.Height, p.DiagonalMovement)
		if err != nil {
			return nil, fmt.Errorf("mapgen: %s: %w", name, err)
		}
		carve(newRand(seed), g)
		clearStartArea(g, p.Start)
		if hasReachableGoal(g, p.Start) {
			return g, nil
		}
		seed = DeriveSeed(p.Seed, uint64(attempt)+1)
	}
	return nil, fmt.Errorf("%w: %s produced no usable map in %d attempts (seed %d)",
		ErrMapGeneration, name, maxGenerationRetries, p.Seed)
}

// clearStartArea force-unblocks the start cell and its immediate
// neighborhood.
func clearStartArea(g *grid.Grid, start grid.Cell) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := start.Translate(dx, dy)
			if g.InBounds(c) {
				_ = g.SetBlocked(c, false)
			}
		}
	}
}

// hasReachableGoal reports whether at least one unblocked cell is reachable
// from start, so a goal can always be placed.
func hasReachableGoal(g *grid.Grid, start grid.Cell) bool {
	return len(g.Neighbors(start)) > 0
}
