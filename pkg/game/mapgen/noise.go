package mapgen

import (
	"math/rand"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// NoiseGenerator scatters obstacles independently per cell with probability
// ObstacleDensity. This is the default map style.
type NoiseGenerator struct{}

// Name returns the registry name of this generator
func (n *NoiseGenerator) Name() string {
	return "noise"
}

// Generate produces a noise map for the given params.
func (n *NoiseGenerator) Generate(p Params) (*grid.Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return withRetries(p, n.Name(), func(rng *rand.Rand, g *grid.Grid) {
		g.ForEach(func(c grid.Cell, _ bool) {
			if rng.Float64() < p.ObstacleDensity {
				_ = g.SetBlocked(c, true)
			}
		})
	})
}
