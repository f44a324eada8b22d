package mapgen

import (
	"math"
	"math/rand"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// RegionGenerator clusters passability by nearest seed point, producing
// blob-shaped obstacle fields instead of uniform speckle. ObstacleDensity
// controls the fraction of seed points that spawn blocked regions.
type RegionGenerator struct{}

// cellsPerRegionSeed sizes the seed count: one region seed per this many
// cells, with a floor of minRegionSeeds.
const (
	cellsPerRegionSeed = 25
	minRegionSeeds     = 4
)

// regionSeed anchors one region and the passability it spreads.
type regionSeed struct {
	cell    grid.Cell
	blocked bool
}

// Name returns the registry name of this generator
func (r *RegionGenerator) Name() string {
	return "regions"
}

// Generate produces a clustered-region map for the given params.
func (r *RegionGenerator) Generate(p Params) (*grid.Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return withRetries(p, r.Name(), func(rng *rand.Rand, g *grid.Grid) {
		seedCount := (p.Width * p.Height) / cellsPerRegionSeed
		if seedCount < minRegionSeeds {
			seedCount = minRegionSeeds
		}
		blockedSeeds := int(math.Round(float64(seedCount) * p.ObstacleDensity))
		if blockedSeeds >= seedCount {
			// Density below 1 always leaves at least one open region.
			blockedSeeds = seedCount - 1
		}

		seeds := make([]regionSeed, 0, seedCount)
		for i := 0; i < seedCount; i++ {
			seeds = append(seeds, regionSeed{
				cell:    grid.Cell{X: rng.Intn(p.Width), Y: rng.Intn(p.Height)},
				blocked: i < blockedSeeds,
			})
		}

		g.ForEach(func(c grid.Cell, _ bool) {
			bestDist := math.MaxInt
			blocked := false
			for _, s := range seeds {
				d := absInt(c.X-s.cell.X) + absInt(c.Y-s.cell.Y)
				// Strict less keeps the earliest seed on ties, so the
				// assignment is deterministic.
				if d < bestDist {
					bestDist = d
					blocked = s.blocked
				}
			}
			if blocked {
				_ = g.SetBlocked(c, true)
			}
		})
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
