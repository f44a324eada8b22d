package mapgen

import (
	"math/rand"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// CorridorGenerator carves a growing-tree corridor network through a solid
// obstacle field. Every carved cell is connected by construction, so
// ObstacleDensity is ignored; layout variety comes entirely from the seed.
type CorridorGenerator struct{}

// newestBias is the chance of continuing from the most recently carved cell
// instead of a random active one. A high bias makes long winding corridors.
const newestBias = 0.75

// Name returns the registry name of this generator
func (c *CorridorGenerator) Name() string {
	return "corridors"
}

// Generate produces a corridor-network map for the given params.
func (c *CorridorGenerator) Generate(p Params) (*grid.Grid, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return withRetries(p, c.Name(), func(rng *rand.Rand, g *grid.Grid) {
		g.Fill(true)

		// The walk visits a lattice of every second cell; carving the
		// midpoints links lattice cells into corridors.
		origin := grid.Cell{X: p.Start.X - p.Start.X%2, Y: p.Start.Y - p.Start.Y%2}
		_ = g.SetBlocked(origin, false)

		active := []grid.Cell{origin}
		for len(active) > 0 {
			idx := len(active) - 1
			if rng.Float64() >= newestBias {
				idx = rng.Intn(len(active))
			}
			cur := active[idx]

			next, ok := unvisitedLatticeNeighbor(rng, g, cur)
			if !ok {
				active = append(active[:idx], active[idx+1:]...)
				continue
			}

			mid := grid.Cell{X: (cur.X + next.X) / 2, Y: (cur.Y + next.Y) / 2}
			_ = g.SetBlocked(mid, false)
			_ = g.SetBlocked(next, false)
			active = append(active, next)
		}
	})
}

// unvisitedLatticeNeighbor picks a random still-blocked lattice cell two
// steps away from c, or ok=false when none remain.
func unvisitedLatticeNeighbor(rng *rand.Rand, g *grid.Grid, c grid.Cell) (grid.Cell, bool) {
	candidates := make([]grid.Cell, 0, 4)
	for _, d := range grid.AllDirections() {
		dx, dy := d.Delta()
		n := c.Translate(dx*2, dy*2)
		if g.InBounds(n) && g.Blocked(n) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return grid.Cell{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
