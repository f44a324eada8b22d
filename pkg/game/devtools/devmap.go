package devtools

import (
	"fmt"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/mapgen"
)

// DevMapGenerator produces a fixed, handcrafted testing layout: a long
// vertical wall with a single gap on the bottom row forces a detour, and a
// horizontal stub wall breaks up the open half. Seed and ObstacleDensity are
// ignored, so the layout depends only on the grid dimensions. Useful for
// eyeballing renderer output against known path shapes.
type DevMapGenerator struct{}

// DevMap is the shared developer testing generator, selected with the -dev
// flag rather than through the config file.
var DevMap = &DevMapGenerator{}

// Name returns the generator name.
func (d *DevMapGenerator) Name() string {
	return "devmap"
}

// Generate builds the testing layout.
func (d *DevMapGenerator) Generate(p mapgen.Params) (*grid.Grid, error) {
	g, err := grid.New(p.Width, p.Height, p.DiagonalMovement)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mapgen.ErrInvalidParams, err)
	}
	if !g.InBounds(p.Start) {
		return nil, fmt.Errorf("%w: start %s outside %dx%d grid",
			mapgen.ErrInvalidParams, p.Start, p.Width, p.Height)
	}

	// The pattern needs room to be meaningful; tiny grids stay clear.
	if p.Width >= 6 && p.Height >= 4 {
		// Vertical wall with its gap on the bottom row.
		wallX := 2 * p.Width / 3
		for y := 0; y < p.Height-1; y++ {
			_ = g.SetBlocked(grid.Cell{X: wallX, Y: y}, true)
		}

		// Horizontal stub from the left edge. Paths go around its right end.
		stubY := p.Height / 3
		for x := 0; x < p.Width/3; x++ {
			_ = g.SetBlocked(grid.Cell{X: x, Y: stubY}, true)
		}
	}

	// Keep the start area walkable like the seeded generators do.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := p.Start.Translate(dx, dy)
			if g.InBounds(c) {
				_ = g.SetBlocked(c, false)
			}
		}
	}

	return g, nil
}
