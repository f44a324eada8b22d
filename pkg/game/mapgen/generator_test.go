package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

func testParams(width, height int, density float64, seed int64) Params {
	return Params{
		Width:           width,
		Height:          height,
		ObstacleDensity: density,
		Seed:            seed,
		Start:           grid.Cell{X: width / 2, Y: height / 2},
	}
}

// blockedCells flattens a grid into its blocked cells in row-major order so
// two layouts can be compared.
func blockedCells(t *testing.T, g *grid.Grid) []grid.Cell {
	t.Helper()
	var cells []grid.Cell
	g.ForEach(func(c grid.Cell, blocked bool) {
		if blocked {
			cells = append(cells, c)
		}
	})
	return cells
}

func allGenerators() []GridGenerator {
	return []GridGenerator{Noise, Regions, Corridors}
}

func TestGenerate_InvalidParams(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"zero width", testParams(0, 8, 0.3, 1)},
		{"negative height", testParams(8, -1, 0.3, 1)},
		{"density one", testParams(8, 8, 1.0, 1)},
		{"density negative", testParams(8, 8, -0.1, 1)},
		{"start out of bounds", Params{Width: 8, Height: 8, Start: grid.Cell{X: 8, Y: 0}}},
	}
	for _, gen := range allGenerators() {
		for _, tc := range cases {
			t.Run(gen.Name()+"/"+tc.name, func(t *testing.T) {
				g, err := gen.Generate(tc.p)
				require.ErrorIs(t, err, ErrInvalidParams)
				assert.Nil(t, g)
			})
		}
	}
}

func TestGenerate_RetriesExhausted(t *testing.T) {
	// A 1x1 grid has no neighbor to reach, so every attempt fails the
	// connectivity check regardless of seed.
	for _, gen := range allGenerators() {
		t.Run(gen.Name(), func(t *testing.T) {
			g, err := gen.Generate(Params{Width: 1, Height: 1, Seed: 3})
			require.ErrorIs(t, err, ErrMapGeneration)
			assert.Nil(t, g)
		})
	}
}

func TestGenerate_StartAreaClearAcrossSeeds(t *testing.T) {
	for seed := int64(0); seed < 1000; seed++ {
		p := testParams(16, 16, 0.6, seed)
		g, err := Noise.Generate(p)
		require.NoError(t, err, "seed %d", seed)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c := p.Start.Translate(dx, dy)
				require.False(t, g.Blocked(c), "seed %d: start-area cell %s blocked", seed, c)
			}
		}
	}
}

func TestNoise_Deterministic(t *testing.T) {
	p := testParams(16, 16, 0.45, 99)
	first, err := Noise.Generate(p)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Noise.Generate(p)
		require.NoError(t, err)
		require.Equal(t, blockedCells(t, first), blockedCells(t, again))
	}
}

func TestNoise_SeedChangesLayout(t *testing.T) {
	a, err := Noise.Generate(testParams(16, 16, 0.45, 1))
	require.NoError(t, err)
	b, err := Noise.Generate(testParams(16, 16, 0.45, 2))
	require.NoError(t, err)
	assert.NotEqual(t, blockedCells(t, a), blockedCells(t, b))
}

func TestNoise_ZeroDensityAllClear(t *testing.T) {
	g, err := Noise.Generate(testParams(12, 9, 0, 7))
	require.NoError(t, err)
	assert.Zero(t, g.CountBlocked())
}

func TestNoise_DensityScalesObstacles(t *testing.T) {
	sparse, err := Noise.Generate(testParams(16, 16, 0.2, 11))
	require.NoError(t, err)
	dense, err := Noise.Generate(testParams(16, 16, 0.6, 11))
	require.NoError(t, err)
	assert.Less(t, sparse.CountBlocked(), dense.CountBlocked())
}

func TestByName(t *testing.T) {
	assert.Same(t, Noise, ByName("noise"))
	assert.Same(t, Regions, ByName("regions"))
	assert.Same(t, Corridors, ByName("corridors"))
	assert.Nil(t, ByName("perlin"))
}

func TestDefaultGenerator(t *testing.T) {
	assert.Same(t, Noise, DefaultGenerator)
}
