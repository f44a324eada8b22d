package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/mapgen"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

func testState(t *testing.T) *state.AgentState {
	t.Helper()
	st, err := state.New(state.Config{
		Width:     12,
		Height:    8,
		Seed:      5,
		Generator: DevMap,
	})
	require.NoError(t, err)
	return st
}

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

func TestDevMap_IgnoresSeedAndDensity(t *testing.T) {
	a, err := DevMap.Generate(mapgen.Params{Width: 12, Height: 8, Seed: 1, Start: grid.Cell{X: 1, Y: 1}})
	require.NoError(t, err)
	b, err := DevMap.Generate(mapgen.Params{Width: 12, Height: 8, Seed: 999, ObstacleDensity: 0.9, Start: grid.Cell{X: 1, Y: 1}})
	require.NoError(t, err)

	assert.Equal(t, blockedCells(t, a), blockedCells(t, b))
}

func TestDevMap_DetourWall(t *testing.T) {
	g, err := DevMap.Generate(mapgen.Params{Width: 12, Height: 9, Start: grid.Cell{X: 1, Y: 1}})
	require.NoError(t, err)

	// Vertical wall at 2/3 width with its gap on the bottom row.
	wallX := 8
	assert.True(t, g.Blocked(grid.Cell{X: wallX, Y: 0}))
	assert.True(t, g.Blocked(grid.Cell{X: wallX, Y: 4}))
	assert.False(t, g.Blocked(grid.Cell{X: wallX, Y: 8}), "gap cell should stay open")
}

func TestDevMap_FullyConnected(t *testing.T) {
	start := grid.Cell{X: 1, Y: 1}
	g, err := DevMap.Generate(mapgen.Params{Width: 12, Height: 8, Start: start})
	require.NoError(t, err)

	open := g.Width()*g.Height() - g.CountBlocked()
	assert.Equal(t, open, mapgen.ReachableCount(g, start),
		"every open cell should be reachable from the start")
}

func TestDevMap_TinyGridStaysClear(t *testing.T) {
	g, err := DevMap.Generate(mapgen.Params{Width: 3, Height: 3, Start: grid.Cell{X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Zero(t, g.CountBlocked())
}

func TestDevMap_InvalidParams(t *testing.T) {
	_, err := DevMap.Generate(mapgen.Params{Width: 0, Height: 8})
	assert.ErrorIs(t, err, mapgen.ErrInvalidParams)

	_, err = DevMap.Generate(mapgen.Params{Width: 12, Height: 8, Start: grid.Cell{X: 20, Y: 1}})
	assert.ErrorIs(t, err, mapgen.ErrInvalidParams)
}

func TestDumpMap(t *testing.T) {
	st := testState(t)

	var buf bytes.Buffer
	require.NoError(t, DumpMap(&buf, st))
	out := buf.String()

	assert.Contains(t, out, "=== MAP DUMP DEBUG")
	assert.Contains(t, out, "grid_width: 12")
	assert.Contains(t, out, "grid_height: 8")
	assert.Contains(t, out, "seed: 5")
	assert.Contains(t, out, "agent_cell: (6,4)")
	assert.Contains(t, out, "--- Legend")
	assert.Contains(t, out, "--- Map ---")
	assert.Contains(t, out, "--- Counters ---")
	assert.Contains(t, out, "@", "agent marker should appear in the map section")
}

func TestDumpMap_NilState(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, DumpMap(&buf, nil))
}

func TestDumpMapToFile(t *testing.T) {
	t.Chdir(t.TempDir())
	st := testState(t)

	path, err := DumpMapToFile(st)
	require.NoError(t, err)
	assert.Equal(t, "map.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== MAP DUMP DEBUG")
}

func TestSaveScreenshotHTML(t *testing.T) {
	t.Chdir(t.TempDir())
	st := testState(t)

	filename, err := SaveScreenshotHTML(st)
	require.NoError(t, err)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<title>Pathfinder - Screenshot</title>")
	assert.Contains(t, out, `class="agent"`)
	assert.Contains(t, out, "seed 5")
}
