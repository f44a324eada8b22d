package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

func mustGrid(t *testing.T, width, height int, diagonal bool) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height, diagonal)
	require.NoError(t, err)
	return g
}

func TestReachable_OpenGrid(t *testing.T) {
	g := mustGrid(t, 4, 4, false)
	set := Reachable(g, grid.Cell{X: 0, Y: 0})
	assert.Equal(t, 16, set.Size())
	assert.True(t, set.Has(grid.Cell{X: 0, Y: 0}))
	assert.True(t, set.Has(grid.Cell{X: 3, Y: 3}))
}

func TestReachable_BlockedStartIsEmpty(t *testing.T) {
	g := mustGrid(t, 4, 4, false)
	start := grid.Cell{X: 1, Y: 1}
	require.NoError(t, g.SetBlocked(start, true))
	assert.Zero(t, Reachable(g, start).Size())
}

func TestReachable_WallSplitsGrid(t *testing.T) {
	g := mustGrid(t, 5, 5, false)
	for y := 0; y < 5; y++ {
		require.NoError(t, g.SetBlocked(grid.Cell{X: 2, Y: y}, true))
	}

	set := Reachable(g, grid.Cell{X: 0, Y: 0})
	assert.Equal(t, 10, set.Size())
	assert.False(t, set.Has(grid.Cell{X: 4, Y: 4}))
	assert.Equal(t, 10, ReachableCount(g, grid.Cell{X: 0, Y: 0}))
}

func TestFurthestCell_Corridor(t *testing.T) {
	g := mustGrid(t, 5, 1, false)
	got, ok := FurthestCell(g, grid.Cell{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 4, Y: 0}, got)
}

func TestFurthestCell_OpenGridOppositeCorner(t *testing.T) {
	g := mustGrid(t, 10, 10, false)
	got, ok := FurthestCell(g, grid.Cell{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 9, Y: 9}, got)
}

func TestFurthestCell_Deterministic(t *testing.T) {
	g := mustGrid(t, 9, 9, false)
	start := grid.Cell{X: 4, Y: 4}
	first, ok := FurthestCell(g, start)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := FurthestCell(g, start)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}

func TestFurthestCell_NoDestination(t *testing.T) {
	g := mustGrid(t, 3, 3, false)
	start := grid.Cell{X: 1, Y: 1}

	t.Run("blocked start", func(t *testing.T) {
		require.NoError(t, g.SetBlocked(start, true))
		_, ok := FurthestCell(g, start)
		assert.False(t, ok)
		require.NoError(t, g.SetBlocked(start, false))
	})

	t.Run("isolated start", func(t *testing.T) {
		g.Fill(true)
		require.NoError(t, g.SetBlocked(start, false))
		_, ok := FurthestCell(g, start)
		assert.False(t, ok)
	})
}
