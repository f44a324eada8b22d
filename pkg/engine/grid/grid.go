// Package grid provides the 2D occupancy grid the pathfinding engine runs on:
// cells, cardinal directions, passability lookups and deterministic neighbor
// enumeration.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrInvalidDimensions is returned by New for non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds is returned for queries on cells outside
	// [0,width) x [0,height).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Candidate steps in the fixed order N,E,S,W followed by NE,SE,SW,NW.
// Search tie-breaking depends on this order never changing.
var (
	cardinalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalOffsets = [4][2]int{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// Grid is a dense occupancy map with encapsulated cell storage.
// Every in-range cell has a defined blocked state. Generators build a grid
// with SetBlocked; after that the grid is treated as immutable and shared
// read-only with the search engine.
type Grid struct {
	width    int
	height   int
	blocked  []bool
	diagonal bool
}

// New creates an all-clear grid with the given dimensions.
// diagonal enables 8-way movement in Neighbors.
func New(width, height int, diagonal bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:    width,
		height:   height,
		blocked:  make([]bool, width*height),
		diagonal: diagonal,
	}, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// DiagonalMovement reports whether 8-way movement is enabled
func (g *Grid) DiagonalMovement() bool {
	return g.diagonal
}

// InBounds checks if a cell is within grid bounds
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Center returns the cell at the center of the grid
func (g *Grid) Center() Cell {
	return Cell{X: g.width / 2, Y: g.height / 2}
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// Blocked reports whether c is blocked. Out-of-bounds cells report blocked,
// the safe default for movement and search queries.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// At returns the blocked flag for c, or ErrOutOfBounds when c is outside the
// grid. Callers that must fail loudly on bad coordinates use this instead of
// Blocked.
func (g *Grid) At(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return true, fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.blocked[g.index(c)], nil
}

// SetBlocked marks c as blocked or clear. Generators use this while building
// a map; a published grid is never mutated.
func (g *Grid) SetBlocked(c Cell, blocked bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	g.blocked[g.index(c)] = blocked
	return nil
}

// Fill sets every cell to the given blocked state.
func (g *Grid) Fill(blocked bool) {
	for i := range g.blocked {
		g.blocked[i] = blocked
	}
}

// Neighbors returns the adjacent unblocked in-bounds cells of c in the fixed
// order N,E,S,W, then NE,SE,SW,NW when diagonal movement is enabled.
// A diagonal step requires both adjacent orthogonal cells to be open, so
// paths never cut corners.
func (g *Grid) Neighbors(c Cell) []Cell {
	capHint := 4
	if g.diagonal {
		capHint = 8
	}
	out := make([]Cell, 0, capHint)
	for _, off := range cardinalOffsets {
		n := c.Translate(off[0], off[1])
		if !g.Blocked(n) {
			out = append(out, n)
		}
	}
	if !g.diagonal {
		return out
	}
	for _, off := range diagonalOffsets {
		n := c.Translate(off[0], off[1])
		if g.Blocked(n) {
			continue
		}
		if g.Blocked(Cell{X: c.X + off[0], Y: c.Y}) || g.Blocked(Cell{X: c.X, Y: c.Y + off[1]}) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(c Cell, blocked bool)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			fn(c, g.blocked[g.index(c)])
		}
	}
}

// CountBlocked returns the number of blocked cells.
func (g *Grid) CountBlocked() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		width:    g.width,
		height:   g.height,
		blocked:  make([]bool, len(g.blocked)),
		diagonal: g.diagonal,
	}
	copy(dup.blocked, g.blocked)
	return dup
}
