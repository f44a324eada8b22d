package search

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

const sqrt2 = math.Sqrt2

// node is one open-set entry. seq is the insertion sequence used to break
// ties between equal fScores deterministically.
type node struct {
	cell grid.Cell
	g    float64
	f    float64
	seq  int
}

// runner holds the state of a single FindPath invocation. It is discarded
// when the search returns.
type runner struct {
	grid     *grid.Grid
	goal     grid.Cell
	opts     Options
	open     *heap.Heap[node]
	closed   mapset.Set[grid.Cell]
	gScore   map[grid.Cell]float64
	parent   map[grid.Cell]grid.Cell
	seq      int
	expanded int
}

// FindPath computes a minimum-cost path from start to goal over g using A*.
// The grid is read-only for the duration of the call. On success the returned
// path runs start to goal inclusive; start == goal yields the one-cell path.
// Failure is ErrNoPath (disconnected, blocked endpoint) or ErrBudgetExceeded
// (expansion budget exhausted), never a partial path.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: start %s is blocked", ErrNoPath, start)
	}
	if g.Blocked(goal) {
		return nil, fmt.Errorf("%w: goal %s is blocked", ErrNoPath, goal)
	}
	if start == goal {
		return Path{start}, nil
	}

	r := &runner{
		grid: g,
		goal: goal,
		opts: options,
		open: heap.New[node](func(a, b node) bool {
			if a.f != b.f {
				return a.f < b.f
			}
			return a.seq < b.seq
		}),
		closed: mapset.New[grid.Cell](),
		gScore: map[grid.Cell]float64{start: 0},
		parent: make(map[grid.Cell]grid.Cell),
	}
	r.push(start, 0)
	return r.run(start)
}

func (r *runner) heuristic(c grid.Cell) float64 {
	if r.grid.DiagonalMovement() {
		return octile(c, r.goal)
	}
	return manhattan(c, r.goal)
}

func (r *runner) push(c grid.Cell, g float64) {
	r.open.Push(node{cell: c, g: g, f: g + r.heuristic(c), seq: r.seq})
	r.seq++
}

func (r *runner) run(start grid.Cell) (Path, error) {
	for {
		current, ok := r.open.Pop()
		if !ok {
			return nil, fmt.Errorf("%w: open set exhausted after %d expansions", ErrNoPath, r.expanded)
		}
		if r.closed.Has(current.cell) {
			// Stale duplicate left behind by a later relaxation.
			continue
		}
		if current.cell == r.goal {
			return r.reconstruct(start), nil
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w after %d expansions", ErrBudgetExceeded, r.expanded)
		}
		r.closed.Put(current.cell)
		r.expanded++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(current.cell)
		}

		for _, n := range r.grid.Neighbors(current.cell) {
			if r.closed.Has(n) {
				continue
			}
			tentative := current.g + stepCost(current.cell, n)
			if prev, seen := r.gScore[n]; seen && tentative >= prev {
				continue
			}
			// Better route found before finalization: record it and push a
			// fresh entry rather than re-keying the heap.
			r.gScore[n] = tentative
			r.parent[n] = current.cell
			r.push(n, tentative)
		}
	}
}

// reconstruct walks predecessor links from the goal back to start, then
// reverses them so the path reads from start to goal.
func (r *runner) reconstruct(start grid.Cell) Path {
	path := Path{r.goal}
	for at := r.goal; at != start; {
		at = r.parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// stepCost returns the cost of moving between two adjacent cells.
func stepCost(from, to grid.Cell) float64 {
	if from.X != to.X && from.Y != to.Y {
		return sqrt2
	}
	return 1
}

// manhattan is the admissible heuristic for 4-way movement.
func manhattan(a, b grid.Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// octile is the admissible heuristic for 8-way movement with √2 diagonals.
func octile(a, b grid.Cell) float64 {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return float64(dx-dy) + sqrt2*float64(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
