package mapgen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// Reachable returns the set of open cells reachable from start, including
// start itself, under the grid's movement mode. A blocked start yields an
// empty set.
func Reachable(g *grid.Grid, start grid.Cell) mapset.Set[grid.Cell] {
	visited := mapset.New[grid.Cell]()
	if g == nil || g.Blocked(start) {
		return visited
	}
	visited.Put(start)
	queue := []grid.Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(c) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// ReachableCount returns the number of open cells reachable from start.
func ReachableCount(g *grid.Grid, start grid.Cell) int {
	return Reachable(g, start).Size()
}

// FurthestCell returns the reachable open cell with the greatest BFS depth
// from start. Depth ties resolve to the cell discovered first, so the result
// is deterministic. ok is false when start is blocked or nothing else is
// reachable.
func FurthestCell(g *grid.Grid, start grid.Cell) (best grid.Cell, ok bool) {
	if g == nil || g.Blocked(start) {
		return grid.Cell{}, false
	}
	depth := map[grid.Cell]int{start: 0}
	queue := []grid.Cell{start}
	best = start
	bestDepth := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if depth[c] > bestDepth {
			best = c
			bestDepth = depth[c]
		}
		for _, n := range g.Neighbors(c) {
			if _, seen := depth[n]; seen {
				continue
			}
			depth[n] = depth[c] + 1
			queue = append(queue, n)
		}
	}
	if best == start {
		return grid.Cell{}, false
	}
	return best, true
}
