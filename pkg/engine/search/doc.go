// Package search implements A* shortest-path search over an occupancy grid.
//
// What:
//   - FindPath computes a minimum-cost path between two cells with uniform
//     step costs: 1 per orthogonal move, √2 per diagonal move.
//   - The heuristic follows the grid's movement mode: Manhattan distance for
//     4-way grids, octile distance for 8-way grids. Both are admissible and
//     consistent, so returned paths are optimal.
//
// Determinism:
//   - The open set orders by fScore and breaks ties by insertion sequence.
//     Identical inputs always yield the identical path, which keeps rendered
//     output stable and makes golden tests possible.
//
// Bounds:
//   - WithMaxExpansions caps how many nodes one invocation may finalize.
//     A search that runs out of budget reports failure rather than returning
//     a partial path.
//
// Errors:
//   - ErrNilGrid for a missing grid.
//   - ErrNoPath when start and goal are not connected.
//   - ErrBudgetExceeded when the expansion budget runs out; it wraps
//     ErrNoPath, so callers that only care about the outcome can treat both
//     the same.
//
// The search is pure and synchronous. It never mutates the grid and keeps no
// state between invocations.
package search
