package state

import (
	"errors"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/input"
	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/search"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/mapgen"
)

// TickResult reports what one simulation step produced.
type TickResult struct {
	// Path is the current path from the agent to the goal, inclusive. It is
	// the last successful search result, so it survives ticks whose search
	// failed.
	Path search.Path

	// PathCount is the number of successful searches so far.
	PathCount int

	// NoPathFound is set when the latest search failed. Path still holds
	// the previous result in that case.
	NoPathFound bool

	// MapRegenerated is set when this tick replaced the map.
	MapRegenerated bool
}

// Tick advances the simulation by one step: it applies the intent, re-runs
// the search if the map or the endpoints changed, and reports the resulting
// path. elapsedMs is wall time since the previous tick, recorded in Stats.
func (s *AgentState) Tick(intent input.Intent, elapsedMs float64) TickResult {
	s.stats.Ticks++
	s.stats.ElapsedMs += elapsedMs

	regenerated := false
	switch intent.Action {
	case input.ActionRandomize:
		regenerated = s.randomize()
	case input.ActionMoveNorth:
		s.moveAgent(grid.North)
	case input.ActionMoveSouth:
		s.moveAgent(grid.South)
	case input.ActionMoveWest:
		s.moveAgent(grid.West)
	case input.ActionMoveEast:
		s.moveAgent(grid.East)
	case input.ActionMoveTo:
		s.setGoal(intent.Target)
	}

	if s.dirty {
		s.runSearch()
	}

	return TickResult{
		Path:           s.path,
		PathCount:      s.pathCount,
		NoPathFound:    s.noPath,
		MapRegenerated: regenerated,
	}
}

// moveAgent steps the agent one cell in the given direction if the
// destination is open.
func (s *AgentState) moveAgent(d grid.Direction) {
	dest := d.Apply(s.agent)
	if s.grid.Blocked(dest) {
		s.AddMessagef("Can't move %s, the way is blocked.", d)
		return
	}
	s.agent = dest
	s.dirty = true
}

// setGoal points the agent at a new target cell. Targets outside the map or
// on an obstacle are rejected with a message and leave the goal unchanged.
func (s *AgentState) setGoal(target grid.Cell) {
	if !s.grid.InBounds(target) {
		s.AddMessagef("Target %s is outside the map.", target)
		return
	}
	if s.grid.Blocked(target) {
		s.AddMessagef("Target %s is blocked.", target)
		return
	}
	if s.hasGoal && target == s.goal {
		return
	}
	s.goal = target
	s.hasGoal = true
	s.dirty = true
}

// randomize swaps in a freshly generated map on a seed derived from the
// current one. The agent keeps its cell; the generator protects the cells
// around it. A generator failure keeps the current map and reports false.
func (s *AgentState) randomize() bool {
	s.randomizes++
	seed := mapgen.DeriveSeed(s.seed, s.randomizes)

	g, err := s.generate(seed)
	if err != nil {
		s.AddMessage("Map generation failed, keeping the current map.")
		return false
	}

	s.grid = g
	s.seed = seed
	s.stats.Regens++

	// The old path points into the old map.
	s.path = nil
	s.noPath = false
	s.placeGoal()
	s.dirty = true
	s.AddMessagef("New map from seed %d.", seed)
	return true
}

// runSearch recomputes the path from the agent to the goal and updates the
// path bookkeeping.
func (s *AgentState) runSearch() {
	s.dirty = false
	if !s.hasGoal {
		s.path = nil
		s.noPath = false
		return
	}

	expanded := 0
	path, err := search.FindPath(s.grid, s.agent, s.goal,
		search.WithMaxExpansions(s.cfg.expansionBudget()),
		search.WithOnExpand(func(grid.Cell) { expanded++ }),
	)

	s.stats.Searches++
	s.stats.NodesExpanded += uint64(expanded)
	s.stats.LastExpanded = expanded

	if err != nil {
		s.noPath = true
		s.stats.FailedSearches++
		if errors.Is(err, search.ErrBudgetExceeded) {
			s.AddMessagef("Search gave up after %d expansions.", expanded)
		} else {
			s.AddMessage("No path to the goal.")
		}
		return
	}

	s.path = path
	s.noPath = false
	s.pathCount++
}
