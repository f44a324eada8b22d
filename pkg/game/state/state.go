// Package state holds the simulation state: the current map, the agent, its
// goal, and the most recent path. All mutation goes through New and Tick so
// there is no package-level state and two simulations can run side by side.
package state

import (
	"fmt"
	"time"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/search"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/mapgen"
)

// Stats collects counters over the lifetime of one simulation.
type Stats struct {
	Ticks          uint64
	ElapsedMs      float64
	Searches       uint64
	FailedSearches uint64
	NodesExpanded  uint64
	LastExpanded   int
	Regens         uint64
}

// AgentState is one running simulation. Create it with New and drive it with
// Tick; the accessors expose a read-only view for rendering.
type AgentState struct {
	cfg Config
	gen mapgen.GridGenerator

	grid       *grid.Grid
	seed       int64  // seed the current map was generated from
	randomizes uint64 // randomize requests so far, drives seed derivation

	agent   grid.Cell
	goal    grid.Cell
	hasGoal bool

	path      search.Path // most recent successful path, kept across failed searches
	noPath    bool        // the latest search found no path
	dirty     bool        // map or endpoints changed since the last search
	pathCount int

	stats Stats

	Messages []string
}

// New builds a simulation from cfg. The map comes from the configured
// generator; if generation exhausts its retries the simulation starts on an
// empty map instead of failing. The initial path is computed before New
// returns, so the state is immediately renderable.
func New(cfg Config) (*AgentState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &AgentState{
		cfg:      cfg,
		gen:      cfg.generator(),
		seed:     seed,
		agent:    grid.Cell{X: cfg.Width / 2, Y: cfg.Height / 2},
		Messages: make([]string, 0),
	}

	g, err := s.generate(seed)
	if err != nil {
		s.grid = s.emptyGrid()
		s.AddMessage("Map generation failed, starting on an empty map.")
	} else {
		s.grid = g
	}

	s.placeGoal()
	s.runSearch()
	return s, nil
}

// generate runs the configured generator with the agent as the protected
// start cell.
func (s *AgentState) generate(seed int64) (*grid.Grid, error) {
	return s.gen.Generate(mapgen.Params{
		Width:            s.cfg.Width,
		Height:           s.cfg.Height,
		ObstacleDensity:  s.cfg.ObstacleDensity,
		Seed:             seed,
		DiagonalMovement: s.cfg.DiagonalMovement,
		Start:            s.agent,
	})
}

// emptyGrid returns an all-clear map of the configured size.
func (s *AgentState) emptyGrid() *grid.Grid {
	g, _ := grid.New(s.cfg.Width, s.cfg.Height, s.cfg.DiagonalMovement)
	return g
}

// placeGoal sends the agent toward the furthest reachable cell, which keeps
// the demo path interesting on any map. Unreachable maps leave the agent
// goalless.
func (s *AgentState) placeGoal() {
	s.goal, s.hasGoal = mapgen.FurthestCell(s.grid, s.agent)
}

// Grid returns the live map. Callers must treat it as read-only; use Clone
// for a mutable copy.
func (s *AgentState) Grid() *grid.Grid {
	return s.grid
}

// Agent returns the agent's current cell.
func (s *AgentState) Agent() grid.Cell {
	return s.agent
}

// Goal returns the current goal cell, if the agent has one.
func (s *AgentState) Goal() (grid.Cell, bool) {
	return s.goal, s.hasGoal
}

// Path returns the most recent successful path, from the agent's cell to the
// goal inclusive. It stays valid across failed searches until a new search
// succeeds or the map changes. Callers must treat it as read-only.
func (s *AgentState) Path() search.Path {
	return s.path
}

// NoPathFound reports whether the latest search failed.
func (s *AgentState) NoPathFound() bool {
	return s.noPath
}

// PathCount returns how many successful searches have run.
func (s *AgentState) PathCount() int {
	return s.pathCount
}

// Seed returns the seed of the current map.
func (s *AgentState) Seed() int64 {
	return s.seed
}

// GeneratorName identifies the map generator in use.
func (s *AgentState) GeneratorName() string {
	return s.gen.Name()
}

// Config returns the simulation parameters.
func (s *AgentState) Config() Config {
	return s.cfg
}

// Stats returns a snapshot of the simulation counters.
func (s *AgentState) Stats() Stats {
	return s.stats
}

// AddMessage adds a message to the simulation's message log
func (s *AgentState) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// AddMessagef formats and adds a message to the simulation's message log
func (s *AgentState) AddMessagef(format string, a ...any) {
	s.AddMessage(fmt.Sprintf(format, a...))
}

// ClearMessages clears all messages
func (s *AgentState) ClearMessages() {
	s.Messages = make([]string, 0)
}
