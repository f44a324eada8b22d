package search

import (
	"errors"
	"fmt"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid is returned when no grid is supplied.
	ErrNilGrid = errors.New("search: nil grid")

	// ErrNoPath is returned when start and goal are not connected, or when an
	// endpoint is blocked or out of bounds. It is an outcome, not a failure:
	// callers surface it as a flag and keep their previous path.
	ErrNoPath = errors.New("search: no path between start and goal")

	// ErrBudgetExceeded is returned when the expansion budget runs out before
	// the goal is reached. It wraps ErrNoPath, so errors.Is(err, ErrNoPath)
	// holds; diagnostics can still tell the two apart.
	ErrBudgetExceeded = fmt.Errorf("%w: expansion budget exceeded", ErrNoPath)
)

// Path is an ordered sequence of cells from start to goal inclusive.
// A search that succeeds always returns at least one cell.
type Path []grid.Cell

// Cost returns the total movement cost of the path: 1 per orthogonal step,
// √2 per diagonal step. A single-cell path costs 0.
func (p Path) Cost() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += stepCost(p[i-1], p[i])
	}
	return total
}

// Options configure one FindPath invocation.
type Options struct {
	// MaxExpansions bounds how many nodes the search may finalize before
	// giving up. Zero disables the budget.
	MaxExpansions int

	// OnExpand, when set, is called once per finalized node in expansion
	// order. Used for statistics and instrumentation.
	OnExpand func(grid.Cell)
}

// Option mutates Options before the search starts.
type Option func(*Options)

// WithMaxExpansions bounds the number of node expansions for one search.
// n must not be negative; zero disables the budget.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("search: MaxExpansions must be non-negative, got %d", n))
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked once per finalized node.
func WithOnExpand(fn func(grid.Cell)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

func defaultOptions() Options {
	return Options{}
}
