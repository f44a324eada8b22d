package renderer

import (
	"errors"

	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

// RunOptions carries cross-backend options into a renderer's main loop.
type RunOptions struct {
	// Reload delivers replacement simulations, typically after a config file
	// change on disk. A nil channel disables live reload.
	Reload <-chan *state.AgentState
}

// Renderer defines the interface for rendering backends
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Name identifies the backend in config files and flags
	Name() string

	// Run drives the interactive loop until the user quits. The renderer
	// owns the display and input for its lifetime.
	Run(st *state.AgentState, opts RunOptions) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run starts the active renderer
func Run(st *state.AgentState, opts RunOptions) error {
	if Current == nil {
		return errors.New("renderer: no renderer selected")
	}
	return Current.Run(st, opts)
}
