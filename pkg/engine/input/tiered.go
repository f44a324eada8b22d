package input

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent in the simulation.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Goal selection
	ActionMoveTo // Send the agent toward a target cell

	// Map control
	ActionRandomize // Regenerate the map from a fresh seed

	// Meta / UI
	ActionHelp
	ActionQuit
	ActionDumpMap    // Write the current map to a debug file
	ActionScreenshot // Save the current view as an HTML file
)

// Intent is the 4th-layer, high-level description of what the player wants
// to do. Target is only meaningful for ActionMoveTo.
type Intent struct {
	Action Action
	Target grid.Cell
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "r", "3,7").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Both input paths (Ebiten just-pressed queries, terminal raw mode) already
// deliver discrete events, but the distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW words, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Map regeneration
	"r":         ActionRandomize,
	"randomize": ActionRandomize,

	// Help
	"?":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Debug map dump
	"m":    ActionDumpMap,
	"dump": ActionDumpMap,

	// Screenshot
	"p":          ActionScreenshot,
	"screenshot": ActionScreenshot,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent. Codes of the form "x,y"
// that match no binding become a move-to intent for that cell.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if target, ok := parseCellCode(ev.Code); ok {
		return Intent{Action: ActionMoveTo, Target: target}
	}
	return Intent{Action: ActionNone}
}

// parseCellCode interprets a code like "3,7" as grid coordinates.
func parseCellCode(code string) (grid.Cell, bool) {
	xs, ys, ok := strings.Cut(code, ",")
	if !ok {
		return grid.Cell{}, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Cell{}, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Cell{}, false
	}
	return grid.Cell{X: x, Y: y}, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveTo:
		return "Move To Cell"
	case ActionRandomize:
		return "Randomize Map"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionDumpMap:
		return "Dump Map"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
