// Package ebiten provides an Ebiten-based 2D graphical renderer for the
// pathfinding simulation.
package ebiten

import "image/color"

// Color palette for the map view
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorAgent         = color.RGBA{0, 255, 0, 255}     // Bright green
	colorGoal          = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorPath          = color.RGBA{0, 200, 255, 255}   // Cyan
	colorWall          = color.RGBA{60, 60, 80, 255}    // Dark slate
	colorOpen          = color.RGBA{100, 100, 120, 255} // Medium gray
	colorDenied        = color.RGBA{255, 80, 80, 255}   // Bright red
)

// Window and layout constants
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 640

	// hudHeight reserves vertical space above the map for the header and
	// status text.
	hudHeight = 48

	// mapMargin frames the map area on all sides.
	mapMargin = 16

	// cellGap leaves a grid line between cells.
	cellGap = 1
)

// Key repeat behavior for held movement keys
const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)
