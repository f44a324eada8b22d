package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// FitViewport clamps a map of the given dimensions to what the terminal can
// show, reserving rows for the status and message panes below the map. Cells
// render two columns wide, so the horizontal budget is half the terminal
// width.
func FitViewport(mapWidth, mapHeight, reservedRows int) (width, height int) {
	termWidth, termHeight := GetSize()
	width = max(1, min(mapWidth, termWidth/2))
	height = max(1, min(mapHeight, termHeight-reservedRows))
	return width, height
}
