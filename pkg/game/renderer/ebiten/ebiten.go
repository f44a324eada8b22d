package ebiten

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	engineinput "github.com/etha37521-jpg/sigma-wasm/pkg/engine/input"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/devtools"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/renderer"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer implementation
type EbitenRenderer struct {
	st     *state.AgentState
	reload <-chan *state.AgentState

	windowWidth  int
	windowHeight int

	helpVisible bool
	lastUpdate  time.Time

	// keyRepeatState tracks repeat timing per held key code
	keyRepeatState map[string]keyRepeatInfo
}

// keyRepeatInfo tracks repeat timing for one held key
type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    defaultWindowWidth,
		windowHeight:   defaultWindowHeight,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Name identifies the backend.
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Run opens the window and drives the Ebiten game loop until the user quits.
func (e *EbitenRenderer) Run(st *state.AgentState, opts renderer.RunOptions) error {
	e.st = st
	e.reload = opts.Reload
	e.lastUpdate = time.Now()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Pathfinder"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Update handles input and advances the simulation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Adopt a replacement simulation if one is waiting.
	select {
	case next := <-e.reload:
		if next != nil {
			next.AddMessage(gotext.Get("Configuration reloaded."))
			e.st = next
		}
	default:
	}

	elapsed := time.Since(e.lastUpdate).Seconds() * 1000
	e.lastUpdate = time.Now()

	intent := e.checkInput()

	switch intent.Action {
	case engineinput.ActionQuit:
		return ebiten.Termination
	case engineinput.ActionHelp:
		e.helpVisible = !e.helpVisible
	case engineinput.ActionDumpMap:
		if path, err := devtools.DumpMapToFile(e.st); err != nil {
			e.st.AddMessagef("Map dump failed: %v", err)
		} else {
			e.st.AddMessagef("Map dumped to %s", path)
		}
	case engineinput.ActionScreenshot:
		if filename, err := devtools.SaveScreenshotHTML(e.st); err != nil {
			e.st.AddMessagef("Screenshot failed: %v", err)
		} else {
			e.st.AddMessagef("Screenshot saved to %s", filename)
		}
	default:
		// Every frame is a simulation tick, with or without an action.
		e.st.Tick(intent, elapsed)
	}

	return nil
}

// Draw renders the frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.helpVisible {
		e.drawHelp(screen)
		return
	}

	e.drawMap(screen)
	e.drawHUD(screen)
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// mapGeometry computes the cell size in pixels and the top-left origin of the
// map area for the current window size.
func (e *EbitenRenderer) mapGeometry() (cellSize, originX, originY int) {
	g := e.st.Grid()
	w, h := ebiten.WindowSize()
	if w == 0 || h == 0 {
		w, h = e.windowWidth, e.windowHeight
	}

	availWidth := w - 2*mapMargin
	availHeight := h - hudHeight - 2*mapMargin

	cellSize = min(availWidth/g.Width(), availHeight/g.Height())
	if cellSize < 2 {
		cellSize = 2
	}

	// Center the map in the space below the HUD.
	originX = (w - cellSize*g.Width()) / 2
	originY = hudHeight + (h-hudHeight-cellSize*g.Height())/2
	return cellSize, originX, originY
}

// drawMap renders the grid with the agent, goal and path highlighted.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image) {
	g := e.st.Grid()
	cellSize, originX, originY := e.mapGeometry()

	// Backdrop behind the map area
	vector.DrawFilledRect(screen,
		float32(originX-mapMargin/2), float32(originY-mapMargin/2),
		float32(cellSize*g.Width()+mapMargin), float32(cellSize*g.Height()+mapMargin),
		colorMapBackground, false)

	agent := e.st.Agent()
	goal, hasGoal := e.st.Goal()
	path := e.st.Path()
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	size := float32(cellSize - cellGap)

	g.ForEach(func(c grid.Cell, blocked bool) {
		var clr color.RGBA
		switch {
		case c == agent:
			clr = colorAgent
		case hasGoal && c == goal:
			clr = colorGoal
		case onPath[c]:
			clr = colorPath
		case blocked:
			clr = colorWall
		default:
			clr = colorOpen
		}

		x := float32(originX + c.X*cellSize)
		y := float32(originY + c.Y*cellSize)
		vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	})
}

// drawHUD renders the header, the path status line and the message log.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	g := e.st.Grid()

	header := fmt.Sprintf("%s  %dx%d %s map, seed %d",
		gotext.Get("Pathfinder"), g.Width(), g.Height(), e.st.GeneratorName(), e.st.Seed())
	ebitenutil.DebugPrintAt(screen, header, 8, 6)

	path := e.st.Path()
	var status string
	switch {
	case e.st.NoPathFound():
		status = gotext.Get("NO PATH FOUND")
		// Red banner so a failed search is unmissable.
		vector.DrawFilledRect(screen, 4, 22, float32(8*len(status)+8), 16, colorDenied, false)
	case len(path) > 0:
		status = fmt.Sprintf("Path: %d cells, cost %.2f", len(path), path.Cost())
	default:
		status = "Path: (none)"
	}
	status = fmt.Sprintf("%s  |  Paths computed: %d", status, e.st.PathCount())
	ebitenutil.DebugPrintAt(screen, status, 8, 22)

	// Message log above the bottom edge
	_, h := ebiten.WindowSize()
	if h == 0 {
		h = e.windowHeight
	}
	y := h - 16*len(e.st.Messages) - 6
	for i, msg := range e.st.Messages {
		ebitenutil.DebugPrintAt(screen, msg, 8, y+16*i)
	}
}

// drawHelp renders a full-screen key binding reference.
func (e *EbitenRenderer) drawHelp(screen *ebiten.Image) {
	byAction := engineinput.GetBindingsByAction()
	order := []engineinput.Action{
		engineinput.ActionMoveNorth,
		engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest,
		engineinput.ActionMoveEast,
		engineinput.ActionRandomize,
		engineinput.ActionDumpMap,
		engineinput.ActionScreenshot,
		engineinput.ActionHelp,
		engineinput.ActionQuit,
	}

	lines := []string{gotext.Get("Help"), ""}
	for _, act := range order {
		lines = append(lines, fmt.Sprintf("%-16s %s",
			engineinput.ActionName(act), strings.Join(byAction[act], ", ")))
	}
	lines = append(lines, "",
		gotext.Get("Click a cell to send the agent there."),
		gotext.Get("Press F1 to return."))

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 16, 16+16*i)
	}
}
