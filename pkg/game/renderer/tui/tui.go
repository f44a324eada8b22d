package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/input"
	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/terminal"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/devtools"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/renderer"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

// Icon constants for the map view
const (
	AgentIcon = "@"
	IconGoal  = "X"
	IconPath  = "•"
	IconWall  = "▒"
	IconOpen  = "·"
)

// Lines needed outside the map viewport:
// - Header + blank (2)
// - Blank after map (1)
// - Status bar (2)
// - Action hints (2)
// - Messages pane (header + up to 5 messages + footer, 8)
// - Input prompt (2)
const reservedRows = 17

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorAgent       color.Style
	colorGoal        color.Style
	colorPath        color.Style
	colorWall        color.Style
	colorOpen        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Name identifies the backend.
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorAgent = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorGoal = color.Style{color.FgYellow, color.OpBold}
	t.colorPath = color.Style{color.FgCyan}
	t.colorWall = color.Style{color.FgGray}
	t.colorOpen = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:?]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// Run drives the render/input/tick loop until the user quits.
func (t *TUIRenderer) Run(st *state.AgentState, opts renderer.RunOptions) error {
	t.Init()
	lastTick := time.Now()

	for {
		// Adopt a replacement simulation if one is waiting.
		select {
		case next := <-opts.Reload:
			if next != nil {
				next.AddMessage(gotext.Get("Configuration reloaded."))
				st = next
			}
		default:
		}

		t.Clear()
		t.renderFrame(st)

		intent := t.GetInput()
		elapsed := time.Since(lastTick).Seconds() * 1000
		lastTick = time.Now()

		switch intent.Action {
		case input.ActionQuit:
			fmt.Println(gotext.Get("Goodbye!"))
			return nil
		case input.ActionHelp:
			t.showHelp()
		case input.ActionDumpMap:
			if path, err := devtools.DumpMapToFile(st); err != nil {
				st.AddMessagef("Map dump failed: %v", err)
			} else {
				st.AddMessage(gotext.Get("Map dumped to ") + t.colorItem.Sprint(path))
			}
		case input.ActionScreenshot:
			if filename, err := devtools.SaveScreenshotHTML(st); err != nil {
				st.AddMessagef("Screenshot failed: %v", err)
			} else {
				st.AddMessage(gotext.Get("Screenshot saved to ") + t.colorItem.Sprint(filename))
			}
		default:
			st.Tick(intent, elapsed)
		}
	}
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      input.ReadCode(),
		Timestamp: time.Now(),
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := "blat"

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// renderFrame renders a complete frame
func (t *TUIRenderer) renderFrame(st *state.AgentState) {
	g := st.Grid()

	// Header
	t.colorAction.Print(gotext.Get("Pathfinder"))
	t.colorSubtle.Printf("  %dx%d %s map, seed %d\n\n", g.Width(), g.Height(), st.GeneratorName(), st.Seed())

	// Render the map
	t.printMap(st)

	// Status bar
	t.printStatusBar(st)

	// Actions
	t.printPossibleActions()

	// Messages pane
	t.printMessagesPane(st)

	// Input prompt
	fmt.Printf("\n> ")
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Print("- " + t.FormatText("%s", txt) + "\n")
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(st *state.AgentState, c, goal grid.Cell, hasGoal bool, onPath map[grid.Cell]bool) string {
	switch {
	case c == st.Agent():
		return t.colorAgent.Sprint(AgentIcon)
	case hasGoal && c == goal:
		return t.colorGoal.Sprint(IconGoal)
	case onPath[c]:
		return t.colorPath.Sprint(IconPath)
	case st.Grid().Blocked(c):
		return t.colorWall.Sprint(IconWall)
	default:
		return t.colorOpen.Sprint(IconOpen)
	}
}

// printMap renders the map viewport centered on the agent. Each cell takes
// two columns so the grid reads roughly square in a terminal font.
func (t *TUIRenderer) printMap(st *state.AgentState) {
	g := st.Grid()
	viewWidth, viewHeight := terminal.FitViewport(g.Width(), g.Height(), reservedRows)

	// Top-left corner of the viewport, clamped to the map bounds.
	startX := clamp(st.Agent().X-viewWidth/2, 0, g.Width()-viewWidth)
	startY := clamp(st.Agent().Y-viewHeight/2, 0, g.Height()-viewHeight)

	goal, hasGoal := st.Goal()
	path := st.Path()
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	for vy := 0; vy < viewHeight; vy++ {
		for vx := 0; vx < viewWidth; vx++ {
			c := grid.Cell{X: startX + vx, Y: startY + vy}
			fmt.Print(t.renderCell(st, c, goal, hasGoal, onPath))
			fmt.Print(" ")
		}
		fmt.Print("\n")
	}

	fmt.Println("")
}

// printStatusBar renders the path status line
func (t *TUIRenderer) printStatusBar(st *state.AgentState) {
	fmt.Println()

	path := st.Path()
	fmt.Print(t.colorSubtle.Sprint(gotext.Get("Path: ")))
	if st.NoPathFound() {
		fmt.Print(t.colorDenied.Sprint(gotext.Get("NO PATH FOUND")))
	} else if len(path) > 0 {
		fmt.Print(t.colorItem.Sprintf("%d cells", len(path)))
		fmt.Print(t.colorSubtle.Sprintf(", cost %.2f", path.Cost()))
	} else {
		fmt.Print(t.colorSubtle.Sprint("(none)"))
	}

	stats := st.Stats()
	fmt.Print(t.colorSubtle.Sprintf("  |  Paths computed: %d  |  Expanded: %d", st.PathCount(), stats.LastExpanded))
	fmt.Println()
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	t.printBullet("ACTION{r}: \tRandomize map")
	t.printBullet("ACTION{?}: \tShow help")
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(st *state.AgentState) {
	width := terminal.GetWidth()

	// Create a horizontal line spanning the terminal width
	// "Messages" label is 8 chars, plus 2 spaces = 10, so we need (width - 10) / 2 dashes on each side
	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-labelLen)

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(st.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range st.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// showHelp clears the screen and lists the current key bindings, then waits
// for a key before returning to the map.
func (t *TUIRenderer) showHelp() {
	t.Clear()

	t.colorAction.Println(gotext.Get("Help"))
	fmt.Println()

	byAction := input.GetBindingsByAction()
	order := []input.Action{
		input.ActionMoveNorth,
		input.ActionMoveSouth,
		input.ActionMoveWest,
		input.ActionMoveEast,
		input.ActionRandomize,
		input.ActionDumpMap,
		input.ActionScreenshot,
		input.ActionHelp,
		input.ActionQuit,
	}
	for _, act := range order {
		codes := strings.Join(byAction[act], ", ")
		fmt.Printf("  %-16s %s\n", input.ActionName(act), t.colorSubtle.Sprint(codes))
	}

	fmt.Println()
	fmt.Println(gotext.Get("Type a cell like 3,7 to send the agent there."))
	fmt.Println()

	fmt.Print(gotext.Get("Press Enter to continue..."))
	input.ReadCode()
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
