package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
	engineinput "github.com/etha37521-jpg/sigma-wasm/pkg/engine/input"
)

// keyIntent runs a raw keyboard code through the tiered input pipeline.
func keyIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: engineinput.DeviceKeyboard,
		Code:   code,
	}))
}

// checkInput polls the keyboard and mouse and returns at most one intent per
// frame. Movement keys repeat while held; everything else fires once per
// press.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// Arrow key navigation with key repeat
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyArrowUp) }, "key_arrow_up") {
		return keyIntent("arrow_up")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyArrowDown) }, "key_arrow_down") {
		return keyIntent("arrow_down")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyArrowLeft) }, "key_arrow_left") {
		return keyIntent("arrow_left")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyArrowRight) }, "key_arrow_right") {
		return keyIntent("arrow_right")
	}

	// Compass-letter navigation with key repeat
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyN) }, "key_n") {
		return keyIntent("n")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyS) }, "key_s") {
		return keyIntent("s")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyW) }, "key_w") {
		return keyIntent("w")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyE) }, "key_e") {
		return keyIntent("e")
	}

	// Vim-style navigation with key repeat
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyK) }, "key_k") {
		return keyIntent("k")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyJ) }, "key_j") {
		return keyIntent("j")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyH) }, "key_h") {
		return keyIntent("h")
	}
	if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(ebiten.KeyL) }, "key_l") {
		return keyIntent("l")
	}

	// One-shot actions
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return keyIntent("r")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		return keyIntent("m")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return keyIntent("p")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return keyIntent("help")
	}
	// Shift+/ produces '?'
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return keyIntent("?")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return keyIntent("quit")
	}

	// Mouse: a click sends the agent toward the cell under the cursor.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if target, ok := e.cellAtCursor(); ok {
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
				Device: engineinput.DeviceMouse,
				Code:   fmt.Sprintf("%d,%d", target.X, target.Y),
			}))
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// cellAtCursor maps the mouse position to a map cell.
func (e *EbitenRenderer) cellAtCursor() (grid.Cell, bool) {
	cellSize, originX, originY := e.mapGeometry()

	mx, my := ebiten.CursorPosition()
	if mx < originX || my < originY {
		return grid.Cell{}, false
	}

	c := grid.Cell{X: (mx - originX) / cellSize, Y: (my - originY) / cellSize}
	if !e.st.Grid().InBounds(c) {
		return grid.Cell{}, false
	}
	return c, true
}

// shouldRepeatKey reports whether a held key should fire this frame: once on
// the initial press, then at a fixed interval after an initial delay.
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	pressed := isPressed()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}

	// Key is held - check if we should repeat
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
