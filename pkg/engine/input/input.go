package input

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code string if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) (string, []byte) {
	if firstByte != 0x1b {
		return "", []byte{firstByte}
	}

	// Read second byte
	b2, err := readByte()
	if err != nil {
		return "", nil
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		// Read third byte (the actual key code)
		b3, err := readByte()
		if err != nil {
			return "", nil
		}

		switch b3 {
		case 'A':
			return "arrow_up", nil
		case 'B':
			return "arrow_down", nil
		case 'C':
			return "arrow_right", nil
		case 'D':
			return "arrow_left", nil
		}
		// Unknown escape sequence - discard it
		return "", nil
	}

	// Bare escape, no arrow sequence
	return "escape", []byte{firstByte, b2}
}

// ReadCode reads one input code from the terminal. Arrow keys and single
// bound keys return immediately without Enter; anything longer (such as a
// "x,y" cell target) is collected until Enter with echo and backspace
// support. Ctrl+C maps to the "quit" code so callers can shut down cleanly.
func ReadCode() string {
	// Put terminal into raw mode to detect arrow keys
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		term.Restore(int(os.Stdin.Fd()), oldState)
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	if code, _ := tryReadArrowKey(b1); code != "" {
		fmt.Println()
		return code
	}

	if b1 == 3 { // Ctrl+C
		fmt.Println()
		return "quit"
	}

	if b1 == '\n' || b1 == '\r' {
		return ""
	}

	// Single bound key: return immediately so movement doesn't need Enter.
	first := strings.ToLower(string(rune(b1)))
	if _, bound := bindings[first]; bound {
		fmt.Println()
		return first
	}

	// Anything else starts a line of input, collected until Enter.
	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1)) // Echo the character
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed mid-entry are discarded
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		// Handle backspace
		if b == 127 || b == 8 {
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b") // Erase character from display
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Println()
			break
		}

		if b == 3 { // Ctrl+C
			fmt.Println()
			return "quit"
		}

		// Only add printable characters
		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b)) // Echo the character
		}
	}

	return strings.ToLower(strings.TrimSpace(string(input)))
}
