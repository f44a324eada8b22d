package tui

import (
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatText_Markup(t *testing.T) {
	r := New()
	r.Init()

	// ClearCode strips ANSI styling so assertions hold with and without a tty.
	assert.Equal(t, "go north now", color.ClearCode(r.FormatText("go ACTION{north} now")))
	assert.Equal(t, "found map", color.ClearCode(r.FormatText("found ITEM{map}")))
	assert.Equal(t, "press ?", color.ClearCode(r.FormatText("press ACTION{?}")))
}

func TestFormatText_UnknownFunction(t *testing.T) {
	r := New()
	r.Init()

	out := r.FormatText("BOGUS{x}")
	assert.Contains(t, out, "ERROR, function not found")
}

func TestFormatText_PlainPassthrough(t *testing.T) {
	r := New()
	r.Init()

	assert.Equal(t, "plain 42 text", r.FormatText("plain %d text", 42))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, clamp(1, 3, 9))
	assert.Equal(t, 9, clamp(12, 3, 9))
	assert.Equal(t, 5, clamp(5, 3, 9))
}
