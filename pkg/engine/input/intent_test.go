package input

import (
	"testing"

	"github.com/etha37521-jpg/sigma-wasm/pkg/engine/grid"
)

func TestMapToIntent_Bindings(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"k", ActionMoveNorth},
		{"south", ActionMoveSouth},
		{"j", ActionMoveSouth},
		{"w", ActionMoveWest},
		{"h", ActionMoveWest},
		{"e", ActionMoveEast},
		{"l", ActionMoveEast},
		{"r", ActionRandomize},
		{"randomize", ActionRandomize},
		{"?", ActionHelp},
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"m", ActionDumpMap},
		{"p", ActionScreenshot},
		{"", ActionNone},
		{"unbound", ActionNone},
	}

	for _, tc := range cases {
		got := MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: tc.code})
		if got.Action != tc.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tc.code, ActionName(got.Action), ActionName(tc.want))
		}
	}
}

func TestMapToIntent_CellTarget(t *testing.T) {
	cases := []struct {
		code   string
		target grid.Cell
	}{
		{"3,7", grid.Cell{X: 3, Y: 7}},
		{"0,0", grid.Cell{X: 0, Y: 0}},
		{" 12 , 4 ", grid.Cell{X: 12, Y: 4}},
	}

	for _, tc := range cases {
		got := MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: tc.code})
		if got.Action != ActionMoveTo {
			t.Fatalf("MapToIntent(%q) action = %v, want Move To Cell", tc.code, ActionName(got.Action))
		}
		if got.Target != tc.target {
			t.Errorf("MapToIntent(%q) target = %s, want %s", tc.code, got.Target, tc.target)
		}
	}
}

func TestMapToIntent_MalformedCellCodes(t *testing.T) {
	for _, code := range []string{"3,", ",7", "3,x", "a,b", "3;7", "3,7,9"} {
		got := MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: code})
		if got.Action != ActionNone {
			t.Errorf("MapToIntent(%q) = %v, want None", code, ActionName(got.Action))
		}
	}
}

func TestGetBindingsByAction_SortedCodes(t *testing.T) {
	byAction := GetBindingsByAction()

	north, ok := byAction[ActionMoveNorth]
	if !ok {
		t.Fatal("no bindings for Move North")
	}
	want := []string{"arrow_up", "k", "n", "north"}
	if len(north) != len(want) {
		t.Fatalf("Move North bindings = %v, want %v", north, want)
	}
	for i := range want {
		if north[i] != want[i] {
			t.Fatalf("Move North bindings = %v, want %v", north, want)
		}
	}
}
