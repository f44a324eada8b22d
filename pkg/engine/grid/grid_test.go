// Package grid tests occupancy lookups, bounds handling and the deterministic
// neighbor order the search engine relies on.
package grid

import (
	"errors"
	"reflect"
	"testing"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, width, height int, diagonal bool) *Grid {
	t.Helper()
	g, err := New(width, height, diagonal)
	if err != nil {
		t.Fatalf("New(%d, %d, %v) returned error: %v", width, height, diagonal, err)
	}
	return g
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct {
		name   string
		width  int
		height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 3},
		{"negative height", 3, -7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.width, tc.height, false)
			if g != nil {
				t.Errorf("New(%d, %d) grid = %v, want nil", tc.width, tc.height, g)
			}
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", tc.width, tc.height, err)
			}
		})
	}
}

func TestBlocked_OutOfBoundsIsSafeDefault(t *testing.T) {
	g := mustGrid(t, 4, 4, false)
	for _, c := range []Cell{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 100, Y: 100}} {
		if !g.Blocked(c) {
			t.Errorf("Blocked(%s) = false, want true for out-of-bounds cell", c)
		}
	}
}

func TestAt_OutOfBoundsError(t *testing.T) {
	g := mustGrid(t, 4, 4, false)
	blocked, err := g.At(Cell{X: 9, Y: 1})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("At out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if !blocked {
		t.Error("At out of bounds blocked = false, want true")
	}

	blocked, err = g.At(Cell{X: 1, Y: 1})
	if err != nil {
		t.Errorf("At in bounds error = %v, want nil", err)
	}
	if blocked {
		t.Error("At on fresh grid blocked = true, want false")
	}
}

func TestSetBlocked_RoundTrip(t *testing.T) {
	g := mustGrid(t, 3, 3, false)
	c := Cell{X: 2, Y: 1}
	if err := g.SetBlocked(c, true); err != nil {
		t.Fatalf("SetBlocked(%s) returned error: %v", c, err)
	}
	if !g.Blocked(c) {
		t.Errorf("Blocked(%s) = false after SetBlocked(true)", c)
	}
	if err := g.SetBlocked(c, false); err != nil {
		t.Fatalf("SetBlocked(%s) returned error: %v", c, err)
	}
	if g.Blocked(c) {
		t.Errorf("Blocked(%s) = true after SetBlocked(false)", c)
	}

	if err := g.SetBlocked(Cell{X: 3, Y: 0}, true); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetBlocked out of bounds error = %v, want ErrOutOfBounds", err)
	}
}

func TestNeighbors_CardinalOrder(t *testing.T) {
	g := mustGrid(t, 5, 5, false)
	c := Cell{X: 2, Y: 2}
	want := []Cell{
		{X: 2, Y: 1}, // N
		{X: 3, Y: 2}, // E
		{X: 2, Y: 3}, // S
		{X: 1, Y: 2}, // W
	}
	got := g.Neighbors(c)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(%s) = %v, want %v", c, got, want)
	}
}

func TestNeighbors_DiagonalOrder(t *testing.T) {
	g := mustGrid(t, 5, 5, true)
	c := Cell{X: 2, Y: 2}
	want := []Cell{
		{X: 2, Y: 1}, // N
		{X: 3, Y: 2}, // E
		{X: 2, Y: 3}, // S
		{X: 1, Y: 2}, // W
		{X: 3, Y: 1}, // NE
		{X: 3, Y: 3}, // SE
		{X: 1, Y: 3}, // SW
		{X: 1, Y: 1}, // NW
	}
	got := g.Neighbors(c)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(%s) = %v, want %v", c, got, want)
	}
}

func TestNeighbors_ExcludesBlockedAndOutOfBounds(t *testing.T) {
	g := mustGrid(t, 5, 5, false)
	if err := g.SetBlocked(Cell{X: 2, Y: 1}, true); err != nil {
		t.Fatal(err)
	}
	got := g.Neighbors(Cell{X: 2, Y: 2})
	want := []Cell{
		{X: 3, Y: 2}, // E
		{X: 2, Y: 3}, // S
		{X: 1, Y: 2}, // W
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors with blocked north = %v, want %v", got, want)
	}

	corner := g.Neighbors(Cell{X: 0, Y: 0})
	wantCorner := []Cell{
		{X: 1, Y: 0}, // E
		{X: 0, Y: 1}, // S
	}
	if !reflect.DeepEqual(corner, wantCorner) {
		t.Errorf("Neighbors at corner = %v, want %v", corner, wantCorner)
	}
}

func TestNeighbors_NoCornerCutting(t *testing.T) {
	g := mustGrid(t, 5, 5, true)
	// Block N and E of the center; NE stays open but must not be returned,
	// since both orthogonal cells flanking the diagonal step are blocked.
	if err := g.SetBlocked(Cell{X: 2, Y: 1}, true); err != nil {
		t.Fatal(err)
	}
	if err := g.SetBlocked(Cell{X: 3, Y: 2}, true); err != nil {
		t.Fatal(err)
	}
	for _, n := range g.Neighbors(Cell{X: 2, Y: 2}) {
		if n == (Cell{X: 3, Y: 1}) {
			t.Errorf("Neighbors returned NE cell %s through a cut corner", n)
		}
	}
}

func TestFillAndCountBlocked(t *testing.T) {
	g := mustGrid(t, 4, 3, false)
	g.Fill(true)
	if got := g.CountBlocked(); got != 12 {
		t.Errorf("CountBlocked after Fill(true) = %d, want 12", got)
	}
	g.Fill(false)
	if got := g.CountBlocked(); got != 0 {
		t.Errorf("CountBlocked after Fill(false) = %d, want 0", got)
	}
}

func TestClone_Independent(t *testing.T) {
	g := mustGrid(t, 4, 4, true)
	if err := g.SetBlocked(Cell{X: 1, Y: 1}, true); err != nil {
		t.Fatal(err)
	}
	dup := g.Clone()
	if !dup.Blocked(Cell{X: 1, Y: 1}) {
		t.Error("clone lost blocked cell (1,1)")
	}
	if !dup.DiagonalMovement() {
		t.Error("clone lost diagonal movement flag")
	}
	if err := dup.SetBlocked(Cell{X: 2, Y: 2}, true); err != nil {
		t.Fatal(err)
	}
	if g.Blocked(Cell{X: 2, Y: 2}) {
		t.Error("mutating the clone changed the original grid")
	}
}

func TestForEach_RowMajorOrder(t *testing.T) {
	g := mustGrid(t, 3, 2, false)
	var visited []Cell
	g.ForEach(func(c Cell, blocked bool) {
		visited = append(visited, c)
	})
	want := []Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("ForEach order = %v, want %v", visited, want)
	}
}
