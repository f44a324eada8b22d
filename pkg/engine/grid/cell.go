package grid

import "fmt"

// Cell is an integer coordinate on the grid. X grows east, Y grows south.
// Cells are value types: equality and map keys work by coordinate.
type Cell struct {
	X int
	Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Translate returns the cell offset by dx and dy.
func (c Cell) Translate(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
