package piece

import (
	"errors"
	"fmt"
)

var (
	ErrDimensions = errors.New("grid dimensions must be positive")
	ErrGridSize   = errors.New("grid length does not match width*height")
)

// Grid is a read-only view of the play field. Cell (col, row) is stored
// row-major at index col + width*row. The engine never writes through it.
type Grid interface {
	Width() int
	Height() int
	At(col, row int) Color
}

// View is a Grid over a flat color slice owned by someone else.
type View struct {
	cells  []Color
	width  int
	height int
}

// NewView wraps cells as a width x height grid.
func NewView(cells []Color, width, height int) (View, error) {
	if width <= 0 || height <= 0 {
		return View{}, fmt.Errorf("view %dx%d: %w", width, height, ErrDimensions)
	}
	if len(cells) != width*height {
		return View{}, fmt.Errorf("view %dx%d with %d cells: %w", width, height, len(cells), ErrGridSize)
	}
	return View{cells: cells, width: width, height: height}, nil
}

func (v View) Width() int  { return v.width }
func (v View) Height() int { return v.height }

// At returns the color at (col, row). Coordinates outside the grid are a
// caller bug and panic.
func (v View) At(col, row int) Color {
	if col < 0 || col >= v.width || row < 0 || row >= v.height {
		panic(fmt.Sprintf("piece: cell (%d,%d) outside %dx%d grid", col, row, v.width, v.height))
	}
	return v.cells[col+v.width*row]
}

// inBounds uses half-open intervals on both axes: [0, width) x [0, height).
func inBounds(g Grid, pt Point) bool {
	return pt.X >= 0 && pt.X < g.Width() && pt.Y >= 0 && pt.Y < g.Height()
}

// open reports whether pt is inside g and unoccupied.
func open(g Grid, pt Point) bool {
	return inBounds(g, pt) && g.At(pt.X, pt.Y).IsEmpty()
}
