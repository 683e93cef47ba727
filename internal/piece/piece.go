// Package piece is the active-piece engine: the falling tetromino and the
// rules that decide whether it may move or turn on a given grid.
package piece

import "fmt"

// MoveCommand is a movement request from the driver.
type MoveCommand int

const (
	Left MoveCommand = iota
	Right
	Down
	RotateCW
	RotateCCW
)

func (c MoveCommand) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case RotateCW:
		return "rotate_cw"
	case RotateCCW:
		return "rotate_ccw"
	}
	return fmt.Sprintf("MoveCommand(%d)", int(c))
}

// IsRotation reports whether c turns the piece rather than translating it.
func (c MoveCommand) IsRotation() bool {
	return c == RotateCW || c == RotateCCW
}

// Block is one cell of a piece, relative to the piece anchor.
type Block struct {
	X, Y int
}

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the absolute position of b when anchored at p.
func (p Point) Add(b Block) Point {
	return Point{X: p.X + b.X, Y: p.Y + b.Y}
}

// Step returns where b would sit after cmd, without touching any piece.
//
// Translations move one cell. The two turn commands use the quarter-turn
// swap rule, which is not a rotation matrix:
//
//	RotateCW:  y >= 0 -> (y, -x), otherwise (y, x)
//	RotateCCW: y >  0 -> (-y, x), otherwise (y, x)
//
// Applying RotateCW then RotateCCW is not guaranteed to give b back.
func (b Block) Step(cmd MoveCommand) Block {
	switch cmd {
	case Down:
		return Block{X: b.X, Y: b.Y + 1}
	case Left:
		return Block{X: b.X - 1, Y: b.Y}
	case Right:
		return Block{X: b.X + 1, Y: b.Y}
	case RotateCW:
		if b.Y >= 0 {
			return Block{X: b.Y, Y: -b.X}
		}
		return Block{X: b.Y, Y: b.X}
	case RotateCCW:
		if b.Y > 0 {
			return Block{X: -b.Y, Y: b.X}
		}
		return Block{X: b.Y, Y: b.X}
	}
	return b
}

// Piece is the falling tetromino.
type Piece struct {
	Shape  ShapeID
	Anchor Point
	Blocks [4]Block
	Color  Color
}

// Cells returns the absolute positions of the four blocks.
func (p *Piece) Cells() [4]Point {
	var out [4]Point
	for i, b := range p.Blocks {
		out[i] = p.Anchor.Add(b)
	}
	return out
}

// Contains reports whether b is one of the piece's current relative blocks.
func (p *Piece) Contains(b Block) bool {
	for _, own := range p.Blocks {
		if own == b {
			return true
		}
	}
	return false
}

// Fits reports whether the piece, where it stands, is in bounds and clear of
// occupied cells. Drivers use it to detect a blocked spawn.
func (p *Piece) Fits(g Grid) bool {
	for _, pt := range p.Cells() {
		if !open(g, pt) {
			return false
		}
	}
	return true
}
