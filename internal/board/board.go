// Package board stores the settled cells of the play field.
package board

import (
	"fmt"

	"github.com/hersh/tetromino/internal/piece"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is a flat, row-major grid of settled colors. It satisfies piece.Grid.
type Board struct {
	cells  []piece.Color
	width  int
	height int
}

// New returns an empty width x height board.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", width, height, piece.ErrDimensions)
	}
	return &Board{
		cells:  make([]piece.Color, width*height),
		width:  width,
		height: height,
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) At(col, row int) piece.Color {
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d board", col, row, b.width, b.height))
	}
	return b.cells[b.index(col, row)]
}

func (b *Board) index(col, row int) int {
	return col + b.width*row
}

// Lock writes the piece's cells into the board. Cells outside the board
// are skipped.
func (b *Board) Lock(p *piece.Piece) {
	for _, pt := range p.Cells() {
		if pt.X >= 0 && pt.X < b.width && pt.Y >= 0 && pt.Y < b.height {
			b.cells[b.index(pt.X, pt.Y)] = p.Color
		}
	}
}

// ClearLines removes every full row, drops the rows above it, and returns
// how many rows were removed.
func (b *Board) ClearLines() int {
	cleared := 0
	dst := b.height - 1

	for src := b.height - 1; src >= 0; src-- {
		if b.rowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			copy(b.cells[b.index(0, dst):b.index(0, dst+1)], b.cells[b.index(0, src):b.index(0, src+1)])
		}
		dst--
	}

	for row := dst; row >= 0; row-- {
		clear(b.cells[b.index(0, row):b.index(0, row+1)])
	}
	return cleared
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.width; col++ {
		if b.cells[b.index(col, row)].IsEmpty() {
			return false
		}
	}
	return true
}

// Cells returns a copy of the flat cell slice for renderers.
func (b *Board) Cells() []piece.Color {
	out := make([]piece.Color, len(b.cells))
	copy(out, b.cells)
	return out
}

// Filled counts occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}
