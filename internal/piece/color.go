package piece

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA value with components in [0, 1].
type Color [4]float32

// Empty marks an unoccupied cell.
var Empty = Color{0, 0, 0, 0}

// IsEmpty reports whether c is the empty sentinel. Only alpha is consulted.
func (c Color) IsEmpty() bool {
	return c[3] == 0
}

// Hex returns the #rrggbb form of c, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}
