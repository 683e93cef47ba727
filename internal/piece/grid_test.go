package piece_test

import (
	"testing"

	"github.com/hersh/tetromino/internal/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewValidates(t *testing.T) {
	_, err := piece.NewView(make([]piece.Color, 10), 3, 3)
	assert.ErrorIs(t, err, piece.ErrGridSize)

	_, err = piece.NewView(nil, 0, 5)
	assert.ErrorIs(t, err, piece.ErrDimensions)

	v, err := piece.NewView(make([]piece.Color, 12), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Width())
	assert.Equal(t, 3, v.Height())
}

func TestViewIsRowMajor(t *testing.T) {
	cells := make([]piece.Color, 12)
	cells[2+4*1] = settled
	v, err := piece.NewView(cells, 4, 3)
	require.NoError(t, err)

	assert.Equal(t, settled, v.At(2, 1))
	assert.True(t, v.At(1, 2).IsEmpty())
}

func TestViewPanicsOutsideGrid(t *testing.T) {
	v, err := piece.NewView(make([]piece.Color, 12), 4, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { v.At(4, 0) })
	assert.Panics(t, func() { v.At(0, 3) })
	assert.Panics(t, func() { v.At(-1, 0) })
}

func TestColor(t *testing.T) {
	assert.True(t, piece.Empty.IsEmpty())
	assert.True(t, piece.Color{1, 1, 1, 0}.IsEmpty())
	assert.False(t, piece.Color{0, 0, 0, 1}.IsEmpty())

	assert.Equal(t, "#ff0000", piece.Color{1, 0, 0, 1}.Hex())
	assert.Equal(t, "#40bf40", piece.Color{0.25, 0.75, 0.25, 1}.Hex())
}
