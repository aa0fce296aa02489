package pattern

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{0, 0, 0, 0xFF}
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

func TestCheckerboard(t *testing.T) {
	c := Checkerboard{Rows: 3, Cols: 4, Square: 10, Margin: 5}
	img, err := c.Image()
	require.NoError(t, err)

	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	testCases := map[string]struct {
		x, y     int
		expected color.RGBA
	}{
		"Margin":      {0, 0, white},
		"TopLeft":     {5, 5, black},
		"SecondCol":   {15, 5, white},
		"SecondRow":   {5, 15, white},
		"Diagonal":    {15, 15, black},
		"BottomRight": {44, 34, white},
		"RightMargin": {45, 34, white},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, img.RGBAAt(tt.x, tt.y))
		})
	}

	cx, cy := c.InnerCorners()
	assert.Equal(t, 3, cx)
	assert.Equal(t, 2, cy)
}

func TestCheckerboard_Invalid(t *testing.T) {
	for name, c := range map[string]Checkerboard{
		"NoRows":         {Rows: 0, Cols: 2, Square: 1},
		"NoSquare":       {Rows: 2, Cols: 2, Square: 0},
		"NegativeMargin": {Rows: 2, Cols: 2, Square: 1, Margin: -1},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			_, err := c.Image()
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}
