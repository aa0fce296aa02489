// Package pattern synthesizes calibration board textures.
package pattern

import (
	"errors"
	"image"
	"image/color"
)

var ErrInvalidSize = errors.New("checkerboard size must be positive")

// Checkerboard describes a board of Rows x Cols squares of Square pixels,
// surrounded by a white margin of Margin pixels.
type Checkerboard struct {
	Rows, Cols int
	Square     int
	Margin     int
}

func (c Checkerboard) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Cols*c.Square+2*c.Margin, c.Rows*c.Square+2*c.Margin)
}

// Image renders the board. The top-left square is black.
func (c Checkerboard) Image() (*image.RGBA, error) {
	if c.Rows <= 0 || c.Cols <= 0 || c.Square <= 0 || c.Margin < 0 {
		return nil, ErrInvalidSize
	}
	img := image.NewRGBA(c.Bounds())
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c.At(x, y))
		}
	}
	return img, nil
}

func (c Checkerboard) At(x, y int) color.RGBA {
	x -= c.Margin
	y -= c.Margin
	if x < 0 || y < 0 || x >= c.Cols*c.Square || y >= c.Rows*c.Square {
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
	if (x/c.Square+y/c.Square)%2 == 0 {
		return color.RGBA{0, 0, 0, 0xFF}
	}
	return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
}

// InnerCorners returns the number of inner corners as detected by
// chessboard corner finders.
func (c Checkerboard) InnerCorners() (int, int) {
	return c.Cols - 1, c.Rows - 1
}
