package main

import (
	"github.com/seqsense/boardviewer/pattern"
	"github.com/seqsense/pcgol/mat"
)

const smallAxesScale = 0.1

type boardGeometry struct {
	Vertices  [4]mat.Vec3
	TexCoords [4][2]float32
}

// newBoardGeometry places the board facing the viewer at z = -Depth,
// horizontally centered on X with its bottom edge on Y. Vertices run
// top-left, bottom-left, bottom-right, top-right; texture row 0 is the top.
func newBoardGeometry(p boardParams) boardGeometry {
	x := float32(p.X)
	y := float32(p.Y)
	w := float32(p.Width) / 2
	h := float32(p.Height)
	z := -float32(p.Depth)
	return boardGeometry{
		Vertices: [4]mat.Vec3{
			{x - w, y + h, z},
			{x - w, y, z},
			{x + w, y, z},
			{x + w, y + h, z},
		},
		TexCoords: [4][2]float32{
			{0, 0},
			{0, 1},
			{1, 1},
			{1, 0},
		},
	}
}

// boardCheckerboard is the pattern printed on the board when no texture
// image is configured.
func boardCheckerboard(p boardParams) pattern.Checkerboard {
	return pattern.Checkerboard{
		Rows:   p.Rows,
		Cols:   p.Cols,
		Square: p.Square,
		Margin: p.Margin,
	}
}

// Interleaved x, y, z, s, t as a triangle fan.
func (b boardGeometry) buffer() []float32 {
	buf := make([]float32, 0, 4*5)
	for i, v := range b.Vertices {
		buf = append(buf, v[0], v[1], v[2], b.TexCoords[i][0], b.TexCoords[i][1])
	}
	return buf
}

type lineVertex struct {
	pos   mat.Vec3
	color [3]float32
}

var (
	colorRed   = [3]float32{1, 0, 0}
	colorGreen = [3]float32{0, 1, 0}
	colorBlue  = [3]float32{0, 0, 1}
	colorGray  = [3]float32{0.5, 0.5, 0.5}
)

// axesLines returns x (red), y (green) and z (blue) unit segments.
func axesLines() []lineVertex {
	return []lineVertex{
		{mat.Vec3{0, 0, 0}, colorRed}, {mat.Vec3{1, 0, 0}, colorRed},
		{mat.Vec3{0, 0, 0}, colorGreen}, {mat.Vec3{0, 1, 0}, colorGreen},
		{mat.Vec3{0, 0, 0}, colorBlue}, {mat.Vec3{0, 0, 1}, colorBlue},
	}
}

// gridLines returns a square grid on the plane y = p.Y centered at the
// origin.
func gridLines(p gridParams) []lineVertex {
	half := float32(p.Size) / 2
	step := float32(p.Step)
	y := float32(p.Y)
	n := int(p.Size/p.Step + 0.5)

	lines := make([]lineVertex, 0, 4*(n+1))
	for i := 0; i <= n; i++ {
		d := -half + float32(i)*step
		lines = append(lines,
			lineVertex{mat.Vec3{d, y, -half}, colorGray},
			lineVertex{mat.Vec3{d, y, half}, colorGray},
			lineVertex{mat.Vec3{-half, y, d}, colorGray},
			lineVertex{mat.Vec3{half, y, d}, colorGray},
		)
	}
	return lines
}

// Interleaved x, y, z, r, g, b.
func lineBuffer(lines []lineVertex) []float32 {
	buf := make([]float32, 0, len(lines)*6)
	for _, l := range lines {
		buf = append(buf, l.pos[0], l.pos[1], l.pos[2], l.color[0], l.color[1], l.color[2])
	}
	return buf
}
