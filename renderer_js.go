package main

import (
	"fmt"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

const (
	aVertexPosition = 0
	aVertexAttr     = 1
)

// webglDrawer draws the scene with WebGL2. It implements drawer.
type webglDrawer struct {
	gl *webgl.WebGL

	board, line *shaderProgram
	uSampler    webgl.Location
	uScale      webgl.Location

	boardBuf, axesBuf, gridBuf webgl.Buffer
	nAxes, nGrid               int
	texture                    webgl.Texture

	projection, modelView mat.Mat4
}

func newWebGLDrawer(gl *webgl.WebGL, board boardGeometry, grid gridParams) (*webglDrawer, error) {
	pBoard, err := newShaderProgram(gl, vsBoardSource, fsBoardSource)
	if err != nil {
		return nil, fmt.Errorf("board shader: %w", err)
	}
	pLine, err := newShaderProgram(gl, vsLineSource, fsLineSource)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	d := &webglDrawer{
		gl:       gl,
		board:    pBoard,
		line:     pLine,
		uSampler: gl.GetUniformLocation(pBoard.program, "uSampler"),
		uScale:   gl.GetUniformLocation(pLine.program, "uScale"),
		boardBuf: gl.CreateBuffer(),
		axesBuf:  gl.CreateBuffer(),
		gridBuf:  gl.CreateBuffer(),
		texture:  gl.CreateTexture(),
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, d.boardBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(board.buffer()), gl.STATIC_DRAW)

	axes := axesLines()
	d.nAxes = len(axes)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.axesBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(lineBuffer(axes)), gl.STATIC_DRAW)

	gridL := gridLines(grid)
	d.nGrid = len(gridL)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.gridBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(lineBuffer(gridL)), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexAttr)

	gl.ClearColor(0.2, 0.2, 0.2, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	return d, nil
}

// setTexture uploads an image source (HTMLImageElement or ImageData) as the
// board texture.
func (d *webglDrawer) setTexture(img interface{}) {
	gl := d.gl
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE, img)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (d *webglDrawer) begin(width, height int) {
	d.gl.Viewport(0, 0, width, height)
	d.gl.Clear(d.gl.COLOR_BUFFER_BIT | d.gl.DEPTH_BUFFER_BIT)
}

func (d *webglDrawer) SetProjection(m mat.Mat4) {
	d.projection = m
}

func (d *webglDrawer) SetModelView(m mat.Mat4) {
	d.modelView = m
}

func (d *webglDrawer) use(p *shaderProgram) {
	d.gl.UseProgram(p.program)
	d.gl.UniformMatrix4fv(p.projection, false, d.projection)
	d.gl.UniformMatrix4fv(p.modelView, false, d.modelView)
}

func (d *webglDrawer) DrawBoard() {
	gl := d.gl
	d.use(d.board)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.Uniform1i(d.uSampler, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.boardBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 5*4, 0)
	gl.VertexAttribPointer(aVertexAttr, 2, gl.FLOAT, false, 5*4, 3*4)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

func (d *webglDrawer) drawLines(buf webgl.Buffer, n int, scale float32) {
	gl := d.gl
	d.use(d.line)
	gl.Uniform1f(d.uScale, scale)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 6*4, 0)
	gl.VertexAttribPointer(aVertexAttr, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.DrawArrays(gl.LINES, 0, n)
}

func (d *webglDrawer) DrawAxes(scale float32) {
	d.drawLines(d.axesBuf, d.nAxes, scale)
}

func (d *webglDrawer) DrawGrid() {
	d.drawLines(d.gridBuf, d.nGrid, 1)
}
