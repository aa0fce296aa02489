package main

import (
	"github.com/seqsense/boardviewer/camera"
	"github.com/seqsense/pcgol/mat"
)

// drawer receives the matrices and draw calls of a frame.
type drawer interface {
	SetProjection(m mat.Mat4)
	SetModelView(m mat.Mat4)
	DrawBoard()
	DrawAxes(scale float32)
	DrawGrid()
}

var (
	lookEye    = mat.Vec3{0, 0, 0}
	lookCenter = mat.Vec3{0, 0, -1}
	lookUp     = mat.Vec3{0, 1, 0}
)

type frameMatrices struct {
	projection, modelView mat.Mat4
}

func modelViewMatrix(v *viewState) mat.Mat4 {
	return composeModelView(v, camera.LookAt(lookEye, lookCenter, lookUp))
}

// composeModelView loads [R|t] from the view state and then applies look,
// so look acts on world points first.
func composeModelView(v *viewState, look mat.Mat4) mat.Mat4 {
	t := v.translation
	return mat.Translate(t[0], t[1], t[2]).
		Mul(camera.Rotation(float32(v.roll), float32(v.pitch), float32(v.yaw))).
		Mul(look)
}

func projectionMatrix(v *viewState, p projectionParams, width, height int) mat.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return camera.Perspective(
		float32(v.zNear), float32(p.ZFar), float32(p.FovY), aspect, v.halfFov,
	)
}

// composeFrame issues one frame to d and caches the rotation vector of the
// resulting view on v.
func composeFrame(v *viewState, p projectionParams, width, height int, d drawer) frameMatrices {
	var f frameMatrices

	f.projection = projectionMatrix(v, p, width, height)
	d.SetProjection(f.projection)

	f.modelView = modelViewMatrix(v)
	v.rotationVector = camera.RotationVector(f.modelView)
	d.SetModelView(f.modelView)

	if v.drawBoard {
		d.DrawBoard()
	}
	if v.drawAxes && v.anyButton() {
		d.DrawAxes(smallAxesScale)
	}
	if v.drawGrid {
		d.DrawGrid()
	}
	if v.drawAxes {
		d.DrawAxes(1)
	}
	return f
}
