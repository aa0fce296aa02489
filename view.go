package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

type mouseButton int

const (
	mouseLeft mouseButton = iota
	mouseRight
	mouseMiddle
	numMouseButtons
)

type displayFlag int

const (
	flagAxes displayFlag = iota
	flagGrid
	flagBoard
	flagHalfFov
)

var displayFlagNames = map[string]displayFlag{
	"axes":    flagAxes,
	"grid":    flagGrid,
	"board":   flagBoard,
	"halffov": flagHalfFov,
}

type viewState struct {
	zNear0     float64
	zNear      float64
	deltaZNear float64

	roll, pitch, yaw float64
	translation      mat.Vec3

	// Updated by composeFrame.
	rotationVector mat.Vec3

	// Flipped on both press and release. Two presses without a release in
	// between restore the previous value.
	mouseButtons [numMouseButtons]bool

	drawAxes, drawGrid, drawBoard, halfFov bool
}

func newViewState(p projectionParams) *viewState {
	return &viewState{
		zNear0:     p.ZNear,
		zNear:      p.ZNear,
		deltaZNear: p.ZNearStep,
		drawBoard:  true,
	}
}

func (v *viewState) adjustZNear(delta float64) {
	v.zNear += delta
	if v.zNear > 0 {
		return
	}
	if v.deltaZNear <= 0 {
		// Step underflowed; no number of additions can restore zNear.
		v.zNear = v.zNear0
		return
	}
	// Smallest number of steps bringing zNear above zero.
	k := math.Floor(-v.zNear/v.deltaZNear) + 1
	v.zNear += k * v.deltaZNear
	for v.zNear <= 0 {
		v.zNear += v.deltaZNear
	}
}

func (v *viewState) scaleStep(factor float64) {
	v.deltaZNear *= factor
}

func (v *viewState) reset() {
	v.zNear = v.zNear0
	v.roll, v.pitch, v.yaw = 0, 0, 0
	v.translation = mat.Vec3{}
	v.rotationVector = mat.Vec3{}
}

func (v *viewState) toggle(f displayFlag) {
	switch f {
	case flagAxes:
		v.drawAxes = !v.drawAxes
	case flagGrid:
		v.drawGrid = !v.drawGrid
	case flagBoard:
		v.drawBoard = !v.drawBoard
	case flagHalfFov:
		v.halfFov = !v.halfFov
	}
}

func (v *viewState) flag(f displayFlag) bool {
	switch f {
	case flagAxes:
		return v.drawAxes
	case flagGrid:
		return v.drawGrid
	case flagBoard:
		return v.drawBoard
	case flagHalfFov:
		return v.halfFov
	}
	return false
}

func (v *viewState) flipButton(b mouseButton) {
	if b < 0 || b >= numMouseButtons {
		return
	}
	v.mouseButtons[b] = !v.mouseButtons[b]
}

func (v *viewState) anyButton() bool {
	for _, b := range v.mouseButtons {
		if b {
			return true
		}
	}
	return false
}

func (v *viewState) pose() pose {
	return pose{
		RotationVector: v.rotationVector,
		Translation:    v.translation,
		ZNear:          v.zNear,
		HalfFov:        v.halfFov,
	}
}
