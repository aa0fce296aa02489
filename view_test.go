package main

import (
	"testing"

	"github.com/seqsense/boardviewer/camera"
	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
)

func testViewState() *viewState {
	return newViewState(projectionParams{
		ZNear:     0.001,
		ZNearStep: 0.001,
		ZFar:      100,
		FovY:      45,
	})
}

func TestNewViewState(t *testing.T) {
	v := newViewState(projectionParams{ZNear: 0.0001, ZNearStep: 0.001, ZFar: 20, FovY: 20})

	assert.Equal(t, 0.0001, v.zNear)
	assert.Equal(t, 0.001, v.deltaZNear)
	assert.False(t, v.drawAxes, "axes start hidden")
	assert.False(t, v.drawGrid, "grid starts hidden")
	assert.True(t, v.drawBoard)
	assert.False(t, v.halfFov)
	assert.False(t, v.anyButton())
}

func TestViewState_AdjustZNear(t *testing.T) {
	testCases := map[string]struct {
		zNear, step, delta float64
		expected           float64
	}{
		"Increase":      {0.001, 0.001, 0.002, 0.003},
		"StaysPositive": {0.005, 0.001, -0.002, 0.003},
		"Restored":      {0.001, 0.001, -0.005, 0.001},
		"RestoredLarge": {0.1, 0.04, -1, 0.02},
		"ExactlyZero":   {0.001, 0.001, -0.001, 0.001},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := testViewState()
			v.zNear, v.deltaZNear = tt.zNear, tt.step
			v.adjustZNear(tt.delta)
			assert.Greater(t, v.zNear, 0.0)
			assert.InDelta(t, tt.expected, v.zNear, 1e-9)
		})
	}

	t.Run("ZeroStep", func(t *testing.T) {
		v := testViewState()
		v.deltaZNear = 0
		v.adjustZNear(-1)
		assert.Equal(t, v.zNear0, v.zNear)
	})
}

func TestViewState_ScaleStep(t *testing.T) {
	v := testViewState()
	v.scaleStep(2)
	v.scaleStep(2)
	assert.InDelta(t, 0.004, v.deltaZNear, 1e-12)
	v.scaleStep(0.5)
	assert.InDelta(t, 0.002, v.deltaZNear, 1e-12)
}

func TestViewState_Reset(t *testing.T) {
	v := testViewState()
	v.zNear = 3
	v.roll, v.pitch, v.yaw = 0.1, 0.2, 0.3
	v.translation = mat.Vec3{1, 2, 3}
	v.rotationVector = mat.Vec3{4, 5, 6}
	v.drawBoard = false
	v.halfFov = true
	v.deltaZNear = 0.5

	v.reset()

	assert.Equal(t, 0.001, v.zNear)
	assert.Equal(t, mat.Vec3{}, v.translation)
	assert.Equal(t, mat.Vec3{}, v.rotationVector)
	assert.Equal(t, mat.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, camera.Rotation(float32(v.roll), float32(v.pitch), float32(v.yaw)))

	// Toggles and step are kept.
	assert.False(t, v.drawBoard)
	assert.True(t, v.halfFov)
	assert.Equal(t, 0.5, v.deltaZNear)
}

func TestViewState_Toggle(t *testing.T) {
	for name, f := range displayFlagNames {
		f := f
		t.Run(name, func(t *testing.T) {
			v := testViewState()
			before := v.flag(f)
			v.toggle(f)
			assert.Equal(t, !before, v.flag(f))
			v.toggle(f)
			assert.Equal(t, before, v.flag(f))
		})
	}
}

func TestViewState_FlipButton(t *testing.T) {
	v := testViewState()
	assert.False(t, v.anyButton())

	v.flipButton(mouseMiddle)
	assert.True(t, v.mouseButtons[mouseMiddle])
	assert.True(t, v.anyButton())

	v.flipButton(mouseMiddle)
	assert.False(t, v.anyButton())

	v.flipButton(numMouseButtons)
	assert.False(t, v.anyButton())
}
