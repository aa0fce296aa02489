package camera

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

// FrustumBounds returns the near plane extents for a vertical field of view
// given in degrees.
func FrustumBounds(zNear, fovYDeg, aspect float32) (left, right, bottom, top float32) {
	fov := fovYDeg / 2
	top = zNear * math32.Tan(fov*math32.Pi/180)
	bottom = -top
	left = -top * aspect
	right = top * aspect
	return
}

// Perspective builds an off-axis perspective projection.
// With halfFov, the x/y scale terms are doubled and the vertical offset is
// shifted by one so that the visible frustum covers the upper half of a
// projector's physical field of view.
// Element (i, j) is stored at m[4*i+j]. zNear must be positive and fovYDeg
// non-zero.
func Perspective(zNear, zFar, fovYDeg, aspect float32, halfFov bool) mat.Mat4 {
	left, right, bottom, top := FrustumBounds(zNear, fovYDeg, aspect)

	var m mat.Mat4
	if halfFov {
		m[4*0+0] = 4 * zNear / (right - left)
		m[4*1+1] = 4 * zNear / (top - bottom)
		m[4*2+0] = (right + left) / (right - left)
		m[4*2+1] = 1 + 2*(top+bottom)/(top-bottom)
	} else {
		m[4*0+0] = 2 * zNear / (right - left)
		m[4*1+1] = 2 * zNear / (top - bottom)
		m[4*2+0] = (right + left) / (right - left)
		m[4*2+1] = (top + bottom) / (top - bottom)
	}
	m[4*2+2] = -(zFar + zNear) / (zFar - zNear)
	m[4*2+3] = -1
	m[4*3+2] = -2 * zFar * zNear / (zFar - zNear)
	return m
}
