package camera

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

// Rotation returns the rotation of roll, pitch and yaw (radians) composed
// about the fixed world axes. Element (i, j) is stored at m[4*i+j].
func Rotation(roll, pitch, yaw float32) mat.Mat4 {
	sr, cr := math32.Sincos(roll)
	sp, cp := math32.Sincos(pitch)
	sy, cy := math32.Sincos(yaw)

	return mat.Mat4{
		sp*sr*sy + cr*cy, sr * cp, sp*sr*cy - sy*cr, 0,
		sp*sy*cr - sr*cy, cp * cr, sp*cr*cy + sr*sy, 0,
		sy * cp, -sp, cp * cy, 0,
		0, 0, 0, 1,
	}
}

const angleEpsilon = 1e-6

// RotationVector converts the upper-left 3x3 block of the column-major
// matrix m to an axis-angle vector whose norm is the rotation angle.
// m must hold a rotation; the result is undefined otherwise.
func RotationVector(m mat.Mat4) mat.Vec3 {
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = float64(m[4*j+i])
		}
	}

	c := (r[0][0] + r[1][1] + r[2][2] - 1) / 2
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	theta := math.Acos(c)

	// Skew-symmetric part.
	rx := r[2][1] - r[1][2]
	ry := r[0][2] - r[2][0]
	rz := r[1][0] - r[0][1]

	switch {
	case theta < angleEpsilon:
		return mat.Vec3{}
	case math.Pi-theta < angleEpsilon*1000:
		// sin(theta) vanishes; recover the axis from the symmetric part.
		ax := math.Sqrt(math.Max((r[0][0]+1)/2, 0))
		ay := math.Sqrt(math.Max((r[1][1]+1)/2, 0))
		az := math.Sqrt(math.Max((r[2][2]+1)/2, 0))
		switch {
		case ax > angleEpsilon:
			if r[0][1] < 0 {
				ay = -ay
			}
			if r[0][2] < 0 {
				az = -az
			}
		case ay > angleEpsilon:
			if r[1][2] < 0 {
				az = -az
			}
		}
		// Resolve the sign ambiguity with the residual skew part.
		if ax*rx+ay*ry+az*rz < 0 {
			ax, ay, az = -ax, -ay, -az
		}
		return mat.Vec3{
			float32(ax * theta),
			float32(ay * theta),
			float32(az * theta),
		}
	}

	k := theta / (2 * math.Sin(theta))
	return mat.Vec3{float32(rx * k), float32(ry * k), float32(rz * k)}
}
