package camera

import (
	"github.com/seqsense/pcgol/mat"
)

// LookAt returns the column-major view matrix of a viewer placed at eye
// looking towards center.
func LookAt(eye, center, up mat.Vec3) mat.Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return mat.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}
