package camera

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func expectMat4(t *testing.T, expected, m mat.Mat4, tol float32) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a := 4*i + j
			diff := m[a] - expected[a]
			if diff < -tol || tol < diff {
				t.Errorf("m(%d, %d) expected to be %0.4f, got %0.4f",
					i, j, expected[a], m[a],
				)
			}
		}
	}
}

func expectVec3(t *testing.T, expected, v mat.Vec3, tol float32) {
	t.Helper()
	for i := range v {
		diff := v[i] - expected[i]
		if diff < -tol || tol < diff {
			t.Errorf("v(%d) expected to be %0.4f, got %0.4f", i, expected[i], v[i])
		}
	}
}

var identity = mat.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func TestRotation(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		if r := Rotation(0, 0, 0); r != identity {
			t.Errorf("Expected identity, got %v", r)
		}
	})

	testCases := map[string]struct {
		roll, pitch, yaw float32
		expected         mat.Mat4
	}{
		"Yaw": {
			yaw: math.Pi / 2,
			expected: mat.Mat4{
				0, 0, -1, 0,
				0, 1, 0, 0,
				1, 0, 0, 0,
				0, 0, 0, 1,
			},
		},
		"Pitch": {
			pitch: math.Pi / 2,
			expected: mat.Mat4{
				1, 0, 0, 0,
				0, 0, 1, 0,
				0, -1, 0, 0,
				0, 0, 0, 1,
			},
		},
		"Roll": {
			roll: math.Pi / 2,
			expected: mat.Mat4{
				0, 1, 0, 0,
				-1, 0, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			expectMat4(t, tt.expected, Rotation(tt.roll, tt.pitch, tt.yaw), 1e-6)
		})
	}

	t.Run("Orthonormal", func(t *testing.T) {
		r := Rotation(0.3, -0.7, 1.9)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				var dot float32
				for k := 0; k < 3; k++ {
					dot += r[4*i+k] * r[4*j+k]
				}
				expected := float32(0)
				if i == j {
					expected = 1
				}
				if diff := dot - expected; diff < -1e-5 || 1e-5 < diff {
					t.Errorf("row(%d).row(%d) expected to be %0.1f, got %0.6f", i, j, expected, dot)
				}
			}
		}
	})
}

func TestRotationVector(t *testing.T) {
	testCases := map[string]struct {
		m        mat.Mat4
		expected mat.Vec3
	}{
		"Identity": {
			m:        identity,
			expected: mat.Vec3{},
		},
		"Yaw": {
			m:        Rotation(0, 0, 0.4),
			expected: mat.Vec3{0, 0.4, 0},
		},
		"Pitch": {
			m:        Rotation(0, -0.25, 0),
			expected: mat.Vec3{-0.25, 0, 0},
		},
		"Roll": {
			m:        Rotation(1.2, 0, 0),
			expected: mat.Vec3{0, 0, 1.2},
		},
		"HalfTurnX": {
			m: mat.Mat4{
				1, 0, 0, 0,
				0, -1, 0, 0,
				0, 0, -1, 0,
				0, 0, 0, 1,
			},
			expected: mat.Vec3{math.Pi, 0, 0},
		},
		"HalfTurnDiagonal": {
			// 2aa^T - I with a = (0, 1, 1)/sqrt(2)
			m: mat.Mat4{
				-1, 0, 0, 0,
				0, 0, 1, 0,
				0, 1, 0, 0,
				0, 0, 0, 1,
			},
			expected: mat.Vec3{0, math.Pi / math.Sqrt2, math.Pi / math.Sqrt2},
		},
		"IgnoresTranslation": {
			m:        mat.Translate(1, 2, 3).Mul(Rotation(0, 0, 0.4)),
			expected: mat.Vec3{0, 0.4, 0},
		},
		"Composed": {
			m:        Rotation(0.2, 0.1, 0.3),
			expected: mat.Vec3{0.128859, 0.288749, 0.183334},
		},
		"ColumnMajor": {
			// Rotation of 0.5 rad about +Z: column 0 is (cos, sin, 0).
			m: mat.Mat4{
				0.8775826, 0.4794255, 0, 0,
				-0.4794255, 0.8775826, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			},
			expected: mat.Vec3{0, 0, 0.5},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			expectVec3(t, tt.expected, RotationVector(tt.m), 1e-4)
		})
	}
}

func TestRotationVector_Norm(t *testing.T) {
	// The angle of a composed rotation is recovered from the trace.
	r := Rotation(0.2, 0.3, -0.1)
	var tr float32
	for i := 0; i < 3; i++ {
		tr += r[4*i+i]
	}
	expected := float32(math.Acos(float64(tr-1) / 2))
	if n := RotationVector(r).Norm(); n < expected-1e-4 || expected+1e-4 < n {
		t.Errorf("Expected norm %0.4f, got %0.4f", expected, n)
	}
}
