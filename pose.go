package main

import (
	"bytes"
	"fmt"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

type pose struct {
	RotationVector mat.Vec3
	Translation    mat.Vec3
	ZNear          float64
	HalfFov        bool
}

func (p pose) String() string {
	return fmt.Sprintf("rvec: %.6f %.6f %.6f\ntvec: %.6f %.6f %.6f\nz_near: %.6f\nhalf_fov: %v",
		p.RotationVector[0], p.RotationVector[1], p.RotationVector[2],
		p.Translation[0], p.Translation[1], p.Translation[2],
		p.ZNear, p.HalfFov,
	)
}

// boardCloud returns the board corners in the camera frame.
func boardCloud(b boardGeometry, modelView mat.Mat4) (*pc.PointCloud, error) {
	n := len(b.Vertices)
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Fields: []string{"x", "y", "z"},
			Size:   []int{4, 4, 4},
			Type:   []string{"F", "F", "F"},
			Count:  []int{1, 1, 1},
			Width:  n,
			Height: 1,
		},
		Points: n,
		Data:   make([]byte, n*4*3),
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for _, v := range b.Vertices {
		it.SetVec3(modelView.Transform(v))
		it.Incr()
	}
	return pp, nil
}

func marshalBoardCloud(b boardGeometry, modelView mat.Mat4) ([]byte, error) {
	pp, err := boardCloud(b, modelView)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pc.Marshal(pp, &buf); err != nil {
		return nil, fmt.Errorf("marshaling board cloud: %w", err)
	}
	return buf.Bytes(), nil
}
