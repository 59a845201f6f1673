package model

import (
	"errors"
	"fmt"
	vm "local/vector_math"
)

var (
	ErrEmptyMesh = errors.New("mesh has no vertices")
	ErrFaceIndex = errors.New("face references a vertex that does not exist")
)

// Mesh is an indexed triangle mesh as it comes out of a file: V holds one position per vertex and
// F holds three vertex indices per face. It is loaded once and never modified afterwards.
type Mesh struct {
	V []vm.Vec3
	F [][3]uint32
}

// NewMesh validates the given arrays and wraps them without copying.
func NewMesh(v []vm.Vec3, f [][3]uint32) (*Mesh, error) {
	if err := validate(v, f); err != nil {
		return nil, err
	}
	return &Mesh{V: v, F: f}, nil
}

func validate(v []vm.Vec3, f [][3]uint32) error {
	if len(v) == 0 {
		return ErrEmptyMesh
	}
	n := uint32(len(v))
	for i, face := range f {
		for _, idx := range face {
			if idx >= n {
				return fmt.Errorf("face %d index %d (vertex count %d): %w", i, idx, n, ErrFaceIndex)
			}
		}
	}
	return nil
}

func (m *Mesh) VertexCount() int {
	return len(m.V)
}

func (m *Mesh) FaceCount() int {
	return len(m.F)
}

// Bounds returns the axis aligned bounding box of all vertices.
func (m *Mesh) Bounds() (vm.Vec3, vm.Vec3) {
	min, max, _ := vm.Bounds(m.V)
	return min, max
}
