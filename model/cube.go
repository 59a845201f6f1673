package model

import vm "local/vector_math"

// NewCubeMesh returns a unit cube centered at the origin with 8 shared corners and 12 outward
// facing (counter-clockwise) triangles. Corner i sits at x = bit 0, y = bit 1, z = bit 2.
func NewCubeMesh() *Mesh {
	v := make([]vm.Vec3, 8)
	for i := range v {
		v[i] = vm.Vec3{
			X: float32(i&1) - 0.5,
			Y: float32((i>>1)&1) - 0.5,
			Z: float32((i>>2)&1) - 0.5,
		}
	}

	f := [][3]uint32{
		{0, 2, 1}, {1, 2, 3}, // -z
		{4, 5, 6}, {5, 7, 6}, // +z
		{0, 4, 2}, {2, 4, 6}, // -x
		{1, 3, 5}, {3, 7, 5}, // +x
		{0, 1, 4}, {1, 5, 4}, // -y
		{2, 6, 3}, {3, 6, 7}, // +y
	}

	return &Mesh{V: v, F: f}
}
