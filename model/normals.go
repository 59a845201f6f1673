package model

import vm "local/vector_math"

// faceNormal returns the unnormalized normal of a triangle. Its length is twice the triangle area,
// which makes it a natural weight when averaging normals at shared vertices.
func faceNormal(v []vm.Vec3, face [3]uint32) vm.Vec3 {
	a := v[face[0]]
	e1 := v[face[1]].Sub(a)
	e2 := v[face[2]].Sub(a)
	return e1.Cross(e2)
}

// FaceNormals returns one unit normal per face, following the counter-clockwise winding convention.
// Degenerate faces get the zero vector.
func FaceNormals(v []vm.Vec3, f [][3]uint32) []vm.Vec3 {
	n := make([]vm.Vec3, len(f))
	for i := range f {
		n[i] = faceNormal(v, f[i]).Norm()
	}
	return n
}

// VertexNormals returns area weighted, normalized vertex normals. Vertices not referenced by any
// face (or only by degenerate ones) get the zero vector.
func VertexNormals(v []vm.Vec3, f [][3]uint32) []vm.Vec3 {
	n := make([]vm.Vec3, len(v))
	for i := range f {
		fn := faceNormal(v, f[i])
		for _, idx := range f[i] {
			n[idx] = n[idx].Add(fn)
		}
	}
	for i := range n {
		n[i] = n[i].Norm()
	}
	return n
}
