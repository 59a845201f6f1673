package model

import vm "local/vector_math"

var (
	Green = vm.Vec3{X: 0, Y: 1, Z: 0}
	White = vm.Vec3{X: 1, Y: 1, Z: 1}
	Black = vm.Vec3{}

	// DefaultMeshColor is used until SetColors is called, the same gold libigl starts with
	DefaultMeshColor = vm.Vec3{X: 255.0 / 255.0, Y: 228.0 / 255.0, Z: 58.0 / 255.0}
)

// UniformColors builds a color buffer with exactly n rows, all set to c.
func UniformColors(n int, c vm.Vec3) []vm.Vec3 {
	if n < 0 {
		n = 0
	}
	colors := make([]vm.Vec3, n)
	for i := range colors {
		colors[i] = c
	}
	return colors
}
