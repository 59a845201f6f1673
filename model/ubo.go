package model

import (
	vm "local/vector_math"
)

// UniformBufferObject is the per-frame scene state bound at set 0, binding 0 of the vertex and
// fragment shader. Layout follows std140: two mat4 followed by a vec4.
type UniformBufferObject struct {
	View       vm.Mat4
	Projection vm.Mat4
	// Light.xyz is the light direction in view space, Light.w the amount of diffuse shading
	// (0 renders flat colors).
	Light [4]float32
}

// SizeOfUbo returns the size of the UniformBufferObject as laid out on the device
func SizeOfUbo() uint64 {
	return 2*64 + 16
}

func (u *UniformBufferObject) Bytes() []byte {
	b := make([]byte, 0, SizeOfUbo())
	b = append(b, float32Bytes(u.View.Unroll())...)
	b = append(b, float32Bytes(u.Projection.Unroll())...)
	b = append(b, float32Bytes(u.Light[:])...)
	return b
}
