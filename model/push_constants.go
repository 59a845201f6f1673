package model

import (
	vm "local/vector_math"
)

// PushConstants holds the per-draw values pushed before each vk.CmdDrawIndexed. Tint.W > 0 replaces
// the vertex color with Tint.XYZ, which is how the wireframe overlay is drawn in a single color.
type PushConstants struct {
	Model vm.Mat4
	Tint  [4]float32
}

// PushConstantsSize is the byte size of PushConstants as seen by the shader
func PushConstantsSize() uint32 {
	return 64 + 16
}

func (p *PushConstants) Bytes() []byte {
	b := make([]byte, 0, PushConstantsSize())
	b = append(b, float32Bytes(p.Model.Unroll())...)
	b = append(b, float32Bytes(p.Tint[:])...)
	return b
}

func NewTint(c vm.Vec3) [4]float32 {
	return [4]float32{c.X, c.Y, c.Z, 1}
}
