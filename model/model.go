package model

import (
	vm "local/vector_math"
)

// Model is a named drawable in the scene. The renderer owns the device buffers created for it and
// refers back to the model by name.
type Model struct {
	Name     string
	Data     *ViewerData
	ModelMat vm.Mat4
}

func NewModel(d *ViewerData, n string) *Model {
	return &Model{
		Name:     n,
		Data:     d,
		ModelMat: vm.NewUnitMat(),
	}
}

// GetVBufferBytes returns the raw bytes representing all vertices for this model.
// Mainly used to execute vk.Memcopy(..., src []byte) to move memory from CPU to GPU
func (m *Model) GetVBufferBytes() []byte {
	return rawBytes(m.Data.Vertices())
}

// GetIdxBufferBytes returns the raw bytes representing the indices used to address vertex data for this model.
func (m *Model) GetIdxBufferBytes() []byte {
	return rawBytes(m.Data.Indices())
}

// IndexCount is the number of indices drawn by vk.CmdDrawIndexed
func (m *Model) IndexCount() uint32 {
	return uint32(3 * len(m.Data.F))
}
