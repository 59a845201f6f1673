package renderer

import (
	"unsafe"

	"mesh_viewer/model"

	vk "github.com/goki/vulkan"
)

func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(model.Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

// GetVertexAttributeDescriptions matches the 'layout(location = n) in' declarations of mesh.vert
func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(model.Vertex{}.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(model.Vertex{}.Normal)),
		},
		{
			Location: 2,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(model.Vertex{}.Color)),
		},
	}
}
