package renderer

import (
	"testing"

	"mesh_viewer/model"
)

func TestVertexLayoutMatchesUpload(t *testing.T) {
	if got := GetVertexBindingDescription().Stride; got != model.VertexSize {
		t.Fatalf("stride = %d, vertex buffers are packed with %d Byte per vertex", got, model.VertexSize)
	}
	attrs := GetVertexAttributeDescriptions()
	wantOffsets := []uint32{0, 12, 24}
	if len(attrs) != len(wantOffsets) {
		t.Fatalf("got %d attributes, want %d", len(attrs), len(wantOffsets))
	}
	for i, a := range attrs {
		if a.Location != uint32(i) {
			t.Errorf("attribute %d: location = %d", i, a.Location)
		}
		if a.Offset != wantOffsets[i] {
			t.Errorf("attribute %d: offset = %d, want %d", i, a.Offset, wantOffsets[i])
		}
	}
}
