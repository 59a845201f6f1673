package model

import (
	"errors"
	"fmt"
	vm "local/vector_math"
)

var (
	ErrNoMesh    = errors.New("no mesh set")
	ErrColorRows = errors.New("color rows match neither 1, #V nor #F")
)

type ColorMode int

const (
	COLOR_UNIFORM ColorMode = iota
	COLOR_PER_VERTEX
	COLOR_PER_FACE
)

// ViewerData holds everything the viewer draws for one mesh: geometry, colors and draw options.
// The mesh arrays are kept exactly as handed in; any normalization for display happens in the
// model matrix.
type ViewerData struct {
	V []vm.Vec3
	F [][3]uint32
	C []vm.Vec3

	ColorMode ColorMode
	ShowFaces bool
	ShowLines bool
	LineColor vm.Vec3

	// Dirty is set whenever the geometry or colors change and cleared by whoever uploads the data
	Dirty bool
}

func NewViewerData() *ViewerData {
	return &ViewerData{
		ShowFaces: true,
		ShowLines: false,
		LineColor: Black,
	}
}

// SetMesh replaces the current mesh. Colors fall back to the default uniform mesh color.
func (d *ViewerData) SetMesh(v []vm.Vec3, f [][3]uint32) error {
	if err := validate(v, f); err != nil {
		return fmt.Errorf("set mesh: %w", err)
	}
	d.V = v
	d.F = f
	d.C = []vm.Vec3{DefaultMeshColor}
	d.ColorMode = COLOR_UNIFORM
	d.Dirty = true
	return nil
}

// SetColors sets the mesh colors. A single row colors the whole mesh, #V rows are taken as
// per-vertex colors and #F rows as per-face colors, checked in that order.
func (d *ViewerData) SetColors(c []vm.Vec3) error {
	if len(d.V) == 0 {
		return fmt.Errorf("set colors: %w", ErrNoMesh)
	}
	switch len(c) {
	case 1:
		d.ColorMode = COLOR_UNIFORM
	case len(d.V):
		d.ColorMode = COLOR_PER_VERTEX
	case len(d.F):
		d.ColorMode = COLOR_PER_FACE
	default:
		return fmt.Errorf("set colors: got %d rows for %d vertices and %d faces: %w", len(c), len(d.V), len(d.F), ErrColorRows)
	}
	d.C = c
	d.Dirty = true
	return nil
}

// Clear drops mesh and colors
func (d *ViewerData) Clear() {
	d.V = nil
	d.F = nil
	d.C = nil
	d.ColorMode = COLOR_UNIFORM
	d.Dirty = true
}

func (d *ViewerData) IsEmpty() bool {
	return len(d.V) == 0
}

func (d *ViewerData) colorOf(vertex int, face int) vm.Vec3 {
	switch d.ColorMode {
	case COLOR_PER_VERTEX:
		return d.C[vertex]
	case COLOR_PER_FACE:
		return d.C[face]
	default:
		if len(d.C) == 0 {
			return DefaultMeshColor
		}
		return d.C[0]
	}
}

// Vertices returns the vertex buffer contents. Per-face colors require the mesh to be un-indexed
// (every face gets its own three vertices and a flat normal), otherwise vertices are shared and
// carry smooth normals.
func (d *ViewerData) Vertices() []Vertex {
	if d.ColorMode == COLOR_PER_FACE {
		fn := FaceNormals(d.V, d.F)
		verts := make([]Vertex, 0, 3*len(d.F))
		for i, face := range d.F {
			for _, idx := range face {
				verts = append(verts, Vertex{
					Pos:    d.V[idx],
					Normal: fn[i],
					Color:  d.colorOf(int(idx), i),
				})
			}
		}
		return verts
	}
	vn := VertexNormals(d.V, d.F)
	verts := make([]Vertex, len(d.V))
	for i := range d.V {
		verts[i] = Vertex{
			Pos:    d.V[i],
			Normal: vn[i],
			Color:  d.colorOf(i, -1),
		}
	}
	return verts
}

// Indices returns the index buffer contents matching Vertices.
func (d *ViewerData) Indices() []uint32 {
	id := make([]uint32, 0, 3*len(d.F))
	if d.ColorMode == COLOR_PER_FACE {
		for i := range d.F {
			base := uint32(3 * i)
			id = append(id, base, base+1, base+2)
		}
		return id
	}
	for _, face := range d.F {
		id = append(id, face[0], face[1], face[2])
	}
	return id
}
