package meshio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mesh_viewer/model"
	"strings"

	"github.com/g3n/engine/loader/obj"
	vm "local/vector_math"
)

// ReadOBJ decodes an OBJ stream into an indexed triangle mesh. All objects in the file are merged
// since OBJ vertex indices are global. Polygons are split into triangle fans. Materials, texture
// coordinates and file normals are ignored.
func ReadOBJ(r io.Reader) (*model.Mesh, error) {
	// the decoder must get a non nil material reader, an empty one leaves every material at its zero value
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, fmt.Errorf("decode obj: %v: %w", err, ErrMalformed)
	}
	return meshFromDecoder(dec)
}

// readOBJFile decodes the OBJ at path. The decoder resolves an mtllib line or a sibling .mtl file
// itself and falls back to a default material when neither can be read.
func readOBJFile(path string) (*model.Mesh, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("open mesh: %w", err)
		}
		return nil, fmt.Errorf("%s: decode obj: %v: %w", path, err, ErrMalformed)
	}
	m, err := meshFromDecoder(dec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func meshFromDecoder(dec *obj.Decoder) (*model.Mesh, error) {
	for _, w := range dec.Warnings {
		log.Printf("OBJ warning: %s", w)
	}

	if len(dec.Vertices)%3 != 0 {
		return nil, fmt.Errorf("vertex array of length %d is not a list of triples: %w", len(dec.Vertices), ErrMalformed)
	}
	v := make([]vm.Vec3, len(dec.Vertices)/3)
	for i := range v {
		v[i] = vm.Vec3{
			X: dec.Vertices[3*i],
			Y: dec.Vertices[3*i+1],
			Z: dec.Vertices[3*i+2],
		}
	}

	var f [][3]uint32
	for _, o := range dec.Objects {
		for _, face := range o.Faces {
			tris, err := triangulate(face.Vertices, len(v))
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", o.Name, err)
			}
			f = append(f, tris...)
		}
	}

	m, err := model.NewMesh(v, f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	return m, nil
}

// triangulate splits a convex polygon (v0, v1, ..., vn) into the fan (v0, vi, vi+1).
func triangulate(poly []int, vertexCount int) ([][3]uint32, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("face with %d vertices: %w", len(poly), ErrMalformed)
	}
	for _, idx := range poly {
		if idx < 0 || idx >= vertexCount {
			return nil, fmt.Errorf("face index %d out of range [0, %d): %w", idx, vertexCount, ErrMalformed)
		}
	}
	tris := make([][3]uint32, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, [3]uint32{uint32(poly[0]), uint32(poly[i]), uint32(poly[i+1])})
	}
	return tris, nil
}
