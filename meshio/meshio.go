// Package meshio reads triangle meshes from disk. OBJ files are decoded with g3n's OBJ decoder,
// binary STL files are parsed directly.
package meshio

import (
	"errors"
	"fmt"
	"log"
	"mesh_viewer/model"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
	ErrMalformed         = errors.New("malformed mesh file")
)

// ReadFile loads the mesh at path, picking the decoder by file extension.
func ReadFile(path string) (*model.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".obj" && ext != ".stl" {
		return nil, fmt.Errorf("%s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}

	log.Printf("Reading mesh file %s", path)
	var m *model.Mesh
	var err error
	if ext == ".obj" {
		m, err = readOBJFile(path)
	} else {
		m, err = readSTLFile(path)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Successfully read mesh file %s, Vertices: %d, Faces: %d", path, m.VertexCount(), m.FaceCount())
	return m, nil
}

func readSTLFile(path string) (*model.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()

	m, err := ReadSTL(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
