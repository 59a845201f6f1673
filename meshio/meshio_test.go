package meshio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"math"
	"mesh_viewer/model"
	"os"
	"path/filepath"
	"strings"
	"testing"

	vm "local/vector_math"
)

const cubeOBJ = `# unit cube
o cube
v -0.5 -0.5 -0.5
v  0.5 -0.5 -0.5
v -0.5  0.5 -0.5
v  0.5  0.5 -0.5
v -0.5 -0.5  0.5
v  0.5 -0.5  0.5
v -0.5  0.5  0.5
v  0.5  0.5  0.5
f 1 3 4 2
f 5 6 8 7
f 1 5 7 3
f 2 4 8 6
f 1 2 6 5
f 3 7 8 4
`

func TestReadOBJ(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("read obj: %v", err)
	}
	if m.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.VertexCount())
	}
	// 6 quads become 12 triangles
	if m.FaceCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", m.FaceCount())
	}
	if m.V[7] != (vm.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("vertex positions changed while loading: %v", m.V[7])
	}
	// OBJ indices are 1-based, the first quad "1 3 4 2" fans into (0 2 3) and (0 3 1)
	if m.F[0] != [3]uint32{0, 2, 3} || m.F[1] != [3]uint32{0, 3, 1} {
		t.Errorf("unexpected triangulation: %v %v", m.F[0], m.F[1])
	}
}

func TestReadOBJColorBuffer(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("read obj: %v", err)
	}
	c := model.UniformColors(m.VertexCount(), model.Green)
	if len(c) != m.VertexCount() {
		t.Fatalf("color buffer has %d rows for %d vertices", len(c), m.VertexCount())
	}
	for i := range c {
		if c[i] != (vm.Vec3{X: 0, Y: 1, Z: 0}) {
			t.Errorf("row %d is %v", i, c[i])
		}
	}
}

func TestReadOBJMalformed(t *testing.T) {
	tests := map[string]string{
		"bad number":    "o bad\nv a b c\n",
		"short vertex":  "o bad\nv 1 2\n",
		"index too big": "o bad\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"no vertices":   "# nothing here\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadOBJ(strings.NewReader(src)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestTriangulate(t *testing.T) {
	tris, err := triangulate([]int{0, 1, 2, 3, 4}, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]uint32{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	if len(tris) != len(want) {
		t.Fatalf("expected %d triangles, got %v", len(want), tris)
	}
	for i := range want {
		if tris[i] != want[i] {
			t.Errorf("triangle %d: %v != %v", i, tris[i], want[i])
		}
	}
	if _, err := triangulate([]int{0, 1}, 5); !errors.Is(err, ErrMalformed) {
		t.Errorf("a two vertex face is malformed, got %v", err)
	}
	if _, err := triangulate([]int{0, 1, -1}, 5); !errors.Is(err, ErrMalformed) {
		t.Errorf("negative index is malformed, got %v", err)
	}
}

// stlBytes encodes triangles as binary STL
func stlBytes(tris [][3]vm.Vec3) []byte {
	buf := new(bytes.Buffer)
	header := make([]byte, stlHeaderSize)
	copy(header, "test solid")
	buf.Write(header)
	binary.Write(buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		binary.Write(buf, binary.LittleEndian, [3]float32{}) // normal
		for _, p := range tri {
			binary.Write(buf, binary.LittleEndian, [3]float32{p.X, p.Y, p.Z})
		}
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestReadSTLWeldsVertices(t *testing.T) {
	a, b, c, d := vm.Vec3{}, vm.Vec3{X: 1}, vm.Vec3{Y: 1}, vm.Vec3{X: 1, Y: 1}
	m, err := ReadSTL(bytes.NewReader(stlBytes([][3]vm.Vec3{{a, b, c}, {b, d, c}})))
	if err != nil {
		t.Fatalf("read stl: %v", err)
	}
	if m.FaceCount() != 2 {
		t.Errorf("expected 2 faces, got %d", m.FaceCount())
	}
	if m.VertexCount() != 4 {
		t.Errorf("shared corners should be welded into 4 vertices, got %d", m.VertexCount())
	}
	if m.F[1] != [3]uint32{1, 3, 2} {
		t.Errorf("second face should reuse welded vertices, got %v", m.F[1])
	}
}

func TestReadSTLMalformed(t *testing.T) {
	good := stlBytes([][3]vm.Vec3{{{}, {X: 1}, {Y: 1}}})
	if _, err := ReadSTL(bytes.NewReader(good[:40])); !errors.Is(err, ErrMalformed) {
		t.Errorf("truncated header: expected ErrMalformed, got %v", err)
	}
	if _, err := ReadSTL(bytes.NewReader(good[:len(good)-1])); !errors.Is(err, ErrMalformed) {
		t.Errorf("truncated triangle: expected ErrMalformed, got %v", err)
	}
	if _, err := ReadSTL(bytes.NewReader(append(good, 0))); !errors.Is(err, ErrMalformed) {
		t.Errorf("trailing data: expected ErrMalformed, got %v", err)
	}
}

func TestToFloat32(t *testing.T) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(-2.5))
	if toFloat32(b) != -2.5 {
		t.Errorf("expected -2.5, got %f", toFloat32(b))
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	objPath := filepath.Join(dir, "cube.OBJ")
	if err := os.WriteFile(objPath, []byte(cubeOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := ReadFile(objPath)
	if err != nil {
		t.Fatalf("read obj file: %v", err)
	}
	if m.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.VertexCount())
	}

	stlPath := filepath.Join(dir, "tri.stl")
	if err := os.WriteFile(stlPath, stlBytes([][3]vm.Vec3{{{}, {X: 1}, {Y: 1}}}), 0o644); err != nil {
		t.Fatal(err)
	}
	if m, err := ReadFile(stlPath); err != nil || m.FaceCount() != 1 {
		t.Errorf("read stl file: %v", err)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.obj")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: expected fs.ErrNotExist, got %v", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "mesh.ply")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ply: expected ErrUnsupportedFormat, got %v", err)
	}
}

const triOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

const greenMTL = "newmtl green\nKd 0 1 0\n"

func TestReadFileWithMaterials(t *testing.T) {
	tests := []struct {
		name  string
		obj   string
		files map[string]string
	}{
		{"plain triangle", triOBJ, nil},
		{"mtllib next to the obj", "mtllib tri_mat.mtl\nusemtl green\n" + triOBJ, map[string]string{"tri_mat.mtl": greenMTL}},
		{"mtllib file missing", "mtllib gone.mtl\nusemtl green\n" + triOBJ, nil},
		{"sibling mtl without mtllib", "usemtl green\n" + triOBJ, map[string]string{"tri.mtl": greenMTL}},
		{"unreadable mtl", "mtllib broken.mtl\n" + triOBJ, map[string]string{"broken.mtl": "Kd x y z\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			path := filepath.Join(dir, "tri.obj")
			if err := os.WriteFile(path, []byte(tt.obj), 0o644); err != nil {
				t.Fatal(err)
			}

			m, err := ReadFile(path)
			if err != nil {
				t.Fatalf("read file: %v", err)
			}
			if m.VertexCount() != 3 {
				t.Errorf("expected 3 vertices, got %d", m.VertexCount())
			}
			if m.FaceCount() != 1 || m.F[0] != [3]uint32{0, 1, 2} {
				t.Errorf("face data changed while loading: %v", m.F)
			}
			if m.V[1] != (vm.Vec3{X: 1}) {
				t.Errorf("vertex positions changed while loading: %v", m.V)
			}
			if c := model.UniformColors(m.VertexCount(), model.Green); len(c) != 3 {
				t.Errorf("color buffer has %d rows for 3 vertices", len(c))
			}
		})
	}
}

func TestReadOBJIgnoresMtllib(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader("mtllib nowhere.mtl\nusemtl green\n" + triOBJ))
	if err != nil {
		t.Fatalf("read obj: %v", err)
	}
	if m.VertexCount() != 3 || m.FaceCount() != 1 {
		t.Errorf("expected 3 vertices and 1 face, got %d and %d", m.VertexCount(), m.FaceCount())
	}
}

func TestReadFileMalformedOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.obj")
	if err := os.WriteFile(path, []byte("v a b c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}
