package meshio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"mesh_viewer/model"

	vm "local/vector_math"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// ReadSTL decodes a binary STL stream. STL stores every triangle with its own three corners, so
// corners with identical positions are welded into shared vertices to get smooth vertex normals.
// The stored facet normals are ignored.
func ReadSTL(r io.Reader) (*model.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}
	if len(b) < stlHeaderSize+4 {
		return nil, fmt.Errorf("stl of %d Byte is shorter than its header: %w", len(b), ErrMalformed)
	}
	header := b[:stlHeaderSize]
	tCnt := binary.LittleEndian.Uint32(b[stlHeaderSize : stlHeaderSize+4])
	payload := b[stlHeaderSize+4:]
	if uint64(len(payload)) != uint64(tCnt)*stlTriangleSize {
		return nil, fmt.Errorf("stl announces %d triangles but holds %d Byte of triangle data: %w", tCnt, len(payload), ErrMalformed)
	}
	log.Printf("Read stl, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB", trimHeader(header), tCnt, len(payload)/1024)

	return model.NewMesh(toMesh(payload, tCnt))
}

func toMesh(bytes []byte, triangleCnt uint32) ([]vm.Vec3, [][3]uint32) {
	welded := make(map[vm.Vec3]uint32)
	v := make([]vm.Vec3, 0, triangleCnt)
	f := make([][3]uint32, 0, triangleCnt)

	vertexIdx := func(p vm.Vec3) uint32 {
		if idx, ok := welded[p]; ok {
			return idx
		}
		idx := uint32(len(v))
		welded[p] = idx
		v = append(v, p)
		return idx
	}

	for i := 0; i+stlTriangleSize <= len(bytes); i += stlTriangleSize {
		// bytes[i:i+12] is the facet normal, bytes[i+48:i+50] the attribute byte count
		f = append(f, [3]uint32{
			vertexIdx(toVec3(bytes[i+12 : i+24])),
			vertexIdx(toVec3(bytes[i+24 : i+36])),
			vertexIdx(toVec3(bytes[i+36 : i+48])),
		})
	}
	return v, f
}

func toVec3(bytes []byte) vm.Vec3 {
	return vm.Vec3{
		X: toFloat32(bytes[:4]),
		Y: toFloat32(bytes[4:8]),
		Z: toFloat32(bytes[8:12]),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	return math.Float32frombits(bits)
}

func trimHeader(h []byte) string {
	end := len(h)
	for end > 0 && (h[end-1] == 0 || h[end-1] == ' ') {
		end--
	}
	return string(h[:end])
}
