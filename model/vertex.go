package model

import (
	"bytes"
	"encoding/binary"
	vm "local/vector_math"
	"log"
)

// Vertex is the per-vertex record uploaded to the vertex buffer. All members are float32 triples
// without padding, 36 Byte per vertex.
type Vertex struct {
	Pos    vm.Vec3
	Normal vm.Vec3
	Color  vm.Vec3
}

const VertexSize = 36

// rawBytes writes a given fixed size object as its little endian byte representation, voiding all
// type information in the process. This is what vk.Memcopy expects as a source.
func rawBytes(p interface{}) []byte {
	buf := new(bytes.Buffer)
	err := binary.Write(buf, binary.LittleEndian, p)
	if err != nil {
		log.Printf("binary.Write failed: %v", err)
	}
	return buf.Bytes()
}

func float32Bytes(f []float32) []byte {
	return rawBytes(f)
}
