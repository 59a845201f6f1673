package vector_math

import (
	"fmt"
	"strings"
	"unsafe"
)

// Mat4 is a 4x4 matrix indexed as m[row][col]. It is a value type, so all operations return
// new matrices and leave their receivers untouched.
type Mat4 [4][4]float32

// matEps is the tolerance used by Equals. Rotations are computed in float64 and truncated,
// so exact comparisons are not meaningful.
const matEps = 1e-5

func (m Mat4) Add(b Mat4) Mat4 {
	var c Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c[i][j] = m[i][j] + b[i][j]
		}
	}
	return c
}

func (m Mat4) Sub(b Mat4) Mat4 {
	var c Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c[i][j] = m[i][j] - b[i][j]
		}
	}
	return c
}

func (m Mat4) Mult(b Mat4) Mat4 {
	var c Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				c[i][j] += m[i][k] * b[k][j]
			}
		}
	}
	return c
}

func (m Mat4) Transpose() Mat4 {
	var mT Mat4
	for i := range m {
		for j := range m[i] {
			mT[j][i] = m[i][j]
		}
	}
	return mT
}

func (m Mat4) Equals(b Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !approx(m[i][j], b[i][j], matEps) {
				return false
			}
		}
	}
	return true
}

// Rotate returns m * R where R rotates rad radians around axis
func (m Mat4) Rotate(rad float64, axis Vec3) Mat4 {
	return m.Mult(NewRotation(rad, axis))
}

// Translate returns m * T
func (m Mat4) Translate(move Vec3) Mat4 {
	return m.Mult(NewTranslation(move))
}

// Scale returns m * S
func (m Mat4) Scale(factors Vec3) Mat4 {
	return m.Mult(NewScale(factors))
}

// ByteSize reports the memory footprint of the matrix once unrolled for the GPU
func (m Mat4) ByteSize() int {
	return int(unsafe.Sizeof(m[0][0])) * 16
}

// Unroll flattens the matrix in column-major order, which is the layout GLSL expects for a mat4
// in both uniform buffers and push constants.
func (m Mat4) Unroll() []float32 {
	f := make([]float32, 16)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			f[c*4+r] = m[r][c]
		}
	}
	return f
}

func (m Mat4) String() string {
	mStr := strings.Builder{}
	for i := range m {
		if i > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("%v", m[i]))
	}
	return mStr.String()
}
