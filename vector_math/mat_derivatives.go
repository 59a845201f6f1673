package vector_math

import "math"

func New4x4RotXMat(rad float64) Mat4 {
	m := NewUnitMat()
	m[1][1] = float32(math.Cos(rad))
	m[1][2] = -float32(math.Sin(rad))
	m[2][1] = float32(math.Sin(rad))
	m[2][2] = float32(math.Cos(rad))
	return m
}

func New4x4RotYMat(rad float64) Mat4 {
	m := NewUnitMat()
	m[0][0] = float32(math.Cos(rad))
	m[0][2] = float32(math.Sin(rad))
	m[2][0] = -float32(math.Sin(rad))
	m[2][2] = float32(math.Cos(rad))
	return m
}

func New4x4RotZMat(rad float64) Mat4 {
	m := NewUnitMat()
	m[0][0] = float32(math.Cos(rad))
	m[0][1] = -float32(math.Sin(rad))
	m[1][0] = float32(math.Sin(rad))
	m[1][1] = float32(math.Cos(rad))
	return m
}

func NewUnitMat() Mat4 {
	var um Mat4
	for i := range um {
		um[i][i] = 1
	}
	return um
}

// NewRotation builds an axis-angle rotation (Rodrigues). The axis does not need to be normalized.
func NewRotation(rad float64, axis Vec3) Mat4 {
	n := axis.Norm()
	ux, uy, uz := n.X, n.Y, n.Z
	cosT := float32(math.Cos(rad))
	sinT := float32(math.Sin(rad))
	rm := NewUnitMat()
	rm[0][0] = cosT + ((ux * ux) * (1 - cosT))
	rm[0][1] = (ux*uy)*(1-cosT) - (uz * sinT)
	rm[0][2] = (ux*uz)*(1-cosT) + (uy * sinT)

	rm[1][0] = (uy*ux)*(1-cosT) + (uz * sinT)
	rm[1][1] = cosT + (uy*uy)*(1-cosT)
	rm[1][2] = (uy*uz)*(1-cosT) - (ux * sinT)

	rm[2][0] = (uz*ux)*(1-cosT) - (uy * sinT)
	rm[2][1] = (uz*uy)*(1-cosT) + (ux * sinT)
	rm[2][2] = cosT + (uz*uz)*(1-cosT)

	return rm
}

func NewScale(s Vec3) Mat4 {
	sm := NewUnitMat()
	sm[0][0] = s.X
	sm[1][1] = s.Y
	sm[2][2] = s.Z
	return sm
}

func NewTranslation(t Vec3) Mat4 {
	tm := NewUnitMat()
	tm[0][3] = t.X
	tm[1][3] = t.Y
	tm[2][3] = t.Z
	return tm
}
