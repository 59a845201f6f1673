package vector_math

import (
	"math"
)

type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

func (v Vec3) Dot(w Vec3) float32 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vec3) ScalarMul(factor float32) Vec3 {
	return Vec3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))))
}

// Norm returns the unit vector pointing in the direction of v. The zero vector has no direction
// and is returned unchanged instead of producing NaNs.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{
		X: v.X / l,
		Y: v.Y / l,
		Z: v.Z / l,
	}
}

// Min returns the component-wise minimum of v and w
func (v Vec3) Min(w Vec3) Vec3 {
	return Vec3{
		X: float32(math.Min(float64(v.X), float64(w.X))),
		Y: float32(math.Min(float64(v.Y), float64(w.Y))),
		Z: float32(math.Min(float64(v.Z), float64(w.Z))),
	}
}

// Max returns the component-wise maximum of v and w
func (v Vec3) Max(w Vec3) Vec3 {
	return Vec3{
		X: float32(math.Max(float64(v.X), float64(w.X))),
		Y: float32(math.Max(float64(v.Y), float64(w.Y))),
		Z: float32(math.Max(float64(v.Z), float64(w.Z))),
	}
}

func (v Vec3) ApproxEquals(w Vec3, eps float32) bool {
	return approx(v.X, w.X, eps) && approx(v.Y, w.Y, eps) && approx(v.Z, w.Z, eps)
}
