package vector_math

import "math"

// ToRad is a helper function to turn degree to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Apply multiplies v by a 4x4 matrix using the homogeneous coordinate w. Passing w = 1 transforms
// a point, w = 0 transforms a direction (translation is ignored).
func Apply(v Vec3, w float32, m Mat4) Vec3 {
	v4 := [4]float32{v.X, v.Y, v.Z, w}
	return Vec3{
		(v4[0] * m[0][0]) + (v4[1] * m[0][1]) + (v4[2] * m[0][2]) + (v4[3] * m[0][3]),
		(v4[0] * m[1][0]) + (v4[1] * m[1][1]) + (v4[2] * m[1][2]) + (v4[3] * m[1][3]),
		(v4[0] * m[2][0]) + (v4[1] * m[2][1]) + (v4[2] * m[2][2]) + (v4[3] * m[2][3]),
	}
}

// Bounds returns the axis aligned bounding box enclosing all points. ok is false for an empty list.
func Bounds(points []Vec3) (min Vec3, max Vec3, ok bool) {
	if len(points) == 0 {
		return Vec3{}, Vec3{}, false
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max, true
}

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}
