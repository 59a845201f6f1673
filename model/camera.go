package model

import (
	vm "local/vector_math"
	"log"
	"math"
)

const (
	CAM_PERSPECTIVE_PROJECTION  = iota
	CAM_ORTHOGRAPHIC_PROJECTION = iota
)

const (
	MIN_ZOOM = 0.1
	MAX_ZOOM = 10

	// CAM_DISTANCE keeps a unit sphere fully visible with the default 45 degree field of view
	CAM_DISTANCE = 3
)

// Camera looks at the origin from the +z axis. Meshes are brought into a unit sphere around the
// origin by the matrix returned from Fit, so the camera does not need to know the mesh.
type Camera struct {
	ProjectionType int

	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
	Zoom   float32

	Pos     vm.Vec3
	LookDir vm.Vec3
	Up      vm.Vec3
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	c := &Camera{
		Fov:    fov,
		Near:   near,
		Far:    far,
		Aspect: 1,
	}
	c.Reset()
	return c
}

// Reset restores position, orientation and zoom. The projection type is kept.
func (c *Camera) Reset() {
	c.Zoom = 1
	c.Pos = vm.Vec3{Z: CAM_DISTANCE}
	c.LookDir = vm.Vec3{Z: -1}
	c.Up = vm.Vec3{Y: 1}
}

// Move shifts the camera without changing where it looks, which pans the view
func (c *Camera) Move(v vm.Vec3) {
	c.Pos = c.Pos.Add(v)
}

// ZoomBy multiplies the zoom factor, clamped to [MIN_ZOOM, MAX_ZOOM]
func (c *Camera) ZoomBy(factor float32) {
	z := c.Zoom * factor
	if z < MIN_ZOOM {
		z = MIN_ZOOM
	} else if z > MAX_ZOOM {
		z = MAX_ZOOM
	}
	c.Zoom = z
}

// eye is the camera position with zoom applied. Zooming moves the camera along its view direction.
func (c *Camera) eye() vm.Vec3 {
	return c.Pos.ScalarMul(1 / c.Zoom)
}

func (c *Camera) ToggleProjection() int {
	if c.ProjectionType == CAM_PERSPECTIVE_PROJECTION {
		c.ProjectionType = CAM_ORTHOGRAPHIC_PROJECTION
	} else {
		c.ProjectionType = CAM_PERSPECTIVE_PROJECTION
	}
	return c.ProjectionType
}

func (c *Camera) GetProjection() vm.Mat4 {
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		return newPerspectiveProjection(vm.ToRad(float64(c.Fov)), float64(c.Aspect), c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		// Match the visible extent of the perspective projection at the orbit distance so that
		// switching projections keeps the mesh roughly the same size on screen.
		h := c.eye().Len() * float32(math.Tan(vm.ToRad(float64(c.Fov))/2))
		return newOrthographicProjection(h*c.Aspect, h, c.Near, c.Far)
	default:
		log.Printf("Failed to select projection type, returning identity.")
		return vm.NewUnitMat()
	}
}

func (c *Camera) GetView() vm.Mat4 {
	return NewDirectionView(c.eye(), c.LookDir, c.Up)
}

// Fit returns the model matrix that moves the center of the given bounding box to the origin and
// scales it to fit into a unit sphere.
func Fit(min vm.Vec3, max vm.Vec3) vm.Mat4 {
	center := min.Add(max).ScalarMul(0.5)
	radius := max.Sub(min).Len() / 2
	if radius == 0 {
		radius = 1
	}
	s := 1 / radius
	return vm.NewScale(vm.Vec3{X: s, Y: s, Z: s}).Translate(center.ScalarMul(-1))
}

// newPerspectiveProjection maps the view frustum on to Vulkan's canonical view volume, depth
// ranges from 0 at near to 1 at far. Implemented after: https://www.youtube.com/watch?v=U0_ONQQ5ZNM
func newPerspectiveProjection(fovy float64, aspect float64, near float32, far float32) vm.Mat4 {
	focalLen := 1 / math.Tan(fovy/2)
	var m vm.Mat4
	m[0][0] = float32(focalLen / aspect)
	m[1][1] = float32(focalLen)
	m[2][2] = far / (far - near)
	m[2][3] = -(far * near) / (far - near)
	m[3][2] = 1
	return m
}

// newOrthographicProjection maps the cuboid [-w, w] x [-h, h] x [near, far] in view space on to the
// canonical view volume which spans from (-1, -1, 0) to (1, 1, 1). Setting w = aspect * h avoids
// stretching.
func newOrthographicProjection(w float32, h float32, near float32, far float32) vm.Mat4 {
	m := vm.NewUnitMat()
	m[0][0] = 1 / w
	m[1][1] = 1 / h
	m[2][2] = 1 / (far - near)
	m[2][3] = -near / (far - near)
	return m
}

// NewDirectionView builds the view matrix for a camera at pos looking along dir. View space has
// x pointing right, y pointing down and z pointing forward, which is what Vulkan's clip space
// expects, so no extra flip is needed in the projection.
func NewDirectionView(pos vm.Vec3, dir vm.Vec3, up vm.Vec3) vm.Mat4 {
	// construct orthonormal basis vectors
	w := dir.Norm()
	u := w.Cross(up).Norm()
	v := w.Cross(u)
	m := vm.NewUnitMat()
	m[0][0] = u.X
	m[0][1] = u.Y
	m[0][2] = u.Z
	m[1][0] = v.X
	m[1][1] = v.Y
	m[1][2] = v.Z
	m[2][0] = w.X
	m[2][1] = w.Y
	m[2][2] = w.Z
	m[0][3] = -u.Dot(pos)
	m[1][3] = -v.Dot(pos)
	m[2][3] = -w.Dot(pos)
	return m
}
