package model

import (
	"github.com/go-gl/mathgl/mgl32"
	vm "local/vector_math"
)

// DRAG_SPEED is the rotation in radians per dragged pixel
const DRAG_SPEED = 0.01

// Trackball accumulates mouse drags into a rotation of the mesh around the origin. Horizontal drags
// rotate around the world y-axis, vertical drags around the world x-axis, so the front of the mesh
// follows the cursor.
type Trackball struct {
	Rot   mgl32.Quat
	Speed float32
}

func NewTrackball() *Trackball {
	return &Trackball{
		Rot:   mgl32.QuatIdent(),
		Speed: DRAG_SPEED,
	}
}

func (t *Trackball) Drag(dx float32, dy float32) {
	yaw := mgl32.QuatRotate(dx*t.Speed, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(dy*t.Speed, mgl32.Vec3{1, 0, 0})
	t.Rot = yaw.Mul(pitch).Mul(t.Rot).Normalize()
}

// Spin rotates around the world y-axis, used for the idle animation
func (t *Trackball) Spin(rad float32) {
	t.Rot = mgl32.QuatRotate(rad, mgl32.Vec3{0, 1, 0}).Mul(t.Rot).Normalize()
}

// Reset snaps back to the canonical view
func (t *Trackball) Reset() {
	t.Rot = mgl32.QuatIdent()
}

func (t *Trackball) Mat() vm.Mat4 {
	gm := t.Rot.Mat4()
	var m vm.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = gm.At(r, c)
		}
	}
	return m
}
