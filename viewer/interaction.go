package viewer

import (
	"log"
	"math"

	"mesh_viewer/input"
	vm "local/vector_math"
)

// PAN_SPEED is the camera shift in world units per dragged pixel
const PAN_SPEED = 0.005

func (v *Viewer) handleEvent(ev input.Event) {
	switch ev.Kind {
	case input.MouseDown:
		switch ev.Button {
		case input.ButtonLeft:
			v.dragging = true
		case input.ButtonRight:
			v.panning = true
		}
	case input.MouseUp:
		switch ev.Button {
		case input.ButtonLeft:
			v.dragging = false
		case input.ButtonRight:
			v.panning = false
		}
	case input.MouseMove:
		if v.dragging {
			v.ball.Drag(float32(ev.DX), float32(ev.DY))
		}
		if v.panning {
			// drag the mesh along with the cursor, screen y points down
			v.cam.Move(vm.Vec3{X: -float32(ev.DX) * PAN_SPEED, Y: float32(ev.DY) * PAN_SPEED})
		}
	case input.Scroll:
		if ev.DY != 0 {
			v.cam.ZoomBy(float32(math.Pow(ZOOM_STEP, float64(ev.DY))))
		}
	case input.KeyUp:
		v.handleKey(ev.Key)
	}
}

func (v *Viewer) handleKey(key rune) {
	switch key {
	case 'l':
		v.data.ShowLines = !v.data.ShowLines
		log.Printf("Wireframe: %v", v.data.ShowLines)
	case 't':
		v.data.ShowFaces = !v.data.ShowFaces
		log.Printf("Faces: %v", v.data.ShowFaces)
	case 'o':
		v.core.Orthographic = !v.core.Orthographic
		log.Printf("Orthographic projection: %v", v.core.Orthographic)
	case 'z':
		v.ball.Reset()
		v.cam.Reset()
	case 'a':
		v.core.Animate = !v.core.Animate
	}
}
