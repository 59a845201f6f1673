// Package viewer shows a single mesh in an interactive window. It owns the mesh data and the interaction state
// (trackball, zoom, draw toggles) and leaves drawing to a Backend.
package viewer

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"mesh_viewer/input"
	"mesh_viewer/model"
	vm "local/vector_math"
)

const (
	DEFAULT_NAME = "mesh"

	// SPIN_SPEED is the idle rotation in radians per second
	SPIN_SPEED = math.Pi / 4

	// ZOOM_STEP is the zoom factor applied per wheel notch
	ZOOM_STEP = 1.1
)

// Backend draws the scene. renderer.Core is the Vulkan implementation.
type Backend interface {
	Initialize() error
	SetBackground(c vm.Vec3)
	SetCamera(cam *model.Camera)
	AddToScene(m *model.Model) error
	// Loop blocks until the window is closed or ctx is done. onDraw runs before each frame with the time passed
	// since the loop started.
	Loop(ctx context.Context, onEvent input.Handler, onDraw func(elapsed time.Duration)) error
	Destroy()
}

// CoreSettings are the view settings shared by all meshes. They can be changed while the viewer runs.
type CoreSettings struct {
	BackgroundColor vm.Vec3
	Orthographic    bool
	Animate         bool
}

type Option func(*Viewer)

// WithName sets the name the mesh is added to the scene with
func WithName(name string) Option {
	return func(v *Viewer) {
		v.name = name
	}
}

func WithSpinSpeed(radPerSec float64) Option {
	return func(v *Viewer) {
		v.spinSpeed = radPerSec
	}
}

type Viewer struct {
	backend Backend
	name    string
	data    *model.ViewerData
	core    CoreSettings

	cam       *model.Camera
	ball      *model.Trackball
	fit       vm.Mat4
	model     *model.Model
	spinSpeed float64

	dragging    bool
	panning     bool
	lastElapsed time.Duration
}

func New(b Backend, opts ...Option) *Viewer {
	v := &Viewer{
		backend: b,
		name:    DEFAULT_NAME,
		data:    model.NewViewerData(),
		core: CoreSettings{
			BackgroundColor: model.White,
		},
		ball:      model.NewTrackball(),
		fit:       vm.NewUnitMat(),
		spinSpeed: SPIN_SPEED,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Data gives access to the mesh shown by the viewer
func (v *Viewer) Data() *model.ViewerData {
	return v.data
}

func (v *Viewer) Core() *CoreSettings {
	return &v.core
}

// Launch opens the window and blocks until it is closed or ctx is done. The backend is destroyed before Launch
// returns, also when it failed to initialize.
func (v *Viewer) Launch(ctx context.Context) error {
	if v.data.IsEmpty() {
		return fmt.Errorf("launch viewer: %w", model.ErrNoMesh)
	}
	defer v.backend.Destroy()
	if err := v.backend.Initialize(); err != nil {
		return fmt.Errorf("initialize viewer: %w", err)
	}

	v.cam = model.NewCamera(45, 0.1, 100)
	v.syncProjection()
	min, max, _ := vm.Bounds(v.data.V)
	v.fit = model.Fit(min, max)
	v.model = model.NewModel(v.data, v.name)
	v.model.ModelMat = v.modelMat()

	v.backend.SetCamera(v.cam)
	v.backend.SetBackground(v.core.BackgroundColor)
	if err := v.backend.AddToScene(v.model); err != nil {
		return err
	}
	log.Printf("Showing '%s': %d vertices, %d faces", v.name, len(v.data.V), len(v.data.F))

	if err := v.backend.Loop(ctx, v.handleEvent, v.draw); err != nil {
		return fmt.Errorf("viewer loop: %w", err)
	}
	return nil
}

func (v *Viewer) modelMat() vm.Mat4 {
	return v.ball.Mat().Mult(v.fit)
}

func (v *Viewer) syncProjection() {
	if v.core.Orthographic {
		v.cam.ProjectionType = model.CAM_ORTHOGRAPHIC_PROJECTION
	} else {
		v.cam.ProjectionType = model.CAM_PERSPECTIVE_PROJECTION
	}
}

// draw applies the current interaction state before a frame is drawn
func (v *Viewer) draw(elapsed time.Duration) {
	dt := elapsed - v.lastElapsed
	v.lastElapsed = elapsed
	if v.core.Animate && dt > 0 {
		v.ball.Spin(float32(v.spinSpeed * dt.Seconds()))
	}
	v.syncProjection()
	v.model.ModelMat = v.modelMat()
	v.backend.SetBackground(v.core.BackgroundColor)
}
