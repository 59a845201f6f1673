package viewer

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"mesh_viewer/input"
	"mesh_viewer/model"
	vm "local/vector_math"
)

// fakeBackend records the calls of the viewer and replays scripted events from Loop
type fakeBackend struct {
	initErr error
	loopErr error
	events  []input.Event
	frames  []time.Duration

	initialized int
	destroyed   int
	added       []*model.Model
	cam         *model.Camera
	background  vm.Vec3
}

func (f *fakeBackend) Initialize() error {
	f.initialized++
	return f.initErr
}

func (f *fakeBackend) SetBackground(c vm.Vec3) { f.background = c }

func (f *fakeBackend) SetCamera(cam *model.Camera) { f.cam = cam }

func (f *fakeBackend) AddToScene(m *model.Model) error {
	f.added = append(f.added, m)
	return nil
}

func (f *fakeBackend) Loop(ctx context.Context, onEvent input.Handler, onDraw func(elapsed time.Duration)) error {
	for _, ev := range f.events {
		onEvent(ev)
	}
	for _, elapsed := range f.frames {
		onDraw(elapsed)
	}
	return f.loopErr
}

func (f *fakeBackend) Destroy() { f.destroyed++ }

func newCubeViewer(t *testing.T, b Backend) (*Viewer, *model.Mesh) {
	t.Helper()
	cube := model.NewCubeMesh()
	v := New(b)
	if err := v.Data().SetMesh(cube.V, cube.F); err != nil {
		t.Fatalf("set mesh: %v", err)
	}
	if err := v.Data().SetColors(model.UniformColors(len(cube.V), model.Green)); err != nil {
		t.Fatalf("set colors: %v", err)
	}
	return v, cube
}

func TestLaunchHandsLoadedDataToBackend(t *testing.T) {
	b := &fakeBackend{}
	v, cube := newCubeViewer(t, b)
	if err := v.Launch(context.Background()); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if len(b.added) != 1 {
		t.Fatalf("expected one model in the scene, got %d", len(b.added))
	}
	d := b.added[0].Data
	if &d.V[0] != &cube.V[0] || &d.F[0] != &cube.F[0] {
		t.Errorf("backend should receive the loaded arrays unchanged")
	}
	if len(d.C) != len(cube.V) {
		t.Fatalf("expected %d color rows, got %d", len(cube.V), len(d.C))
	}
	for i, c := range d.C {
		if c != model.Green {
			t.Errorf("color %d = %v, want green", i, c)
		}
	}
	if b.cam == nil {
		t.Errorf("launch should hand a camera to the backend")
	}
	if b.background != model.White {
		t.Errorf("background = %v, want white", b.background)
	}
}

func TestLaunchDestroysBackendOnce(t *testing.T) {
	initErr := errors.New("no vulkan device")
	loopErr := errors.New("device lost")
	tests := []struct {
		name    string
		backend *fakeBackend
		wantErr error
	}{
		{"window closed", &fakeBackend{}, nil},
		{"initialize fails", &fakeBackend{initErr: initErr}, initErr},
		{"loop fails", &fakeBackend{loopErr: loopErr}, loopErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newCubeViewer(t, tt.backend)
			err := v.Launch(context.Background())
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.backend.destroyed != 1 {
				t.Errorf("backend destroyed %d times, want 1", tt.backend.destroyed)
			}
		})
	}
}

func TestLaunchWithoutMesh(t *testing.T) {
	b := &fakeBackend{}
	err := New(b).Launch(context.Background())
	if !errors.Is(err, model.ErrNoMesh) {
		t.Fatalf("err = %v, want ErrNoMesh", err)
	}
	if b.initialized != 0 || b.destroyed != 0 {
		t.Errorf("backend should not be touched without a mesh")
	}
}

func keyUp(k rune) input.Event {
	return input.Event{Kind: input.KeyUp, Key: k}
}

func TestKeyToggles(t *testing.T) {
	b := &fakeBackend{
		events: []input.Event{keyUp('l'), keyUp('t'), keyUp('o'), keyUp('a')},
		frames: []time.Duration{0},
	}
	v, _ := newCubeViewer(t, b)
	if err := v.Launch(context.Background()); err != nil {
		t.Fatalf("launch: %v", err)
	}
	d := v.Data()
	if !d.ShowLines {
		t.Errorf("'l' should enable the wireframe")
	}
	if d.ShowFaces {
		t.Errorf("'t' should hide the faces")
	}
	if !v.Core().Orthographic || b.cam.ProjectionType != model.CAM_ORTHOGRAPHIC_PROJECTION {
		t.Errorf("'o' should switch to orthographic projection")
	}
	if !v.Core().Animate {
		t.Errorf("'a' should start the animation")
	}
}

func TestDragRotatesAndResetRestores(t *testing.T) {
	b := &fakeBackend{
		events: []input.Event{
			{Kind: input.MouseDown, Button: input.ButtonLeft},
			{Kind: input.MouseMove, DX: 40, DY: 10},
			{Kind: input.MouseUp, Button: input.ButtonLeft},
		},
		frames: []time.Duration{0},
	}
	v, _ := newCubeViewer(t, b)
	if err := v.Launch(context.Background()); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if b.added[0].ModelMat.Equals(v.fit) {
		t.Fatalf("dragging should rotate the model")
	}

	v.handleEvent(input.Event{Kind: input.MouseMove, DX: 40})
	rotated := v.modelMat()
	if !rotated.Equals(b.added[0].ModelMat) {
		t.Errorf("moving without a pressed button should not rotate")
	}

	v.handleEvent(keyUp('z'))
	v.draw(time.Second)
	if !b.added[0].ModelMat.Equals(v.fit) {
		t.Errorf("'z' should snap back to the canonical view")
	}
}

func TestScrollZooms(t *testing.T) {
	b := &fakeBackend{events: []input.Event{{Kind: input.Scroll, DY: 2}}}
	v, _ := newCubeViewer(t, b)
	if err := v.Launch(context.Background()); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if b.cam.Zoom <= 1 {
		t.Errorf("scrolling up should zoom in, zoom = %v", b.cam.Zoom)
	}
}

func TestAnimateSpins(t *testing.T) {
	b := &fakeBackend{frames: []time.Duration{0, 500 * time.Millisecond}}
	v, _ := newCubeViewer(t, b)
	WithSpinSpeed(math.Pi)(v)
	v.Core().Animate = true
	if err := v.Launch(context.Background()); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if b.added[0].ModelMat.Equals(v.fit) {
		t.Errorf("animation should rotate the model between frames")
	}
}

func TestRightDragPans(t *testing.T) {
	b := &fakeBackend{
		events: []input.Event{
			{Kind: input.MouseDown, Button: input.ButtonRight},
			{Kind: input.MouseMove, DX: 100, DY: 0},
			{Kind: input.MouseUp, Button: input.ButtonRight},
			{Kind: input.MouseMove, DX: 100, DY: 0},
		},
	}
	v, _ := newCubeViewer(t, b)
	if err := v.Launch(context.Background()); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if want := -100 * PAN_SPEED; math.Abs(float64(b.cam.Pos.X)-want) > 1e-6 {
		t.Errorf("camera x = %v, want %v", b.cam.Pos.X, want)
	}
}
