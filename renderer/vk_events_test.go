package renderer

import (
	"testing"

	"mesh_viewer/input"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  input.Event
		ok    bool
	}{
		{
			name:  "left button down",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20},
			want:  input.Event{Kind: input.MouseDown, X: 10, Y: 20, Button: input.ButtonLeft},
			ok:    true,
		},
		{
			name:  "right button up",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT, X: 1, Y: 2},
			want:  input.Event{Kind: input.MouseUp, X: 1, Y: 2, Button: input.ButtonRight},
			ok:    true,
		},
		{
			name:  "motion",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 5, Y: 6, XRel: -3, YRel: 4},
			want:  input.Event{Kind: input.MouseMove, X: 5, Y: 6, DX: -3, DY: 4},
			ok:    true,
		},
		{
			name:  "wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_NORMAL},
			want:  input.Event{Kind: input.Scroll, DY: 2},
			ok:    true,
		},
		{
			name:  "flipped wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  input.Event{Kind: input.Scroll, DY: -2},
			ok:    true,
		},
		{
			name:  "key up",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_l}},
			want:  input.Event{Kind: input.KeyUp, Key: 'l'},
			ok:    true,
		},
		{
			name:  "key down is ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_l}},
			ok:    false,
		},
		{
			name:  "non printable key is ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}},
			ok:    false,
		},
		{
			name:  "quit is not an input event",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			ok:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateEvent(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
