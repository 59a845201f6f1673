package renderer

import (
	"mesh_viewer/input"

	"github.com/veandco/go-sdl2/sdl"
)

// translateEvent converts the SDL events the viewer reacts on. Everything else is reported as not translatable.
func translateEvent(event sdl.Event) (input.Event, bool) {
	switch ev := event.(type) {
	case *sdl.MouseButtonEvent:
		kind := input.MouseUp
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			kind = input.MouseDown
		}
		return input.Event{Kind: kind, X: ev.X, Y: ev.Y, Button: toButton(ev.Button)}, true
	case *sdl.MouseMotionEvent:
		return input.Event{Kind: input.MouseMove, X: ev.X, Y: ev.Y, DX: ev.XRel, DY: ev.YRel}, true
	case *sdl.MouseWheelEvent:
		dy := ev.Y
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		return input.Event{Kind: input.Scroll, DX: ev.X, DY: dy}, true
	case *sdl.KeyboardEvent:
		// Only printable ASCII keys are of interest, SDL reports them as their lower case character
		if ev.Type != sdl.KEYUP || ev.Keysym.Sym < 0x20 || ev.Keysym.Sym >= 0x7f {
			return input.Event{}, false
		}
		return input.Event{Kind: input.KeyUp, Key: rune(ev.Keysym.Sym)}, true
	}
	return input.Event{}, false
}

func toButton(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}
