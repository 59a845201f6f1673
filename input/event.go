// Package input holds the window-system independent events the renderer forwards to its handlers.
package input

type Kind int

const (
	MouseDown Kind = iota
	MouseUp
	MouseMove
	Scroll
	KeyUp
)

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a single input event. Only the fields relevant for its Kind are set:
// mouse events carry the cursor position in X/Y and the relative motion in DX/DY,
// Scroll carries the wheel delta in DY and KeyUp the lower case key in Key.
type Event struct {
	Kind   Kind
	X, Y   int32
	DX, DY int32
	Button Button
	Key    rune
}

type Handler func(Event)
