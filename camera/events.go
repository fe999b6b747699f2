package camera

import "github.com/go-gl/mathgl/mgl64"

// Key identifies the keys the controller reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// MouseButton identifies a pointer button. Wheel notches are reported as
// buttons, one event per notch.
type MouseButton int

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonWheelUp
	MouseButtonWheelDown
)

// Event is an input event delivered by the host before the frame's Update.
type Event interface {
	event()
}

type KeyEvent struct {
	Key     Key
	Pressed bool
}

type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

// MouseMotionEvent carries the pointer movement since the previous motion
// event and the absolute cursor position, both in viewport pixels.
type MouseMotionEvent struct {
	Relative mgl64.Vec2
	Position mgl64.Vec2
}

func (KeyEvent) event()         {}
func (MouseButtonEvent) event() {}
func (MouseMotionEvent) event() {}
