package camera

import "github.com/go-gl/mathgl/mgl64"

// PointerMode is the window's cursor confinement.
type PointerMode int

const (
	PointerVisible PointerMode = iota
	PointerConfined
)

func (m PointerMode) String() string {
	if m == PointerConfined {
		return "confined"
	}
	return "visible"
}

// Viewport is the host surface the view is drawn into.
type Viewport interface {
	// Size returns the visible size in pixels.
	Size() mgl64.Vec2
	// OnResize registers fn to run after every size change. The returned
	// func removes the registration.
	OnResize(fn func()) (unsubscribe func())
}

// Pointer controls cursor confinement.
type Pointer interface {
	Mode() PointerMode
	SetMode(mode PointerMode)
}
