package camera

import "github.com/go-gl/mathgl/mgl64"

// EdgePanState is the screen edge the cursor is resting against, if any.
type EdgePanState int

const (
	EdgePanNone EdgePanState = iota
	EdgePanLeft
	EdgePanRight
	EdgePanUp
	EdgePanDown
)

func (s EdgePanState) String() string {
	switch s {
	case EdgePanLeft:
		return "left"
	case EdgePanRight:
		return "right"
	case EdgePanUp:
		return "up"
	case EdgePanDown:
		return "down"
	default:
		return "none"
	}
}

// DetectEdgePan classifies a cursor position against the viewport edges.
// Edges are checked left, right, up, down and the first hit wins, so in a
// corner the horizontal edge takes priority.
func DetectEdgePan(pos, viewport mgl64.Vec2, margin float64) EdgePanState {
	switch {
	case pos.X() < margin:
		return EdgePanLeft
	case pos.X() > viewport.X()-margin:
		return EdgePanRight
	case pos.Y() < margin:
		return EdgePanUp
	case pos.Y() > viewport.Y()-margin:
		return EdgePanDown
	default:
		return EdgePanNone
	}
}

// PanOffset returns the world-space translation for one frame of edge panning.
func PanOffset(state EdgePanState, t Transform, speed, dt float64) mgl64.Vec3 {
	step := speed * dt
	switch state {
	case EdgePanLeft:
		return t.Right().Mul(-step)
	case EdgePanRight:
		return t.Right().Mul(step)
	case EdgePanUp:
		return t.Back().Mul(-step)
	case EdgePanDown:
		return t.Back().Mul(step)
	default:
		return mgl64.Vec3{}
	}
}

// DragOffset returns the world-space translation produced by dragging the
// view with the pointer. The caller subtracts it from the rig position so the
// ground follows the cursor. Depth motion is stretched by the aspect ratio to
// compensate for the foreshortened ground plane.
func DragOffset(t Transform, velocity mgl64.Vec2, speed, aspect, dt float64) mgl64.Vec3 {
	side := t.Right().Mul(velocity.X() * speed * dt)
	depth := t.Back().Mul(velocity.Y() * speed * dt * aspect)
	return side.Add(depth)
}
