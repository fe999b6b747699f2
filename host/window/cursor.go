package window

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isocam/camera"
	"github.com/milk9111/isocam/common"
)

// Confine pins a cursor position to the pixels of a viewport of the given
// size, so the last row and column still count as touching an edge.
func Confine(pos, size mgl64.Vec2) mgl64.Vec2 {
	if size.X() <= 0 || size.Y() <= 0 {
		return pos
	}
	return mgl64.Vec2{
		common.Clamp(pos.X(), 0, size.X()-1),
		common.Clamp(pos.Y(), 0, size.Y()-1),
	}
}

// AppendWheel adds dy to the accumulated scroll acc and appends one wheel
// event per whole notch to dst. Positive scroll is WheelUp. The fractional
// remainder is returned for the next frame.
func AppendWheel(dst []camera.Event, acc, dy float64) ([]camera.Event, float64) {
	acc += dy
	for acc >= 1 {
		dst = append(dst, camera.MouseButtonEvent{Button: camera.MouseButtonWheelUp, Pressed: true})
		acc--
	}
	for acc <= -1 {
		dst = append(dst, camera.MouseButtonEvent{Button: camera.MouseButtonWheelDown, Pressed: true})
		acc++
	}
	return dst, acc
}
