package camera

import (
	"errors"
	"fmt"
)

var ErrInvalidSettings = errors.New("camera: invalid settings")

// Settings tunes the controller. The zero value is not usable; start from
// DefaultSettings.
type Settings struct {
	// EdgeMargin is the distance in pixels from a viewport edge that
	// triggers edge panning.
	EdgeMargin float64
	// PanSpeed is the edge panning speed in world units per second.
	PanSpeed float64
	// DragSpeed scales pointer motion while dragging with the middle button.
	DragSpeed float64
	ZoomMin   float64
	ZoomMax   float64
	// ZoomStep is the change in orthographic size per wheel notch.
	ZoomStep float64
	// ZoomSmoothTime is how long, in seconds, a zoom transition lasts.
	ZoomSmoothTime float64
	// RotateSensitivity is radians of yaw per pixel of horizontal pointer
	// motion per second.
	RotateSensitivity float64
}

func DefaultSettings() Settings {
	return Settings{
		EdgeMargin:        2,
		PanSpeed:          50,
		DragSpeed:         5,
		ZoomMin:           20,
		ZoomMax:           60,
		ZoomStep:          10,
		ZoomSmoothTime:    1,
		RotateSensitivity: 0.5,
	}
}

// Validate reports the first field that would make the controller misbehave.
func (s Settings) Validate() error {
	switch {
	case s.EdgeMargin < 0:
		return fmt.Errorf("%w: edge margin %v is negative", ErrInvalidSettings, s.EdgeMargin)
	case s.ZoomMin > s.ZoomMax:
		return fmt.Errorf("%w: zoom min %v exceeds zoom max %v", ErrInvalidSettings, s.ZoomMin, s.ZoomMax)
	case s.ZoomStep <= 0:
		return fmt.Errorf("%w: zoom step %v must be positive", ErrInvalidSettings, s.ZoomStep)
	case s.ZoomSmoothTime <= 0:
		return fmt.Errorf("%w: zoom smooth time %v must be positive", ErrInvalidSettings, s.ZoomSmoothTime)
	}
	return nil
}
