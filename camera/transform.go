package camera

import "github.com/go-gl/mathgl/mgl64"

// Transform is the camera rig's placement: a world position and a rotation
// about the vertical axis. The rig never pitches or rolls; pitch belongs to
// the projection.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Basis returns the rig orientation as a rotation about +Y.
func (t Transform) Basis() mgl64.Mat3 {
	return mgl64.Rotate3DY(t.Yaw)
}

// Right returns the local X axis in world space.
func (t Transform) Right() mgl64.Vec3 {
	return t.Basis().Col(0)
}

// Up returns the local Y axis in world space.
func (t Transform) Up() mgl64.Vec3 {
	return t.Basis().Col(1)
}

// Back returns the local Z axis in world space. The view looks along -Back.
func (t Transform) Back() mgl64.Vec3 {
	return t.Basis().Col(2)
}

// Translate moves the rig by a world-space offset.
func (t *Transform) Translate(offset mgl64.Vec3) {
	t.Position = t.Position.Add(offset)
}

// RotateY turns the rig about the vertical axis by angle radians.
func (t *Transform) RotateY(angle float64) {
	t.Yaw += angle
}

// Rig is the state a host reads back every frame to render the view.
type Rig struct {
	Transform Transform
	// Size is the orthographic size: the world-space height of the view.
	Size float64
}
