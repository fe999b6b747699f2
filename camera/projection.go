package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// IsometricPitch is the elevation of a true isometric view, atan(1/sqrt(2)).
var IsometricPitch = math.Atan(1 / math.Sqrt2)

const (
	defaultEyeDistance = 100
	defaultNear        = 0.1
	defaultFar         = 1000
)

// Projector maps between world space and viewport pixels for an orthographic
// view of a Rig. Call Update once per frame before projecting.
type Projector struct {
	Pitch    float64
	Distance float64
	Near     float64
	Far      float64

	viewport mgl64.Vec2
	size     float64
	eyeDir   mgl64.Vec3
	viewProj mgl64.Mat4
	inverse  mgl64.Mat4
}

func NewProjector(pitch float64) *Projector {
	return &Projector{
		Pitch:    pitch,
		Distance: defaultEyeDistance,
		Near:     defaultNear,
		Far:      defaultFar,
		viewProj: mgl64.Ident4(),
		inverse:  mgl64.Ident4(),
	}
}

// Update rebuilds the view-projection matrix from the rig and viewport.
// The eye sits behind and above the rig position looking at it; the rig size
// is the world-space height of the view.
func (p *Projector) Update(rig *Rig, viewport mgl64.Vec2) {
	if rig == nil || viewport.X() <= 0 || viewport.Y() <= 0 {
		return
	}
	p.viewport = viewport
	p.size = rig.Size

	t := rig.Transform
	dir := t.Back().Mul(math.Cos(p.Pitch)).Add(t.Up().Mul(math.Sin(p.Pitch)))
	p.eyeDir = dir
	eye := t.Position.Add(dir.Mul(p.Distance))
	view := mgl64.LookAtV(eye, t.Position, mgl64.Vec3{0, 1, 0})

	halfH := rig.Size / 2
	halfW := halfH * viewport.X() / viewport.Y()
	proj := mgl64.Ortho(-halfW, halfW, -halfH, halfH, p.Near, p.Far)

	p.viewProj = proj.Mul4(view)
	p.inverse = p.viewProj.Inv()
}

// Project returns the viewport pixel a world point lands on. Y grows downward.
func (p *Projector) Project(world mgl64.Vec3) mgl64.Vec2 {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() != 0 {
		clip = clip.Mul(1 / clip.W())
	}
	return mgl64.Vec2{
		(clip.X()*0.5 + 0.5) * p.viewport.X(),
		(1 - (clip.Y()*0.5 + 0.5)) * p.viewport.Y(),
	}
}

// GroundPoint casts the ray through a viewport pixel and returns where it
// meets the y=0 plane. ok is false when the ray runs parallel to the ground.
func (p *Projector) GroundPoint(screen mgl64.Vec2) (point mgl64.Vec3, ok bool) {
	if p.viewport.X() <= 0 || p.viewport.Y() <= 0 {
		return mgl64.Vec3{}, false
	}
	ndcX := screen.X()/p.viewport.X()*2 - 1
	ndcY := (1-screen.Y()/p.viewport.Y())*2 - 1

	near := p.unproject(mgl64.Vec4{ndcX, ndcY, -1, 1})
	far := p.unproject(mgl64.Vec4{ndcX, ndcY, 1, 1})
	dir := far.Sub(near)
	if math.Abs(dir.Y()) < 1e-10 {
		return mgl64.Vec3{}, false
	}
	s := -near.Y() / dir.Y()
	return near.Add(dir.Mul(s)), true
}

// EyeDirection is the unit vector from the rig position toward the eye.
// Surfaces whose normal points along it face the viewer.
func (p *Projector) EyeDirection() mgl64.Vec3 {
	return p.eyeDir
}

// PixelsPerUnit is the screen scale of one world unit.
func (p *Projector) PixelsPerUnit() float64 {
	if p.size == 0 {
		return 0
	}
	return p.viewport.Y() / p.size
}

func (p *Projector) unproject(ndc mgl64.Vec4) mgl64.Vec3 {
	v := p.inverse.Mul4x1(ndc)
	if v.W() != 0 {
		v = v.Mul(1 / v.W())
	}
	return v.Vec3()
}
