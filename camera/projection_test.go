package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const pixelEpsilon = 1e-6

func newTestProjector(rig *Rig) *Projector {
	p := NewProjector(IsometricPitch)
	p.Update(rig, mgl64.Vec2{1920, 1080})
	return p
}

func TestProjectorCentersRig(t *testing.T) {
	cases := []struct {
		name string
		tr   Transform
	}{
		{"origin", Transform{}},
		{"offset", Transform{Position: mgl64.Vec3{12, 0, -30}}},
		{"rotated", Transform{Position: mgl64.Vec3{-4, 0, 9}, Yaw: 0.7}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestProjector(&Rig{Transform: c.tr, Size: 40})
			got := p.Project(c.tr.Position)
			if !got.ApproxEqualThreshold(mgl64.Vec2{960, 540}, pixelEpsilon) {
				t.Fatalf("expected rig position at viewport center, got %v", got)
			}
		})
	}
}

func TestProjectorGroundPointRoundTrip(t *testing.T) {
	p := newTestProjector(&Rig{Transform: Transform{Position: mgl64.Vec3{5, 0, 5}, Yaw: 0.3}, Size: 40})

	for _, world := range []mgl64.Vec3{{5, 0, 5}, {0, 0, 0}, {12, 0, -3}, {-8, 0, 14}} {
		screen := p.Project(world)
		back, ok := p.GroundPoint(screen)
		if !ok {
			t.Fatalf("expected ground hit for %v", world)
		}
		if !back.ApproxEqualThreshold(world, 1e-6) {
			t.Fatalf("round trip of %v returned %v", world, back)
		}
	}
}

func TestProjectorSizeIsViewHeight(t *testing.T) {
	p := newTestProjector(&Rig{Size: 40})
	if got := p.PixelsPerUnit(); got != 27 {
		t.Fatalf("expected 1080/40 = 27 pixels per unit, got %v", got)
	}

	top := p.Project(mgl64.Vec3{0, 10, 0})
	bottom := p.Project(mgl64.Vec3{0, -10, 0})
	if bottom.Y() <= top.Y() {
		t.Fatalf("expected +Y to project above -Y, got top=%v bottom=%v", top, bottom)
	}
}

func TestProjectorPanUpMovesGroundDown(t *testing.T) {
	rig := &Rig{Size: 40}
	p := newTestProjector(rig)
	before := p.Project(mgl64.Vec3{})

	rig.Transform.Translate(PanOffset(EdgePanUp, rig.Transform, 50, 0.1))
	p.Update(rig, mgl64.Vec2{1920, 1080})
	after := p.Project(mgl64.Vec3{})

	if after.Y() <= before.Y() {
		t.Fatalf("panning up should push the origin lower on screen: before=%v after=%v", before, after)
	}
	if diff := after.X() - before.X(); diff > pixelEpsilon || diff < -pixelEpsilon {
		t.Fatalf("panning up should not shift horizontally, moved %v", diff)
	}
}

func TestProjectorEyeDirection(t *testing.T) {
	p := newTestProjector(&Rig{Size: 40})
	dir := p.EyeDirection()
	if dir.Y() <= 0 || dir.Z() <= 0 || dir.X() != 0 {
		t.Fatalf("expected the eye above and behind the rig, got %v", dir)
	}
	if l := dir.Len(); l < 1-1e-9 || l > 1+1e-9 {
		t.Fatalf("expected a unit vector, got length %v", l)
	}
}
