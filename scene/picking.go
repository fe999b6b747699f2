package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// buildSpace mirrors every block footprint as a static box on the ground
// plane, with world X/Z mapped to the space's X/Y.
func (s *Scene) buildSpace() {
	s.space = cp.NewSpace()
	for i, b := range s.Blocks {
		bb := cp.BB{L: b.X, B: b.Z, R: b.X + s.TileSize, T: b.Z + s.TileSize}
		shape := cp.NewBox2(s.space.StaticBody, bb, 0)
		s.space.AddShape(shape)
		s.shapes[shape] = i
	}
}

// Pick returns the index of the block whose footprint contains the ground
// point, ignoring block height.
func (s *Scene) Pick(ground mgl64.Vec3) (int, bool) {
	if s == nil || s.space == nil {
		return -1, false
	}
	info := s.space.PointQueryNearest(cp.Vector{X: ground.X(), Y: ground.Z()}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return -1, false
	}
	i, ok := s.shapes[info.Shape]
	if !ok {
		return -1, false
	}
	return i, true
}
