package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isocam/prefabs"
)

// Block is a box standing on the ground grid. X and Z are the world-space
// minimum corner of its footprint.
type Block struct {
	X      float64
	Z      float64
	Height float64
}

// Scene is the playground the camera looks at: a ground grid centered on the
// origin and the blocks the layout script placed on it.
type Scene struct {
	Width    int
	Depth    int
	TileSize float64
	Blocks   []Block

	space  *cp.Space
	shapes map[*cp.Shape]int
}

// Load builds the scene described by scene.yaml and its layout script.
func Load() (*Scene, error) {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("scene: load script %s: %w", spec.Script, err)
	}
	return Build(spec, src)
}

func Build(spec *prefabs.SceneSpec, script []byte) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	s := &Scene{
		Width:    spec.Width,
		Depth:    spec.Depth,
		TileSize: spec.TileSize,
		shapes:   map[*cp.Shape]int{},
	}
	if s.TileSize <= 0 {
		s.TileSize = 1
	}

	blocks, err := runLayout(script, s.Width, s.Depth)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		s.Blocks = append(s.Blocks, Block{
			X:      float64(b.x) * s.TileSize,
			Z:      float64(b.z) * s.TileSize,
			Height: b.height * s.TileSize,
		})
	}

	s.buildSpace()
	return s, nil
}

// Extent returns the world-space ground rectangle covered by the grid.
func (s *Scene) Extent() (minX, minZ, maxX, maxZ float64) {
	halfW := float64(s.Width/2) * s.TileSize
	halfD := float64(s.Depth/2) * s.TileSize
	return -halfW, -halfD, float64(s.Width)*s.TileSize - halfW, float64(s.Depth)*s.TileSize - halfD
}
