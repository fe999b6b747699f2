package scene

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

type cell struct {
	x, z int
}

type placement struct {
	cell
	height float64
}

// runLayout executes a layout script. The script sees `width` and `depth`
// and calls place(x, z, height) for every block; coordinates are grid cells
// with the origin in the middle of the grid. Calls outside the grid, with a
// non-positive height or with non-numeric arguments are ignored. Placing
// twice on one cell keeps the last height.
func runLayout(src []byte, width, depth int) ([]placement, error) {
	minX, minZ := -width/2, -depth/2
	maxX, maxZ := minX+width, minZ+depth

	var placed []placement
	index := map[cell]int{}

	place := &tengo.UserFunction{Name: "place", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		z, okZ := tengo.ToFloat64(args[1])
		h, okH := tengo.ToFloat64(args[2])
		if !okX || !okZ || !okH || h <= 0 {
			return tengo.FalseValue, nil
		}
		c := cell{x: int(math.Floor(x)), z: int(math.Floor(z))}
		if c.x < minX || c.x >= maxX || c.z < minZ || c.z >= maxZ {
			return tengo.FalseValue, nil
		}
		if i, ok := index[c]; ok {
			placed[i].height = h
			return tengo.TrueValue, nil
		}
		index[c] = len(placed)
		placed = append(placed, placement{cell: c, height: h})
		return tengo.TrueValue, nil
	}}

	script := tengo.NewScript(src)
	_ = script.Add("width", width)
	_ = script.Add("depth", depth)
	_ = script.Add("place", place)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene: compile layout: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("scene: run layout: %w", err)
	}
	return placed, nil
}
