package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/isocam/camera"
	"github.com/milk9111/isocam/scene"
	"golang.org/x/image/colornames"
)

var (
	gridColor    = color.NRGBA{R: 0x60, G: 0x70, B: 0x70, A: 0xff}
	axisColor    = colornames.Lightgrey
	blockColor   = colornames.Steelblue
	hoverColor   = colornames.Goldenrod
	outlineColor = color.NRGBA{R: 0x10, G: 0x18, B: 0x20, A: 0xff}
	markerColor  = colornames.Crimson
)

// whitePixel is the source texture for flat-colored triangles.
var whitePixel *ebiten.Image

func solidSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// box face corners, counter-clockwise seen from outside, and outward normals
var faces = []struct {
	normal  mgl64.Vec3
	corners [4]mgl64.Vec3
	shade   float32
}{
	{mgl64.Vec3{0, 1, 0}, [4]mgl64.Vec3{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, 1.0},
	{mgl64.Vec3{0, 0, 1}, [4]mgl64.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, 0.75},
	{mgl64.Vec3{0, 0, -1}, [4]mgl64.Vec3{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, 0.75},
	{mgl64.Vec3{1, 0, 0}, [4]mgl64.Vec3{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, 0.6},
	{mgl64.Vec3{-1, 0, 0}, [4]mgl64.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, 0.6},
}

// Scene draws the ground grid and every block, far to near, highlighting the
// hovered block. hovered is -1 when nothing is under the cursor.
func Scene(screen *ebiten.Image, s *scene.Scene, p *camera.Projector, hovered int) {
	if s == nil || p == nil {
		return
	}
	drawGrid(screen, s, p)

	eye := p.EyeDirection()
	order := make([]int, len(s.Blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return blockCenter(s, s.Blocks[order[a]]).Dot(eye) < blockCenter(s, s.Blocks[order[b]]).Dot(eye)
	})

	for _, i := range order {
		clr := blockColor
		if i == hovered {
			clr = hoverColor
		}
		drawBlock(screen, s, p, s.Blocks[i], eye, clr)
	}
}

// Marker draws a small cross at a world point, used for the rig pivot.
func Marker(screen *ebiten.Image, p *camera.Projector, at mgl64.Vec3) {
	c := p.Project(at)
	x, y := float32(c.X()), float32(c.Y())
	vector.StrokeLine(screen, x-6, y, x+6, y, 2, markerColor, true)
	vector.StrokeLine(screen, x, y-6, x, y+6, 2, markerColor, true)
}

func drawGrid(screen *ebiten.Image, s *scene.Scene, p *camera.Projector) {
	minX, minZ, maxX, maxZ := s.Extent()
	for i := 0; i <= s.Width; i++ {
		x := minX + float64(i)*s.TileSize
		clr := color.Color(gridColor)
		if x == 0 {
			clr = axisColor
		}
		line(screen, p, mgl64.Vec3{x, 0, minZ}, mgl64.Vec3{x, 0, maxZ}, clr)
	}
	for i := 0; i <= s.Depth; i++ {
		z := minZ + float64(i)*s.TileSize
		clr := color.Color(gridColor)
		if z == 0 {
			clr = axisColor
		}
		line(screen, p, mgl64.Vec3{minX, 0, z}, mgl64.Vec3{maxX, 0, z}, clr)
	}
}

func drawBlock(screen *ebiten.Image, s *scene.Scene, p *camera.Projector, b scene.Block, eye mgl64.Vec3, clr color.RGBA) {
	size := mgl64.Vec3{s.TileSize, b.Height, s.TileSize}
	origin := mgl64.Vec3{b.X, 0, b.Z}

	for _, f := range faces {
		if f.normal.Dot(eye) <= 0 {
			continue
		}
		var pts [4]mgl64.Vec2
		for k, c := range f.corners {
			world := origin.Add(mgl64.Vec3{c.X() * size.X(), c.Y() * size.Y(), c.Z() * size.Z()})
			pts[k] = p.Project(world)
		}
		fillQuad(screen, pts, shade(clr, f.shade))
		for k := range pts {
			from, to := pts[k], pts[(k+1)%4]
			vector.StrokeLine(screen, float32(from.X()), float32(from.Y()), float32(to.X()), float32(to.Y()), 1, outlineColor, true)
		}
	}
}

func fillQuad(screen *ebiten.Image, pts [4]mgl64.Vec2, clr color.RGBA) {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	vs := make([]ebiten.Vertex, 4)
	for i, pt := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(pt.X()),
			DstY:   float32(pt.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func line(screen *ebiten.Image, p *camera.Projector, from, to mgl64.Vec3, clr color.Color) {
	a := p.Project(from)
	b := p.Project(to)
	vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()), 1, clr, true)
}

func blockCenter(s *scene.Scene, b scene.Block) mgl64.Vec3 {
	half := s.TileSize / 2
	return mgl64.Vec3{b.X + half, b.Height / 2, b.Z + half}
}

func shade(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
