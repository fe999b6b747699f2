package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isocam/camera"
)

// Pointer tracks the controller's pointer mode. ebiten has no cursor clipping,
// so the system cursor stays visible in both modes and Input pins the
// reported position to the viewport while confined.
type Pointer struct {
	mode camera.PointerMode
}

func NewPointer() *Pointer {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	return &Pointer{}
}

func (p *Pointer) Mode() camera.PointerMode {
	return p.mode
}

func (p *Pointer) SetMode(mode camera.PointerMode) {
	p.mode = mode
}

// Confined reports whether cursor positions should be pinned to the viewport.
func (p *Pointer) Confined() bool {
	return p != nil && p.mode == camera.PointerConfined
}
