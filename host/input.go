package host

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isocam/camera"
	"github.com/milk9111/isocam/host/window"
)

var buttons = []struct {
	ebiten ebiten.MouseButton
	camera camera.MouseButton
}{
	{ebiten.MouseButtonLeft, camera.MouseButtonLeft},
	{ebiten.MouseButtonRight, camera.MouseButtonRight},
	{ebiten.MouseButtonMiddle, camera.MouseButtonMiddle},
}

// Input turns ebiten's polled input state into the discrete events the
// camera controller consumes. Poll once per Update, before ticking the
// controller.
type Input struct {
	pointer  *Pointer
	viewport *window.Viewport

	cursor mgl64.Vec2
	primed bool
	// wheel accumulates fractional trackpad scrolling until a whole notch
	wheel  float64
	events []camera.Event
}

// NewInput polls ebiten input. While pointer is confined, cursor positions
// are pinned inside viewport so edge panning keeps working when the cursor
// leaves the window.
func NewInput(pointer *Pointer, viewport *window.Viewport) *Input {
	return &Input{pointer: pointer, viewport: viewport}
}

// Poll returns this frame's events. The slice is reused on the next call.
func (i *Input) Poll() []camera.Event {
	i.events = i.events[:0]

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.events = append(i.events, camera.KeyEvent{Key: camera.KeyEscape, Pressed: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		i.events = append(i.events, camera.KeyEvent{Key: camera.KeyEscape, Pressed: false})
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			i.events = append(i.events, camera.MouseButtonEvent{Button: b.camera, Pressed: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			i.events = append(i.events, camera.MouseButtonEvent{Button: b.camera, Pressed: false})
		}
	}

	_, dy := ebiten.Wheel()
	i.events, i.wheel = window.AppendWheel(i.events, i.wheel, dy)

	x, y := ebiten.CursorPosition()
	pos := mgl64.Vec2{float64(x), float64(y)}
	if i.pointer.Confined() && i.viewport != nil {
		pos = window.Confine(pos, i.viewport.Size())
	}
	if !i.primed {
		i.cursor = pos
		i.primed = true
	}
	if pos != i.cursor {
		i.events = append(i.events, camera.MouseMotionEvent{Relative: pos.Sub(i.cursor), Position: pos})
		i.cursor = pos
	}

	return i.events
}

// Cursor returns the last polled cursor position.
func (i *Input) Cursor() mgl64.Vec2 {
	return i.cursor
}
