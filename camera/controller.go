package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isocam/common"
)

// Controller drives an isometric camera rig from pointer and keyboard input:
// edge panning, middle-button drag panning, right-button rotation and smoothed
// wheel zoom.
//
// The host delivers every input event for a frame through HandleEvent and then
// calls Update once with the frame's delta time. Pointer motion is a per-frame
// delta and is cleared at the end of each Update.
type Controller struct {
	rig      *Rig
	settings Settings

	viewport    Viewport
	pointer     Pointer
	unsubscribe func()

	viewportSize mgl64.Vec2
	screenRatio  float64

	velocity mgl64.Vec2
	panState EdgePanState
	zoom     zoomSmoother
	dragging bool
	rotating bool
}

// State is a read-only snapshot of the controller, used for overlays.
type State struct {
	PanState     EdgePanState
	Dragging     bool
	Rotating     bool
	Zooming      bool
	ZoomTarget   float64
	PointerMode  PointerMode
	ViewportSize mgl64.Vec2
}

// NewController returns a controller that moves rig. It does nothing useful
// until attached to a host.
func NewController(rig *Rig, settings Settings) *Controller {
	if rig == nil {
		rig = &Rig{}
	}
	return &Controller{
		rig:      rig,
		settings: settings,
		zoom:     zoomSmoother{target: rig.Size},
	}
}

// Attach binds the controller to a host. It captures the current orthographic
// size as the zoom target, caches the viewport size, subscribes to resizes
// and confines the pointer to the window. Attaching again detaches first.
func (c *Controller) Attach(viewport Viewport, pointer Pointer) {
	c.Detach()

	c.viewport = viewport
	c.pointer = pointer
	c.zoom.target = c.rig.Size

	if viewport != nil {
		c.refreshViewport()
		c.unsubscribe = viewport.OnResize(c.refreshViewport)
	}
	if pointer != nil {
		pointer.SetMode(PointerConfined)
	}
}

// Detach releases the resize subscription. It is safe to call more than once.
func (c *Controller) Detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.viewport = nil
	c.pointer = nil
}

// Attached reports whether the controller currently holds a resize subscription.
func (c *Controller) Attached() bool {
	return c.unsubscribe != nil
}

func (c *Controller) refreshViewport() {
	if c.viewport == nil {
		return
	}
	c.viewportSize = c.viewport.Size()
	if c.viewportSize.Y() != 0 {
		c.screenRatio = c.viewportSize.X() / c.viewportSize.Y()
	}
}

// Configure swaps the tuning without touching the rig, the input flags or a
// running zoom transition. The zoom target is re-clamped into the new range.
func (c *Controller) Configure(settings Settings) {
	c.settings = settings
	c.zoom.target = common.Clamp(c.zoom.target, settings.ZoomMin, settings.ZoomMax)
}

func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) Rig() *Rig {
	return c.rig
}

func (c *Controller) State() State {
	s := State{
		PanState:     c.panState,
		Dragging:     c.dragging,
		Rotating:     c.rotating,
		Zooming:      c.zoom.active,
		ZoomTarget:   c.zoom.target,
		ViewportSize: c.viewportSize,
	}
	if c.pointer != nil {
		s.PointerMode = c.pointer.Mode()
	}
	return s
}

// Update advances the rig by one frame.
func (c *Controller) Update(dt float64) {
	if c.dragging {
		offset := DragOffset(c.rig.Transform, c.velocity, c.settings.DragSpeed, c.screenRatio, dt)
		c.rig.Transform.Translate(offset.Mul(-1))
	} else {
		c.rig.Transform.Translate(PanOffset(c.panState, c.rig.Transform, c.settings.PanSpeed, dt))
	}

	if c.zoom.active {
		c.rig.Size = c.zoom.step(c.rig.Size, dt, c.settings)
	}

	if c.rotating {
		c.rig.Transform.RotateY(-c.velocity.X() * c.settings.RotateSensitivity * dt)
	}

	// pointer velocity only ever describes the current frame
	c.velocity = mgl64.Vec2{}
}

// HandleEvent applies one input event. Unknown event types are ignored.
func (c *Controller) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		c.handleKey(e)
	case MouseButtonEvent:
		c.handleMouseButton(e)
	case MouseMotionEvent:
		c.handleMouseMotion(e)
	}
}

func (c *Controller) handleKey(e KeyEvent) {
	if e.Key != KeyEscape || !e.Pressed || c.pointer == nil {
		return
	}
	if c.pointer.Mode() == PointerConfined {
		c.pointer.SetMode(PointerVisible)
	} else {
		c.pointer.SetMode(PointerConfined)
	}
}

func (c *Controller) handleMouseButton(e MouseButtonEvent) {
	switch {
	case e.Button == MouseButtonWheelUp || e.Button == MouseButtonWheelDown:
		if c.dragging {
			return
		}
		delta := c.settings.ZoomStep
		if e.Button == MouseButtonWheelUp {
			delta = -delta
		}
		c.zoom.scroll(delta, c.settings)
	case e.Button == MouseButtonMiddle && e.Pressed:
		c.dragging = true
	case e.Button == MouseButtonRight && e.Pressed:
		c.rotating = true
	default:
		// any other button, and every release, ends both drag and rotation
		c.dragging = false
		c.rotating = false
	}
}

func (c *Controller) handleMouseMotion(e MouseMotionEvent) {
	c.velocity = e.Relative
	c.panState = DetectEdgePan(e.Position, c.viewportSize, c.settings.EdgeMargin)
}
