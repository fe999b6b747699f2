package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isocam/camera"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const hudLines = 7

// HUD is a small read-only panel in the top-left corner showing what the
// camera controller is doing.
type HUD struct {
	ui    *ebitenui.UI
	lines []*widget.Text
}

// NewHUD builds the panel. Like the rest of the UI it uses the built-in basic
// font so no theme fonts need to be loaded.
func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h := &HUD{}
	for i := 0; i < hudLines; i++ {
		t := widget.NewText(widget.TextOpts.Text("", &face, textColor))
		h.lines = append(h.lines, t)
		panel.AddChild(t)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Refresh rewrites the panel from the controller snapshot.
func (h *HUD) Refresh(st camera.State, rig *camera.Rig, hovered int) {
	if h == nil || rig == nil {
		return
	}
	pos := rig.Transform.Position
	hover := "-"
	if hovered >= 0 {
		hover = fmt.Sprintf("block %d", hovered)
	}
	zoom := fmt.Sprintf("zoom   %.2f -> %.0f", rig.Size, st.ZoomTarget)
	if !st.Zooming {
		zoom = fmt.Sprintf("zoom   %.2f", rig.Size)
	}

	labels := [hudLines]string{
		fmt.Sprintf("pos    %.1f, %.1f, %.1f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("yaw    %.1f deg", mgl64.RadToDeg(rig.Transform.Yaw)),
		zoom,
		fmt.Sprintf("edge   %s", st.PanState),
		fmt.Sprintf("drag   %t  rotate %t", st.Dragging, st.Rotating),
		fmt.Sprintf("cursor %s  view %.0fx%.0f", st.PointerMode, st.ViewportSize.X(), st.ViewportSize.Y()),
		fmt.Sprintf("hover  %s", hover),
	}
	for i, t := range h.lines {
		t.Label = labels[i]
	}
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
