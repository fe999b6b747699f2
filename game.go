package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isocam/camera"
	"github.com/milk9111/isocam/common"
	"github.com/milk9111/isocam/host"
	"github.com/milk9111/isocam/host/window"
	"github.com/milk9111/isocam/prefabs"
	"github.com/milk9111/isocam/render"
	"github.com/milk9111/isocam/scene"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Game struct {
	debug bool

	viewport   *window.Viewport
	pointer    *host.Pointer
	input      *host.Input
	rig        *camera.Rig
	controller *camera.Controller
	projector  *camera.Projector

	scene   *scene.Scene
	hovered int

	hud     *HUD
	showHUD bool

	watcher     *prefabs.Watcher
	clipboardOK bool
}

func NewGame(debug, watch bool) *Game {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		log.Printf("failed to load camera spec, using defaults: %v", err)
		spec = &prefabs.CameraSpec{}
	}

	rig := spec.Rig()
	viewport := window.NewViewport(common.BaseWidth, common.BaseHeight)
	pointer := host.NewPointer()
	g := &Game{
		debug:      debug,
		viewport:   viewport,
		pointer:    pointer,
		input:      host.NewInput(pointer, viewport),
		rig:        rig,
		controller: camera.NewController(rig, spec.Controller.Settings()),
		projector:  camera.NewProjector(spec.Pitch()),
		hovered:    -1,
		hud:        NewHUD(),
		showHUD:    true,
	}
	g.controller.Attach(g.viewport, g.pointer)
	g.loadScene()

	if watch {
		g.startWatcher()
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	return g
}

// Close releases everything NewGame acquired. Call it after RunGame returns.
func (g *Game) Close() {
	g.controller.Detach()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close prefab watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyPose()
	}

	g.reloadPrefabs()

	// all of the frame's input lands before the tick
	for _, ev := range g.input.Poll() {
		g.controller.HandleEvent(ev)
	}
	g.controller.Update(1 / float64(ebiten.TPS()))

	g.projector.Update(g.rig, g.viewport.Size())
	g.hovered = -1
	if ground, ok := g.projector.GroundPoint(g.input.Cursor()); ok {
		if i, ok := g.scene.Pick(ground); ok {
			g.hovered = i
		}
	}

	if g.showHUD {
		g.hud.Refresh(g.controller.State(), g.rig, g.hovered)
		g.hud.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	render.Scene(screen, g.scene, g.projector, g.hovered)
	if g.debug {
		render.Marker(screen, g.projector, g.rig.Transform.Position)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.2f    FPS: %.2f", ebiten.ActualTPS(), ebiten.ActualFPS()), 10, int(g.viewport.Size().Y())-20)
	}

	if g.showHUD {
		g.hud.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) loadScene() {
	s, err := scene.Load()
	if err != nil {
		log.Printf("failed to load scene: %v", err)
		if g.scene != nil {
			return
		}
		s, err = scene.Build(&prefabs.SceneSpec{Width: 32, Depth: 32, TileSize: 1}, nil)
		if err != nil {
			log.Printf("failed to build empty scene: %v", err)
			return
		}
	}
	g.scene = s
}

func (g *Game) startWatcher() {
	if !prefabs.OnDisk() {
		log.Printf("no %s directory next to the binary, hot reload disabled", prefabs.Dir)
		return
	}
	w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Printf("failed to watch %s: %v", prefabs.Dir, err)
		return
	}
	g.watcher = w
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefab watcher: %v", err)
	default:
	}

	reloadCamera, reloadScene := false, false
	for _, name := range g.watcher.Drain() {
		switch prefabs.Kind(name) {
		case prefabs.CameraFile:
			reloadCamera = true
		case prefabs.SceneFile:
			reloadScene = true
		}
	}

	if reloadCamera {
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("reload %s: %v", prefabs.CameraFile, err)
		} else {
			g.controller.Configure(spec.Controller.Settings())
			g.projector.Pitch = spec.Pitch()
			log.Printf("reloaded %s", prefabs.CameraFile)
		}
	}
	if reloadScene {
		g.loadScene()
		log.Printf("reloaded %s", prefabs.SceneFile)
	}
}

func (g *Game) copyPose() {
	if !g.clipboardOK {
		return
	}
	data, err := prefabs.MarshalPose(g.rig)
	if err != nil {
		log.Printf("copy pose: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}
