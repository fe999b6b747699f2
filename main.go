package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isocam/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw the rig pivot and frame timings")
	watch := flag.Bool("watch", false, "hot reload prefabs/ from disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("isocam")

	game := NewGame(*debug, *watch)
	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
