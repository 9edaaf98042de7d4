package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay, collider outlines and right-click detonation")
	seed := flag.Int64("seed", 0, "random seed for detonator placement (0 picks one from the clock)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "hot reload prefabs and contact rules from prefabs/ on disk")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game, err := NewGame(GameOptions{Debug: *debug, Seed: *seed, Watch: *watch, Mute: *mute})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	a := game.match.Arena()
	ebiten.SetWindowSize(int(a.Width()), int(a.Height()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("tankbattle")
	ebiten.SetTPS(ebiten.DefaultTPS)

	log.Printf("tankbattle: seed %d", *seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
