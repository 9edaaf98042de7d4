package main

import (
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tankbattle/assets"
	"github.com/milk9111/tankbattle/obj"
	"github.com/milk9111/tankbattle/prefabs"
)

type GameOptions struct {
	Debug bool
	Seed  int64
	Watch bool
	Mute  bool
}

type Game struct {
	frames    int
	debug     bool
	debugDraw bool
	paused    bool

	rng     *rand.Rand
	input   *obj.Input
	camera  *obj.Camera
	match   *Match
	hud     *HUD
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		debug:     opts.Debug,
		debugDraw: opts.Debug,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		hud:       NewHUD(),
	}

	m, err := g.newMatch()
	if err != nil {
		return nil, err
	}
	g.match = m
	g.input = obj.NewInput(m.Arena())
	g.pauseUI = NewPauseUI(g)

	assets.SetMuted(opts.Mute)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DefaultWatchDirs()...)
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) newMatch() (*Match, error) {
	cfg, err := LoadMatchConfig()
	if err != nil {
		return nil, err
	}
	w, h := int(cfg.Arena.Width), int(cfg.Arena.Height)
	if g.camera == nil {
		g.camera = obj.NewCamera(w, h, rand.New(rand.NewSource(g.rng.Int63())))
	} else {
		g.camera.SetScreenSize(w, h)
	}
	cfg.Camera = g.camera
	cfg.Seed = g.rng.Int63()
	cfg.PlaySound = assets.Play
	return NewMatch(cfg)
}

// restart replaces the match with a fresh one built from the current specs.
// The running match survives a failed rebuild.
func (g *Game) restart() {
	m, err := g.newMatch()
	if err != nil {
		log.Printf("game: restart: %v", err)
		return
	}
	g.match = m
	g.input.SetArena(m.Arena())
	log.Printf("game: restarted as match %s", m.ID())
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.frames++

	g.applyPrefabChanges()

	g.input.Update()
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.input.DebugDrawPressed {
		g.debugDraw = !g.debugDraw
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.debug && g.input.DetonatePressed {
		g.match.Detonate(g.input.Mouse)
	}
	g.match.Update()
	return nil
}

// applyPrefabChanges restarts the match when a spec changes and recompiles
// the contact rules when a script changes.
func (g *Game) applyPrefabChanges() {
	changes, errs := g.watcher.Drain()
	for _, err := range errs {
		log.Printf("game: prefab watcher: %v", err)
	}

	restart, reload := false, false
	for _, c := range changes {
		switch c.Kind {
		case prefabs.ChangeSpec:
			restart = true
		case prefabs.ChangeScript:
			reload = true
		}
	}

	if restart {
		log.Printf("game: prefab specs changed")
		g.restart()
		return
	}
	if reload {
		if err := g.match.Rules().Reload(); err != nil {
			log.Printf("game: reload %s: %v", g.match.Rules().Name(), err)
			return
		}
		log.Printf("game: reloaded %s", g.match.Rules().Name())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, func(world *ebiten.Image) {
		g.match.Draw(world)
		if g.debugDraw {
			obj.DrawWorld(world, g.match.Arena(), g.match.World())
		}
	})

	g.hud.Draw(screen, g.match)
	if g.debug {
		drawDebugOverlay(screen, g.match, g.frames)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	a := g.match.Arena()
	return float64(a.Width()), float64(a.Height())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
