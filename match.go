package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tankbattle/assets"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/obj"
	"github.com/milk9111/tankbattle/physics"
	"github.com/milk9111/tankbattle/prefabs"
	"github.com/milk9111/tankbattle/rules"
)

// MatchConfig is everything a match is built from.
type MatchConfig struct {
	Tank   *prefabs.TankSpec
	Shell  *prefabs.ShellSpec
	Barrel *prefabs.BarrelSpec
	Arena  *prefabs.ArenaSpec

	Seed   int64
	Camera *obj.Camera

	// Controls builds the input for a player. Nil means keyboard bindings
	// from the tank spec.
	Controls func(player prefabs.TankPlayerSpec) (obj.Controls, error)
	// PlaySound is called for fire and explosion effects. Nil is silent.
	PlaySound func(assets.Sound)
}

// LoadMatchConfig reads every prefab spec a match needs.
func LoadMatchConfig() (MatchConfig, error) {
	var cfg MatchConfig
	var err error
	if cfg.Tank, err = prefabs.LoadTankSpec(); err != nil {
		return cfg, err
	}
	if cfg.Shell, err = prefabs.LoadShellSpec(); err != nil {
		return cfg, err
	}
	if cfg.Barrel, err = prefabs.LoadBarrelSpec(); err != nil {
		return cfg, err
	}
	if cfg.Arena, err = prefabs.LoadArenaSpec(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Match is one round: a fresh physics world with both tanks, the shell pool
// and the barrel field, glued together by the contact rules.
type Match struct {
	id      uuid.UUID
	world   *physics.World
	arena   *obj.Arena
	tanks   []*obj.Tank
	byBody  map[physics.BodyID]*obj.Tank
	shells  *obj.ShellPool
	barrels *obj.BarrelField
	rules   *rules.Contact
	camera  *obj.Camera

	dt            float32
	shakeStrength float64
	shakeDuration float64
	winner        obj.Team
	playSound     func(assets.Sound)
	lastRuleErr   string
}

func NewMatch(cfg MatchConfig) (*Match, error) {
	if cfg.Tank == nil || cfg.Shell == nil || cfg.Barrel == nil || cfg.Arena == nil {
		return nil, fmt.Errorf("match: incomplete config")
	}

	contact, err := rules.NewContact(cfg.Arena.Rules)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld()
	world.SetGravity(common.V(float32(cfg.Arena.Gravity.X), float32(cfg.Arena.Gravity.Y)))

	m := &Match{
		id:            uuid.New(),
		world:         world,
		arena:         obj.NewArena(cfg.Arena),
		byBody:        make(map[physics.BodyID]*obj.Tank, len(cfg.Tank.Players)),
		rules:         contact,
		camera:        cfg.Camera,
		dt:            float32(cfg.Arena.TimeStep),
		shakeStrength: cfg.Barrel.ShakeIntensity,
		shakeDuration: cfg.Barrel.ShakeDuration,
		playSound:     cfg.PlaySound,
	}

	controls := cfg.Controls
	if controls == nil {
		controls = func(player prefabs.TankPlayerSpec) (obj.Controls, error) {
			return obj.NewKeyControls(player.Keys)
		}
	}
	for _, player := range cfg.Tank.Players {
		c, err := controls(player)
		if err != nil {
			return nil, fmt.Errorf("match: %s controls: %w", player.Team, err)
		}
		t := obj.NewTank(world, cfg.Tank, player, c)
		m.tanks = append(m.tanks, t)
		m.byBody[t.Body().ID()] = t
	}

	m.shells = obj.NewShellPool(world, cfg.Shell)
	m.barrels = obj.NewBarrelField(world, cfg.Barrel, rand.New(rand.NewSource(cfg.Seed)))

	world.SetListener(physics.ListenerFunc(m.onCollision))
	log.Printf("match %s: %d bodies, rules %s", m.id, world.Len(), contact.Name())
	return m, nil
}

func (m *Match) ID() uuid.UUID { return m.id }
func (m *Match) World() *physics.World { return m.world }
func (m *Match) Arena() *obj.Arena { return m.arena }
func (m *Match) Tanks() []*obj.Tank { return m.tanks }
func (m *Match) Shells() *obj.ShellPool { return m.shells }
func (m *Match) Barrels() *obj.BarrelField { return m.barrels }
func (m *Match) Rules() *rules.Contact { return m.rules }

// Winner is the surviving team once a tank has been destroyed.
func (m *Match) Winner() obj.Team {
	return m.winner
}

func (m *Match) Update() {
	for _, t := range m.tanks {
		t.Update(m.dt)
		if !t.CanFire() {
			continue
		}
		s := m.shells.Acquire()
		if s == nil {
			continue
		}
		s.Fire(t.ShellOrigin(), t.TurretAngle())
		t.OnFired()
		m.play(assets.SoundFire)
	}

	m.barrels.Update(m.dt)
	m.shells.Update(m.arena)
	m.world.Step(m.dt)
	m.camera.Update(float64(m.dt))
}

// Detonate explodes the intact barrel under p (arena pixels).
func (m *Match) Detonate(p common.Vec2) bool {
	b, ok := m.barrels.At(p)
	if !ok {
		return false
	}
	log.Printf("match %s: detonating barrel at %.0f,%.0f", m.id, p.X, p.Y)
	m.explode(b)
	return true
}

func (m *Match) Draw(screen *ebiten.Image) {
	m.arena.Draw(screen)
	m.barrels.Draw(screen, m.arena)
	m.shells.Draw(screen, m.arena)
	for _, t := range m.tanks {
		t.Draw(screen, m.arena)
	}
}

func (m *Match) onCollision(a, b *physics.Body) bool {
	actions, keep, err := m.rules.Evaluate(m.participant(a), m.participant(b))
	if err != nil {
		// the same broken script fails every step
		if msg := err.Error(); msg != m.lastRuleErr {
			log.Printf("match %s: contact rules: %v", m.id, err)
			m.lastRuleErr = msg
		}
		return true
	}
	m.lastRuleErr = ""

	for _, act := range actions {
		body := a
		if act.Side == rules.SideB {
			body = b
		}
		m.apply(act, body)
	}
	return keep
}

func (m *Match) participant(b *physics.Body) rules.Participant {
	p := rules.Participant{Tag: obj.TagName(b.Tag())}
	if t, ok := m.byBody[b.ID()]; ok {
		p.Team = string(t.Team())
	} else if barrel, ok := m.barrels.ByBody(b.ID()); ok {
		p.Team = string(barrel.Detonator())
	}
	return p
}

func (m *Match) apply(act rules.Action, body *physics.Body) {
	switch act.Kind {
	case rules.ActionDisable:
		if s, ok := m.shells.ByBody(body.ID()); ok {
			s.Disable()
		}
	case rules.ActionExplode:
		if b, ok := m.barrels.ByBody(body.ID()); ok {
			m.explode(b)
		}
	case rules.ActionDefuse:
		if b, ok := m.barrels.ByBody(body.ID()); ok {
			b.Defuse()
		}
	case rules.ActionDefeat:
		m.defeat(obj.Team(act.Team))
	}
}

func (m *Match) explode(b *obj.Barrel) {
	if !b.Explode() {
		return
	}
	m.camera.Shake(m.shakeStrength, m.shakeDuration)
	m.play(assets.SoundExplosion)
}

func (m *Match) defeat(team obj.Team) {
	for _, t := range m.tanks {
		if t.Team() != team || !t.Destroy() {
			continue
		}
		m.camera.Shake(m.shakeStrength*2, m.shakeDuration*2)
		m.play(assets.SoundExplosion)
		if m.winner != obj.TeamNone {
			continue
		}
		for _, other := range m.tanks {
			if !other.Destroyed() {
				m.winner = other.Team()
				log.Printf("match %s: %s defeated, %s wins", m.id, team, m.winner)
				break
			}
		}
	}
}

func (m *Match) play(s assets.Sound) {
	if m.playSound != nil {
		m.playSound(s)
	}
}
