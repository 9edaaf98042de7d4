package obj

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/physics"
	"github.com/milk9111/tankbattle/prefabs"
	"golang.org/x/image/colornames"
)

// Shell is a pooled projectile. Its collider stays disabled until fired.
type Shell struct {
	body    *physics.Body
	enabled bool
	width   float32
	height  float32
	force   float32
	color   color.Color
}

func newShell(world *physics.World, spec *prefabs.ShellSpec) *Shell {
	s := &Shell{
		width:  float32(spec.Width),
		height: float32(spec.Height),
		force:  float32(spec.Force),
		color:  spec.Color.Or(colornames.Goldenrod),
	}
	collider := physics.NewCircleCollider(common.PixelsToMeters(s.height / 2))
	collider.SetEnabled(false)
	body := world.CreateBody(collider, float32(spec.Density))
	body.SetLinearDamping(common.V(float32(spec.LinearDamping), float32(spec.LinearDamping)))
	body.SetAngularDamping(float32(spec.AngularDamping))
	body.SetTag(TagShell)
	s.body = body
	return s
}

func (s *Shell) Body() *physics.Body {
	if s == nil {
		return nil
	}
	return s.body
}

func (s *Shell) Enabled() bool {
	return s != nil && s.enabled
}

// Fire launches the shell from pos (arena pixels) toward angle degrees.
func (s *Shell) Fire(pos common.Vec2, angle float32) {
	if s == nil || s.body == nil {
		return
	}
	s.enabled = true
	s.body.Collider().SetEnabled(true)
	s.body.SetLinearVelocity(common.Zero)
	s.body.SetAngularVelocity(0)
	s.body.SetPosition(common.PixelsToMetersVec(pos))

	rad := common.DegreesToRadians(angle)
	s.body.SetAngle(rad)
	s.body.ApplyForce(common.V(math32.Cos(rad), math32.Sin(rad)).Scale(s.force))
}

func (s *Shell) Disable() {
	if s == nil {
		return
	}
	s.enabled = false
	if s.body != nil {
		s.body.Collider().SetEnabled(false)
	}
}

// Update retires the shell once it leaves the arena. A retired shell keeps
// no pending force.
func (s *Shell) Update(arena *Arena) {
	if s == nil || s.body == nil {
		return
	}
	if !s.enabled {
		s.body.ClearForces()
		s.body.Collider().SetEnabled(false)
		return
	}
	if !arena.Contains(common.MetersToPixelsVec(s.body.Position())) {
		s.Disable()
		s.body.ClearForces()
	}
}

func (s *Shell) Draw(screen *ebiten.Image, arena *Arena) {
	if s == nil || !s.enabled || screen == nil {
		return
	}
	sx, sy := arena.BodyToScreen(s.body.Position())
	// anchored at the nose
	drawRect(screen, sx, sy, s.width, s.height, s.body.Angle(), 1, s.color)
}

// ShellPool owns a fixed set of shells shared by every tank.
type ShellPool struct {
	shells []*Shell
	byBody map[physics.BodyID]*Shell
}

func NewShellPool(world *physics.World, spec *prefabs.ShellSpec) *ShellPool {
	p := &ShellPool{
		shells: make([]*Shell, 0, spec.PoolSize),
		byBody: make(map[physics.BodyID]*Shell, spec.PoolSize),
	}
	for i := 0; i < spec.PoolSize; i++ {
		s := newShell(world, spec)
		p.shells = append(p.shells, s)
		p.byBody[s.body.ID()] = s
	}
	return p
}

// Acquire returns the first idle shell, or nil when all are in flight.
func (p *ShellPool) Acquire() *Shell {
	if p == nil {
		return nil
	}
	for _, s := range p.shells {
		if !s.enabled {
			return s
		}
	}
	return nil
}

func (p *ShellPool) ByBody(id physics.BodyID) (*Shell, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.byBody[id]
	return s, ok
}

func (p *ShellPool) Shells() []*Shell {
	if p == nil {
		return nil
	}
	return p.shells
}

// Active counts shells in flight.
func (p *ShellPool) Active() int {
	n := 0
	for _, s := range p.Shells() {
		if s.enabled {
			n++
		}
	}
	return n
}

func (p *ShellPool) Update(arena *Arena) {
	for _, s := range p.Shells() {
		s.Update(arena)
	}
}

func (p *ShellPool) Draw(screen *ebiten.Image, arena *Arena) {
	for _, s := range p.Shells() {
		s.Draw(screen, arena)
	}
}
