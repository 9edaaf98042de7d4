package obj

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/physics"
	"github.com/milk9111/tankbattle/prefabs"
	"golang.org/x/image/colornames"
)

// Barrel is a loose circle body. Two barrels in a field hide detonators that
// stay on the field after the barrel blows up.
type Barrel struct {
	body      *physics.Body
	radius    float32
	detonator Team
	exploded  bool
	defused   bool
	explosion *Explosion

	color      color.Color
	blueColor  color.Color
	greenColor color.Color
}

func NewBarrel(world *physics.World, spec *prefabs.BarrelSpec, pos common.Vec2) *Barrel {
	b := &Barrel{
		radius:     float32(spec.Radius),
		color:      spec.Color.Or(colornames.Firebrick),
		blueColor:  spec.BlueColor.Or(colornames.Royalblue),
		greenColor: spec.GreenColor.Or(colornames.Forestgreen),
	}
	b.explosion = NewExplosion(b.radius * 2.5)

	collider := physics.NewCircleCollider(common.PixelsToMeters(b.radius))
	body := world.CreateBody(collider, float32(spec.Density))
	if spec.Mass > 0 {
		body.SetMass(float32(spec.Mass))
	}
	body.SetLinearDamping(common.V(float32(spec.LinearDamping), float32(spec.LinearDamping)))
	body.SetAngularDamping(float32(spec.AngularDamping))
	body.SetPosition(common.PixelsToMetersVec(pos))
	body.SetTag(TagBarrel)
	b.body = body
	return b
}

func (b *Barrel) Body() *physics.Body {
	if b == nil {
		return nil
	}
	return b.body
}

func (b *Barrel) SetDetonator(team Team) {
	if b == nil {
		return
	}
	b.detonator = team
}

func (b *Barrel) Detonator() Team {
	if b == nil {
		return TeamNone
	}
	return b.detonator
}

func (b *Barrel) Exploded() bool {
	return b != nil && b.exploded
}

func (b *Barrel) Defused() bool {
	return b != nil && b.defused
}

// Explode blows the barrel up the first time it is called and reports
// whether it did. A plain barrel stops colliding; a detonator barrel is
// exposed and keeps colliding.
func (b *Barrel) Explode() bool {
	if b == nil || b.exploded {
		return false
	}
	b.exploded = true
	b.explosion.Start()
	if b.detonator == TeamNone {
		b.body.Collider().SetEnabled(false)
		return true
	}
	b.body.SetTag(DetonatorTag(b.detonator))
	return true
}

// Defuse disarms an exposed detonator.
func (b *Barrel) Defuse() {
	if b == nil {
		return
	}
	b.defused = true
	b.detonator = TeamNone
	b.body.Collider().SetEnabled(false)
}

// Contains reports whether p (arena pixels) is over the barrel.
func (b *Barrel) Contains(p common.Vec2) bool {
	if b == nil {
		return false
	}
	center := common.MetersToPixelsVec(b.body.Position())
	return center.DistanceSquared(p) <= b.radius*b.radius
}

func (b *Barrel) Update(dt float32) {
	if b == nil {
		return
	}
	b.explosion.Update(dt)
}

func (b *Barrel) Draw(screen *ebiten.Image, arena *Arena) {
	if b == nil || screen == nil {
		return
	}
	sx, sy := arena.BodyToScreen(b.body.Position())
	switch {
	case !b.exploded:
		vector.FillCircle(screen, sx, sy, b.radius, b.color, true)
		vector.StrokeCircle(screen, sx, sy, b.radius*0.6, 2, colornames.Black, true)
	case b.detonator != TeamNone:
		clr := b.blueColor
		if b.detonator == TeamGreen {
			clr = b.greenColor
		}
		vector.FillCircle(screen, sx, sy, b.radius*0.8, clr, true)
		vector.StrokeCircle(screen, sx, sy, b.radius*0.8, 2, colornames.White, true)
	}
	b.explosion.Draw(screen, sx, sy)
}

// BarrelField is the grid of barrels, two of which hide detonators.
type BarrelField struct {
	barrels []*Barrel
	byBody  map[physics.BodyID]*Barrel
}

func NewBarrelField(world *physics.World, spec *prefabs.BarrelSpec, rng *rand.Rand) *BarrelField {
	n := spec.Columns * spec.Rows
	f := &BarrelField{
		barrels: make([]*Barrel, 0, n),
		byBody:  make(map[physics.BodyID]*Barrel, n),
	}

	blue, green := pickDetonators(rng, n)
	for i := 0; i < spec.Columns; i++ {
		for j := 0; j < spec.Rows; j++ {
			pos := common.V(
				float32(float64(i)*spec.Spacing.X+spec.Offset.X),
				float32(float64(j)*spec.Spacing.Y+spec.Offset.Y),
			)
			b := NewBarrel(world, spec, pos)
			switch len(f.barrels) {
			case blue:
				b.SetDetonator(TeamBlue)
			case green:
				b.SetDetonator(TeamGreen)
			}
			f.barrels = append(f.barrels, b)
			f.byBody[b.body.ID()] = b
		}
	}
	return f
}

// pickDetonators returns two distinct indices in [0, n).
func pickDetonators(rng *rand.Rand, n int) (int, int) {
	if n < 2 {
		return 0, -1
	}
	blue := common.RandomRange(rng, 0, n-1)
	green := common.RandomRange(rng, 0, n-1)
	for green == blue {
		green = common.RandomRange(rng, 0, n-1)
	}
	return blue, green
}

func (f *BarrelField) Barrels() []*Barrel {
	if f == nil {
		return nil
	}
	return f.barrels
}

func (f *BarrelField) ByBody(id physics.BodyID) (*Barrel, bool) {
	if f == nil {
		return nil, false
	}
	b, ok := f.byBody[id]
	return b, ok
}

// At returns the intact barrel under p (arena pixels).
func (f *BarrelField) At(p common.Vec2) (*Barrel, bool) {
	for _, b := range f.Barrels() {
		if !b.exploded && b.Contains(p) {
			return b, true
		}
	}
	return nil, false
}

// Remaining counts barrels that have not exploded.
func (f *BarrelField) Remaining() int {
	n := 0
	for _, b := range f.Barrels() {
		if !b.exploded {
			n++
		}
	}
	return n
}

func (f *BarrelField) Update(dt float32) {
	for _, b := range f.Barrels() {
		b.Update(dt)
	}
}

func (f *BarrelField) Draw(screen *ebiten.Image, arena *Arena) {
	for _, b := range f.Barrels() {
		b.Draw(screen, arena)
	}
}
