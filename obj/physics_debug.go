package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/physics"
)

var (
	debugShapeColor    = cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
	debugDisabledColor = cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 0.6}
	debugContactColor  = cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
	debugNormalColor   = cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
)

// PhysicsDrawer renders physics.World.DebugDraw output onto an ebiten image.
type PhysicsDrawer struct {
	screen *ebiten.Image
	arena  *Arena
}

func NewPhysicsDrawer(screen *ebiten.Image, arena *Arena) *PhysicsDrawer {
	return &PhysicsDrawer{screen: screen, arena: arena}
}

// DrawWorld draws every collider and the last step's contacts.
func DrawWorld(screen *ebiten.Image, arena *Arena, world *physics.World) {
	if screen == nil || world == nil {
		return
	}
	world.DebugDraw(NewPhysicsDrawer(screen, arena))
}

func (d *PhysicsDrawer) DrawCircle(center common.Vec2, angle, radius float32, enabled bool) {
	if d.screen == nil {
		return
	}
	c := shapeColor(enabled)
	sx, sy := d.arena.BodyToScreen(center)
	r := common.MetersToPixels(radius)
	vector.StrokeCircle(d.screen, sx, sy, r, 1, c, true)

	// angle indicator
	tip := common.MetersToPixelsVec(center.Add(common.V(radius, 0).Rotate(angle)))
	tx, ty := d.arena.ToScreen(tip)
	vector.StrokeLine(d.screen, sx, sy, tx, ty, 1, c, true)
}

func (d *PhysicsDrawer) DrawPolygon(verts []common.Vec2, enabled bool) {
	if d.screen == nil || len(verts) == 0 {
		return
	}
	c := shapeColor(enabled)
	for i := range verts {
		ax, ay := d.arena.BodyToScreen(verts[i])
		bx, by := d.arena.BodyToScreen(verts[(i+1)%len(verts)])
		vector.StrokeLine(d.screen, ax, ay, bx, by, 1, c, true)
	}
}

func (d *PhysicsDrawer) DrawContact(a, b common.Vec2, normal common.Vec2) {
	if d.screen == nil {
		return
	}
	ax, ay := d.arena.BodyToScreen(a)
	bx, by := d.arena.BodyToScreen(b)
	vector.StrokeLine(d.screen, ax, ay, bx, by, 1, fcolorToRGBA(debugContactColor), true)

	mid := common.MetersToPixelsVec(a.Add(b).Scale(0.5))
	tip := mid.Add(normal.Scale(12))
	mx, my := d.arena.ToScreen(mid)
	tx, ty := d.arena.ToScreen(tip)
	vector.StrokeLine(d.screen, mx, my, tx, ty, 2, fcolorToRGBA(debugNormalColor), true)
}

func shapeColor(enabled bool) color.RGBA {
	if enabled {
		return fcolorToRGBA(debugShapeColor)
	}
	return fcolorToRGBA(debugDisabledColor)
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
