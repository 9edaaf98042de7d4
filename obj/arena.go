package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/prefabs"
	"golang.org/x/image/colornames"
)

// Arena is the playfield in pixels with y pointing up. It converts between
// arena space and screen space, where y points down.
type Arena struct {
	bounds     cp.BB
	background color.Color
	gridColor  color.Color
	gridSize   float32
}

func NewArena(spec *prefabs.ArenaSpec) *Arena {
	w, h := float64(common.BaseWidth), float64(common.BaseHeight)
	a := &Arena{
		background: colornames.Tan,
		gridColor:  colornames.Burlywood,
	}
	if spec != nil {
		if spec.Width > 0 && spec.Height > 0 {
			w, h = spec.Width, spec.Height
		}
		a.background = spec.Background.Or(a.background)
		a.gridColor = spec.GridColor.Or(a.gridColor)
		a.gridSize = float32(spec.GridSize)
	}
	a.bounds = cp.NewBB(0, 0, w, h)
	return a
}

func (a *Arena) Width() float32 {
	return float32(a.bounds.R - a.bounds.L)
}

func (a *Arena) Height() float32 {
	return float32(a.bounds.T - a.bounds.B)
}

// Contains reports whether p (pixels) lies inside the arena, edges included.
func (a *Arena) Contains(p common.Vec2) bool {
	if a == nil {
		return true
	}
	return a.bounds.ContainsVect(cp.Vector{X: float64(p.X), Y: float64(p.Y)})
}

// ToScreen converts an arena position to screen pixels.
func (a *Arena) ToScreen(p common.Vec2) (float32, float32) {
	if a == nil {
		return p.X, p.Y
	}
	return p.X, a.Height() - p.Y
}

// FromScreen converts screen pixels to an arena position.
func (a *Arena) FromScreen(x, y float32) common.Vec2 {
	if a == nil {
		return common.V(x, y)
	}
	return common.V(x, a.Height()-y)
}

// BodyToScreen converts a physics position in meters to screen pixels.
func (a *Arena) BodyToScreen(m common.Vec2) (float32, float32) {
	return a.ToScreen(common.MetersToPixelsVec(m))
}

func (a *Arena) Draw(screen *ebiten.Image) {
	if a == nil || screen == nil {
		return
	}
	screen.Fill(a.background)
	if a.gridSize <= 0 {
		return
	}
	w, h := a.Width(), a.Height()
	for x := a.gridSize; x < w; x += a.gridSize {
		vector.StrokeLine(screen, x, 0, x, h, 1, a.gridColor, false)
	}
	for y := a.gridSize; y < h; y += a.gridSize {
		vector.StrokeLine(screen, 0, h-y, w, h-y, 1, a.gridColor, false)
	}
}
