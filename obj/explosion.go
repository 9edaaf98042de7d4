package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tankbattle/common"
	"golang.org/x/image/colornames"
)

const (
	explosionFrames   = 16
	explosionDuration = 0.8
)

// Explosion is a short expanding fireball anchored to a screen-space center
// supplied at draw time.
type Explosion struct {
	radius  float32
	elapsed float32
	active  bool
}

func NewExplosion(radius float32) *Explosion {
	return &Explosion{radius: radius}
}

// Start restarts the animation from its first frame.
func (e *Explosion) Start() {
	if e == nil {
		return
	}
	e.elapsed = 0
	e.active = true
}

func (e *Explosion) Active() bool {
	return e != nil && e.active
}

// Frame returns the current frame index in [0, explosionFrames).
func (e *Explosion) Frame() int {
	if e == nil || !e.active {
		return 0
	}
	f := int(e.elapsed / explosionDuration * explosionFrames)
	if f >= explosionFrames {
		f = explosionFrames - 1
	}
	return f
}

func (e *Explosion) Update(dt float32) {
	if e == nil || !e.active {
		return
	}
	e.elapsed += dt
	if e.elapsed >= explosionDuration {
		e.active = false
	}
}

// progress is the completed fraction of the animation, stepped per frame.
func (e *Explosion) progress() float32 {
	return float32(e.Frame()+1) / explosionFrames
}

// Radius is the current fireball radius, growing from 40% to 120% of the
// configured radius over the animation.
func (e *Explosion) Radius() float32 {
	if !e.Active() {
		return 0
	}
	return common.Lerp(0.4, 1.2, e.progress()) * e.radius
}

func (e *Explosion) Draw(screen *ebiten.Image, sx, sy float32) {
	if e == nil || !e.active || screen == nil {
		return
	}
	fade := uint8(255 * (1 - e.progress()))
	outer := e.Radius()
	inner := outer * 0.6
	vector.FillCircle(screen, sx, sy, outer, withAlpha(colornames.Orangered, fade), true)
	vector.FillCircle(screen, sx, sy, inner, withAlpha(colornames.Gold, fade), true)
}

func withAlpha(c color.RGBA, a uint8) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
