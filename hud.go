package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tankbattle/obj"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	pipSize    = 10
	pipSpacing = 4
	hudMargin  = 16
)

// HUD draws ammo, reload progress and the winner banner over the arena.
type HUD struct {
	banner text.Face
	label  text.Face
}

func NewHUD() *HUD {
	h := &HUD{}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("hud: load font: %v", err)
		return h
	}
	h.banner = &text.GoTextFace{Source: src, Size: 56}
	h.label = &text.GoTextFace{Source: src, Size: 16}
	return h
}

func (h *HUD) Draw(screen *ebiten.Image, m *Match) {
	if h == nil || m == nil {
		return
	}
	w := float32(screen.Bounds().Dx())

	for i, t := range m.Tanks() {
		x := float32(hudMargin)
		align := text.AlignStart
		if i%2 == 1 {
			x = w - hudMargin - h.ammoWidth(t)
			align = text.AlignEnd
		}
		h.drawAmmo(screen, t, x, hudMargin)

		if h.label != nil {
			op := &text.DrawOptions{}
			tx := float64(hudMargin)
			if align == text.AlignEnd {
				tx = float64(w) - hudMargin
			}
			op.GeoM.Translate(tx, hudMargin+pipSize+pipSpacing*2)
			op.PrimaryAlign = align
			op.ColorScale.ScaleWithColor(colornames.White)
			text.Draw(screen, strings.ToUpper(string(t.Team())), h.label, op)
		}
	}

	if winner := m.Winner(); winner != obj.TeamNone && h.banner != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w)/2, float64(screen.Bounds().Dy())/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(teamColor(winner))
		text.Draw(screen, fmt.Sprintf("%s WINS!", strings.ToUpper(string(winner))), h.banner, op)
	}
}

func (h *HUD) ammoWidth(t *obj.Tank) float32 {
	n := float32(t.MagazineSize())
	return n*pipSize + (n-1)*pipSpacing
}

// drawAmmo draws one pip per loaded shell and, while reloading, a bar under
// the pips that fills up.
func (h *HUD) drawAmmo(screen *ebiten.Image, t *obj.Tank, x, y float32) {
	for i := 0; i < t.MagazineSize(); i++ {
		px := x + float32(i)*(pipSize+pipSpacing)
		if i < t.Ammo() {
			vector.FillRect(screen, px, y, pipSize, pipSize, colornames.Gold, false)
		} else {
			vector.StrokeRect(screen, px, y, pipSize, pipSize, 1, colornames.Gold, false)
		}
	}
	if p := t.ReloadProgress(); p > 0 {
		vector.FillRect(screen, x, y-4, h.ammoWidth(t)*p, 2, colornames.White, false)
	}
}

func teamColor(team obj.Team) color.Color {
	switch team {
	case obj.TeamBlue:
		return colornames.Deepskyblue
	case obj.TeamGreen:
		return colornames.Limegreen
	}
	return colornames.White
}

func drawDebugOverlay(screen *ebiten.Image, m *Match, frames int) {
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f\nBodies: %d    Contacts: %d    Shells: %d    Barrels: %d",
		frames, ebiten.ActualFPS(), ebiten.ActualTPS(),
		m.World().Len(), len(m.World().Contacts()), m.Shells().Active(), m.Barrels().Remaining())
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, screen.Bounds().Dy()-40)
}
