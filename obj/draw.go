package obj

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	pixelImg  *ebiten.Image
	pixelOnce sync.Once
)

func pixel() *ebiten.Image {
	pixelOnce.Do(func() {
		pixelImg = ebiten.NewImage(1, 1)
		pixelImg.Fill(color.White)
	})
	return pixelImg
}

// drawRect fills a w x h rectangle centered on (sx, sy) in screen space,
// rotated by angle radians counter-clockwise as seen on screen with y up.
// anchorX shifts the pivot along the width, 0.5 being the center.
func drawRect(dst *ebiten.Image, sx, sy, w, h, angle, anchorX float32, clr color.Color) {
	if dst == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(anchorX), -0.5)
	op.GeoM.Scale(float64(w), float64(h))
	// screen y points down, so a y-up counter-clockwise turn is clockwise here
	op.GeoM.Rotate(-float64(angle))
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(pixel(), op)
}
