package obj

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera renders the arena into an offscreen image and offsets it while a
// shake is running.
type Camera struct {
	screenW int
	screenH int
	off     *ebiten.Image

	shakeIntensity float64
	shakeDuration  float64
	shakeTimer     float64
	offsetX        float64
	offsetY        float64

	rng *rand.Rand
}

// NewCamera creates a camera with the given logical screen size.
func NewCamera(screenW, screenH int, rng *rand.Rand) *Camera {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Camera{screenW: screenW, screenH: screenH, rng: rng}
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == w && c.screenH == h {
		return
	}
	c.screenW = w
	c.screenH = h
	c.off = nil
}

// Shake starts a shake of up to intensity pixels that decays to nothing over
// duration seconds. A weaker shake never cuts a stronger one short.
func (c *Camera) Shake(intensity, duration float64) {
	if c == nil || intensity <= 0 || duration <= 0 {
		return
	}
	if c.Shaking() && c.currentIntensity() > intensity {
		return
	}
	c.shakeIntensity = intensity
	c.shakeDuration = duration
	c.shakeTimer = duration
}

func (c *Camera) Shaking() bool {
	return c != nil && c.shakeTimer > 0
}

// Offset returns the current shake offset in screen pixels.
func (c *Camera) Offset() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.offsetX, c.offsetY
}

func (c *Camera) currentIntensity() float64 {
	if c.shakeDuration <= 0 {
		return 0
	}
	return c.shakeIntensity * (c.shakeTimer / c.shakeDuration)
}

// Update advances the shake. Call once per fixed update.
func (c *Camera) Update(dt float64) {
	if c == nil {
		return
	}
	if c.shakeTimer <= 0 {
		c.offsetX, c.offsetY = 0, 0
		return
	}
	c.shakeTimer -= dt
	if c.shakeTimer <= 0 {
		c.shakeTimer = 0
		c.offsetX, c.offsetY = 0, 0
		return
	}
	mag := c.currentIntensity()
	th := c.rng.Float64() * 2 * math.Pi
	c.offsetX = math.Cos(th) * mag
	c.offsetY = math.Sin(th) * mag
}

// Render lets drawWorld paint the arena into the offscreen image, then draws
// it onto screen shifted by the shake offset.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(c.offsetX), math.Round(c.offsetY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
