package obj

import (
	"math/rand"
	"testing"

	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/prefabs"
)

func TestArenaConversions(t *testing.T) {
	a := NewArena(&prefabs.ArenaSpec{Width: 1024, Height: 768})
	if a.Width() != 1024 || a.Height() != 768 {
		t.Fatalf("size %v x %v", a.Width(), a.Height())
	}

	x, y := a.ToScreen(common.V(100, 700))
	if x != 100 || y != 68 {
		t.Fatalf("ToScreen = %v,%v", x, y)
	}
	if p := a.FromScreen(100, 68); p != common.V(100, 700) {
		t.Fatalf("FromScreen = %v", p)
	}

	x, y = a.BodyToScreen(common.V(1, 1))
	if x != 32 || y != 736 {
		t.Fatalf("BodyToScreen = %v,%v", x, y)
	}
}

func TestArenaContains(t *testing.T) {
	a := NewArena(nil)
	cases := []struct {
		p    common.Vec2
		want bool
	}{
		{common.V(0, 0), true},
		{common.V(1024, 768), true},
		{common.V(512, 384), true},
		{common.V(-1, 10), false},
		{common.V(10, 769), false},
	}
	for _, c := range cases {
		if got := a.Contains(c.p); got != c.want {
			t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestCameraShakeDecays(t *testing.T) {
	c := NewCamera(100, 100, rand.New(rand.NewSource(1)))
	c.Shake(2.5, 0.5)
	if !c.Shaking() {
		t.Fatalf("camera should be shaking")
	}

	c.Update(0.25)
	ox, oy := c.Offset()
	if mag := ox*ox + oy*oy; mag > 1.25*1.25+1e-9 || mag < 1.25*1.25-1e-9 {
		t.Fatalf("offset magnitude^2 = %v, want 1.5625", mag)
	}

	c.Shake(0.1, 5)
	if c.shakeIntensity != 2.5 {
		t.Fatalf("weaker shake replaced a stronger one")
	}

	c.Update(0.3)
	ox, oy = c.Offset()
	if c.Shaking() || ox != 0 || oy != 0 {
		t.Fatalf("shake did not end: %v,%v", ox, oy)
	}
}
