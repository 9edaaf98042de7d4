package obj

import "testing"

func TestExplosionGrowsThenEnds(t *testing.T) {
	e := NewExplosion(20)
	if e.Active() || e.Radius() != 0 {
		t.Fatalf("idle explosion should have no radius")
	}

	e.Start()
	first := e.Radius()
	if !approxEq(first, 20*(0.4+0.8/explosionFrames), 1e-4) {
		t.Fatalf("first frame radius = %v", first)
	}

	e.Update(explosionDuration / 2)
	mid := e.Radius()
	if mid <= first || mid >= 20*1.2 {
		t.Fatalf("mid radius = %v", mid)
	}

	e.Update(explosionDuration)
	if e.Active() || e.Radius() != 0 {
		t.Fatalf("explosion did not finish")
	}
}
