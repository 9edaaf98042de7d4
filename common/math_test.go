package common

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func near(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func TestVec2Algebra(t *testing.T) {
	a := V(1, 2)
	b := V(-3, 0.5)

	if a.Add(b) != b.Add(a) {
		t.Fatalf("add not commutative: %v vs %v", a.Add(b), b.Add(a))
	}
	if got, want := a.Add(b).Scale(2), a.Scale(2).Add(b.Scale(2)); !got.ApproxEqual(want, 1e-6) {
		t.Fatalf("scale not distributive: %v vs %v", got, want)
	}
	if got := a.Sub(a); got != Zero {
		t.Fatalf("a-a = %v", got)
	}
	if got := a.Mul(V(2, 3)); got != V(2, 6) {
		t.Fatalf("componentwise mul = %v", got)
	}
	if got := V(4, 9).Div(V(2, 3)); got != V(2, 3) {
		t.Fatalf("componentwise div = %v", got)
	}
	if got := a.Dot(b); got != -2 {
		t.Fatalf("dot = %v", got)
	}
	if got := V(3, 4).Length(); got != 5 {
		t.Fatalf("length = %v", got)
	}
	if got := V(0, 0).Distance(V(3, 4)); got != 5 {
		t.Fatalf("distance = %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V(10, 0), V(1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero_unchanged", Zero, Zero},
		{"tiny_unchanged", V(Epsilon/10, 0), V(Epsilon/10, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.in.Normalize(); !got.ApproxEqual(c.want, 1e-6) {
				t.Fatalf("Normalize(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestVec2Rotate(t *testing.T) {
	got := V(1, 0).Rotate(math32.Pi / 2)
	if !got.ApproxEqual(V(0, 1), 1e-6) {
		t.Fatalf("rotate 90 = %v", got)
	}
	if !near(V(0, 1).Angle(), 90, 1e-4) {
		t.Fatalf("angle = %v", V(0, 1).Angle())
	}
}

func TestUnitConversions(t *testing.T) {
	if got := PixelsToMeters(64); got != 2 {
		t.Fatalf("PixelsToMeters(64) = %v", got)
	}
	if got := MetersToPixels(1.5); got != 48 {
		t.Fatalf("MetersToPixels(1.5) = %v", got)
	}
	if got := PixelsToMetersVec(V(32, 96)); got != V(1, 3) {
		t.Fatalf("PixelsToMetersVec = %v", got)
	}
	if got := MetersToPixelsVec(PixelsToMetersVec(V(500, 100))); !got.ApproxEqual(V(500, 100), 1e-4) {
		t.Fatalf("pixel round trip = %v", got)
	}
	if !near(DegreesToRadians(180), math32.Pi, 1e-6) {
		t.Fatalf("DegreesToRadians(180) = %v", DegreesToRadians(180))
	}
	if !near(RadiansToDegrees(math32.Pi/2), 90, 1e-4) {
		t.Fatalf("RadiansToDegrees(pi/2) = %v", RadiansToDegrees(math32.Pi/2))
	}
	if got := Direction(90); !got.ApproxEqual(V(0, 1), 1e-6) {
		t.Fatalf("Direction(90) = %v", got)
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := V(1, -1), V(1, 1)
	cases := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"interior", V(1.2, 0), V(1, 0)},
		{"clamped_start", V(2, -3), a},
		{"clamped_end", V(2, 5), b},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(c.p, a, b); !got.ApproxEqual(c.want, 1e-6) {
				t.Fatalf("closest(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
	if got := ClosestPointOnSegment(V(5, 5), a, a); got != a {
		t.Fatalf("degenerate segment = %v", got)
	}
}

func TestClampAndRandom(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("clamp wrong")
	}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		if v := RandomRange(r, 0, 47); v < 0 || v > 47 {
			t.Fatalf("RandomRange out of bounds: %d", v)
		}
		if f := RandomFloat(r, 2, 3); f < 2 || f >= 3 {
			t.Fatalf("RandomFloat out of bounds: %v", f)
		}
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"start", 2, 6, 0, 2},
		{"middle", 2, 6, 0.5, 4},
		{"end", 2, 6, 1, 6},
		{"descending", 1, -1, 0.25, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); !near(got, c.want, 1e-6) {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}
