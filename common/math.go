package common

import (
	"math/rand"

	"github.com/chewxy/math32"
)

const (
	// PixelsPerMeter is the fixed ratio between render pixels and physics meters.
	PixelsPerMeter float32 = 32

	// Epsilon is the tolerance used by normalization and contact tests.
	Epsilon float32 = 0.0001

	BaseWidth  = 1024
	BaseHeight = 768
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func DegreesToRadians(degrees float32) float32 {
	return degrees * (math32.Pi / 180)
}

func RadiansToDegrees(radians float32) float32 {
	return radians * (180 / math32.Pi)
}

func PixelsToMeters(pixels float32) float32 {
	return pixels / PixelsPerMeter
}

func MetersToPixels(meters float32) float32 {
	return meters * PixelsPerMeter
}

// PixelsToMetersVec converts a pixel-space point to meters.
func PixelsToMetersVec(v Vec2) Vec2 {
	return v.DivScalar(PixelsPerMeter)
}

// MetersToPixelsVec converts a meter-space point to pixels.
func MetersToPixelsVec(v Vec2) Vec2 {
	return v.Scale(PixelsPerMeter)
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns the unit vector pointing at angleInDegrees, counter-clockwise from +X.
func Direction(angleInDegrees float32) Vec2 {
	rad := DegreesToRadians(angleInDegrees)
	return Vec2{X: math32.Cos(rad), Y: math32.Sin(rad)}
}

// Orbit returns the point at distance from origin in the direction angleInDegrees.
func Orbit(origin Vec2, angleInDegrees, distance float32) Vec2 {
	return origin.Add(Direction(angleInDegrees).Scale(distance))
}

// ClosestPointOnSegment returns the point of segment [a, b] closest to p.
// A degenerate segment returns a.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq <= Epsilon*Epsilon {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Scale(t))
}

// RandomRange returns an int in [lo, hi] drawn from r.
func RandomRange(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// RandomFloat returns a float in [lo, hi) drawn from r.
func RandomFloat(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}
