package common

import "github.com/chewxy/math32"

// Vec2 is a 2D vector value. All methods return new values.
type Vec2 struct {
	X float32
	Y float32
}

var (
	Zero = Vec2{}
	Unit = Vec2{X: 1, Y: 1}
)

func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies componentwise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div divides componentwise.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length. Vectors shorter than Epsilon
// are returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l > Epsilon {
		return v.DivScalar(l)
	}
	return v
}

func (v Vec2) Distance(o Vec2) float32 {
	return o.Sub(v).Length()
}

func (v Vec2) DistanceSquared(o Vec2) float32 {
	return o.Sub(v).LengthSquared()
}

// Rotate rotates v counter-clockwise by radians.
func (v Vec2) Rotate(radians float32) Vec2 {
	c := math32.Cos(radians)
	s := math32.Sin(radians)
	return Vec2{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// Angle returns the direction of v in degrees.
func (v Vec2) Angle() float32 {
	return RadiansToDegrees(math32.Atan2(v.Y, v.X))
}

// ApproxEqual reports whether both components are within tol.
func (v Vec2) ApproxEqual(o Vec2, tol float32) bool {
	return math32.Abs(v.X-o.X) <= tol && math32.Abs(v.Y-o.Y) <= tol
}
