package physics

import (
	"github.com/chewxy/math32"
	"github.com/milk9111/tankbattle/common"
)

// ColliderType discriminates the collider variants.
type ColliderType int

const (
	ColliderCircle ColliderType = iota
	ColliderBox
)

func (t ColliderType) String() string {
	switch t {
	case ColliderCircle:
		return "circle"
	case ColliderBox:
		return "box"
	default:
		return "unknown"
	}
}

// BoxVertexCount is the number of vertices (and face normals) of a box.
const BoxVertexCount = 4

// Collider is the shape attached to a Body. It is a closed variant: a circle
// uses radius, a box uses width, height and the precomputed local geometry.
type Collider struct {
	kind ColliderType

	radius float32

	width    float32
	height   float32
	vertices [BoxVertexCount]common.Vec2
	normals  [BoxVertexCount]common.Vec2

	angle    float32
	disabled bool
}

// NewCircleCollider returns an enabled circle collider.
func NewCircleCollider(radius float32) Collider {
	return Collider{kind: ColliderCircle, radius: radius}
}

// NewBoxCollider returns an enabled box collider centered on its body.
// Vertices wind counter-clockwise from the bottom-left corner and normal i is
// the outward normal of the face from vertex i to vertex i+1.
func NewBoxCollider(width, height float32) Collider {
	hw := width / 2
	hh := height / 2
	return Collider{
		kind:   ColliderBox,
		width:  width,
		height: height,
		vertices: [BoxVertexCount]common.Vec2{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
		},
		normals: [BoxVertexCount]common.Vec2{
			{X: 0, Y: -1},
			{X: 1, Y: 0},
			{X: 0, Y: 1},
			{X: -1, Y: 0},
		},
	}
}

func (c *Collider) Type() ColliderType {
	return c.kind
}

// ComputeMass returns the mass for the shape at the given density. The box
// formula uses half of the rectangle's area.
func (c *Collider) ComputeMass(density float32) float32 {
	switch c.kind {
	case ColliderCircle:
		return math32.Pi * c.radius * c.radius * density
	case ColliderBox:
		return density * c.width * c.height * 0.5
	}
	return 0
}

// ComputeInertia returns the moment of inertia for the shape with the given mass.
func (c *Collider) ComputeInertia(mass float32) float32 {
	switch c.kind {
	case ColliderCircle:
		return mass * c.radius * c.radius
	case ColliderBox:
		return mass * (c.width*c.width + c.height*c.height) / 12
	}
	return 0
}

// Radius is zero for boxes.
func (c *Collider) Radius() float32 {
	return c.radius
}

func (c *Collider) Width() float32 {
	return c.width
}

func (c *Collider) Height() float32 {
	return c.height
}

// Vertex returns local box vertex i, or zero when i is out of range.
func (c *Collider) Vertex(i int) common.Vec2 {
	if i < 0 || i >= BoxVertexCount {
		return common.Zero
	}
	return c.vertices[i]
}

// Normal returns local box face normal i, or zero when i is out of range.
func (c *Collider) Normal(i int) common.Vec2 {
	if i < 0 || i >= BoxVertexCount {
		return common.Zero
	}
	return c.normals[i]
}

// Angle mirrors the owning body's angle in radians.
func (c *Collider) Angle() float32 {
	return c.angle
}

func (c *Collider) Enabled() bool {
	return !c.disabled
}

// SetEnabled excludes (false) or includes (true) the collider in narrow-phase tests.
func (c *Collider) SetEnabled(enabled bool) {
	c.disabled = !enabled
}
