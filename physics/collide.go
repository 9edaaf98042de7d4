package physics

import (
	"github.com/chewxy/math32"
	"github.com/milk9111/tankbattle/common"
)

// checkCollision dispatches on the collider pair and fills m on contact.
// Box against box is not supported and never collides.
func checkCollision(a, b *Body, m *Manifold) bool {
	if a == b {
		return false
	}

	ta := a.collider.Type()
	tb := b.collider.Type()
	switch {
	case ta == ColliderCircle && tb == ColliderCircle:
		return checkCircleToCircle(a, b, m)
	case ta == ColliderCircle && tb == ColliderBox:
		return checkCircleToBox(a, b, m)
	case ta == ColliderBox && tb == ColliderCircle:
		if !checkCircleToBox(b, a, m) {
			return false
		}
		m.FlipNormal()
		return true
	}
	return false
}

// CircleToCircle tests two circle bodies. The normal points from a to b.
func CircleToCircle(a, b *Body) (overlap float32, normal common.Vec2, ok bool) {
	var m Manifold
	if !checkCircleToCircle(a, b, &m) {
		return 0, common.Zero, false
	}
	return m.Overlap, m.Normal, true
}

// CircleToBox tests a circle body against a box body. The normal points
// from the circle to the box.
func CircleToBox(circle, box *Body) (overlap float32, normal common.Vec2, ok bool) {
	var m Manifold
	if !checkCircleToBox(circle, box, &m) {
		return 0, common.Zero, false
	}
	return m.Overlap, m.Normal, true
}

func checkCircleToCircle(a, b *Body, m *Manifold) bool {
	ca := &a.collider
	cb := &b.collider
	if !ca.Enabled() || !cb.Enabled() {
		return false
	}

	delta := b.position.Sub(a.position)
	distSq := delta.LengthSquared()
	radii := ca.radius + cb.radius
	if distSq > radii*radii {
		return false
	}

	dist := math32.Sqrt(distSq)
	if dist == 0 {
		// coincident centers have no direction; push along +X
		m.SetContact(radii, common.Vec2{X: 1, Y: 0})
		return true
	}
	m.SetContact(radii-dist, delta.DivScalar(dist))
	return true
}

func checkCircleToBox(circleBody, boxBody *Body, m *Manifold) bool {
	circle := &circleBody.collider
	box := &boxBody.collider
	if !circle.Enabled() || !box.Enabled() {
		return false
	}

	radius := circle.radius
	angle := box.angle

	// circle center in the box's local frame
	center := circleBody.position.Sub(boxBody.position).Rotate(-angle)

	separation := float32(-math32.MaxFloat32)
	face := 0
	for i := 0; i < BoxVertexCount; i++ {
		s := box.normals[i].Dot(center.Sub(box.vertices[i]))
		if s > radius {
			return false
		}
		if s > separation {
			separation = s
			face = i
		}
	}

	if separation < common.Epsilon {
		normal := box.normals[face].Rotate(angle).Neg()
		m.SetContact(radius, normal)
		return true
	}

	v1 := box.vertices[face]
	v2 := box.vertices[(face+1)%BoxVertexCount]
	closest := common.ClosestPointOnSegment(center, v1, v2)

	distSq := closest.DistanceSquared(center)
	if distSq > radius*radius {
		return false
	}

	normal := center.Sub(closest).Rotate(angle).Neg().Normalize()
	m.SetContact(radius-math32.Sqrt(distSq), normal)
	return true
}
