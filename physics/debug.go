package physics

import "github.com/milk9111/tankbattle/common"

// Drawer renders collider outlines in meters. Implementations convert to
// their own screen space.
type Drawer interface {
	DrawCircle(center common.Vec2, angle, radius float32, enabled bool)
	DrawPolygon(verts []common.Vec2, enabled bool)
	DrawContact(a, b common.Vec2, normal common.Vec2)
}

// DebugDraw walks every body and the last step's contacts through d.
func (w *World) DebugDraw(d Drawer) {
	if w == nil || d == nil {
		return
	}

	verts := make([]common.Vec2, BoxVertexCount)
	for _, b := range w.bodies {
		c := &b.collider
		switch c.Type() {
		case ColliderCircle:
			d.DrawCircle(b.position, b.angle, c.radius, c.Enabled())
		case ColliderBox:
			for i := range verts {
				verts[i] = c.vertices[i].Rotate(b.angle).Add(b.position)
			}
			d.DrawPolygon(verts, c.Enabled())
		}
	}

	for _, m := range w.contacts {
		d.DrawContact(m.A.position, m.B.position, m.Normal)
	}
}
