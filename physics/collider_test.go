package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/milk9111/tankbattle/common"
)

func approx(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func TestColliderMassAndInertia(t *testing.T) {
	cases := []struct {
		name        string
		collider    Collider
		density     float32
		wantType    ColliderType
		wantMass    float32
		wantInertia float32
	}{
		{
			name:        "circle",
			collider:    NewCircleCollider(2),
			density:     3,
			wantType:    ColliderCircle,
			wantMass:    math32.Pi * 4 * 3,
			wantInertia: math32.Pi * 4 * 3 * 4,
		},
		{
			name:        "unit_circle",
			collider:    NewCircleCollider(1),
			density:     1,
			wantType:    ColliderCircle,
			wantMass:    math32.Pi,
			wantInertia: math32.Pi,
		},
		{
			// half of the rectangle's area, kept as is
			name:        "box_half_area",
			collider:    NewBoxCollider(2, 4),
			density:     3,
			wantType:    ColliderBox,
			wantMass:    12,
			wantInertia: 12 * (4 + 16) / 12.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col := c.collider
			if col.Type() != c.wantType {
				t.Fatalf("type = %v, want %v", col.Type(), c.wantType)
			}
			m := col.ComputeMass(c.density)
			if !approx(m, c.wantMass, 1e-4) {
				t.Fatalf("mass = %v, want %v", m, c.wantMass)
			}
			if i := col.ComputeInertia(m); !approx(i, c.wantInertia, 1e-3) {
				t.Fatalf("inertia = %v, want %v", i, c.wantInertia)
			}
		})
	}
}

func TestBoxColliderGeometryOrder(t *testing.T) {
	box := NewBoxCollider(4, 2)

	wantVerts := []common.Vec2{{X: -2, Y: -1}, {X: 2, Y: -1}, {X: 2, Y: 1}, {X: -2, Y: 1}}
	wantNormals := []common.Vec2{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for i := 0; i < BoxVertexCount; i++ {
		if box.Vertex(i) != wantVerts[i] {
			t.Fatalf("vertex %d = %v, want %v", i, box.Vertex(i), wantVerts[i])
		}
		if box.Normal(i) != wantNormals[i] {
			t.Fatalf("normal %d = %v, want %v", i, box.Normal(i), wantNormals[i])
		}
		// normal i faces outward from the edge v[i] -> v[i+1]
		mid := box.Vertex(i).Add(box.Vertex((i + 1) % BoxVertexCount)).Scale(0.5)
		if mid.Dot(box.Normal(i)) <= 0 {
			t.Fatalf("normal %d is not outward", i)
		}
	}

	if box.Vertex(4) != common.Zero || box.Normal(-1) != common.Zero {
		t.Fatalf("out of range index should return zero")
	}
	if box.Width() != 4 || box.Height() != 2 || box.Radius() != 0 {
		t.Fatalf("dimensions wrong: %v %v %v", box.Width(), box.Height(), box.Radius())
	}
}

func TestColliderEnabled(t *testing.T) {
	c := NewCircleCollider(1)
	if !c.Enabled() {
		t.Fatalf("new collider should be enabled")
	}
	c.SetEnabled(false)
	if c.Enabled() {
		t.Fatalf("collider should be disabled")
	}
	c.SetEnabled(true)
	if !c.Enabled() {
		t.Fatalf("collider should be enabled again")
	}
	if ColliderBox.String() != "box" || ColliderCircle.String() != "circle" {
		t.Fatalf("unexpected type names")
	}
}
