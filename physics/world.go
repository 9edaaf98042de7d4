package physics

import "github.com/milk9111/tankbattle/common"

// World owns every body and advances the simulation.
type World struct {
	gravity  common.Vec2
	bodies   []*Body
	contacts []Manifold
	listener Listener
}

// NewWorld returns an empty world with zero gravity.
func NewWorld() *World {
	return &World{}
}

// CreateBody adds a body using collider and derives mass and inertia from
// density. Bodies are never removed; disable the collider instead.
func (w *World) CreateBody(collider Collider, density float32) *Body {
	b := newBody(BodyID(len(w.bodies)), collider, density)
	w.bodies = append(w.bodies, b)
	return b
}

// Body returns the body with the given id.
func (w *World) Body(id BodyID) (*Body, bool) {
	if w == nil || id < 0 || int(id) >= len(w.bodies) {
		return nil, false
	}
	return w.bodies[id], true
}

// Bodies returns the bodies in creation order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	if w == nil {
		return nil
	}
	return w.bodies
}

func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// Contacts returns the manifolds retained during the last Step.
func (w *World) Contacts() []Manifold {
	if w == nil {
		return nil
	}
	out := make([]Manifold, len(w.contacts))
	copy(out, w.contacts)
	return out
}

func (w *World) Gravity() common.Vec2 {
	return w.gravity
}

func (w *World) SetGravity(g common.Vec2) {
	w.gravity = g
}

// SetListener replaces the current listener; nil removes it.
func (w *World) SetListener(l Listener) {
	w.listener = l
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) {
	if w == nil {
		return
	}

	w.contacts = w.contacts[:0]

	for _, a := range w.bodies {
		for _, b := range w.bodies {
			if a.inverseMass == 0 || b.inverseMass == 0 {
				continue
			}

			m := Manifold{A: a, B: b}
			if !checkCollision(a, b, &m) {
				continue
			}
			if w.listener == nil || w.listener.OnCollision(a, b) {
				w.contacts = append(w.contacts, m)
			}
		}
	}

	for _, b := range w.bodies {
		b.SyncForces(dt, w.gravity)
	}

	for i := range w.contacts {
		w.contacts[i].CorrectOverlap()
	}

	for _, b := range w.bodies {
		b.SyncVelocities(dt)
	}

	for _, b := range w.bodies {
		b.ClearForces()
	}
}
