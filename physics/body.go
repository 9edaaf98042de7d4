package physics

import "github.com/milk9111/tankbattle/common"

// BodyID is the stable index of a body inside its World.
type BodyID int

// Tag is an opaque classification set by gameplay code to tell bodies apart
// in collision callbacks.
type Tag int

// Body is a rigid body owned by a World. Positions are in meters and angles
// in radians.
type Body struct {
	id  BodyID
	tag Tag

	position common.Vec2
	angle    float32

	linearVelocity  common.Vec2
	angularVelocity float32

	force  common.Vec2
	torque float32

	linearDamping  common.Vec2
	angularDamping float32

	mass           float32
	inverseMass    float32
	inertia        float32
	inverseInertia float32

	collider Collider
}

func newBody(id BodyID, collider Collider, density float32) *Body {
	b := &Body{id: id, collider: collider}
	b.SetMass(b.collider.ComputeMass(density))
	b.SetInertia(b.collider.ComputeInertia(b.mass))
	b.collider.angle = b.angle
	return b
}

func (b *Body) ID() BodyID {
	return b.id
}

func (b *Body) Tag() Tag {
	return b.tag
}

func (b *Body) SetTag(tag Tag) {
	b.tag = tag
}

// Collider returns the body's collider. The pointer stays valid for the
// lifetime of the body.
func (b *Body) Collider() *Collider {
	return &b.collider
}

func (b *Body) Position() common.Vec2 {
	return b.position
}

func (b *Body) SetPosition(p common.Vec2) {
	b.position = p
}

func (b *Body) Angle() float32 {
	return b.angle
}

// SetAngle sets the orientation in radians; the collider follows.
func (b *Body) SetAngle(radians float32) {
	b.angle = radians
	b.collider.angle = radians
}

func (b *Body) LinearVelocity() common.Vec2 {
	return b.linearVelocity
}

func (b *Body) SetLinearVelocity(v common.Vec2) {
	b.linearVelocity = v
}

func (b *Body) AngularVelocity() float32 {
	return b.angularVelocity
}

func (b *Body) SetAngularVelocity(w float32) {
	b.angularVelocity = w
}

func (b *Body) LinearDamping() common.Vec2 {
	return b.linearDamping
}

func (b *Body) SetLinearDamping(d common.Vec2) {
	b.linearDamping = d
}

func (b *Body) AngularDamping() float32 {
	return b.angularDamping
}

func (b *Body) SetAngularDamping(d float32) {
	b.angularDamping = d
}

func (b *Body) Mass() float32 {
	return b.mass
}

func (b *Body) InverseMass() float32 {
	return b.inverseMass
}

// SetMass stores m and its inverse; a zero mass makes the body static.
func (b *Body) SetMass(m float32) {
	b.mass = m
	if m == 0 {
		b.inverseMass = 0
		return
	}
	b.inverseMass = 1 / m
}

func (b *Body) Inertia() float32 {
	return b.inertia
}

func (b *Body) InverseInertia() float32 {
	return b.inverseInertia
}

// SetInertia stores i and its inverse; zero inertia never rotates from torque.
func (b *Body) SetInertia(i float32) {
	b.inertia = i
	if i == 0 {
		b.inverseInertia = 0
		return
	}
	b.inverseInertia = 1 / i
}

// Force returns the accumulated force for the current step.
func (b *Body) Force() common.Vec2 {
	return b.force
}

// Torque returns the accumulated torque for the current step.
func (b *Body) Torque() float32 {
	return b.torque
}

func (b *Body) ApplyForce(f common.Vec2) {
	b.force = b.force.Add(f)
}

func (b *Body) ApplyTorque(t float32) {
	b.torque += t
}

// ApplyLinearImpulse changes the linear velocity immediately.
func (b *Body) ApplyLinearImpulse(j common.Vec2) {
	b.linearVelocity = b.linearVelocity.Add(j.Scale(b.inverseMass))
}

// ApplyAngularImpulse changes the angular velocity immediately.
func (b *Body) ApplyAngularImpulse(j float32) {
	b.angularVelocity += j * b.inverseInertia
}

func (b *Body) ClearForces() {
	b.force = common.Zero
	b.torque = 0
}

// SyncForces integrates accumulated force, torque and gravity into the
// velocities, then applies damping. Static bodies are left untouched.
func (b *Body) SyncForces(dt float32, gravity common.Vec2) {
	if b.inverseMass == 0 {
		return
	}

	accel := b.force.Scale(b.inverseMass).Add(gravity)
	b.linearVelocity = b.linearVelocity.Add(accel.Scale(dt))
	b.angularVelocity += b.torque * b.inverseInertia * dt

	b.linearVelocity.X *= 1 / (1 + b.linearDamping.X*dt)
	b.linearVelocity.Y *= 1 / (1 + b.linearDamping.Y*dt)
	b.angularVelocity *= 1 / (1 + b.angularDamping*dt)
}

// SyncVelocities moves the body by its velocities. The angle is not wrapped.
func (b *Body) SyncVelocities(dt float32) {
	b.position = b.position.Add(b.linearVelocity.Scale(dt))
	b.SetAngle(b.angle + b.angularVelocity*dt)
}
