package obj

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/physics"
	"github.com/milk9111/tankbattle/prefabs"
	"golang.org/x/image/colornames"
)

// Tank is a box body driven by forces along its heading with a turret that
// turns independently.
type Tank struct {
	team     Team
	body     *physics.Body
	controls Controls

	width        float32
	height       float32
	turretLength float32
	turretAnchor float32

	driveForce      float32
	driveTorque     float32
	turretSpeed     float32
	angularFriction float32
	fireDelayTime   float32
	reloadTime      float32
	magazineSize    int

	// turretAngle is relative to the hull, in degrees.
	turretAngle float32
	fireDelay   float32
	ammo        int
	reloading   bool
	reloadTimer float32
	destroyed   bool

	color          color.Color
	turretColor    color.Color
	destroyedColor color.Color
	explosion      *Explosion
}

func NewTank(world *physics.World, spec *prefabs.TankSpec, player prefabs.TankPlayerSpec, controls Controls) *Tank {
	t := &Tank{
		team:            Team(player.Team),
		controls:        controls,
		width:           float32(spec.Width),
		height:          float32(spec.Height),
		turretLength:    float32(spec.TurretLength),
		turretAnchor:    float32(spec.TurretAnchor),
		driveForce:      float32(spec.DriveForce),
		driveTorque:     float32(spec.DriveTorque),
		turretSpeed:     float32(spec.TurretSpeed),
		angularFriction: float32(spec.AngularFriction),
		fireDelayTime:   float32(spec.FireDelay),
		reloadTime:      float32(spec.ReloadTime),
		magazineSize:    spec.MagazineSize,
		ammo:            spec.MagazineSize,
		color:           player.Color.Or(colornames.Steelblue),
		turretColor:     spec.TurretColor.Or(colornames.Darkslategray),
		destroyedColor:  spec.DestroyedColor.Or(colornames.Dimgray),
		explosion:       NewExplosion(float32(spec.Width)),
	}

	collider := physics.NewBoxCollider(common.PixelsToMeters(t.width), common.PixelsToMeters(t.height))
	body := world.CreateBody(collider, float32(spec.Density))
	body.SetPosition(common.PixelsToMetersVec(common.V(float32(player.X), float32(player.Y))))
	body.SetAngle(common.DegreesToRadians(float32(player.Angle)))
	if spec.Mass > 0 {
		body.SetMass(float32(spec.Mass))
	}
	if spec.Inertia > 0 {
		body.SetInertia(float32(spec.Inertia))
	}
	body.SetLinearDamping(common.V(float32(spec.LinearDamping), float32(spec.LinearDamping)))
	body.SetAngularDamping(float32(spec.AngularDamping))
	body.SetTag(TagTank)
	t.body = body

	return t
}

func (t *Tank) Team() Team {
	if t == nil {
		return TeamNone
	}
	return t.team
}

func (t *Tank) Body() *physics.Body {
	if t == nil {
		return nil
	}
	return t.body
}

func (t *Tank) Destroyed() bool {
	return t != nil && t.destroyed
}

// Destroy marks the tank as knocked out. It reports whether this call was
// the one that destroyed it.
func (t *Tank) Destroy() bool {
	if t == nil || t.destroyed {
		return false
	}
	t.destroyed = true
	t.explosion.Start()
	return true
}

// Position returns the hull center in arena pixels.
func (t *Tank) Position() common.Vec2 {
	return common.MetersToPixelsVec(t.body.Position())
}

// Angle returns the hull heading in degrees.
func (t *Tank) Angle() float32 {
	return common.RadiansToDegrees(t.body.Angle())
}

// TurretAngle returns the turret heading in world degrees.
func (t *Tank) TurretAngle() float32 {
	return t.turretAngle + t.Angle()
}

// ShellOrigin returns the muzzle position in arena pixels.
func (t *Tank) ShellOrigin() common.Vec2 {
	reach := t.turretLength * (1 - t.turretAnchor)
	return common.Orbit(t.Position(), t.TurretAngle(), reach)
}

func (t *Tank) Ammo() int {
	if t == nil {
		return 0
	}
	return t.ammo
}

func (t *Tank) MagazineSize() int {
	if t == nil {
		return 0
	}
	return t.magazineSize
}

// ReloadProgress is 0 when not reloading, otherwise the fraction of the
// reload completed.
func (t *Tank) ReloadProgress() float32 {
	if t == nil || !t.reloading || t.reloadTime <= 0 {
		return 0
	}
	return common.Clamp(t.reloadTimer/t.reloadTime, 0, 1)
}

// CanFire reports whether the fire key is held and a shell is ready.
func (t *Tank) CanFire() bool {
	if t == nil || t.destroyed || t.controls == nil {
		return false
	}
	return t.controls.Pressed(ActionFire) && t.fireDelay <= 0 && t.ammo > 0
}

// OnFired consumes a shell and restarts the fire delay. The reload starts
// once the magazine is empty.
func (t *Tank) OnFired() {
	if t == nil {
		return
	}
	t.fireDelay = t.fireDelayTime
	if t.ammo > 0 {
		t.ammo--
	}
	if t.ammo == 0 && !t.reloading {
		t.reloading = true
		t.reloadTimer = 0
	}
}

func (t *Tank) Update(dt float32) {
	if t == nil || t.body == nil {
		return
	}

	if t.fireDelay > 0 {
		t.fireDelay -= dt
		if t.fireDelay <= 0 {
			t.fireDelay = 0
		}
	}

	if t.reloading {
		t.reloadTimer += dt
		if t.reloadTimer >= t.reloadTime {
			t.reloading = false
			t.reloadTimer = 0
			t.ammo = t.magazineSize
		}
	}

	t.explosion.Update(dt)
	t.applyFriction()

	if t.destroyed || t.controls == nil {
		return
	}

	if t.controls.Pressed(ActionTurretLeft) {
		t.turretAngle += t.turretSpeed * dt
	}
	if t.controls.Pressed(ActionTurretRight) {
		t.turretAngle -= t.turretSpeed * dt
	}

	var force float32
	if t.controls.Pressed(ActionForward) {
		force += t.driveForce
	}
	if t.controls.Pressed(ActionReverse) {
		force -= t.driveForce
	}
	heading := common.V(math32.Cos(t.body.Angle()), math32.Sin(t.body.Angle()))
	t.body.ApplyForce(heading.Scale(force))

	var torque float32
	if t.controls.Pressed(ActionLeft) {
		torque += t.driveTorque
	}
	if t.controls.Pressed(ActionRight) {
		torque -= t.driveTorque
	}
	// tracks only turn the hull while it is being driven
	if force != 0 {
		t.body.ApplyTorque(torque)
	}
}

// applyFriction cancels sideways sliding and bleeds off spin.
func (t *Tank) applyFriction() {
	lateral := common.V(0, 1).Rotate(t.body.Angle())
	lateralVel := lateral.Scale(lateral.Dot(t.body.LinearVelocity()))
	t.body.ApplyLinearImpulse(lateralVel.Scale(-t.body.Mass()))

	t.body.ApplyAngularImpulse(t.angularFriction * t.body.Inertia() * -t.body.AngularVelocity())
}

func (t *Tank) Draw(screen *ebiten.Image, arena *Arena) {
	if t == nil || screen == nil {
		return
	}
	sx, sy := arena.ToScreen(t.Position())
	hull, turret := t.color, t.turretColor
	if t.destroyed {
		hull, turret = t.destroyedColor, t.destroyedColor
	}

	drawRect(screen, sx, sy, t.width, t.height, t.body.Angle(), 0.5, hull)
	// tread marks along both long sides
	treadW := t.height * 0.18
	for _, side := range []float32{-1, 1} {
		off := common.V(0, side*(t.height-treadW)/2).Rotate(t.body.Angle())
		drawRect(screen, sx+off.X, sy-off.Y, t.width, treadW, t.body.Angle(), 0.5, colornames.Black)
	}

	vector.FillCircle(screen, sx, sy, t.height*0.28, turret, true)
	drawRect(screen, sx, sy, t.turretLength, t.height*0.16, common.DegreesToRadians(t.TurretAngle()), t.turretAnchor, turret)

	t.explosion.Draw(screen, sx, sy)
}
