package main

import (
	"fmt"

	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/physics"
	"github.com/milk9111/tankbattle/prefabs"
)

// Scene is a physics world built from a scene spec, with the body names
// kept for reporting.
type Scene struct {
	Name  string
	World *physics.World
	names map[physics.BodyID]string
}

func BuildScene(spec *prefabs.SceneSpec) (*Scene, error) {
	s := &Scene{
		Name:  spec.Name,
		World: physics.NewWorld(),
		names: make(map[physics.BodyID]string, len(spec.Bodies)),
	}
	s.World.SetGravity(vec(spec.Gravity))

	for i, b := range spec.Bodies {
		var collider physics.Collider
		switch b.Shape {
		case "circle":
			collider = physics.NewCircleCollider(float32(b.Radius))
		case "box":
			collider = physics.NewBoxCollider(float32(b.Width), float32(b.Height))
		default:
			return nil, fmt.Errorf("simulate: body %d: unknown shape %q", i, b.Shape)
		}
		collider.SetEnabled(!b.Disabled)

		body := s.World.CreateBody(collider, float32(b.Density))
		if b.Mass != nil {
			body.SetMass(float32(*b.Mass))
		}
		if b.Inertia != nil {
			body.SetInertia(float32(*b.Inertia))
		}
		body.SetPosition(vec(b.Position))
		body.SetAngle(common.DegreesToRadians(float32(b.Angle)))
		body.SetLinearVelocity(vec(b.Velocity))
		body.SetLinearDamping(vec(b.LinearDamping))
		body.SetAngularDamping(float32(b.AngularDamping))

		name := b.Name
		if name == "" {
			name = fmt.Sprintf("body%d", i)
		}
		s.names[body.ID()] = name
	}
	return s, nil
}

// Report is what simulate prints: periodic snapshots of every body plus the
// contacts seen while stepping.
type Report struct {
	Scene     string     `yaml:"scene"`
	Steps     int        `yaml:"steps"`
	DT        float64    `yaml:"dt"`
	Contacts  int        `yaml:"contacts"`
	Snapshots []Snapshot `yaml:"snapshots"`
}

type Snapshot struct {
	Step   int         `yaml:"step"`
	Time   float64     `yaml:"time"`
	Bodies []BodyState `yaml:"bodies"`
	Pairs  []string    `yaml:"pairs,omitempty"`
}

type BodyState struct {
	Name            string     `yaml:"name"`
	Position        [2]float32 `yaml:"position,flow"`
	Angle           float32    `yaml:"angle"`
	Velocity        [2]float32 `yaml:"velocity,flow"`
	AngularVelocity float32    `yaml:"angular_velocity"`
}

// Run steps the scene and snapshots it every `every` steps and after the
// last one. Step 0 is the initial state.
func (s *Scene) Run(steps int, dt float32, every int) Report {
	if every <= 0 {
		every = steps
	}
	r := Report{Scene: s.Name, Steps: steps, DT: float64(dt)}
	r.Snapshots = append(r.Snapshots, s.snapshot(0, 0))

	for i := 1; i <= steps; i++ {
		s.World.Step(dt)
		r.Contacts += len(s.World.Contacts())
		if i%every == 0 || i == steps {
			r.Snapshots = append(r.Snapshots, s.snapshot(i, float64(i)*float64(dt)))
		}
	}
	return r
}

func (s *Scene) snapshot(step int, t float64) Snapshot {
	snap := Snapshot{Step: step, Time: t}
	for _, b := range s.World.Bodies() {
		p, v := b.Position(), b.LinearVelocity()
		snap.Bodies = append(snap.Bodies, BodyState{
			Name:            s.names[b.ID()],
			Position:        [2]float32{p.X, p.Y},
			Angle:           common.RadiansToDegrees(b.Angle()),
			Velocity:        [2]float32{v.X, v.Y},
			AngularVelocity: b.AngularVelocity(),
		})
	}
	for _, m := range s.World.Contacts() {
		snap.Pairs = append(snap.Pairs, s.names[m.A.ID()]+"-"+s.names[m.B.ID()])
	}
	return snap
}

func vec(v prefabs.VecSpec) common.Vec2 {
	return common.V(float32(v.X), float32(v.Y))
}
