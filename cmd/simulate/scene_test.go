package main

import (
	"testing"

	"github.com/milk9111/tankbattle/prefabs"
)

func TestRunDropScene(t *testing.T) {
	spec, err := prefabs.LoadSceneSpec("drop")
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	scene, err := BuildScene(spec)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	r := scene.Run(spec.Steps, float32(spec.DT), 20)
	if len(r.Snapshots) != 4 {
		t.Fatalf("snapshots = %d, want 4", len(r.Snapshots))
	}
	last := r.Snapshots[len(r.Snapshots)-1]
	if last.Step != 60 || last.Bodies[0].Name != "ball" {
		t.Fatalf("last snapshot = %+v", last)
	}
	if v := last.Bodies[0].Velocity[1]; v > -9.7 || v < -9.9 {
		t.Fatalf("velocity after 1s = %v, want about -9.8", v)
	}
	if y := last.Bodies[0].Position[1]; y > 5.1 || y < 4.9 {
		t.Fatalf("height after 1s = %v, want about 5.02", y)
	}
	if r.Contacts != 0 {
		t.Fatalf("lone body reported %d contacts", r.Contacts)
	}
}

func TestRunPileupScene(t *testing.T) {
	spec, err := prefabs.LoadSceneSpec("pileup")
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}
	scene, err := BuildScene(spec)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	r := scene.Run(spec.Steps, float32(spec.DT), 30)
	if len(r.Snapshots) != 5 {
		t.Fatalf("snapshots = %d, want 5", len(r.Snapshots))
	}
	if r.Contacts == 0 {
		t.Fatalf("expected contacts between the crate and the circles")
	}
	if r.Snapshots[0].Pairs != nil {
		t.Fatalf("initial snapshot should carry no pairs")
	}

	anchor := r.Snapshots[len(r.Snapshots)-1].Bodies[3]
	if anchor.Name != "anchor" || anchor.Position != [2]float32{3, 0} {
		t.Fatalf("static anchor moved: %+v", anchor)
	}
}

func TestBuildSceneDefaults(t *testing.T) {
	mass := 2.0
	spec := &prefabs.SceneSpec{Bodies: []prefabs.SceneBodySpec{
		{Shape: "box", Width: 1, Height: 1, Density: 1, Mass: &mass, Disabled: true},
	}}
	scene, err := BuildScene(spec)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	b := scene.World.Bodies()[0]
	if b.Mass() != 2 || b.Collider().Enabled() {
		t.Fatalf("mass = %v enabled = %v", b.Mass(), b.Collider().Enabled())
	}
	if scene.names[b.ID()] != "body0" {
		t.Fatalf("default name = %q", scene.names[b.ID()])
	}

	spec.Bodies[0].Shape = "capsule"
	if _, err := BuildScene(spec); err == nil {
		t.Fatalf("expected error for unknown shape")
	}
}
