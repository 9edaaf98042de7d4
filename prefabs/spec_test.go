package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	tank, err := LoadTankSpec()
	if err != nil {
		t.Fatalf("LoadTankSpec: %v", err)
	}
	if len(tank.Players) != 2 || tank.Players[0].Team != "blue" || tank.Players[1].Team != "green" {
		t.Fatalf("unexpected players: %+v", tank.Players)
	}
	if tank.Mass != 18.4082031 || tank.MagazineSize != 3 {
		t.Fatalf("tank tunables: mass=%v magazine=%d", tank.Mass, tank.MagazineSize)
	}
	if tank.Players[0].Keys.Fire != "Tab" || tank.Players[1].Keys.Fire != "Space" {
		t.Fatalf("fire keys: %q %q", tank.Players[0].Keys.Fire, tank.Players[1].Keys.Fire)
	}

	shell, err := LoadShellSpec()
	if err != nil {
		t.Fatalf("LoadShellSpec: %v", err)
	}
	if shell.PoolSize != 10 || shell.Force != 60 {
		t.Fatalf("shell tunables: %+v", shell)
	}

	barrel, err := LoadBarrelSpec()
	if err != nil {
		t.Fatalf("LoadBarrelSpec: %v", err)
	}
	if barrel.Columns*barrel.Rows != 48 || barrel.Mass != 3.65 {
		t.Fatalf("barrel tunables: %+v", barrel)
	}

	arena, err := LoadArenaSpec()
	if err != nil {
		t.Fatalf("LoadArenaSpec: %v", err)
	}
	if arena.Width != 1024 || arena.Height != 768 || arena.Rules == "" {
		t.Fatalf("arena: %+v", arena)
	}
}

func TestLoadSceneSpec(t *testing.T) {
	cases := []struct {
		name   string
		bodies int
	}{
		{"drop", 1},
		{"drop.yaml", 1},
		{"scenes/pileup.yaml", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scene, err := LoadSceneSpec(c.name)
			if err != nil {
				t.Fatalf("LoadSceneSpec: %v", err)
			}
			if len(scene.Bodies) != c.bodies {
				t.Fatalf("bodies = %d, want %d", len(scene.Bodies), c.bodies)
			}
		})
	}

	if _, err := LoadSceneSpec("nope"); err == nil {
		t.Fatalf("expected error for missing scene")
	}
}

func TestLoadSceneSpecFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.yaml")
	data := []byte("name: tri\nsteps: 5\nbodies:\n  - name: bad\n    shape: triangle\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSceneSpec(path); err == nil {
		t.Fatalf("expected validation error for unknown shape")
	}
}

func TestTankSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		spec    TankSpec
		wantErr bool
	}{
		{"ok", TankSpec{Width: 1, Height: 1, MagazineSize: 1, Players: []TankPlayerSpec{{Team: "blue"}}}, false},
		{"zero_size", TankSpec{MagazineSize: 1, Players: []TankPlayerSpec{{Team: "blue"}}}, true},
		{"no_magazine", TankSpec{Width: 1, Height: 1, Players: []TankPlayerSpec{{Team: "blue"}}}, true},
		{"no_players", TankSpec{Width: 1, Height: 1, MagazineSize: 1}, true},
		{"duplicate_team", TankSpec{Width: 1, Height: 1, MagazineSize: 1, Players: []TankPlayerSpec{{Team: "blue"}, {Team: "blue"}}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{`"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{`"#fff"`, nil, true},
		{`"#gg0000"`, nil, true},
		{`[1, 2]`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte("c: "+c.in), &got)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if !c.wantErr && got.C.Color != c.want {
				t.Fatalf("color = %v, want %v", got.C.Color, c.want)
			}
		})
	}

	var unset *YAMLColor
	if unset.Or(color.White) != color.White {
		t.Fatalf("nil color should fall back")
	}
}

func TestCleanPaths(t *testing.T) {
	if got := cleanPrefabPath("prefabs/tank.yaml"); got != "tank.yaml" {
		t.Fatalf("cleanPrefabPath = %q", got)
	}
	if got := cleanScriptPath("prefabs/scripts/contact_rules.tengo"); got != "scripts/contact_rules.tengo" {
		t.Fatalf("cleanScriptPath = %q", got)
	}
	if got := cleanScriptPath("contact_rules.tengo"); got != "scripts/contact_rules.tengo" {
		t.Fatalf("cleanScriptPath = %q", got)
	}
	if _, err := LoadScript("contact_rules.tengo"); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
}
