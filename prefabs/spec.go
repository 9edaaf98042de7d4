package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TankSpecFile   = "tank.yaml"
	ShellSpecFile  = "shell.yaml"
	BarrelSpecFile = "barrel.yaml"
	ArenaSpecFile  = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// VecSpec is a plain x/y pair in whatever unit the owning spec documents.
type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TankSpec sizes are in pixels, forces in newtons, angles in degrees.
type TankSpec struct {
	Width           float64          `yaml:"width"`
	Height          float64          `yaml:"height"`
	TurretLength    float64          `yaml:"turret_length"`
	TurretAnchor    float64          `yaml:"turret_anchor"`
	Density         float64          `yaml:"density"`
	Mass            float64          `yaml:"mass"`
	Inertia         float64          `yaml:"inertia"`
	LinearDamping   float64          `yaml:"linear_damping"`
	AngularDamping  float64          `yaml:"angular_damping"`
	AngularFriction float64          `yaml:"angular_friction"`
	DriveForce      float64          `yaml:"drive_force"`
	DriveTorque     float64          `yaml:"drive_torque"`
	TurretSpeed     float64          `yaml:"turret_speed"`
	FireDelay       float64          `yaml:"fire_delay"`
	MagazineSize    int              `yaml:"magazine_size"`
	ReloadTime      float64          `yaml:"reload_time"`
	TurretColor     *YAMLColor       `yaml:"turret_color"`
	DestroyedColor  *YAMLColor       `yaml:"destroyed_color"`
	Players         []TankPlayerSpec `yaml:"players"`
}

type TankPlayerSpec struct {
	Team  string          `yaml:"team"`
	X     float64         `yaml:"x"`
	Y     float64         `yaml:"y"`
	Angle float64         `yaml:"angle"`
	Color *YAMLColor      `yaml:"color"`
	Keys  KeyBindingsSpec `yaml:"keys"`
}

// KeyBindingsSpec holds key names understood by obj.ParseKey.
type KeyBindingsSpec struct {
	Forward     string `yaml:"forward"`
	Reverse     string `yaml:"reverse"`
	Left        string `yaml:"left"`
	Right       string `yaml:"right"`
	TurretLeft  string `yaml:"turret_left"`
	TurretRight string `yaml:"turret_right"`
	Fire        string `yaml:"fire"`
}

func LoadTankSpec() (*TankSpec, error) {
	spec, err := LoadSpec[TankSpec](TankSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", TankSpecFile, err)
	}
	return &spec, nil
}

func (s *TankSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("tank size must be positive, got %vx%v", s.Width, s.Height)
	}
	if s.MagazineSize <= 0 {
		return fmt.Errorf("magazine_size must be positive, got %d", s.MagazineSize)
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("no players defined")
	}
	seen := make(map[string]bool, len(s.Players))
	for _, p := range s.Players {
		if p.Team == "" {
			return fmt.Errorf("player without team")
		}
		if seen[p.Team] {
			return fmt.Errorf("duplicate team %q", p.Team)
		}
		seen[p.Team] = true
	}
	return nil
}

// ShellSpec sizes are in pixels. The collider radius is half the height.
type ShellSpec struct {
	PoolSize       int        `yaml:"pool_size"`
	Width          float64    `yaml:"width"`
	Height         float64    `yaml:"height"`
	Density        float64    `yaml:"density"`
	LinearDamping  float64    `yaml:"linear_damping"`
	AngularDamping float64    `yaml:"angular_damping"`
	Force          float64    `yaml:"force"`
	Color          *YAMLColor `yaml:"color"`
}

func LoadShellSpec() (*ShellSpec, error) {
	spec, err := LoadSpec[ShellSpec](ShellSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.PoolSize <= 0 {
		return nil, fmt.Errorf("prefabs: %s: pool_size must be positive, got %d", ShellSpecFile, spec.PoolSize)
	}
	return &spec, nil
}

// BarrelSpec lays barrels out on a grid; positions are in pixels.
type BarrelSpec struct {
	Columns        int        `yaml:"columns"`
	Rows           int        `yaml:"rows"`
	Spacing        VecSpec    `yaml:"spacing"`
	Offset         VecSpec    `yaml:"offset"`
	Radius         float64    `yaml:"radius"`
	Density        float64    `yaml:"density"`
	Mass           float64    `yaml:"mass"`
	LinearDamping  float64    `yaml:"linear_damping"`
	AngularDamping float64    `yaml:"angular_damping"`
	ShakeIntensity float64    `yaml:"shake_intensity"`
	ShakeDuration  float64    `yaml:"shake_duration"`
	Color          *YAMLColor `yaml:"color"`
	BlueColor      *YAMLColor `yaml:"blue_color"`
	GreenColor     *YAMLColor `yaml:"green_color"`
}

func LoadBarrelSpec() (*BarrelSpec, error) {
	spec, err := LoadSpec[BarrelSpec](BarrelSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Columns*spec.Rows < 2 {
		return nil, fmt.Errorf("prefabs: %s: need at least two barrels for detonators, got %dx%d", BarrelSpecFile, spec.Columns, spec.Rows)
	}
	return &spec, nil
}

type ArenaSpec struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Gravity    VecSpec    `yaml:"gravity"`
	TimeStep   float64    `yaml:"time_step"`
	Rules      string     `yaml:"rules"`
	Background *YAMLColor `yaml:"background"`
	GridColor  *YAMLColor `yaml:"grid_color"`
	GridSize   float64    `yaml:"grid_size"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.TimeStep <= 0 {
		return nil, fmt.Errorf("prefabs: %s: time_step must be positive, got %v", ArenaSpecFile, spec.TimeStep)
	}
	return &spec, nil
}

// SceneSpec describes a headless physics scene. Units are meters, seconds
// and degrees.
type SceneSpec struct {
	Name    string          `yaml:"name"`
	Gravity VecSpec         `yaml:"gravity"`
	Steps   int             `yaml:"steps"`
	DT      float64         `yaml:"dt"`
	Bodies  []SceneBodySpec `yaml:"bodies"`
}

type SceneBodySpec struct {
	Name           string   `yaml:"name"`
	Shape          string   `yaml:"shape"`
	Radius         float64  `yaml:"radius"`
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	Density        float64  `yaml:"density"`
	Mass           *float64 `yaml:"mass"`
	Inertia        *float64 `yaml:"inertia"`
	Position       VecSpec  `yaml:"position"`
	Angle          float64  `yaml:"angle"`
	Velocity       VecSpec  `yaml:"velocity"`
	LinearDamping  VecSpec  `yaml:"linear_damping"`
	AngularDamping float64  `yaml:"angular_damping"`
	Disabled       bool     `yaml:"disabled"`
}

// LoadSceneSpec reads a scene from a file path, falling back to a scene
// name under prefabs/scenes.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	var spec SceneSpec
	if data, err := os.ReadFile(name); err == nil {
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
		}
	} else {
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			name += ".yaml"
		}
		if !strings.HasPrefix(name, "scenes/") {
			name = "scenes/" + name
		}
		spec, err = LoadSpec[SceneSpec](name)
		if err != nil {
			return nil, err
		}
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *SceneSpec) Validate() error {
	for i, b := range s.Bodies {
		switch b.Shape {
		case "circle":
			if b.Radius <= 0 {
				return fmt.Errorf("body %d (%s): circle radius must be positive", i, b.Name)
			}
		case "box":
			if b.Width <= 0 || b.Height <= 0 {
				return fmt.Errorf("body %d (%s): box size must be positive", i, b.Name)
			}
		default:
			return fmt.Errorf("body %d (%s): unknown shape %q", i, b.Name, b.Shape)
		}
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when c was never set.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
