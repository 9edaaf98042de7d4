package obj

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tankbattle/common"
	"github.com/milk9111/tankbattle/prefabs"
)

// TankAction is one of the inputs a tank reacts to.
type TankAction int

const (
	ActionForward TankAction = iota
	ActionReverse
	ActionLeft
	ActionRight
	ActionTurretLeft
	ActionTurretRight
	ActionFire
	tankActionCount
)

// Controls reports which tank actions are held this frame.
type Controls interface {
	Pressed(action TankAction) bool
}

// KeyControls maps tank actions to keyboard keys.
type KeyControls struct {
	keys  [tankActionCount]ebiten.Key
	bound [tankActionCount]bool
}

func NewKeyControls(spec prefabs.KeyBindingsSpec) (*KeyControls, error) {
	c := &KeyControls{}
	names := [tankActionCount]string{
		ActionForward:     spec.Forward,
		ActionReverse:     spec.Reverse,
		ActionLeft:        spec.Left,
		ActionRight:       spec.Right,
		ActionTurretLeft:  spec.TurretLeft,
		ActionTurretRight: spec.TurretRight,
		ActionFire:        spec.Fire,
	}
	for action, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		c.keys[action] = key
		c.bound[action] = true
	}
	return c, nil
}

func (c *KeyControls) Pressed(action TankAction) bool {
	if c == nil || action < 0 || action >= tankActionCount || !c.bound[action] {
		return false
	}
	return ebiten.IsKeyPressed(c.keys[action])
}

var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
	"arrowup":      ebiten.KeyArrowUp,
	"arrowdown":    ebiten.KeyArrowDown,
	"arrowleft":    ebiten.KeyArrowLeft,
	"arrowright":   ebiten.KeyArrowRight,
	"space":        ebiten.KeySpace,
	"tab":          ebiten.KeyTab,
	"enter":        ebiten.KeyEnter,
	"shiftleft":    ebiten.KeyShiftLeft,
	"shiftright":   ebiten.KeyShiftRight,
	"controlleft":  ebiten.KeyControlLeft,
	"controlright": ebiten.KeyControlRight,
	"altleft":      ebiten.KeyAltLeft,
	"altright":     ebiten.KeyAltRight,
	"comma":        ebiten.KeyComma,
	"period":       ebiten.KeyPeriod,
	"slash":        ebiten.KeySlash,
	"semicolon":    ebiten.KeySemicolon,
}

// ParseKey resolves a key name such as "W", "ArrowUp" or "Space".
func ParseKey(name string) (ebiten.Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "key")
	if s == "" {
		return 0, fmt.Errorf("input: empty key name")
	}
	if k, ok := keyNames[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("input: unknown key %q", name)
}

// Input holds the per-frame state of the non-tank controls.
type Input struct {
	// PausePressed is true on the frame Escape was pressed.
	PausePressed bool
	// DebugDrawPressed is true on the frame F3 was pressed.
	DebugDrawPressed bool
	// DetonatePressed is true on the frame the right mouse button was pressed.
	DetonatePressed bool
	// Mouse is the cursor position in arena pixels, y up.
	Mouse common.Vec2

	arena *Arena
}

func NewInput(arena *Arena) *Input {
	return &Input{arena: arena}
}

func (i *Input) SetArena(arena *Arena) {
	if i == nil {
		return
	}
	i.arena = arena
}

func (i *Input) Update() {
	if i == nil {
		return
	}
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.DebugDrawPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.DetonatePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	mx, my := ebiten.CursorPosition()
	i.Mouse = i.arena.FromScreen(float32(mx), float32(my))
}
