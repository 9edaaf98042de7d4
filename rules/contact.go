package rules

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tankbattle/prefabs"
)

// DefaultScript is the contact rules script shipped in prefabs/scripts.
const DefaultScript = "contact_rules.tengo"

const contactDispatchScript = `
__keep := on_contact(__engine, __a, __b)
`

type ActionKind int

const (
	ActionDisable ActionKind = iota
	ActionExplode
	ActionDefuse
	ActionDefeat
)

func (k ActionKind) String() string {
	switch k {
	case ActionDisable:
		return "disable"
	case ActionExplode:
		return "explode"
	case ActionDefuse:
		return "defuse"
	case ActionDefeat:
		return "defeat"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Side selects which body of the evaluated pair an action applies to.
type Side int

const (
	SideA Side = iota
	SideB
)

type Action struct {
	Kind ActionKind
	Side Side
	// Team is set for ActionDefeat only.
	Team string
}

// Participant is what the script sees of one body.
type Participant struct {
	Tag  string
	Team string
}

// Contact evaluates the contact rules script for a pair of bodies.
type Contact struct {
	name     string
	compiled *tengo.Compiled
	pending  []Action
}

// NewContact loads and compiles the named script from prefabs.
func NewContact(name string) (*Contact, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("rules: load %s: %w", name, err)
	}
	return NewContactFromSource(name, src)
}

// NewContactFromSource compiles src under the given name.
func NewContactFromSource(name string, src []byte) (*Contact, error) {
	c := &Contact{name: name}
	compiled, err := c.compile(src)
	if err != nil {
		return nil, err
	}
	c.compiled = compiled
	return c, nil
}

func (c *Contact) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Reload recompiles the script from prefabs. On failure the previously
// compiled rules stay active.
func (c *Contact) Reload() error {
	if c == nil {
		return fmt.Errorf("rules: nil contact rules")
	}
	src, err := prefabs.LoadScript(c.name)
	if err != nil {
		return fmt.Errorf("rules: load %s: %w", c.name, err)
	}
	compiled, err := c.compile(src)
	if err != nil {
		return err
	}
	c.compiled = compiled
	return nil
}

func (c *Contact) compile(src []byte) (*tengo.Compiled, error) {
	full := string(src) + "\n" + contactDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__engine", c.engine())
	_ = script.Add("__a", participantMap(Participant{}))
	_ = script.Add("__b", participantMap(Participant{}))

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("rules: compile %s: %w", c.name, err)
	}
	return compiled, nil
}

// Evaluate runs the rules for the ordered pair (a, b). It returns the side
// effects the script asked for and whether the contact should be kept for
// overlap correction.
func (c *Contact) Evaluate(a, b Participant) ([]Action, bool, error) {
	if c == nil || c.compiled == nil {
		return nil, true, fmt.Errorf("rules: not compiled")
	}

	c.pending = c.pending[:0]
	if err := c.compiled.Set("__a", participantMap(a)); err != nil {
		return nil, true, err
	}
	if err := c.compiled.Set("__b", participantMap(b)); err != nil {
		return nil, true, err
	}
	if err := c.compiled.Run(); err != nil {
		return nil, true, fmt.Errorf("rules: run %s: %w", c.name, err)
	}

	keep := true
	if c.compiled.IsDefined("__keep") {
		keep = !c.compiled.Get("__keep").Object().IsFalsy()
	}

	out := make([]Action, len(c.pending))
	copy(out, c.pending)
	return out, keep, nil
}

func (c *Contact) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	sideAction := func(name string, kind ActionKind) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			side, ok := parseSide(objectAsString(args[0]))
			if !ok {
				return tengo.FalseValue, nil
			}
			c.pending = append(c.pending, Action{Kind: kind, Side: side})
			return tengo.TrueValue, nil
		}}
	}

	values["disable"] = sideAction("disable", ActionDisable)
	values["explode"] = sideAction("explode", ActionExplode)
	values["defuse"] = sideAction("defuse", ActionDefuse)
	values["defeat"] = &tengo.UserFunction{Name: "defeat", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		team := strings.TrimSpace(objectAsString(args[0]))
		if team == "" {
			return tengo.FalseValue, nil
		}
		c.pending = append(c.pending, Action{Kind: ActionDefeat, Team: team})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func participantMap(p Participant) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"tag":  &tengo.String{Value: p.Tag},
		"team": &tengo.String{Value: p.Team},
	}}
}

func parseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return SideA, true
	case "b":
		return SideB, true
	}
	return SideA, false
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := obj.(*tengo.String); ok {
		return s.Value
	}
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return obj.String()
}
