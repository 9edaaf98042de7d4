package rules

import (
	"reflect"
	"testing"
)

func TestDefaultContactRules(t *testing.T) {
	rules, err := NewContact(DefaultScript)
	if err != nil {
		t.Fatalf("NewContact: %v", err)
	}

	shell := Participant{Tag: "shell"}
	barrel := Participant{Tag: "barrel"}
	blueTank := Participant{Tag: "tank", Team: "blue"}
	greenTank := Participant{Tag: "tank", Team: "green"}
	blueDet := Participant{Tag: "blue_detonator"}
	greenDet := Participant{Tag: "green_detonator"}

	cases := []struct {
		name string
		a, b Participant
		want []Action
	}{
		{"shell_hits_barrel", shell, barrel, []Action{
			{Kind: ActionDisable, Side: SideA},
			{Kind: ActionExplode, Side: SideB},
		}},
		{"barrel_hit_by_shell", barrel, shell, []Action{
			{Kind: ActionDisable, Side: SideB},
			{Kind: ActionExplode, Side: SideA},
		}},
		{"blue_tank_on_green_detonator", blueTank, greenDet, []Action{
			{Kind: ActionDefeat, Team: "green"},
			{Kind: ActionDefuse, Side: SideB},
		}},
		{"green_detonator_under_blue_tank", greenDet, blueTank, []Action{
			{Kind: ActionDefeat, Team: "green"},
			{Kind: ActionDefuse, Side: SideA},
		}},
		{"green_tank_on_blue_detonator", greenTank, blueDet, []Action{
			{Kind: ActionDefeat, Team: "blue"},
			{Kind: ActionDefuse, Side: SideB},
		}},
		{"own_detonator_is_safe", blueTank, blueDet, nil},
		{"tank_on_barrel", blueTank, barrel, nil},
		{"tank_on_tank", blueTank, greenTank, nil},
		{"shell_on_shell", shell, shell, nil},
		{"shell_on_detonator", shell, greenDet, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actions, keep, err := rules.Evaluate(c.a, c.b)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if !keep {
				t.Fatalf("default rules should keep every contact")
			}
			if len(actions) == 0 && len(c.want) == 0 {
				return
			}
			if !reflect.DeepEqual(actions, c.want) {
				t.Fatalf("actions = %+v, want %+v", actions, c.want)
			}
		})
	}
}

func TestContactVeto(t *testing.T) {
	src := []byte(`
on_contact := func(engine, a, b) {
	if a.tag == "ghost" || b.tag == "ghost" {
		return false
	}
	return true
}
`)
	rules, err := NewContactFromSource("veto.tengo", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	_, keep, err := rules.Evaluate(Participant{Tag: "ghost"}, Participant{Tag: "tank"})
	if err != nil || keep {
		t.Fatalf("keep = %v err = %v, want vetoed", keep, err)
	}
	_, keep, err = rules.Evaluate(Participant{Tag: "tank"}, Participant{Tag: "barrel"})
	if err != nil || !keep {
		t.Fatalf("keep = %v err = %v, want kept", keep, err)
	}
}

func TestContactBadSideIgnored(t *testing.T) {
	src := []byte(`
on_contact := func(engine, a, b) {
	engine.explode("c")
	engine.defeat("")
	engine.disable("B")
	return true
}
`)
	rules, err := NewContactFromSource("bad.tengo", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	actions, _, err := rules.Evaluate(Participant{}, Participant{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := []Action{{Kind: ActionDisable, Side: SideB}}
	if !reflect.DeepEqual(actions, want) {
		t.Fatalf("actions = %+v, want %+v", actions, want)
	}
}

func TestContactCompileError(t *testing.T) {
	if _, err := NewContactFromSource("broken.tengo", []byte("on_contact := func(")); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := NewContactFromSource("missing.tengo", []byte("x := 1")); err == nil {
		t.Fatalf("expected compile error for missing on_contact")
	}
}

func TestContactReloadKeepsPreviousOnFailure(t *testing.T) {
	rules, err := NewContactFromSource("does_not_exist.tengo", []byte(`on_contact := func(engine, a, b) { return false }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := rules.Reload(); err == nil {
		t.Fatalf("reload of a missing script should fail")
	}
	_, keep, err := rules.Evaluate(Participant{}, Participant{})
	if err != nil || keep {
		t.Fatalf("previous rules lost: keep=%v err=%v", keep, err)
	}
}

func TestNilContact(t *testing.T) {
	var c *Contact
	if _, keep, err := c.Evaluate(Participant{}, Participant{}); err == nil || !keep {
		t.Fatalf("nil contact should report an error and keep")
	}
	if ActionDefeat.String() != "defeat" {
		t.Fatalf("ActionDefeat.String() = %q", ActionDefeat.String())
	}
}
