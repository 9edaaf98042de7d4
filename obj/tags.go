package obj

import "github.com/milk9111/tankbattle/physics"

// Body tags understood by the contact rules.
const (
	TagNone physics.Tag = iota
	TagTank
	TagShell
	TagBarrel
	TagBlueDetonator
	TagGreenDetonator
)

// TagName is the name a tag is exposed under to contact rule scripts.
func TagName(tag physics.Tag) string {
	switch tag {
	case TagTank:
		return "tank"
	case TagShell:
		return "shell"
	case TagBarrel:
		return "barrel"
	case TagBlueDetonator:
		return "blue_detonator"
	case TagGreenDetonator:
		return "green_detonator"
	}
	return ""
}

type Team string

const (
	TeamNone  Team = ""
	TeamBlue  Team = "blue"
	TeamGreen Team = "green"
)

// DetonatorTag is the tag a barrel hiding team's detonator takes once exposed.
func DetonatorTag(team Team) physics.Tag {
	switch team {
	case TeamBlue:
		return TagBlueDetonator
	case TeamGreen:
		return TagGreenDetonator
	}
	return TagBarrel
}
