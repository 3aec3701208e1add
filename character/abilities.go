package character

import "strings"

// AbilityKind names a grantable movement ability.
type AbilityKind int

const (
	AbilityUnknown AbilityKind = iota
	AbilityDoubleJump
	AbilitySprint
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityDoubleJump:
		return "double_jump"
	case AbilitySprint:
		return "sprint"
	default:
		return "unknown"
	}
}

// ParseAbilityKind maps a config or script name to an ability. Unrecognized
// names map to AbilityUnknown, which GrantAbility ignores.
func ParseAbilityKind(name string) AbilityKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "double_jump", "doublejump":
		return AbilityDoubleJump
	case "sprint":
		return AbilitySprint
	default:
		return AbilityUnknown
	}
}

// AbilityState holds the ability grants and the double jump charge.
type AbilityState struct {
	HasDoubleJump bool
	CanDoubleJump bool
	HasSprint     bool
}

func (s *AbilityState) grant(kind AbilityKind) bool {
	switch kind {
	case AbilityDoubleJump:
		s.HasDoubleJump = true
	case AbilitySprint:
		s.HasSprint = true
	default:
		return false
	}
	return true
}

// Has reports whether kind has been granted.
func (s AbilityState) Has(kind AbilityKind) bool {
	switch kind {
	case AbilityDoubleJump:
		return s.HasDoubleJump
	case AbilitySprint:
		return s.HasSprint
	default:
		return false
	}
}
