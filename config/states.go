package config

import "fmt"

// StateID identifies a playable move state of a combatant.
type StateID int

const (
	StateNone StateID = -1

	// Rest and movement states
	Idle StateID = iota - 1
	Forward
	Backward
	Jump
	Crouch
	Block

	// Attack states. These are the only states that lock out other requests.
	LightAttack
	HeavyAttack

	StateCount // Must be last - used for array sizing
)

// DefaultState is the state a combatant falls back to when a clip ends with
// nothing buffered.
const DefaultState = Idle

// RequiredStates must be present in every character catalog.
var RequiredStates = []StateID{Idle, Forward, Backward, LightAttack, HeavyAttack}

// StateToName maps StateID to the key used in catalog files.
var StateToName = map[StateID]string{
	Idle:        "idle",
	Forward:     "forward",
	Backward:    "backward",
	Jump:        "jump",
	Crouch:      "crouch",
	Block:       "block",
	LightAttack: "light_attack",
	HeavyAttack: "heavy_attack",
}

var nameToState = func() map[string]StateID {
	m := make(map[string]StateID, len(StateToName))
	for id, name := range StateToName {
		m[name] = id
	}
	return m
}()

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// IsAttack reports whether s is one of the locking attack states.
func (s StateID) IsAttack() bool {
	switch s {
	case LightAttack, HeavyAttack:
		return true
	default:
		return false
	}
}

// Valid reports whether s is inside the closed set of move states.
func (s StateID) Valid() bool {
	return s >= Idle && s < StateCount
}

// ParseState resolves a catalog key such as "light_attack".
func ParseState(name string) (StateID, error) {
	if id, ok := nameToState[name]; ok {
		return id, nil
	}
	return StateNone, fmt.Errorf("unknown move state %q", name)
}
