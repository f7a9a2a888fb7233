// Package latch holds the set/reset rules of the simulated PLC latch.
//
// Every function here is pure: the caller owns the previous SR value and the
// iteration index, so any sequence of button states can be replayed without a
// console or a random source.
package latch

import (
	"fmt"
	"strconv"
	"strings"
)

// NumCycles is the number of iterations every run performs, indices 0 to 10.
const NumCycles = 11

// Logic levels of the button and the SR output.
const (
	Off = 0
	On  = 1
)

// State is what the latch looks like at the end of one iteration.
type State struct {
	Button int `json:"button"`
	SR     int `json:"sr"`
}

// Mode selects how the button is driven and how SR is derived.
type Mode int

// The two modes offered by the menu. The values are the menu options.
const (
	ModeManual Mode = 1
	ModeMemory Mode = 2
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeMemory:
		return "memory"
	default:
		return "invalid(" + strconv.Itoa(int(m)) + ")"
	}
}

// IsValid tells if m is one of the known modes.
func (m Mode) IsValid() bool {
	return m == ModeManual || m == ModeMemory
}

// ParseMode accepts a menu number or a mode name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "1", "manual":
		return ModeManual, nil
	case "2", "memory":
		return ModeMemory, nil
	}

	return 0, fmt.Errorf("unknown mode %q", s)
}

// ValidateButton maps a raw reading onto a button level. Anything other than
// 0 or 1 becomes 0, and ok reports whether the raw value was kept.
func ValidateButton(raw int) (button int, ok bool) {
	if raw != Off && raw != On {
		return Off, false
	}

	return raw, true
}

// Follow is the manual-mode rule: SR mirrors the button.
func Follow(button int) int {
	if button == On {
		return On
	}

	return Off
}

// Next is the memory-mode rule. A press sets SR. Without a press, SR is reset
// on even cycles and held on odd cycles.
func Next(button, cycle, prev int) int {
	switch {
	case button == On:
		return On
	case cycle%2 == 0:
		return Off
	default:
		return prev
	}
}

// Step applies the rule of mode m for one iteration.
func (m Mode) Step(button, cycle, prev int) int {
	if m == ModeMemory {
		return Next(button, cycle, prev)
	}

	return Follow(button)
}

// Replay runs a whole sequence of already validated button states through the
// rule of mode m, starting from SR = 0.
func Replay(m Mode, buttons []int) []State {
	states := make([]State, 0, len(buttons))
	sr := Off

	for cycle, button := range buttons {
		sr = m.Step(button, cycle, sr)
		states = append(states, State{Button: button, SR: sr})
	}

	return states
}

// SRs extracts the SR column of states.
func SRs(states []State) []int {
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = s.SR
	}

	return out
}

// Action names what the rule did in one iteration.
type Action string

// Actions of the latch rules.
const (
	ActionFollow Action = "follow"
	ActionSet    Action = "set"
	ActionReset  Action = "reset"
	ActionHold   Action = "hold"
)

// Classify tells which branch of the mode's rule an iteration takes.
func (m Mode) Classify(button, cycle int) Action {
	if m != ModeMemory {
		return ActionFollow
	}

	switch {
	case button == On:
		return ActionSet
	case cycle%2 == 0:
		return ActionReset
	default:
		return ActionHold
	}
}
