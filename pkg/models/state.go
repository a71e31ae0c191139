package models

import (
	"strings"
	"unicode"
)

// State classifies the outcome of comparing one relative path across both trees.
// Records carry exactly one of the four base flags; the combined values exist
// for filtering only.
type State uint8

const (
	// StateNone matches nothing when used as a filter
	StateNone State = 0
	// StateEqual indicates both sides hold identical content
	StateEqual State = 1
	// StateHashMismatch indicates both sides exist with different content
	StateHashMismatch State = 2
	// StateLeftMissing indicates the file exists only in the right tree
	StateLeftMissing State = 4
	// StateRightMissing indicates the file exists only in the left tree
	StateRightMissing State = 8
)

const (
	// StateMissing selects files absent from either side
	StateMissing = StateLeftMissing | StateRightMissing
	// StateDifferent selects everything that is not equal
	StateDifferent = StateHashMismatch | StateMissing
	// StateAll selects every comparison
	StateAll = StateEqual | StateDifferent
)

// namedStates lists every symbolic name, composite values first so that
// String prefers them over a flag list.
var namedStates = []struct {
	name  string
	state State
}{
	{"None", StateNone},
	{"All", StateAll},
	{"Different", StateDifferent},
	{"Missing", StateMissing},
	{"Equal", StateEqual},
	{"HashMismatch", StateHashMismatch},
	{"LeftMissing", StateLeftMissing},
	{"RightMissing", StateRightMissing},
}

// baseStates are the mutually exclusive outcomes, in bit order
var baseStates = []State{StateEqual, StateHashMismatch, StateLeftMissing, StateRightMissing}

// String returns the symbolic name of the state
func (s State) String() string {
	for _, ns := range namedStates {
		if ns.state == s {
			return ns.name
		}
	}

	var parts []string
	for _, base := range baseStates {
		if s&base != 0 {
			parts = append(parts, base.String())
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// DisplayName returns the symbolic name with a space inserted before every
// internal capital letter, e.g. "Hash Mismatch"
func (s State) DisplayName() string {
	name := s.String()
	var b strings.Builder
	b.Grow(len(name) + len(name)/2)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Matches reports whether the state is selected by the filter mask
func (s State) Matches(filter State) bool {
	return s&filter != StateNone
}

// IsSingle reports whether exactly one base flag is set
func (s State) IsSingle() bool {
	return s != StateNone && s&(s-1) == 0 && s&StateAll == s
}

// MarshalText encodes the state as its symbolic name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a symbolic name
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseState converts a symbolic name to a State, ignoring case
func ParseState(name string) (State, error) {
	trimmed := strings.TrimSpace(name)
	for _, ns := range namedStates {
		if strings.EqualFold(ns.name, trimmed) {
			return ns.state, nil
		}
	}
	return StateNone, &ValidationError{
		Field:   "mode",
		Message: "unknown state " + `"` + name + `"` + " (valid: " + strings.Join(StateNames(), ", ") + ")",
	}
}

// ParseStates ORs together every name in the list. Items may themselves be
// comma separated. An empty list yields StateNone.
func ParseStates(names []string) (State, error) {
	result := StateNone
	for _, item := range names {
		for _, name := range strings.Split(item, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			s, err := ParseState(name)
			if err != nil {
				return StateNone, err
			}
			result |= s
		}
	}
	return result, nil
}

// StateNames returns every accepted symbolic name
func StateNames() []string {
	names := make([]string, 0, len(namedStates))
	for _, ns := range namedStates {
		names = append(names, ns.name)
	}
	return names
}
