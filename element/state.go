package element

import "strings"

// State is a set of interaction states.
type State uint8

// Interaction states, in order of increasing precedence.
const (
	Hover State = 1 << iota
	Focus
	Active
	Disabled
)

// None is the empty set of states.
const None State = 0

var stateNames = [...]string{"hover", "focus", "active", "disabled"}

// Has is true if all states of o are in s.
func (s State) Has(o State) bool {
	return s&o == o
}

// single returns the overlay slot for a single state.
func (s State) single() (int, bool) {
	for i := range stateNames {
		if s == 1<<i {
			return i, true
		}
	}
	return -1, false
}

func (s State) String() string {
	if s == None {
		return "none"
	}
	var names []string
	for i, name := range stateNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
