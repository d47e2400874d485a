package oneorboth

import "strconv"

// State mirrors, at run time, the state a container type encodes statically.
type State uint8

const (
	StateEmpty State = iota
	StateHasLeft
	StateHasRight
	StateHasBoth
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateHasLeft:
		return "HasLeft"
	case StateHasRight:
		return "HasRight"
	case StateHasBoth:
		return "HasBoth"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Left reports whether the state guarantees a present left slot.
func (s State) Left() bool {
	return s == StateHasLeft || s == StateHasBoth
}

// Right reports whether the state guarantees a present right slot.
func (s State) Right() bool {
	return s == StateHasRight || s == StateHasBoth
}

// Tagged is implemented by every container type.
type Tagged interface {
	State() State
}
