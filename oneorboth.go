// Package oneorboth provides a container for zero, one or two values of two
// kinds, left and right, whose Go type records which of them were inserted.
//
// Each state is its own type: Empty, HasLeft, HasRight and HasBoth. A type
// only has the read methods for the slots it is guaranteed to hold, so
// reading a value that was never inserted does not compile:
//
//	c := oneorboth.New[string, int]()   // Empty
//	l := c.InsertLeft("a")               // HasLeft
//	l.UnwrapLeft()                       // "a"
//	l.UnwrapRight()                      // compile error
//	b := l.InsertRight(1)                // HasBoth
//	left, right := b.UnwrapBoth()        // "a", 1
//
// Every operation returns a new value and leaves its receiver as it was.
// Treat the receiver as consumed: keep only the returned container.
package oneorboth

import "fmt"

var (
	_ Tagged = Empty[int, int]{}
	_ Tagged = HasLeft[int, int]{}
	_ Tagged = HasRight[int, int]{}
	_ Tagged = HasBoth[int, int]{}
)

// Empty holds no values. It is the only state New returns.
type Empty[L, R any] struct{}

// New returns an empty container.
func New[L, R any]() Empty[L, R] {
	return Empty[L, R]{}
}

func (Empty[L, R]) State() State { return StateEmpty }

func (Empty[L, R]) String() string { return "Empty{}" }

// InsertLeft stores value in the left slot.
func (Empty[L, R]) InsertLeft(value L) HasLeft[L, R] {
	return HasLeft[L, R]{left: value}
}

// InsertRight stores value in the right slot.
func (Empty[L, R]) InsertRight(value R) HasRight[L, R] {
	return HasRight[L, R]{right: value}
}

// InsertBoth stores both values at once. The result is the same as
// InsertLeft(left).InsertRight(right).
func (Empty[L, R]) InsertBoth(left L, right R) HasBoth[L, R] {
	return HasBoth[L, R]{left: left, right: right}
}

// HasLeft holds a left value only.
type HasLeft[L, R any] struct {
	left L
}

func (HasLeft[L, R]) State() State { return StateHasLeft }

func (c HasLeft[L, R]) String() string {
	return fmt.Sprintf("HasLeft{left: %v}", c.left)
}

func (c HasLeft[L, R]) UnwrapLeft() L {
	return c.left
}

// InsertRight stores value in the right slot, keeping the left value.
func (c HasLeft[L, R]) InsertRight(value R) HasBoth[L, R] {
	return HasBoth[L, R]{left: c.left, right: value}
}

// HasRight holds a right value only.
type HasRight[L, R any] struct {
	right R
}

func (HasRight[L, R]) State() State { return StateHasRight }

func (c HasRight[L, R]) String() string {
	return fmt.Sprintf("HasRight{right: %v}", c.right)
}

func (c HasRight[L, R]) UnwrapRight() R {
	return c.right
}

// InsertLeft stores value in the left slot, keeping the right value.
func (c HasRight[L, R]) InsertLeft(value L) HasBoth[L, R] {
	return HasBoth[L, R]{left: value, right: c.right}
}

// HasBoth holds a left and a right value. No further insertion is possible.
//
// Reading one side does not give up the other: a HasBoth may be copied and
// each copy unwrapped independently.
type HasBoth[L, R any] struct {
	left  L
	right R
}

func (HasBoth[L, R]) State() State { return StateHasBoth }

func (c HasBoth[L, R]) String() string {
	return fmt.Sprintf("HasBoth{left: %v, right: %v}", c.left, c.right)
}

func (c HasBoth[L, R]) UnwrapLeft() L {
	return c.left
}

func (c HasBoth[L, R]) UnwrapRight() R {
	return c.right
}

func (c HasBoth[L, R]) UnwrapBoth() (L, R) {
	return c.left, c.right
}

// Pair returns both values as a Pair.
func (c HasBoth[L, R]) Pair() Pair[L, R] {
	return Pair[L, R]{Left: c.left, Right: c.right}
}
