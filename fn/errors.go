package fn

import (
	"errors"
	"fmt"
)

// Side identifies which of the two alternatives of an Or is populated.
type Side uint8

const (
	// SideThis is the "this" alternative. It is the zero Side, so the zero
	// Or holds the zero value of its first type parameter.
	SideThis Side = iota

	// SideThat is the "that" alternative.
	SideThat
)

// String returns a human readable name for the side.
func (s Side) String() string {
	switch s {
	case SideThis:
		return "This"

	case SideThat:
		return "That"

	default:
		return fmt.Sprintf("<unknown side: %d>", uint8(s))
	}
}

// ErrInvalidPair is returned by OrFromPair when the pair does not have
// exactly one populated member.
var ErrInvalidPair = errors.New("pair must have exactly one populated " +
	"member")

// InvariantViolationError is produced when an accessor for one side of an Or
// is invoked on a value holding the other side. The panicking accessors panic
// with a value of this type, the Err variants return it.
type InvariantViolationError struct {
	// Accessor is the name of the method that was misused.
	Accessor string

	// Want is the side the accessor requires.
	Want Side

	// Got is the side the value actually holds.
	Got Side
}

// Error returns a string describing the misuse.
//
// NOTE: This is part of the error interface.
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("fn: %v called on %v value, want %v", e.Accessor,
		e.Got, e.Want)
}

// newInvariantViolation builds the error for calling accessor on a value that
// holds got.
func newInvariantViolation(accessor string,
	got Side) *InvariantViolationError {

	want := SideThis
	if got == SideThis {
		want = SideThat
	}

	return &InvariantViolationError{
		Accessor: accessor,
		Want:     want,
		Got:      got,
	}
}
