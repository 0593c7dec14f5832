package fn

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Or is a value that holds exactly one of two alternatives, labeled the
// "this" side and the "that" side. Unlike a result type, neither side is
// considered a failure.
//
// The zero value holds This of the zero A. Only the populated slot is ever
// set, so when A and B are comparable two Or values are == exactly when they
// hold the same side with equal contents.
type Or[A, B any] struct {
	side Side
	this A
	that B
}

// NewThis constructs an Or holding the "this" alternative.
func NewThis[A, B any](a A) Or[A, B] {
	return Or[A, B]{
		side: SideThis,
		this: a,
	}
}

// NewThat constructs an Or holding the "that" alternative.
func NewThat[A, B any](b B) Or[A, B] {
	return Or[A, B]{
		side: SideThat,
		that: b,
	}
}

// Side returns the populated side of the Or.
func (o Or[A, B]) Side() Side {
	return o.side
}

// IsThis returns true if the Or holds the "this" alternative.
func (o Or[A, B]) IsThis() bool {
	return o.side == SideThis
}

// IsThat returns true if the Or holds the "that" alternative.
func (o Or[A, B]) IsThat() bool {
	return o.side == SideThat
}

// UnwrapThis returns the "this" value. It panics with an
// *InvariantViolationError if the Or holds the "that" alternative, so it
// should only be used once the side is known.
func (o Or[A, B]) UnwrapThis() A {
	a, err := o.UnwrapThisErr()
	if err != nil {
		panic(err)
	}

	return a
}

// UnwrapThat returns the "that" value. It panics with an
// *InvariantViolationError if the Or holds the "this" alternative.
func (o Or[A, B]) UnwrapThat() B {
	b, err := o.UnwrapThatErr()
	if err != nil {
		panic(err)
	}

	return b
}

// UnwrapThisErr returns the "this" value, or an *InvariantViolationError if
// the Or holds the "that" alternative.
func (o Or[A, B]) UnwrapThisErr() (A, error) {
	if o.side != SideThis {
		var zero A
		return zero, newInvariantViolation("UnwrapThis", o.side)
	}

	return o.this, nil
}

// UnwrapThatErr returns the "that" value, or an *InvariantViolationError if
// the Or holds the "this" alternative.
func (o Or[A, B]) UnwrapThatErr() (B, error) {
	if o.side != SideThat {
		var zero B
		return zero, newInvariantViolation("UnwrapThat", o.side)
	}

	return o.that, nil
}

// UnwrapThisOr returns the "this" value, or a if the Or holds "that".
func (o Or[A, B]) UnwrapThisOr(a A) A {
	return o.ThisToOption().UnwrapOr(a)
}

// UnwrapThatOr returns the "that" value, or b if the Or holds "this".
func (o Or[A, B]) UnwrapThatOr(b B) B {
	return o.ThatToOption().UnwrapOr(b)
}

// ThisToOption projects the "this" side into an Option, discarding the "that"
// value if present.
func (o Or[A, B]) ThisToOption() Option[A] {
	if o.side == SideThis {
		return Some(o.this)
	}

	return None[A]()
}

// ThatToOption projects the "that" side into an Option, discarding the "this"
// value if present.
func (o Or[A, B]) ThatToOption() Option[B] {
	if o.side == SideThat {
		return Some(o.that)
	}

	return None[B]()
}

// WhenThis runs f on the "this" value if there is one.
func (o Or[A, B]) WhenThis(f func(A)) {
	o.ThisToOption().WhenSome(f)
}

// WhenThat runs f on the "that" value if there is one.
func (o Or[A, B]) WhenThat(f func(B)) {
	o.ThatToOption().WhenSome(f)
}

// Swap exchanges the two sides: a "this" value becomes a "that" value and
// vice versa.
func (o Or[A, B]) Swap() Or[B, A] {
	if o.side == SideThis {
		return NewThat[B](o.this)
	}

	return NewThis[B, A](o.that)
}

// AsPair converts the Or into a pair of options where exactly one member is
// populated. OrFromPair is its inverse.
func (o Or[A, B]) AsPair() T2[Option[A], Option[B]] {
	return NewT2(o.ThisToOption(), o.ThatToOption())
}

// String renders the Or as This(v) or That(v).
func (o Or[A, B]) String() string {
	if o.side == SideThis {
		return fmt.Sprintf("%v(%v)", o.side, o.this)
	}

	return fmt.Sprintf("%v(%v)", o.side, o.that)
}

// OrFromPair rebuilds an Or from its pair representation. ErrInvalidPair is
// returned unless exactly one member of the pair is populated.
func OrFromPair[A, B any](p T2[Option[A], Option[B]]) (Or[A, B], error) {
	this, that := p.AsGoPair()

	switch {
	case this.IsSome() && that.IsNone():
		return NewThis[A, B](this.some), nil

	case this.IsNone() && that.IsSome():
		return NewThat[A](that.some), nil

	default:
		return Or[A, B]{}, ErrInvalidPair
	}
}

// MapThis applies f to the "this" value if there is one. A "that" value is
// passed through untouched, only its "this" type parameter changes.
func MapThis[A, B, C any](o Or[A, B], f func(A) C) Or[C, B] {
	if o.side == SideThis {
		return NewThis[C, B](f(o.this))
	}

	return NewThat[C](o.that)
}

// MapThat applies f to the "that" value if there is one. A "this" value is
// passed through untouched.
func MapThat[A, B, C any](o Or[A, B], f func(B) C) Or[A, C] {
	if o.side == SideThat {
		return NewThat[A](f(o.that))
	}

	return NewThis[A, C](o.this)
}

// ElimOr is the universal Or eliminator. Exactly one of the two continuations
// is run, chosen by the populated side.
func ElimOr[A, B, C any](o Or[A, B], f func(A) C, g func(B) C) C {
	if o.side == SideThis {
		return f(o.this)
	}

	return g(o.that)
}

// CompareOr orders two Or values. Every "this" value sorts before every "that"
// value, and values on the same side compare by their contents. The result is
// -1, 0 or +1.
func CompareOr[A, B constraints.Ordered](x, y Or[A, B]) int {
	switch {
	case x.side != y.side:
		if x.side == SideThis {
			return -1
		}

		return 1

	case x.side == SideThis:
		return compareOrdered(x.this, y.this)

	default:
		return compareOrdered(x.that, y.that)
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1

	case a > b:
		return 1

	default:
		return 0
	}
}
