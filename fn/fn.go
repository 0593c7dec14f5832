package fn

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless type. An Or[A, Unit] reads as "an A or
// nothing in particular".
type Unit = struct{}

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)). It is
// mostly useful for building mapping functions on the fly when calling MapThis
// or MapThat.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden is the left and right identity of Comp. It simply returns its
// argument. Mapping an Or with Iden yields an equal Or.
func Iden[A any](a A) A {
	return a
}

// Const accepts an argument and returns a function that always returns that
// value irrespective of its own argument. Combined with ElimOr it collapses
// either side of an Or into a fixed result.
func Const[A, B any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}
