package fn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionZeroIsNone(t *testing.T) {
	var o Option[int]

	require.True(t, o.IsNone())
	require.False(t, o.IsSome())
	require.Equal(t, None[int](), o)
}

func TestOptionUnwrap(t *testing.T) {
	errEmpty := errors.New("empty")

	some := Some(3)
	require.Equal(t, 3, some.UnwrapOr(9))
	require.Equal(t, 3, some.UnwrapOrFunc(func() int { return 9 }))

	x, err := some.UnwrapOrErr(errEmpty)
	require.NoError(t, err)
	require.Equal(t, 3, x)

	none := None[int]()
	require.Equal(t, 9, none.UnwrapOr(9))
	require.Equal(t, 9, none.UnwrapOrFunc(func() int { return 9 }))

	_, err = none.UnwrapOrErr(errEmpty)
	require.ErrorIs(t, err, errEmpty)
}

func TestOptionCombinators(t *testing.T) {
	double := MapOption(func(x int) int { return x * 2 })
	require.Equal(t, Some(4), double(Some(2)))
	require.Equal(t, None[int](), double(None[int]()))

	require.Equal(t, Some(1), Some(1).Alt(Some(2)))
	require.Equal(t, Some(2), None[int]().Alt(Some(2)))

	name := func(o Option[int]) string {
		return ElimOption(
			o, func() string { return "none" },
			func(x int) string { return "some" },
		)
	}
	require.Equal(t, "some", name(Some(0)))
	require.Equal(t, "none", name(None[int]()))

	var seen []int
	Some(7).WhenSome(func(x int) { seen = append(seen, x) })
	None[int]().WhenSome(func(x int) { seen = append(seen, x) })
	require.Equal(t, []int{7}, seen)
}

func TestT2(t *testing.T) {
	t2 := NewT2(1, "one")
	require.Equal(t, 1, t2.Fst())
	require.Equal(t, "one", t2.Snd())

	a, b := t2.AsGoPair()
	require.Equal(t, 1, a)
	require.Equal(t, "one", b)
}
