package literal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCubeCanonicalOrderAndEquality(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")

	c1 := NewCube(Cur(b), Not(Cur(a)))
	c2 := NewCube(Not(Cur(a)), Cur(b))
	require.True(t, c1.Equal(c2), "cube order must be canonical regardless of construction order")
	require.Equal(t, 2, c1.Len())
}

func TestCubeSubsumption(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")
	c := reg.MustDeclare("c")

	small := NewCube(Cur(a))
	big := NewCube(Cur(a), Cur(b), Not(Cur(c)))

	require.True(t, small.Subsumes(big))
	require.False(t, big.Subsumes(small))
	require.True(t, small.SubsumesEq(small))
	require.False(t, small.Subsumes(small), "strict subsumption must not hold for equal cubes")
}

func TestCubeIntersect(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")
	c := reg.MustDeclare("c")

	x := NewCube(Cur(a), Cur(b), Not(Cur(c)))
	y := NewCube(Cur(a), Not(Cur(b)), Not(Cur(c)))

	got := x.Intersect(y)
	want := NewCube(Cur(a), Not(Cur(c)))
	require.True(t, got.Equal(want))
}

func TestCubeNegateProducesClause(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")

	cube := NewCube(Cur(a), Not(Cur(b)))
	clause := cube.Negate()
	require.Len(t, clause.Literals(), 2)
	require.Contains(t, clause.Literals(), Not(Cur(a)))
	require.Contains(t, clause.Literals(), Cur(b))
}

func TestCubeContradictory(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")

	require.True(t, NewCube(Cur(a), Not(Cur(a))).Contradictory())
	require.False(t, NewCube(Cur(a)).Contradictory())
}

func TestCubeLessOrdersByLengthThenLiterals(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")

	short := NewCube(Cur(a))
	long := NewCube(Cur(a), Cur(b))
	require.True(t, short.Less(long))
	require.False(t, long.Less(short))

	require.True(t, NewCube(Cur(a)).Less(NewCube(Cur(b))))
	require.False(t, NewCube(Cur(a)).Less(NewCube(Cur(a))))
}

func TestCubePrimedRoundTrip(t *testing.T) {
	reg := NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")

	cur := NewCube(Cur(a), Not(Cur(b)))
	require.True(t, cur.Primed().Unprimed().Equal(cur))
}

func TestRegistryDuplicateAndEmptyName(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Declare("x")
	require.NoError(t, err)

	_, err = reg.Declare("x")
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = reg.Declare("")
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = reg.Lookup("missing")
	require.ErrorIs(t, err, ErrUnknownVar)
}
