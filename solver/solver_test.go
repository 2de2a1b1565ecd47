package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipdr/literal"
)

func TestConstructCheckWitness(t *testing.T) {
	reg := literal.NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")

	// base: a ∨ b (at least one true).
	base := []literal.Clause{literal.NewClause(literal.Cur(a), literal.Cur(b))}

	s := New(DefaultOptions())
	s.Construct(base, nil, nil)

	outcome, err := s.Check(nil)
	require.NoError(t, err)
	require.Equal(t, Sat, outcome)

	w, err := s.Witness()
	require.NoError(t, err)
	require.GreaterOrEqual(t, w.Len(), 0)
}

func TestBlockMakesUnsat(t *testing.T) {
	reg := literal.NewRegistry()
	a := reg.MustDeclare("a")

	s := New(DefaultOptions())
	s.Construct(nil, nil, nil)

	// Force a to be true, then block the cube {a} (forbid a=true), then
	// check under the assumption a=true: must be unsat.
	s.Block(literal.NewCube(literal.Cur(a)), nil)

	outcome, err := s.Check([]literal.Literal{literal.Cur(a)})
	require.NoError(t, err)
	require.Equal(t, Unsat, outcome)
}

func TestResetForgetsBlockedClauses(t *testing.T) {
	reg := literal.NewRegistry()
	a := reg.MustDeclare("a")

	s := New(DefaultOptions())
	s.Construct(nil, nil, nil)
	s.Block(literal.NewCube(literal.Cur(a)), nil)

	outcome, err := s.Check([]literal.Literal{literal.Cur(a)})
	require.NoError(t, err)
	require.Equal(t, Unsat, outcome)

	s.Reset()

	outcome, err = s.Check([]literal.Literal{literal.Cur(a)})
	require.NoError(t, err)
	require.Equal(t, Sat, outcome, "Reset must forget the blocked clause")
}

func TestReconstrainReplacesConstraint(t *testing.T) {
	reg := literal.NewRegistry()
	a := reg.MustDeclare("a")
	b := reg.MustDeclare("b")

	s := New(DefaultOptions())
	s.Construct(nil, nil, []literal.Clause{literal.NewClause(literal.Cur(a))})

	outcome, err := s.Check([]literal.Literal{literal.Not(literal.Cur(a))})
	require.NoError(t, err)
	require.Equal(t, Unsat, outcome, "old constraint forces a=true")

	s.Reconstrain([]literal.Clause{literal.NewClause(literal.Cur(b))}, nil)

	outcome, err = s.Check([]literal.Literal{literal.Not(literal.Cur(a))})
	require.NoError(t, err)
	require.Equal(t, Sat, outcome, "new constraint no longer forces a=true")
}
