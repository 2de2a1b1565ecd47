package peterson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipdr/solver"
	"github.com/katalvlaran/ipdr/tsystem"
)

func TestNewSystemRejectsInvalidCount(t *testing.T) {
	_, err := NewSystem(0)
	require.ErrorIs(t, err, ErrInvalidProcessCount)
}

func TestInitAllIdleAndFree(t *testing.T) {
	s, err := NewSystem(2)
	require.NoError(t, err)

	init := s.Init()
	require.Greater(t, init.Len(), 0)
}

func TestConstrainDiffAndRange(t *testing.T) {
	s, err := NewSystem(3)
	require.NoError(t, err)
	require.Equal(t, 3, s.ConstraintNum())

	require.Equal(t, tsystem.DiffTightened, s.Constrain(1))
	require.Equal(t, tsystem.DiffLoosened, s.Constrain(2))
	require.Equal(t, tsystem.DiffNone, s.Constrain(2))
	require.Panics(t, func() { s.Constrain(-1) })
	require.Panics(t, func() { s.Constrain(4) })
}

func TestInitSatisfiesTransitionAndConstraint(t *testing.T) {
	s, err := NewSystem(2)
	require.NoError(t, err)

	base := clausesFromCube(s.Init())
	sv := solver.New(solver.DefaultOptions())
	sv.Construct(base, s.Transition(), s.Constraint())

	outcome, err := sv.Check(nil)
	require.NoError(t, err)
	require.Equal(t, solver.Sat, outcome)
}

// TestSingleProcessTrivialMutex exercises §8's boundary scenario: with
// N_max=1 (and full activation) mutual exclusion holds trivially, since
// there is no second process to race with.
func TestSingleProcessTrivialMutex(t *testing.T) {
	s, err := NewSystem(1)
	require.NoError(t, err)

	base := clausesFromCube(s.Init())
	sv := solver.New(solver.DefaultOptions())
	sv.Construct(base, s.Transition(), s.Constraint())

	// F0 ∧ T ∧ ¬P': unsat, since NegPropertyNext is unsatisfiable outright
	// for a single process (no pair can violate mutual exclusion).
	sv2 := solver.New(solver.DefaultOptions())
	sv2.Construct(base, append(s.Transition(), s.PropertyNext()...), s.NegPropertyNext())
	outcome, err := sv2.Check(nil)
	require.NoError(t, err)
	require.Equal(t, solver.Unsat, outcome)
}

func TestFrozenProcessesStayIdle(t *testing.T) {
	s, err := NewSystem(3)
	require.NoError(t, err)
	s.Constrain(1) // only process 0 active; 1 and 2 frozen idle

	base := clausesFromCube(s.Init())
	sv := solver.New(solver.DefaultOptions())
	sv.Construct(base, s.Transition(), s.Constraint())

	outcome, err := sv.Check(nil)
	require.NoError(t, err)
	require.Equal(t, solver.Sat, outcome)
}
