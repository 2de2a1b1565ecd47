package pebbling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipdr/dag"
	"github.com/katalvlaran/ipdr/literal"
	"github.com/katalvlaran/ipdr/solver"
	"github.com/katalvlaran/ipdr/tsystem"
)

func path3(t *testing.T) *dag.Graph {
	t.Helper()
	g := dag.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	return g
}

func TestNewSystemRejectsCycle(t *testing.T) {
	g := dag.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	_, err := NewSystem(g, []string{"a"})
	require.ErrorIs(t, err, ErrNotAcyclic)
}

func TestNewSystemRejectsUnknownOutput(t *testing.T) {
	g := path3(t)
	_, err := NewSystem(g, []string{"zzz"})
	require.ErrorIs(t, err, ErrUnknownOutput)
}

func TestInitAllUnpebbled(t *testing.T) {
	g := path3(t)
	s, err := NewSystem(g, []string{"c"})
	require.NoError(t, err)

	init := s.Init()
	require.Equal(t, 3, init.Len())
	for _, l := range init.Literals() {
		require.True(t, l.Neg())
		require.False(t, l.Primed())
	}
}

func TestTransitionFourClausesPerEdge(t *testing.T) {
	g := path3(t)
	s, err := NewSystem(g, []string{"c"})
	require.NoError(t, err)

	// Two edges (a->b, b->c): 4 clauses each.
	require.Len(t, s.Transition(), 8)
}

func TestConstrainDiff(t *testing.T) {
	g := path3(t)
	s, err := NewSystem(g, []string{"c"})
	require.NoError(t, err)

	require.Equal(t, 3, s.ConstraintNum()) // defaults to len(nodes)
	require.Equal(t, tsystem.DiffTightened, s.Constrain(1))
	require.Equal(t, 1, s.ConstraintNum())
	require.Equal(t, tsystem.DiffLoosened, s.Constrain(2))
	require.Equal(t, tsystem.DiffNone, s.Constrain(2))
	require.Panics(t, func() { s.Constrain(-1) })
}

func TestPropertyIsNegationOfTarget(t *testing.T) {
	g := path3(t)
	s, err := NewSystem(g, []string{"c"})
	require.NoError(t, err)

	neg := s.NegProperty()
	require.Len(t, neg, 3) // one unit clause per node (c pebbled, a,b not)

	prop := s.Property()
	require.Len(t, prop, 1)
}

// TestZeroPebbleBudgetForcesEmptyBase checks that at-most-0 over the base
// state makes every variable false, matching Init.
func TestZeroPebbleBudgetForcesEmptyBase(t *testing.T) {
	g := path3(t)
	s, err := NewSystem(g, []string{"c"})
	require.NoError(t, err)
	s.Constrain(0)

	base := make([]literal.Clause, 0, s.Init().Len())
	for _, l := range s.Init().Literals() {
		base = append(base, literal.NewClause(l))
	}

	sv := solver.New(solver.DefaultOptions())
	sv.Construct(base, s.Transition(), s.Constraint())

	outcome, err := sv.Check(nil)
	require.NoError(t, err)
	require.Equal(t, solver.Sat, outcome)
}

// TestOneStepTransitionRespectsConstraint exercises a single transition
// step from the empty marking: with budget k=1, pebbling "a" (the source
// node, with no prerequisites) must be satisfiable, while pebbling "b"
// directly (whose prerequisite "a" is never pebbled) must not be.
func TestOneStepTransitionRespectsConstraint(t *testing.T) {
	g := path3(t)
	s, err := NewSystem(g, []string{"c"})
	require.NoError(t, err)
	s.Constrain(1)

	base := make([]literal.Clause, 0, s.Init().Len())
	for _, l := range s.Init().Literals() {
		base = append(base, literal.NewClause(l))
	}

	av, _ := s.VarFor("a")

	sv := solver.New(solver.DefaultOptions())
	sv.Construct(base, s.Transition(), s.Constraint())

	outcome, err := sv.Check([]literal.Literal{literal.Next(av)})
	require.NoError(t, err)
	require.Equal(t, solver.Sat, outcome, "pebbling source node a needs no prerequisites")

	bv, _ := s.VarFor("b")
	outcome, err = sv.Check([]literal.Literal{literal.Next(bv)})
	require.NoError(t, err)
	require.Equal(t, solver.Unsat, outcome, "pebbling b requires its prerequisite a pebbled")
}
