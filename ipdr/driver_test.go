package ipdr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipdr/pdr"
	"github.com/katalvlaran/ipdr/pebbling"
)

// newPath3 builds a 3-node chain v0->v1->v2 with {v2} as the sole output.
// Isolating v2 (only v2 pebbled, v0 and v1 both down) needs a transient
// state with all three nodes pebbled at once: v1 can't drop while v2 is
// being placed (v2's placement needs v1 held), and v0 can't drop until
// after v1 does (v1's removal needs v0 held) — so reaching the target
// needs a peak of 3 simultaneous pebbles. At bound 2 that peak is never
// reachable and the target is provably unreachable; bound 3 (this graph's
// full node count, where the cardinality constraint is vacuous) is the
// minimal bound that reaches it.
func newPath3(t *testing.T) *pebbling.System {
	t.Helper()
	g := pebbling.Path(3)
	sys, err := pebbling.NewSystem(g, []string{"v2"})
	require.NoError(t, err)
	return sys
}

func TestRelaxFindsTheMinimalUnsafeBound(t *testing.T) {
	sys := newPath3(t)
	d := New(sys, pdr.DefaultOptions(), nil)

	rep := d.Relax(1, 3, RelaxReset)

	require.Len(t, rep.Runs, 3, "bounds 1 and 2 are both safe, bound 3 already has a trace, so Relax stops there")
	require.True(t, rep.Runs[0].Result.HasInvariant())
	require.Equal(t, 1, rep.Runs[0].ConstraintValue)
	require.True(t, rep.Runs[1].Result.HasInvariant())
	require.Equal(t, 2, rep.Runs[1].ConstraintValue)
	require.True(t, rep.Runs[2].Result.HasTrace())
	require.Equal(t, 3, rep.Runs[2].ConstraintValue)

	require.True(t, rep.HasInvariant)
	require.Equal(t, 2, rep.BestInvariantValue)
	require.True(t, rep.HasTrace)
	require.Equal(t, 3, rep.MinimalTraceValue)
}

func TestRelaxBasicResetAgreesWithRelaxReset(t *testing.T) {
	sys := newPath3(t)
	d := New(sys, pdr.DefaultOptions(), nil)

	rep := d.Relax(1, 3, BasicReset)

	require.True(t, rep.HasInvariant)
	require.Equal(t, 2, rep.BestInvariantValue)
	require.True(t, rep.HasTrace)
	require.Equal(t, 3, rep.MinimalTraceValue)
}

func TestConstrainFindsTheSameBoundFromAbove(t *testing.T) {
	sys := newPath3(t)
	d := New(sys, pdr.DefaultOptions(), nil)

	rep := d.Constrain(3, 1, ConstrainReset)

	require.True(t, rep.HasInvariant)
	require.Equal(t, 2, rep.BestInvariantValue)
	require.True(t, rep.HasTrace)
	require.Equal(t, 3, rep.MinimalTraceValue)
}

func TestRelaxStopsAtMaxWhenAlwaysSafe(t *testing.T) {
	g := pebbling.Path(3)
	// The target is v0 pebbled alone, and the bound is 0: the cardinality
	// constraint forbids every pebble in both tenses, so the target is
	// never reached and the single run at the maximum is an invariant.
	sys, err := pebbling.NewSystem(g, []string{"v0"})
	require.NoError(t, err)

	d := New(sys, pdr.DefaultOptions(), nil)
	rep := d.Relax(0, 0, RelaxReset)

	require.Len(t, rep.Runs, 1)
	require.True(t, rep.Runs[0].Result.HasInvariant())
	require.False(t, rep.HasTrace)
}
