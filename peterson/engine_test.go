package peterson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ipdr/pdr"
)

// TestRunFindsAnInvariantForTheCorrectTwoProcessProtocol exercises spec
// scenario 3: the fully-correct N=2 filter-lock protocol, run end to end
// through pdr.Engine, must prove mutual exclusion holds at every reachable
// depth.
func TestRunFindsAnInvariantForTheCorrectTwoProcessProtocol(t *testing.T) {
	sys, err := NewSystem(2)
	require.NoError(t, err)

	e := pdr.New(sys, pdr.DefaultOptions(), nil)
	res, err := e.Run()
	require.NoError(t, err)
	require.True(t, res.HasInvariant(), "the correct protocol never lets both processes into pc=4 at once")
	require.GreaterOrEqual(t, res.Level, 1)
}

// TestRunFindsATraceWhenSetLastIsOmitted exercises spec scenario 4: with
// the set-last write dropped, last never records a real process id, so
// the await phase's block check is permanently vacuous and both processes
// can race to the critical section together — pdr.Engine must find that
// counter-example rather than mistakenly prove an invariant.
func TestRunFindsATraceWhenSetLastIsOmitted(t *testing.T) {
	sys, err := NewSystemOmittingSetLast(2)
	require.NoError(t, err)

	e := pdr.New(sys, pdr.DefaultOptions(), nil)
	res, err := e.Run()
	require.NoError(t, err)
	require.True(t, res.HasTrace(), "omitting set-last lets both processes bypass the filter-lock gate at once")
	require.GreaterOrEqual(t, len(res.States), 2)

	init := sys.Init()
	require.True(t, init.Equal(res.States[0]), "NewTrace orders the walk so index 0 is an initial state")
}

// TestRunIsDeterministicAcrossRepeatedPetersonRuns mirrors
// pdr/engine_test.go's pebbling determinism check for the Peterson model.
func TestRunIsDeterministicAcrossRepeatedPetersonRuns(t *testing.T) {
	sys1, err := NewSystem(2)
	require.NoError(t, err)
	sys2, err := NewSystem(2)
	require.NoError(t, err)

	r1, err := pdr.New(sys1, pdr.DefaultOptions(), nil).Run()
	require.NoError(t, err)
	r2, err := pdr.New(sys2, pdr.DefaultOptions(), nil).Run()
	require.NoError(t, err)

	require.Equal(t, r1.Kind, r2.Kind)
	require.Equal(t, len(r1.States), len(r2.States))
}
