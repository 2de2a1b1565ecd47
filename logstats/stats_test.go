package logstats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsCounters(t *testing.T) {
	s := New(nil)
	s.IncPropagationPush()
	s.IncPropagationPush()
	s.IncMICAttempt(false)
	s.IncMICAttempt(true)
	s.IncDownRetry()
	s.IncSATQuery()
	s.IncUnsatQuery()

	require.Equal(t, 2, s.PropagationPushes)
	require.Equal(t, 2, s.MICAttempts)
	require.Equal(t, 1, s.MICHitLimit)
	require.Equal(t, 1, s.DownRetries)
	require.Equal(t, 1, s.SATQueries)
	require.Equal(t, 1, s.UnsatQueries)
}

func TestNilStatsIsSafe(t *testing.T) {
	var s *Stats
	require.NotPanics(t, func() {
		s.IncPropagationPush()
		s.IncMICAttempt(true)
		s.IncDownRetry()
		s.IncSATQuery()
		s.IncUnsatQuery()
		s.Debugf("no logger attached")
		_ = s.Fields()
	})
}
