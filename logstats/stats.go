package logstats

import (
	"github.com/sirupsen/logrus"
)

// Stats accumulates the counters spec §4.10 calls for: propagation pushes,
// MIC attempts and how many hit the retry limit, down-call retries, and
// SAT/UNSAT query counts. A nil *Stats absorbs every Inc* call as a no-op,
// so callers never need a presence check before recording.
//
// PropagationPushes is incremented by pdr's block() once per generalized
// cube it blocks; frame.Sequence.Propagate's forward pushes are not
// counted. DownRetries is only changed by IncDownRetry, which the engine
// never calls.
type Stats struct {
	Log *logrus.Logger

	PropagationPushes int
	MICAttempts       int
	MICHitLimit       int
	DownRetries       int
	SATQueries        int
	UnsatQueries      int
}

// New returns a Stats backed by log. log may be nil, in which case
// Debugf is a no-op.
func New(log *logrus.Logger) *Stats {
	return &Stats{Log: log}
}

func (s *Stats) IncPropagationPush() {
	if s == nil {
		return
	}
	s.PropagationPushes++
}

func (s *Stats) IncMICAttempt(hitLimit bool) {
	if s == nil {
		return
	}
	s.MICAttempts++
	if hitLimit {
		s.MICHitLimit++
	}
}

func (s *Stats) IncDownRetry() {
	if s == nil {
		return
	}
	s.DownRetries++
}

func (s *Stats) IncSATQuery() {
	if s == nil {
		return
	}
	s.SATQueries++
}

func (s *Stats) IncUnsatQuery() {
	if s == nil {
		return
	}
	s.UnsatQueries++
}

// Fields renders the counters as logrus.Fields for a summary log line.
func (s *Stats) Fields() logrus.Fields {
	if s == nil {
		return logrus.Fields{}
	}
	return logrus.Fields{
		"propagation_pushes": s.PropagationPushes,
		"mic_attempts":       s.MICAttempts,
		"mic_hit_limit":      s.MICHitLimit,
		"down_retries":       s.DownRetries,
		"sat_queries":        s.SATQueries,
		"unsat_queries":      s.UnsatQueries,
	}
}

// Debugf logs at debug level through Log, if one is set.
func (s *Stats) Debugf(format string, args ...interface{}) {
	if s == nil || s.Log == nil {
		return
	}
	s.Log.Debugf(format, args...)
}
