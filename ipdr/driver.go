package ipdr

import (
	"time"

	"github.com/katalvlaran/ipdr/logstats"
	"github.com/katalvlaran/ipdr/pdr"
	"github.com/katalvlaran/ipdr/result"
	"github.com/katalvlaran/ipdr/tsystem"
)

// ResetPolicy selects how a Driver carries PDR state from one run to the
// next (spec §4.8).
type ResetPolicy int

const (
	// RelaxReset truncates the frame sequence back to {F0, F1} before
	// every run beyond the first; used by Relax's experiment mode.
	RelaxReset ResetPolicy = iota
	// BasicReset discards the whole engine (solver included) and rebuilds
	// from scratch before every run; Relax's control mode, giving an
	// apples-to-apples comparison against RelaxReset's frame reuse.
	BasicReset
	// ConstrainReset keeps every frame and its blocked cubes across runs,
	// only re-deriving the constraint region; Constrain's default policy.
	ConstrainReset
)

// Run is one PDR invocation inside a Relax or Constrain walk.
type Run struct {
	ConstraintValue int
	Result          result.Result
}

// Report accumulates every Run of one Relax or Constrain walk (spec §4.8:
// "accumulate all intermediate results and identify (best invariant level,
// minimal trace pebbled/processes, total time)").
type Report struct {
	Runs []Run

	HasInvariant       bool
	BestInvariantValue int
	BestInvariantLevel int
	HasTrace           bool
	MinimalTraceValue  int

	TotalTime time.Duration
}

// Driver runs repeated pdr.Engine invocations over sys, walking its
// constraint per Relax/Constrain's policies.
type Driver struct {
	sys    tsystem.System
	opts   pdr.Options
	stats  *logstats.Stats
	engine *pdr.Engine
}

// New builds a Driver over sys. stats may be nil.
func New(sys tsystem.System, opts pdr.Options, stats *logstats.Stats) *Driver {
	return &Driver{sys: sys, opts: opts, stats: stats, engine: pdr.New(sys, opts, stats)}
}

// Engine exposes the current underlying PDR engine, e.g. for a caller that
// wants to inspect the live frame sequence between runs.
func (d *Driver) Engine() *pdr.Engine { return d.engine }

// Relax walks the constraint upward from start (spec §4.8's relax(start)):
// on every invariant result, increase the constraint by one, apply policy,
// and rerun. Stops at the first trace (the optimum is the previous value)
// or after the run at max if none of the runs found one (the system is
// safe throughout the whole range). policy must be RelaxReset or BasicReset.
func (d *Driver) Relax(start, max int, policy ResetPolicy) Report {
	var runs []Run
	value := start
	for {
		d.sys.Constrain(value)
		if len(runs) > 0 {
			d.applyResetPolicy(policy)
		}

		res, err := d.engine.Run()
		if err != nil {
			break
		}
		runs = append(runs, Run{ConstraintValue: value, Result: res})

		if res.HasTrace() {
			break
		}
		if value >= max {
			break
		}
		value++
	}
	return finalize(runs)
}

// Constrain walks the constraint downward from start (spec §4.8's
// constrain(start)): on every trace result, decrease the constraint by
// one and rerun. Stops at the first invariant (the tightest safe bound
// found) or after the run at min if none of the runs found one. policy
// is almost always ConstrainReset, reusing every frame across the walk;
// if the reused frame sequence already proves the new constraint
// inductive, Engine.Run's propagate step reports that invariant on its
// very first main-loop iteration without rediscovering anything.
func (d *Driver) Constrain(start, min int, policy ResetPolicy) Report {
	var runs []Run
	value := start
	for {
		d.sys.Constrain(value)
		if len(runs) > 0 {
			d.applyResetPolicy(policy)
		}

		res, err := d.engine.Run()
		if err != nil {
			break
		}
		runs = append(runs, Run{ConstraintValue: value, Result: res})

		if res.HasInvariant() {
			break
		}
		if value <= min {
			break
		}
		value--
	}
	return finalize(runs)
}

func (d *Driver) applyResetPolicy(policy ResetPolicy) {
	switch policy {
	case BasicReset:
		d.engine = pdr.New(d.sys, d.opts, d.stats)
	case RelaxReset:
		d.engine.Sequence().ResetToBaseline()
		d.engine.Sequence().Reconstrain()
	case ConstrainReset:
		d.engine.Sequence().Reconstrain()
	}
}

func finalize(runs []Run) Report {
	rep := Report{Runs: runs}
	for _, r := range runs {
		rep.TotalTime += r.Result.Duration
		switch {
		case r.Result.HasInvariant() && (!rep.HasInvariant || r.ConstraintValue > rep.BestInvariantValue):
			rep.HasInvariant = true
			rep.BestInvariantValue = r.ConstraintValue
			rep.BestInvariantLevel = r.Result.Level
		case r.Result.HasTrace() && (!rep.HasTrace || r.ConstraintValue < rep.MinimalTraceValue):
			rep.HasTrace = true
			rep.MinimalTraceValue = r.ConstraintValue
		}
	}
	return rep
}
