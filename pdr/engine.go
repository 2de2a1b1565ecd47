package pdr

import (
	"time"

	"github.com/katalvlaran/ipdr/frame"
	"github.com/katalvlaran/ipdr/generalize"
	"github.com/katalvlaran/ipdr/internal/assert"
	"github.com/katalvlaran/ipdr/literal"
	"github.com/katalvlaran/ipdr/logstats"
	"github.com/katalvlaran/ipdr/obligation"
	"github.com/katalvlaran/ipdr/result"
	"github.com/katalvlaran/ipdr/solver"
	"github.com/katalvlaran/ipdr/tsystem"
)

// Options configures one Engine.
type Options struct {
	// Delta selects the delta (shared-solver) frame encoding over fat
	// (per-frame solver).
	Delta bool
	// Seed is forwarded to every solver.Solver this engine creates.
	Seed int64
	// VarCapacityHint is forwarded to solver.Options.
	VarCapacityHint int
	// MICRetries bounds the failed inductive_rel_to checks inside each
	// down() call MIC makes (spec §4.6's mic-retries; default
	// generalize.DefaultMICRetries).
	MICRetries int
}

// DefaultOptions returns the delta encoding with the default mic-retries
// budget and a fixed seed, matching spec §5's "deterministic under a fixed
// seed" requirement.
func DefaultOptions() Options {
	return Options{Delta: true, Seed: 1, MICRetries: generalize.DefaultMICRetries}
}

// Engine is one PDR run over a single transition system (spec §4.7). It
// owns a frame.Sequence and, through it, every SAT solver instance the run
// needs; no other component holds a solver. An Engine is not safe for
// concurrent use: it has no internal locking.
type Engine struct {
	sys   tsystem.System
	seq   *frame.Sequence
	opts  Options
	stats *logstats.Stats
}

// New builds an Engine over sys. stats may be nil.
func New(sys tsystem.System, opts Options, stats *logstats.Stats) *Engine {
	so := solver.Options{Seed: opts.Seed, VarCapacityHint: opts.VarCapacityHint}
	return &Engine{sys: sys, seq: frame.NewSequence(sys, opts.Delta, so), opts: opts, stats: stats}
}

// Sequence exposes the underlying frame sequence, so an IPDR driver can
// read it back across runs for a relax/constrain frame-reuse policy.
func (e *Engine) Sequence() *frame.Sequence { return e.seq }

// Init runs the init() check (spec §4.7). If some initial state already
// violates the property, or one transition step from I reaches a
// violation, it returns the corresponding trace and done=true. Otherwise
// it returns done=false so Run can start the main loop, creating F1 only
// if this Engine's Sequence has no frames yet — ipdr re-runs Init on every
// constraint change (DESIGN.md decision 4) including when reusing an
// already-extended frame sequence, so a bare Frontier()==0 check keeps
// that reuse from being clobbered by a redundant Extend.
func (e *Engine) Init() (res result.Result, done bool, err error) {
	start := time.Now()

	holds, err := e.seq.InitImplies(e.sys.NegProperty())
	e.countQuery(err == nil && holds)
	if err != nil {
		return result.Result{}, false, err
	}
	if !holds {
		// I itself is a single, fully-determined state (spec §3's state
		// model pins every variable in the initial marking for both
		// transition systems), so it doubles as its own violating witness.
		root := &obligation.Obligation{Level: 0, State: e.sys.Init()}
		return result.NewTrace(root, e.sys.ConstraintNum(), time.Since(start)), true, nil
	}

	sat, s0, s1, err := e.seq.InitTransitionViolation(e.sys.NegPropertyNext())
	e.countQuery(err == nil && !sat)
	if err != nil {
		return result.Result{}, false, err
	}
	if sat {
		// cti is the violating state, so it plays the role of block()'s
		// root (Pred nil); bad is the level-0 predecessor one step back
		// toward I, and is what NewTrace walks from.
		cti := &obligation.Obligation{Level: 1, State: s1}
		bad := &obligation.Obligation{Level: 0, State: s0, Pred: cti}
		return result.NewTrace(bad, e.sys.ConstraintNum(), time.Since(start)), true, nil
	}

	if e.seq.Frontier() == 0 {
		e.seq.Extend() // F1
	}
	return result.Result{}, false, nil
}

// Run executes Init followed by the main loop (spec §4.7) until it finds
// an inductive invariant or a counter-example trace.
func (e *Engine) Run() (result.Result, error) {
	start := time.Now()
	if res, done, err := e.Init(); err != nil || done {
		return res, err
	}

	for {
		k := e.seq.Frontier()
		for {
			sat, cti, err := e.seq.ViolatesAt(k, e.sys.NegPropertyNext())
			e.countQuery(!sat)
			if err != nil {
				return result.Result{}, err
			}
			if !sat {
				break
			}
			bad, err := e.block(&obligation.Obligation{Level: k, State: cti})
			if err != nil {
				return result.Result{}, err
			}
			if bad != nil {
				return result.NewTrace(bad, e.sys.ConstraintNum(), time.Since(start)), nil
			}
		}

		e.seq.Extend()
		invariant, level, err := e.seq.Propagate(k)
		if err != nil {
			return result.Result{}, err
		}
		if invariant {
			return result.NewInvariant(level, e.sys.ConstraintNum(), time.Since(start)), nil
		}
	}
}

// block runs the backward search of spec §4.7's block(): discharges
// obligations from a min-priority queue seeded with root until either a
// predecessor of an initial state is found (returns the terminal
// obligation, non-nil) or the queue empties (returns nil, the CTI is
// blocked).
func (e *Engine) block(root *obligation.Obligation) (*obligation.Obligation, error) {
	q := obligation.NewQueue()
	q.Push(root)

	for q.Len() > 0 {
		ob := q.Pop()

		if ob.Level == 0 {
			return ob, nil
		}

		// F_{n-1} ∧ T ∧ ¬s ∧ s' (spec §4.7): the ¬s conjunct is what
		// InductiveRelToWitness's gated clause adds over a bare
		// TransitionFromTo, ruling out the degenerate witness "s is its
		// own predecessor" (zero toggles, trivially consistent with T).
		// F0 is I itself, represented structurally rather than by a
		// solver this Sequence owns, so n==0 (an obligation at level 1)
		// routes to the dedicated I-based query instead, which also
		// hands back the unsat core directly since there is no
		// persistent frame-0 solver to ask again afterward.
		n := ob.Level - 1
		var inductive bool
		var pred, core literal.Cube
		var err error
		if n == 0 {
			inductive, pred, core, err = e.seq.InitInductiveRelWitness(ob.State)
		} else {
			inductive, pred, err = e.seq.InductiveRelToWitness(ob.State, n)
		}
		e.countQuery(inductive)
		if err != nil {
			return nil, err
		}
		if !inductive {
			q.Push(&obligation.Obligation{Level: n, State: pred, Depth: ob.Depth + 1, Pred: ob})
			continue
		}

		if n > 0 {
			core, err = e.seq.UnsatCoreFor(n)
			if err != nil {
				return nil, err
			}
		}
		assert.Invariant(core.Len() > 0, "pdr: block: empty unsat core for an inductive cube at level %d", n)

		j := e.highestInductiveLevel(core, n)
		mic, err := generalize.MIC(e.seq, core, j, e.opts.MICRetries)
		if err != nil {
			return nil, err
		}
		e.stats.IncMICAttempt(mic.HitLimit)

		e.seq.Block(mic.Cube, j+1)
		e.stats.IncPropagationPush()

		if j+1 <= e.seq.Frontier() {
			q.Push(&obligation.Obligation{Level: j + 1, State: ob.State, Depth: ob.Depth, Pred: ob.Pred})
		}
	}
	return nil, nil
}

// highestInductiveLevel finds the highest j <= upTo such that ¬core is
// still inductive relative to F_j, checking upward from 1 (spec §4.7's
// "binary-check upward" — implemented as a linear scan, since the frontier
// depths PDR runs at in practice are small enough that the asymptotic
// difference never matters, and a linear scan needs no extra machinery
// beyond InductiveRelTo itself). 0 means not even F1 holds it, so the
// caller blocks at level 1 (j+1), the minimum valid placement.
func (e *Engine) highestInductiveLevel(core literal.Cube, upTo int) int {
	best := 0
	for j := 1; j <= upTo; j++ {
		ok, err := e.seq.InductiveRelTo(core, j)
		e.countQuery(!ok)
		if err != nil {
			break
		}
		if ok {
			best = j
		}
	}
	return best
}

func (e *Engine) countQuery(unsat bool) {
	if unsat {
		e.stats.IncUnsatQuery()
		return
	}
	e.stats.IncSATQuery()
}
