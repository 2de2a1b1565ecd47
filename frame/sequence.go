// Package frame — sequence.go: Sequence, the ordered frame list plus
// every solver instance it owns (spec §4.4's public operations: extend,
// block, propagate, inductive_rel_to, transition_from_to, init_implies).
package frame

import (
	"fmt"

	"github.com/katalvlaran/ipdr/literal"
	"github.com/katalvlaran/ipdr/solver"
	"github.com/katalvlaran/ipdr/tsystem"
)

// Sequence is the frame sequence F₀,F₁,…,F_frontier for one PDR run over
// one transition system. Delta mode shares a single solver gated by
// per-level activation literals; fat mode gives every frame its own
// solver. Either way, no Frame value ever holds a solver pointer.
type Sequence struct {
	sys   tsystem.System
	delta bool
	opts  solver.Options

	actReg *literal.Registry // activation literals: per-level gates (delta) and per-query temp gates (both modes)
	acts   []literal.Literal // acts[i] gates frame i's blocked clauses; index 0 unused
	tmpSeq int

	shared     *solver.Solver   // delta mode only
	fatSolvers []*solver.Solver // fat mode only; index 0 unused

	frames []*Frame // frames[0] is the unused placeholder standing in for F0=I
}

// NewSequence creates a Sequence over sys with just F₀ present. delta
// selects the delta (shared-solver) encoding over the fat (per-frame
// solver) encoding.
func NewSequence(sys tsystem.System, delta bool, opts solver.Options) *Sequence {
	sq := &Sequence{
		sys:    sys,
		delta:  delta,
		opts:   opts,
		actReg: literal.NewActivationRegistry(),
		acts:   []literal.Literal{{}}, // index 0 placeholder
		frames: []*Frame{{}},          // F0 placeholder
	}
	if delta {
		sq.shared = solver.New(opts)
		sq.shared.Construct(nil, sys.Transition(), sys.Constraint())
	} else {
		sq.fatSolvers = []*solver.Solver{nil}
	}
	return sq
}

// Frontier returns the index of the last frame (F0 counts as frontier 0).
func (sq *Sequence) Frontier() int { return len(sq.frames) - 1 }

// At returns the Frame at level i (1 ≤ i ≤ Frontier).
func (sq *Sequence) At(i int) *Frame { return sq.frames[i] }

// Extend appends a new empty frame, creating the level's activation literal
// (delta) or a fresh per-frame solver (fat). In delta mode a level that
// ResetToBaseline dropped earlier gets its old act_<level> Var back, since
// the reset already discarded every clause that Var gated.
func (sq *Sequence) Extend() {
	level := len(sq.frames)
	sq.frames = append(sq.frames, &Frame{})
	if sq.delta {
		name := fmt.Sprintf("act_%d", level)
		a, err := sq.actReg.Lookup(name)
		if err != nil {
			a = sq.actReg.MustDeclare(name)
		}
		sq.acts = append(sq.acts, literal.Cur(a))
		return
	}
	sv := solver.New(sq.opts)
	sv.Construct(nil, sq.sys.Transition(), sq.sys.Constraint())
	sq.fatSolvers = append(sq.fatSolvers, sv)
}

// Block inserts cube into F_level and every frame below it (levels 1..
// level), removing strictly-subsumed cubes first. In fat mode the clause
// ¬cube is added to every affected frame's solver; in delta mode it is
// added once to the shared solver, gated by level's activation literal.
func (sq *Sequence) Block(cube literal.Cube, level int) {
	addedAtLevel := false
	for j := 1; j <= level && j < len(sq.frames); j++ {
		added := sq.frames[j].insert(cube)
		if j == level {
			addedAtLevel = addedAtLevel || added
		}
		if !sq.delta && added {
			sq.fatSolvers[j].Block(cube, nil)
		}
	}
	if sq.delta && addedAtLevel {
		act := sq.acts[level]
		sq.shared.Block(cube, &act)
	}
}

// frameAssumptions returns the assumption literals needed to scope a query
// to frame i: nil in fat mode (the frame's own solver already carries
// exactly F_i), or {act_i, act_{i+1}, ..., act_frontier} in delta mode.
func (sq *Sequence) frameAssumptions(i int) []literal.Literal {
	if !sq.delta {
		return nil
	}
	out := make([]literal.Literal, 0, len(sq.frames)-i)
	for j := i; j < len(sq.frames); j++ {
		out = append(out, sq.acts[j])
	}
	return out
}

func (sq *Sequence) solverFor(i int) *solver.Solver {
	if sq.delta {
		return sq.shared
	}
	return sq.fatSolvers[i]
}

func (sq *Sequence) nextTmpName() string {
	sq.tmpSeq++
	return fmt.Sprintf("__tmp_%d", sq.tmpSeq)
}

// InductiveRelTo reports whether ¬cube is inductive relative to frame i:
// sat-checks `¬cube ∧ F_i ∧ T ∧ cube'`; unsat means inductive. The ¬cube
// clause is asserted gated by a fresh, single-use activation literal so it
// never contaminates later queries against the same frame.
func (sq *Sequence) InductiveRelTo(cube literal.Cube, i int) (bool, error) {
	ok, _, err := sq.InductiveRelToWitness(cube, i)
	return ok, err
}

// InductiveRelToWitness is InductiveRelTo, additionally returning the
// current-state witness generalize.down needs to shrink its candidate when
// the query comes back sat (i.e. not inductive). i==0 means relative to
// F0=I, which this Sequence represents structurally rather than by an
// owned solver (solverFor has no entry for index 0), so that case routes
// to InitInductiveRelWitness instead, discarding its unsat core — down()
// never needs one.
func (sq *Sequence) InductiveRelToWitness(cube literal.Cube, i int) (ok bool, witness literal.Cube, err error) {
	if i == 0 {
		ok, witness, _, err = sq.InitInductiveRelWitness(cube)
		return ok, witness, err
	}
	tmp := sq.actReg.MustDeclare(sq.nextTmpName())
	tmpLit := literal.Cur(tmp)
	sq.solverFor(i).Block(cube, &tmpLit)

	assumptions := append(sq.frameAssumptions(i), tmpLit)
	assumptions = append(assumptions, cube.Primed().Literals()...)

	outcome, err := sq.solverFor(i).Check(assumptions)
	if err != nil {
		return false, literal.Cube{}, err
	}
	if outcome == solver.Unsat {
		return true, literal.Cube{}, nil
	}
	w, werr := sq.solverFor(i).Witness()
	if werr != nil {
		return false, literal.Cube{}, werr
	}
	return false, w, nil
}

// TransitionFromTo sat-checks `F_i ∧ T ∧ cube'`. On sat it also returns the
// current-state witness (a predecessor of a cube-consistent next state).
func (sq *Sequence) TransitionFromTo(i int, cube literal.Cube) (sat bool, witness literal.Cube, err error) {
	assumptions := append(sq.frameAssumptions(i), cube.Primed().Literals()...)
	outcome, err := sq.solverFor(i).Check(assumptions)
	if err != nil {
		return false, literal.Cube{}, err
	}
	if outcome != solver.Sat {
		return false, literal.Cube{}, nil
	}
	w, werr := sq.solverFor(i).Witness()
	if werr != nil {
		return false, literal.Cube{}, werr
	}
	return true, w, nil
}

// ViolatesAt sat-checks `F_i ∧ T ∧ negPropertyNext`, where negPropertyNext
// is an arbitrary CNF clause set (not necessarily one cube's unit clauses —
// Peterson's negated mutual-exclusion property is a genuine disjunction).
// The clauses are asserted gated by a fresh single-use activation literal,
// so they never persist beyond this call. On sat, also returns the
// current-state witness (the CTI the main loop blocks).
func (sq *Sequence) ViolatesAt(i int, negPropertyNext []literal.Clause) (sat bool, witness literal.Cube, err error) {
	tmp := sq.actReg.MustDeclare(sq.nextTmpName())
	tmpLit := literal.Cur(tmp)
	sq.solverFor(i).AssertGated(negPropertyNext, &tmpLit)

	assumptions := append(sq.frameAssumptions(i), tmpLit)
	outcome, err := sq.solverFor(i).Check(assumptions)
	if err != nil {
		return false, literal.Cube{}, err
	}
	if outcome != solver.Sat {
		return false, literal.Cube{}, nil
	}
	w, werr := sq.solverFor(i).Witness()
	if werr != nil {
		return false, literal.Cube{}, werr
	}
	return true, w, nil
}

// Propagate pushes, for i=1..upTo, every cube of F_i for which
// `F_i ∧ T ∧ c'` is unsat forward into F_{i+1}. It reports whether some
// F_i = F_{i+1} afterward (an inductive invariant was found) and, if so,
// the lowest such level.
func (sq *Sequence) Propagate(upTo int) (foundInvariant bool, level int, err error) {
	for i := 1; i <= upTo; i++ {
		for _, c := range sq.At(i).Cubes() {
			sat, _, terr := sq.TransitionFromTo(i, c)
			if terr != nil {
				return false, 0, terr
			}
			if !sat {
				sq.Block(c, i+1)
			}
		}
	}
	for i := 1; i <= upTo; i++ {
		if equalCubeSets(sq.At(i).cubes, sq.At(i+1).cubes) {
			return true, i, nil
		}
	}
	return false, 0, nil
}

// InitImplies unsat-checks `I ∧ negatedPhi`, where negatedPhi is the CNF
// of ¬φ (e.g. sys.NegProperty()) — not φ itself, since the transition
// systems always keep the pre-negated form around rather than negating a
// CNF formula at runtime. unsat means every initial state satisfies φ.
func (sq *Sequence) InitImplies(negatedPhi []literal.Clause) (bool, error) {
	base := cubeUnitClauses(sq.sys.Init())
	base = append(base, negatedPhi...)
	sv := solver.New(sq.opts)
	sv.Construct(base, nil, nil)
	outcome, err := sv.Check(nil)
	if err != nil {
		return false, err
	}
	return outcome == solver.Unsat, nil
}

// IntersectsInit sat-checks `I ∧ cube`, used by generalize.down to detect
// that a candidate has been weakened into overlapping an initial state.
func (sq *Sequence) IntersectsInit(cube literal.Cube) (bool, error) {
	base := cubeUnitClauses(sq.sys.Init())
	sv := solver.New(sq.opts)
	sv.Construct(base, nil, nil)
	outcome, err := sv.Check(cube.Literals())
	if err != nil {
		return false, err
	}
	return outcome == solver.Sat, nil
}

// InitTransitionViolation sat-checks `I ∧ T ∧ negPropertyNext` (negPropertyNext
// being ¬P re-expressed over next-state variables), used by pdr.Engine.Init
// to look one step past I for a property violation. On sat it also returns
// the current- and next-state witnesses s0 and s1.
func (sq *Sequence) InitTransitionViolation(negPropertyNext []literal.Clause) (sat bool, s0, s1 literal.Cube, err error) {
	base := cubeUnitClauses(sq.sys.Init())
	constraint := append(append([]literal.Clause{}, sq.sys.Constraint()...), negPropertyNext...)
	sv := solver.New(sq.opts)
	sv.Construct(base, sq.sys.Transition(), constraint)
	outcome, cerr := sv.Check(nil)
	if cerr != nil {
		return false, literal.Cube{}, literal.Cube{}, cerr
	}
	if outcome != solver.Sat {
		return false, literal.Cube{}, literal.Cube{}, nil
	}
	s0, err = sv.Witness()
	if err != nil {
		return false, literal.Cube{}, literal.Cube{}, err
	}
	s1, err = sv.NextWitness()
	if err != nil {
		return false, literal.Cube{}, literal.Cube{}, err
	}
	return true, s0, s1, nil
}

// ResetToBaseline discards every frame above F1 and every blocked cube,
// including F1's own, leaving {F0, F1} with F1 empty — ipdr's relax-reset
// policy (spec §4.8). The transition system's variables and T are kept;
// the constraint region is left stale, since the caller is expected to
// have just changed the constraint and must call Reconstrain next to pick
// up the new value.
func (sq *Sequence) ResetToBaseline() {
	sq.frames = sq.frames[:1]
	if sq.delta {
		sq.shared.Reset()
		sq.acts = sq.acts[:1]
	} else {
		sq.fatSolvers = sq.fatSolvers[:1]
	}
	sq.Extend()
}

// Reconstrain re-derives every solver's constraint region from the
// transition system's current Constraint(), re-blocking every frame's
// existing cubes so frame content survives the swap — ipdr's
// constrain-reset policy, and the second half of relax-reset after
// ResetToBaseline. Call this only after sys.Constrain has already been
// called with the new value.
func (sq *Sequence) Reconstrain() {
	constraint := sq.sys.Constraint()
	if sq.delta {
		sq.shared.Reconstrain(constraint, nil)
		for i := 1; i < len(sq.frames); i++ {
			act := sq.acts[i]
			for _, c := range sq.frames[i].Cubes() {
				sq.shared.Block(c, &act)
			}
		}
		return
	}
	for i := 1; i < len(sq.frames); i++ {
		sq.fatSolvers[i].Reconstrain(constraint, sq.frames[i].Cubes())
	}
}

// UnsatCoreFor returns the unsat core of the last Check against frame i's
// solver, restricted to model (non-activation) literals and un-primed —
// block() calls this right after an unsat InductiveRelToWitness to get the
// generalization seed for MIC.
func (sq *Sequence) UnsatCoreFor(i int) (literal.Cube, error) {
	core, err := sq.solverFor(i).UnsatCore()
	if err != nil {
		return literal.Cube{}, err
	}
	return filterModelCore(core), nil
}

// InitInductiveRelWitness is block()'s F_{n-1}=F0 step, reached whenever an
// obligation sits at level 1 (spec §4.7): F0 is I itself, represented
// structurally rather than by a solver this Sequence owns, so it needs its
// own `I ∧ T ∧ ¬s ∧ s'` query instead of routing through
// solverFor/frameAssumptions (which have no entry for level 0).
// Same contract as InductiveRelToWitness: ok=true means inductive (I has
// no predecessor of s other than s itself), and on ok=true it also returns
// the unsat core, since there is no persistent frame-0 solver to ask again.
func (sq *Sequence) InitInductiveRelWitness(s literal.Cube) (ok bool, witness literal.Cube, core literal.Cube, err error) {
	base := cubeUnitClauses(sq.sys.Init())
	constraint := append(append([]literal.Clause{}, sq.sys.Constraint()...), s.Negate())
	sv := solver.New(sq.opts)
	sv.Construct(base, sq.sys.Transition(), constraint)

	outcome, cerr := sv.Check(s.Primed().Literals())
	if cerr != nil {
		return false, literal.Cube{}, literal.Cube{}, cerr
	}
	if outcome == solver.Sat {
		w, werr := sv.Witness()
		if werr != nil {
			return false, literal.Cube{}, literal.Cube{}, werr
		}
		return false, w, literal.Cube{}, nil
	}
	rawCore, cerr := sv.UnsatCore()
	if cerr != nil {
		return false, literal.Cube{}, literal.Cube{}, cerr
	}
	return true, literal.Cube{}, filterModelCore(rawCore), nil
}

func filterModelCore(core literal.Cube) literal.Cube {
	out := make([]literal.Literal, 0, core.Len())
	for _, l := range core.Literals() {
		if l.Var().IsActivation() {
			continue
		}
		out = append(out, l.Unprime())
	}
	return literal.NewCube(out...)
}

func cubeUnitClauses(c literal.Cube) []literal.Clause {
	lits := c.Literals()
	out := make([]literal.Clause, len(lits))
	for i, l := range lits {
		out[i] = literal.NewClause(l)
	}
	return out
}
