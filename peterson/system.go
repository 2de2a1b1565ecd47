package peterson

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ipdr/literal"
	"github.com/katalvlaran/ipdr/tsystem"
)

// Sentinel errors for the peterson package.
var (
	// ErrInvalidProcessCount indicates NewSystem was asked for fewer than
	// one process.
	ErrInvalidProcessCount = errors.New("peterson: process count must be >= 1")

	// ErrInvalidConstraint indicates Constrain was called with a value
	// outside [0, N_max].
	ErrInvalidConstraint = errors.New("peterson: active process count out of range")
)

const (
	pcIdle       = 0
	pcBoundcheck = 1
	pcSetlast    = 2
	pcAwait      = 3
	pcRelease    = 4
)

// System is the N-process Peterson mutual-exclusion transition system
// (spec §4.3.2). N_max processes' variables are declared once; Constrain
// changes only which processes are active.
type System struct {
	reg  *literal.Registry
	nMax int
	p    int

	pc    []literal.BitVector // width 3, per process
	level []literal.BitVector // width bitsFor(nMax-1), per process
	free  []literal.Var       // per process
	last  []literal.BitVector // width bitsFor(nMax-1), len nMax-1

	// skipSetLast, when true, builds buildPhaseSetlast without its last_v
	// write: pc_i still advances 2->3, but the process never announces
	// itself as the last entrant. NewSystem always leaves this false;
	// NewSystemOmittingSetLast sets it to model spec scenario 4's
	// deliberately broken protocol variant. When set, last is also widened
	// by one value and pinned at Init to lastSentinel (out of range of any
	// real process id), so "last[v]==i" can never hold for any i and the
	// await phase's block check is permanently, silently vacuous.
	skipSetLast  bool
	lastSentinel int

	transition []literal.Clause // built once; independent of p
}

// NewSystem declares an nMax-process Peterson model and builds its fixed
// transition relation. All processes start active (ConstraintNum() ==
// nMax); call Constrain to shrink the active set.
func NewSystem(nMax int) (*System, error) {
	return newSystem(nMax, false)
}

// NewSystemOmittingSetLast builds the same nMax-process model as NewSystem,
// except every process's entry into the await phase skips writing
// last[level_i] <- i. Without that write, a later process can never be
// detected as the genuine last entrant at a given level, so the await
// phase's "am I blocked" check can go stale and let two processes both
// reach the critical section — the known-unsafe variant spec scenario 4
// exercises against the engine.
func NewSystemOmittingSetLast(nMax int) (*System, error) {
	return newSystem(nMax, true)
}

func newSystem(nMax int, skipSetLast bool) (*System, error) {
	if nMax < 1 {
		return nil, ErrInvalidProcessCount
	}

	reg := literal.NewRegistry()
	lvlW := bitsFor(nMax - 1)

	s := &System{reg: reg, nMax: nMax, p: nMax, skipSetLast: skipSetLast, lastSentinel: nMax}
	s.pc = make([]literal.BitVector, nMax)
	s.level = make([]literal.BitVector, nMax)
	s.free = make([]literal.Var, nMax)
	for i := 0; i < nMax; i++ {
		s.pc[i] = literal.NewBitVector(reg, fmt.Sprintf("pc_%d", i), 3)
		s.level[i] = literal.NewBitVector(reg, fmt.Sprintf("level_%d", i), lvlW)
		s.free[i] = reg.MustDeclare(fmt.Sprintf("free_%d", i))
	}
	// lastW matches lvlW in the ordinary model, where last only ever holds
	// a real process id. The broken variant widens it by one value so its
	// Init sentinel (nMax, never written by any process) fits alongside
	// every real id 0..nMax-1.
	lastW := lvlW
	if skipSetLast {
		lastW = bitsFor(nMax)
	}
	s.last = make([]literal.BitVector, nMax-1)
	for j := 0; j < nMax-1; j++ {
		s.last[j] = literal.NewBitVector(reg, fmt.Sprintf("last_%d", j), lastW)
	}

	for i := 0; i < nMax; i++ {
		s.transition = append(s.transition, s.buildProcess(i)...)
	}
	return s, nil
}

// Name implements tsystem.System.
func (s *System) Name() string { return "peterson" }

// NMax returns the number of process slots the model declared.
func (s *System) NMax() int { return s.nMax }

// CurrentVars implements tsystem.System.
func (s *System) CurrentVars() []literal.Var {
	var out []literal.Var
	for i := 0; i < s.nMax; i++ {
		for b := 0; b < s.pc[i].Width(); b++ {
			out = append(out, s.pc[i].Bit(b))
		}
		for b := 0; b < s.level[i].Width(); b++ {
			out = append(out, s.level[i].Bit(b))
		}
		out = append(out, s.free[i])
	}
	for j := range s.last {
		for b := 0; b < s.last[j].Width(); b++ {
			out = append(out, s.last[j].Bit(b))
		}
	}
	return out
}

// Init implements tsystem.System: every process idle and free at level 0.
// Every last register starts at 0 in the ordinary model; the broken
// skipSetLast variant instead pins every last register at lastSentinel,
// a value no process ever writes, so it never coincides with a real
// process id.
func (s *System) Init() literal.Cube {
	lastInit := 0
	if s.skipSetLast {
		lastInit = s.lastSentinel
	}
	cubes := make([]literal.Cube, 0, 3*s.nMax+len(s.last))
	for i := 0; i < s.nMax; i++ {
		cubes = append(cubes, s.pc[i].ForceValue(pcIdle, false))
		cubes = append(cubes, s.level[i].ForceValue(0, false))
		cubes = append(cubes, literal.NewCube(literal.Cur(s.free[i])))
	}
	for j := range s.last {
		cubes = append(cubes, s.last[j].ForceValue(lastInit, false))
	}
	return combineCubes(cubes...)
}

// Transition implements tsystem.System.
func (s *System) Transition() []literal.Clause {
	out := make([]literal.Clause, len(s.transition))
	copy(out, s.transition)
	return out
}

// otherProcessesFrame frames every process k != i's pc, level and free
// state as unchanged under ante.
func (s *System) otherProcessesFrame(i int, ante []literal.Literal) []literal.Clause {
	var out []literal.Clause
	for k := 0; k < s.nMax; k++ {
		if k == i {
			continue
		}
		out = append(out, frameBitVector(ante, s.pc[k])...)
		out = append(out, frameBitVector(ante, s.level[k])...)
		out = append(out, frameBits(ante, []literal.Var{s.free[k]})...)
	}
	return out
}

// lastFrame frames every last register except exceptJ (pass -1 to frame
// all of them) as unchanged under ante.
func (s *System) lastFrame(ante []literal.Literal, exceptJ int) []literal.Clause {
	var out []literal.Clause
	for j := range s.last {
		if j == exceptJ {
			continue
		}
		out = append(out, frameBitVector(ante, s.last[j])...)
	}
	return out
}

// buildProcess returns every transition clause that can fire because of
// process i's own state (spec §4.3.2's five phases), with every other
// component of the global state explicitly framed unchanged.
func (s *System) buildProcess(i int) []literal.Clause {
	var out []literal.Clause
	out = append(out, s.buildPhaseStart(i)...)
	out = append(out, s.buildPhaseBoundcheck(i)...)
	out = append(out, s.buildPhaseSetlast(i)...)
	out = append(out, s.buildPhaseAwait(i)...)
	out = append(out, s.buildPhaseRelease(i)...)
	return out
}

// buildPhaseStart: pc_i=0 ∧ free_i ⇒ pc_i'=1 ∧ ¬free_i' ∧ level_i'=0.
// pc_i=0 ∧ ¬free_i is a dead state (never entered by this model) but is
// still closed off with an explicit stutter, so an unconstrained successor
// can never be mistaken for a reachable counter-example.
func (s *System) buildPhaseStart(i int) []literal.Clause {
	var out []literal.Clause

	idle := s.pc[i].ForceValue(pcIdle, false).Literals()
	freeLit := literal.Cur(s.free[i])

	anteMove := append(append([]literal.Literal{}, idle...), freeLit)
	conseq := combineCubes(
		s.pc[i].ForceValue(pcBoundcheck, true),
		literal.NewCube(literal.Not(literal.Next(s.free[i]))),
		s.level[i].ForceValue(0, true),
	)
	out = append(out, impliesCube(anteMove, conseq)...)
	out = append(out, s.otherProcessesFrame(i, anteMove)...)
	out = append(out, s.lastFrame(anteMove, -1)...)

	anteStutter := append(append([]literal.Literal{}, idle...), literal.Not(freeLit))
	out = append(out, frameBitVector(anteStutter, s.pc[i])...)
	out = append(out, frameBitVector(anteStutter, s.level[i])...)
	out = append(out, frameBits(anteStutter, []literal.Var{s.free[i]})...)
	out = append(out, s.otherProcessesFrame(i, anteStutter)...)
	out = append(out, s.lastFrame(anteStutter, -1)...)

	return out
}

// buildPhaseBoundcheck: pc_i=1, enumerated over level_i's reachable values
// 0..N_max-1 ⇒ pc_i'=2 if level_i<N_max-1, else pc_i'=4; level_i and
// free_i are unaffected.
func (s *System) buildPhaseBoundcheck(i int) []literal.Clause {
	var out []literal.Clause
	base := s.pc[i].ForceValue(pcBoundcheck, false).Literals()

	for v := 0; v < s.nMax; v++ {
		ante := append(append([]literal.Literal{}, base...), s.level[i].ForceValue(v, false).Literals()...)

		next := pcSetlast
		if v == s.nMax-1 {
			next = pcRelease
		}
		out = append(out, impliesCube(ante, s.pc[i].ForceValue(next, true))...)
		out = append(out, frameBitVector(ante, s.level[i])...)
		out = append(out, frameBits(ante, []literal.Var{s.free[i]})...)
		out = append(out, s.otherProcessesFrame(i, ante)...)
		out = append(out, s.lastFrame(ante, -1)...)
	}
	return out
}

// buildPhaseSetlast: pc_i=2, enumerated over level_i's reachable values
// 0..N_max-2 (the only values boundcheck routes here from) ⇒ pc_i'=3,
// last_v ← i; level_i and free_i unaffected. When s.skipSetLast is set,
// the last_v <- i conjunct is dropped and last_v is framed unchanged
// instead, modeling the protocol with that step omitted.
func (s *System) buildPhaseSetlast(i int) []literal.Clause {
	var out []literal.Clause
	base := s.pc[i].ForceValue(pcSetlast, false).Literals()

	for v := 0; v <= s.nMax-2; v++ {
		ante := append(append([]literal.Literal{}, base...), s.level[i].ForceValue(v, false).Literals()...)

		if s.skipSetLast {
			out = append(out, impliesCube(ante, s.pc[i].ForceValue(pcAwait, true))...)
			out = append(out, frameBitVector(ante, s.level[i])...)
			out = append(out, frameBits(ante, []literal.Var{s.free[i]})...)
			out = append(out, s.otherProcessesFrame(i, ante)...)
			out = append(out, s.lastFrame(ante, -1)...)
			continue
		}

		conseq := combineCubes(
			s.pc[i].ForceValue(pcAwait, true),
			s.last[v].ForceValue(i, true),
		)
		out = append(out, impliesCube(ante, conseq)...)
		out = append(out, frameBitVector(ante, s.level[i])...)
		out = append(out, frameBits(ante, []literal.Var{s.free[i]})...)
		out = append(out, s.otherProcessesFrame(i, ante)...)
		out = append(out, s.lastFrame(ante, v)...)
	}
	return out
}

// buildPhaseAwait: pc_i=3, enumerated over level_i's reachable values
// 0..N_max-2. Stays at pc_i=3 while last[level_i]=i and some other process
// k has level_k >= level_i; otherwise advances to pc_i'=1, level_i'++.
// Per §9's called-out bug fix, every unmentioned component (including the
// other processes' own level) is explicitly framed in both branches.
func (s *System) buildPhaseAwait(i int) []literal.Clause {
	var out []literal.Clause
	base := s.pc[i].ForceValue(pcAwait, false).Literals()

	for v := 0; v <= s.nMax-2; v++ {
		ante := append(append([]literal.Literal{}, base...), s.level[i].ForceValue(v, false).Literals()...)

		var blockedDisjuncts []literal.Literal
		for k := 0; k < s.nMax; k++ {
			if k == i {
				continue
			}
			for w := v; w < s.nMax; w++ {
				name := fmtName("__pet_ge", i, v, k, w)
				lit, clauses := andIffLit(s.reg, name, s.level[k].ForceValue(w, false).Literals(), false)
				out = append(out, clauses...)
				blockedDisjuncts = append(blockedDisjuncts, lit)
			}
		}
		lastIsMe := s.last[v].ForceValue(i, false).Literals()
		existsGE, clauses := orIffLit(s.reg, fmtName("__pet_existsge", i, v), blockedDisjuncts)
		out = append(out, clauses...)
		blocked, clauses := andIffLit(s.reg, fmtName("__pet_blocked", i, v), append(append([]literal.Literal{}, lastIsMe...), existsGE), false)
		out = append(out, clauses...)

		anteStay := append(append([]literal.Literal{}, ante...), blocked)
		out = append(out, frameBitVector(anteStay, s.pc[i])...)
		out = append(out, frameBitVector(anteStay, s.level[i])...)
		out = append(out, frameBits(anteStay, []literal.Var{s.free[i]})...)
		out = append(out, s.otherProcessesFrame(i, anteStay)...)
		out = append(out, s.lastFrame(anteStay, -1)...)

		anteGo := append(append([]literal.Literal{}, ante...), literal.Not(blocked))
		conseq := combineCubes(
			s.pc[i].ForceValue(pcBoundcheck, true),
			s.level[i].ForceValue(v+1, true),
		)
		out = append(out, impliesCube(anteGo, conseq)...)
		out = append(out, frameBits(anteGo, []literal.Var{s.free[i]})...)
		out = append(out, s.otherProcessesFrame(i, anteGo)...)
		out = append(out, s.lastFrame(anteGo, -1)...)
	}
	return out
}

// buildPhaseRelease: pc_i=4 ⇒ pc_i'=0, free_i'=true, level_i'=0.
func (s *System) buildPhaseRelease(i int) []literal.Clause {
	ante := s.pc[i].ForceValue(pcRelease, false).Literals()
	conseq := combineCubes(
		s.pc[i].ForceValue(pcIdle, true),
		literal.NewCube(literal.Next(s.free[i])),
		s.level[i].ForceValue(0, true),
	)
	var out []literal.Clause
	out = append(out, impliesCube(ante, conseq)...)
	out = append(out, s.otherProcessesFrame(i, ante)...)
	out = append(out, s.lastFrame(ante, -1)...)
	return out
}

// atCSIndicator builds (and returns the clauses for) a fresh literal iff
// process i is at pc=4 (in the critical section), in the given tense.
func (s *System) atCSIndicator(i int, primed bool) (literal.Literal, []literal.Clause) {
	tense := "cur"
	if primed {
		tense = "next"
	}
	return andIffLit(s.reg, fmtName("__pet_atcs", tense, i), s.pc[i].ForceValue(pcRelease, primed).Literals(), primed)
}

func (s *System) mutexClauses(primed bool) []literal.Clause {
	var out []literal.Clause
	lits := make([]literal.Literal, s.nMax)
	for i := 0; i < s.nMax; i++ {
		lit, clauses := s.atCSIndicator(i, primed)
		out = append(out, clauses...)
		lits[i] = lit
	}
	out = append(out, atMostOnePairwise(lits)...)
	return out
}

// Property implements tsystem.System: at most one process at pc=4.
func (s *System) Property() []literal.Clause { return s.mutexClauses(false) }

// NegProperty implements tsystem.System: some pair of processes both at
// pc=4 simultaneously — the existential disjunction over all pairs,
// expressed by reusing the same indicator literals as Property.
func (s *System) NegProperty() []literal.Clause { return s.negMutexClauses(false) }

// PropertyNext implements tsystem.System.
func (s *System) PropertyNext() []literal.Clause { return s.mutexClauses(true) }

// NegPropertyNext implements tsystem.System.
func (s *System) NegPropertyNext() []literal.Clause { return s.negMutexClauses(true) }

func (s *System) negMutexClauses(primed bool) []literal.Clause {
	var out []literal.Clause
	var disjuncts []literal.Literal
	for i := 0; i < s.nMax; i++ {
		for j := i + 1; j < s.nMax; j++ {
			li, c1 := s.atCSIndicator(i, primed)
			lj, c2 := s.atCSIndicator(j, primed)
			out = append(out, c1...)
			out = append(out, c2...)
			both, c3 := andIffLit(s.reg, fmtName("__pet_both", primed, i, j), []literal.Literal{li, lj}, primed)
			out = append(out, c3...)
			disjuncts = append(disjuncts, both)
		}
	}
	if len(disjuncts) == 0 {
		// A single process can never violate mutual exclusion; ¬P is
		// unsatisfiable, represented as one empty (always-false) clause.
		return append(out, literal.NewClause())
	}
	out = append(out, literal.NewClause(disjuncts...))
	return out
}

// Constrain implements tsystem.System: freezes processes with index ≥
// value idle (pc=0, ¬free, level=0, both tenses), without touching the
// variable set. value must be in [0, N_max].
func (s *System) Constrain(value int) tsystem.ConstraintDiff {
	if value < 0 || value > s.nMax {
		panic(ErrInvalidConstraint)
	}
	old := s.p
	s.p = value
	switch {
	case value == old:
		return tsystem.DiffNone
	case value < old:
		return tsystem.DiffTightened
	default:
		return tsystem.DiffLoosened
	}
}

// ConstraintNum implements tsystem.System.
func (s *System) ConstraintNum() int { return s.p }

// Constraint implements tsystem.System: every process at index ≥ p is
// frozen idle in both tenses.
func (s *System) Constraint() []literal.Clause {
	var out []literal.Clause
	for i := s.p; i < s.nMax; i++ {
		for _, primed := range []bool{false, true} {
			out = append(out, clausesFromCube(s.pc[i].ForceValue(pcIdle, primed))...)
			out = append(out, clausesFromCube(s.level[i].ForceValue(0, primed))...)
			freeLit := literal.Cur(s.free[i])
			if primed {
				freeLit = literal.Next(s.free[i])
			}
			out = append(out, literal.NewClause(literal.Not(freeLit)))
		}
	}
	return out
}

func clausesFromCube(c literal.Cube) []literal.Clause {
	lits := c.Literals()
	out := make([]literal.Clause, len(lits))
	for i, l := range lits {
		out[i] = literal.NewClause(l)
	}
	return out
}

// PCVar returns process i's program-counter bit vector.
func (s *System) PCVar(i int) literal.BitVector { return s.pc[i] }

// LevelVar returns process i's level bit vector.
func (s *System) LevelVar(i int) literal.BitVector { return s.level[i] }

// FreeVar returns process i's free Var.
func (s *System) FreeVar(i int) literal.Var { return s.free[i] }
