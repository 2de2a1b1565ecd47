package solver

import (
	"sort"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/ipdr/literal"
)

// region tags which part of the clause log a stored clause belongs to, for
// Reset/Reconstrain's selective replay.
type region int

const (
	regionBase region = iota
	regionConstraint
	regionBlocked
)

// logEntry is one asserted clause together with an optional activation
// literal (delta encoding, §4.4): the clause is really `clause ∨ ¬act`.
type logEntry struct {
	region region
	clause literal.Clause
	act    *literal.Literal
}

// Solver is the stateful SAT wrapper described in spec §4.2. It owns
// exactly one *gini.Gini at a time and is never shared between concurrent
// callers (§5: single-threaded cooperative, no internal locking).
type Solver struct {
	opts Options

	g     *gini.Gini
	varOf map[varKey]z.Var
	// identOf recovers the full literal.Var (with its name and
	// IsActivation tag) from a bare id, so Witness can reconstruct
	// Literals without needing the caller's Registry.
	identOf map[int]literal.Var

	log []logEntry

	constructed bool

	lastOutcome Outcome
	lastCore    []literal.Literal
}

// varKey identifies one gini variable: a (literal.Var id, primed) pair. Var
// ids are globally unique across every Registry (see literal.Registry), so
// this key can never collide between a transition system's model variables
// and a frame sequence's activation literals.
type varKey struct {
	id     int
	primed bool
}

// New returns a Solver ready for Construct. It allocates no gini instance
// until Construct is called, matching the lifecycle in the design notes
// ("variables and transition-system formulas are created once per model").
func New(opts Options) *Solver {
	return &Solver{opts: opts, varOf: make(map[varKey]z.Var), identOf: make(map[int]literal.Var)}
}

// Construct asserts base, transition, and constraint (in that order) into
// a fresh underlying solver, and records the two backtracking checkpoints
// spec §4.2 requires: before-constraint (end of base+transition) and
// before-blocked-clauses (end of constraint). It may be called again later
// only via Reconstrain; calling it twice directly is a programming error.
func (s *Solver) Construct(base, transition, constraint []literal.Clause) {
	s.log = s.log[:0]
	for _, c := range base {
		s.log = append(s.log, logEntry{region: regionBase, clause: c})
	}
	for _, c := range transition {
		s.log = append(s.log, logEntry{region: regionBase, clause: c})
	}
	for _, c := range constraint {
		s.log = append(s.log, logEntry{region: regionConstraint, clause: c})
	}
	s.rebuild()
	s.constructed = true
}

// rebuild discards the current gini instance (if any) and replays every
// logged clause into a fresh one, in log order — the stand-in for native
// backtracking checkpoints described in DESIGN.md.
func (s *Solver) rebuild() {
	s.g = gini.New()
	s.varOf = make(map[varKey]z.Var, len(s.identOf))
	for _, e := range s.log {
		s.assertRaw(e.clause, e.act)
	}
}

// zLitFor returns the gini literal for (v, primed), allocating a fresh
// gini variable on first reference. Allocation order follows first-seen
// order across Construct/Block calls, which is deterministic given a fixed
// caller.
func (s *Solver) zLitFor(v literal.Var, primed bool, neg bool) z.Lit {
	k := varKey{id: v.ID(), primed: primed}
	zv, ok := s.varOf[k]
	if !ok {
		zv = s.g.Lit().Var()
		s.varOf[k] = zv
		s.identOf[v.ID()] = v
	}
	l := zv.Pos()
	if neg {
		l = zv.Neg()
	}
	return l
}

func (s *Solver) litToZ(l literal.Literal) z.Lit {
	return s.zLitFor(l.Var(), l.Primed(), l.Neg())
}

// assertRaw asserts clause (optionally gated by act: clause ∨ ¬act) into
// the live gini instance without touching the log; rebuild and Block both
// route through this.
func (s *Solver) assertRaw(clause literal.Clause, act *literal.Literal) {
	for _, l := range clause.Literals() {
		s.g.Add(s.litToZ(l))
	}
	if act != nil {
		s.g.Add(s.litToZ(*act).Not())
	}
	s.g.Add(0)
}

// Block asserts ¬cube as a clause: `Block(cube, nil)` for the fat
// encoding, `Block(cube, &act)` for the delta encoding (the clause becomes
// ¬cube ∨ ¬act, so it is only "live" for assumption sets that include act).
func (s *Solver) Block(cube literal.Cube, act *literal.Literal) {
	clause := cube.Negate()
	s.log = append(s.log, logEntry{region: regionBlocked, clause: clause, act: act})
	s.assertRaw(clause, act)
}

// AssertGated asserts every clause in clauses, each gated by act when act
// is non-nil (the clause becomes `clause ∨ ¬act`, live only when act is
// assumed true) or permanently when act is nil. Logged under the same
// region as Block, so Reset discards it along with every blocked clause —
// the mechanism a one-off query (e.g. a ¬P' violation check scoped to a
// single call) uses to avoid polluting the solver beyond that call.
func (s *Solver) AssertGated(clauses []literal.Clause, act *literal.Literal) {
	for _, c := range clauses {
		s.log = append(s.log, logEntry{region: regionBlocked, clause: c, act: act})
		s.assertRaw(c, act)
	}
}

// Check runs a SAT query under assumptions and records the outcome for a
// subsequent Witness/UnsatCore call. Per spec, Unknown is always fatal.
func (s *Solver) Check(assumptions []literal.Literal) (Outcome, error) {
	if !s.constructed {
		return Unknown, ErrNotConstructed
	}
	zs := make([]z.Lit, len(assumptions))
	for i, a := range assumptions {
		zs[i] = s.litToZ(a)
	}
	s.g.Assume(zs...)

	switch s.g.Solve() {
	case 1:
		s.lastOutcome = Sat
		return Sat, nil
	case -1:
		s.lastOutcome = Unsat
		s.lastCore = s.collectCore(assumptions)
		return Unsat, nil
	default:
		s.lastOutcome = Unknown
		return Unknown, ErrUnknown
	}
}

// collectCore asks gini which of the given assumptions were part of the
// conflict, via Why, and returns the sorted subset.
func (s *Solver) collectCore(assumptions []literal.Literal) []literal.Literal {
	failed := s.g.Why(nil)
	failedSet := make(map[z.Lit]bool, len(failed))
	for _, f := range failed {
		failedSet[f] = true
	}
	var out []literal.Literal
	for _, a := range assumptions {
		if failedSet[s.litToZ(a)] {
			out = append(out, a)
		}
	}
	return out
}

// Witness returns the literals of the last model, filtered to current-
// state (unprimed) atoms and sorted into a canonical Cube. Returns
// ErrNoModel unless the last Check was Sat.
func (s *Solver) Witness() (literal.Cube, error) {
	if s.lastOutcome != Sat {
		return literal.Cube{}, ErrNoModel
	}
	var reconstructed []literal.Literal
	for k, zv := range s.varOf {
		if k.primed {
			continue // current-state only, per spec §4.2 Witness()
		}
		v := s.identOf[k.id]
		if v.IsActivation() {
			continue // activation literals are never part of a current-state witness
		}
		l := literal.Cur(v)
		if !s.g.Value(zv.Pos()) {
			l = literal.Not(l)
		}
		reconstructed = append(reconstructed, l)
	}
	return literal.NewCube(reconstructed...), nil
}

// NextWitness returns the literals of the last model, filtered to
// next-state (primed) atoms and un-primed into a canonical Cube — the
// next-state twin of Witness, used when a one-off query's violation needs
// to be reported as a concrete successor state rather than just checked for
// satisfiability. Returns ErrNoModel unless the last Check was Sat.
func (s *Solver) NextWitness() (literal.Cube, error) {
	if s.lastOutcome != Sat {
		return literal.Cube{}, ErrNoModel
	}
	var reconstructed []literal.Literal
	for k, zv := range s.varOf {
		if !k.primed {
			continue
		}
		v := s.identOf[k.id]
		if v.IsActivation() {
			continue
		}
		l := literal.Next(v)
		if !s.g.Value(zv.Pos()) {
			l = literal.Not(l)
		}
		reconstructed = append(reconstructed, l)
	}
	return literal.NewCube(reconstructed...).Unprimed(), nil
}

// UnsatCore returns the sorted subset of the last Check's assumptions that
// caused unsat. Returns ErrNoCore unless the last Check was Unsat.
func (s *Solver) UnsatCore() (literal.Cube, error) {
	if s.lastOutcome != Unsat {
		return literal.Cube{}, ErrNoCore
	}
	core := append([]literal.Literal(nil), s.lastCore...)
	sort.Slice(core, func(i, j int) bool { return core[i].Less(core[j]) })
	return literal.NewCube(core...), nil
}

// Reset pops back to the before-blocked-clauses checkpoint: every Blocked
// clause logged since Construct/Reconstrain is discarded and the solver is
// rebuilt from base+constraint.
func (s *Solver) Reset() {
	filtered := s.log[:0:0]
	for _, e := range s.log {
		if e.region != regionBlocked {
			filtered = append(filtered, e)
		}
	}
	s.log = filtered
	s.rebuild()
}

// ResetWithCubes is Reset() followed by re-blocking each of cubes (fat
// encoding: no activation literal).
func (s *Solver) ResetWithCubes(cubes []literal.Cube) {
	s.Reset()
	for _, c := range cubes {
		s.Block(c, nil)
	}
}

// Reconstrain pops both checkpoints (discarding the old constraint and all
// blocked clauses), asserts newConstraint, and optionally re-blocks cubes.
// Used when the transition system's constraint changes value (IPDR's
// relax/constrain loops).
func (s *Solver) Reconstrain(newConstraint []literal.Clause, cubes []literal.Cube) {
	filtered := s.log[:0:0]
	for _, e := range s.log {
		if e.region == regionBase {
			filtered = append(filtered, e)
		}
	}
	s.log = filtered
	for _, c := range newConstraint {
		s.log = append(s.log, logEntry{region: regionConstraint, clause: c})
	}
	s.rebuild()
	for _, c := range cubes {
		s.Block(c, nil)
	}
}
