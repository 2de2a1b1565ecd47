package tsystem

import "github.com/katalvlaran/ipdr/literal"

// ConstraintDiff tags how the last Constrain call changed the constraint,
// so IPDR can decide whether a full re-initiation is needed (spec §4.3).
type ConstraintDiff int

const (
	// DiffNone means Constrain was a no-op (same value as before).
	DiffNone ConstraintDiff = iota
	// DiffTightened means the new constraint is strictly stronger.
	DiffTightened
	// DiffLoosened means the new constraint is strictly weaker.
	DiffLoosened
)

// System is the capability set every transition-system implementation
// exposes (spec §4.3). Constrain and ConstraintNum are the hook IPDR uses
// to walk a single numeric parameter to its optimum without knowing what
// it means (design notes: "the constraint's meaning is opaque to it").
type System interface {
	// Name identifies the model for diagnostics, e.g. "pebbling" or "peterson".
	Name() string

	// CurrentVars returns the model's state variables (not the Tseitin or
	// cardinality auxiliaries) in declaration order; their next-state
	// forms are literal.Next of the same Vars.
	CurrentVars() []literal.Var

	// Init returns the initial-state cube I.
	Init() literal.Cube

	// Transition returns the CNF clause set encoding T (may embed the
	// constraint's guard where the encoding requires it, e.g. pebbling's
	// per-edge implication — §4.3.1).
	Transition() []literal.Clause

	// Constraint returns the CNF clauses of the current constraint,
	// asserted over both current and next-state variables where the
	// model requires both (e.g. pebbling's at-most-k(current) ∧
	// at-most-k(next)).
	Constraint() []literal.Clause

	// Property returns the CNF clauses of P, the safety property.
	Property() []literal.Clause

	// NegProperty returns the CNF clauses of ¬P.
	NegProperty() []literal.Clause

	// PropertyNext and NegPropertyNext return P and ¬P re-expressed over
	// next-state (primed) variables, used when checking F_i ∧ T ⊨ ¬P'-style
	// queries without re-deriving the primed formula at each call site.
	PropertyNext() []literal.Clause
	NegPropertyNext() []literal.Clause

	// Constrain changes the constraint to a new numeric value and reports
	// how it changed relative to the previous value.
	Constrain(value int) ConstraintDiff

	// ConstraintNum returns the constraint's current numeric value, used
	// by IPDR to order and report runs.
	ConstraintNum() int
}
