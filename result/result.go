package result

import (
	"time"

	"github.com/katalvlaran/ipdr/literal"
	"github.com/katalvlaran/ipdr/obligation"
)

// Kind discriminates the two Result variants.
type Kind int

const (
	// Invariant means PDR proved the property by finding an inductive
	// frame; Level names the lowest i with F_i = F_{i+1}.
	Invariant Kind = iota
	// Trace means PDR found a counter-example: a sequence of states from
	// an initial state to a property violation.
	Trace
)

// Result is the outcome of one PDR (or one IPDR run within a loop): either
// an invariant level or a counter-example trace, plus the constraint value
// and wall-clock duration of the run that produced it. Exactly one of
// Level/States is meaningful, selected by Kind — a tagged union rather than
// an overloaded nullable field, per spec §9.
type Result struct {
	Kind            Kind
	Level           int
	States          []literal.Cube
	Duration        time.Duration
	ConstraintValue int
}

// NewInvariant builds an Invariant result.
func NewInvariant(level int, constraintValue int, d time.Duration) Result {
	return Result{Kind: Invariant, Level: level, ConstraintValue: constraintValue, Duration: d}
}

// NewTrace builds a Trace result from the bad obligation block() terminated
// on: Pred walks from bad toward increasing level, ending at the root
// obligation (the original CTI, Pred == nil). bad itself satisfies I (it is
// the obligation block() found at level 0), so that walk order already
// puts an initial state first and the CTI last — index 0 is I, the final
// index violates the property.
func NewTrace(bad *obligation.Obligation, constraintValue int, d time.Duration) Result {
	var states []literal.Cube
	for o := bad; o != nil; o = o.Pred {
		states = append(states, o.State)
	}
	return Result{Kind: Trace, States: states, ConstraintValue: constraintValue, Duration: d}
}

// HasInvariant reports whether this result is the Invariant variant.
func (r Result) HasInvariant() bool { return r.Kind == Invariant }

// HasTrace reports whether this result is the Trace variant.
func (r Result) HasTrace() bool { return r.Kind == Trace }
