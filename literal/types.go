// Package literal — types.go defines Var, Literal and their sentinel errors.
//
// Errors:
//
//	ErrEmptyName     - a variable was declared with an empty name.
//	ErrDuplicateName - two variables were declared under the same name.
//	ErrUnknownVar    - a literal referenced a variable the registry never declared.
package literal

import "errors"

// Sentinel errors for the literal package.
var (
	// ErrEmptyName indicates a Var was declared with an empty name.
	ErrEmptyName = errors.New("literal: variable name is empty")

	// ErrDuplicateName indicates two variables share a name within one Registry.
	ErrDuplicateName = errors.New("literal: duplicate variable name")

	// ErrUnknownVar indicates a literal or cube referenced an undeclared variable.
	ErrUnknownVar = errors.New("literal: unknown variable")
)

// Var identifies a single declared Boolean atom. Its id is drawn from a
// package-wide counter at declaration time (see Registry), so ids are
// unique across Registries but not dense within one; ids are never
// reused, so id order matches declaration order and gives every Cube a
// stable canonical sort key.
type Var struct {
	id         int
	name       string
	activation bool
}

// ID returns the Var's package-wide unique id.
func (v Var) ID() int { return v.id }

// Name returns the Var's declared name.
func (v Var) Name() string { return v.name }

// IsActivation reports whether v was declared through a
// NewActivationRegistry — a frame-sequence gate literal rather than a
// transition-system model variable. A solver.Solver excludes activation
// Vars from any current-state witness it extracts.
func (v Var) IsActivation() bool { return v.activation }

// Literal is a Boolean atom or its negation, tagged current or next
// (primed). Two Literals with the same Var, Primed and Neg compare equal.
type Literal struct {
	v     Var
	primed bool
	neg   bool
}

// Var returns the underlying variable.
func (l Literal) Var() Var { return l.v }

// Primed reports whether this is the next-state (primed) copy.
func (l Literal) Primed() bool { return l.primed }

// Neg reports whether this literal is negated.
func (l Literal) Neg() bool { return l.neg }

// Negate returns the complementary literal (same Var, same Primed, opposite sign).
func (l Literal) Negate() Literal {
	return Literal{v: l.v, primed: l.primed, neg: !l.neg}
}

// Unprime returns the current-state copy of l, preserving its sign.
func (l Literal) Unprime() Literal {
	return Literal{v: l.v, primed: false, neg: l.neg}
}

// Prime returns the next-state copy of l, preserving its sign.
func (l Literal) Prime() Literal {
	return Literal{v: l.v, primed: true, neg: l.neg}
}

// sortKey is a total order key: variable id first (so cubes sort by variable
// identity), then primed (current before next), then sign (positive before
// negative) — the canonical order required by the data model.
func (l Literal) sortKey() (int, int, int) {
	p := 0
	if l.primed {
		p = 1
	}
	n := 0
	if l.neg {
		n = 1
	}
	return l.v.id, p, n
}

// Less reports whether l sorts strictly before other under the canonical
// literal order.
func (l Literal) Less(other Literal) bool {
	la, lb, lc := l.sortKey()
	ra, rb, rc := other.sortKey()
	if la != ra {
		return la < ra
	}
	if lb != rb {
		return lb < rb
	}
	return lc < rc
}

// String renders l as e.g. "x", "-x", "x'", "-x'" for diagnostics.
func (l Literal) String() string {
	s := l.v.name
	if l.primed {
		s += "'"
	}
	if l.neg {
		s = "-" + s
	}
	return s
}
