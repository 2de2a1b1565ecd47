// Package literal — registry.go: declares Vars and exposes their four
// standard expressions (x, x', ¬x, ¬x').
package literal

import "fmt"

// Registry declares Vars by name, in order, and hands out Literal
// expressions for them. It is created once per model and only ever grows:
// there is no Undeclare. Besides the state variables a transition system
// declares at construction, Tseitin and cardinality auxiliaries are
// declared later, on first use, by the formula builders that need them.
//
// Var ids are drawn from a package-wide counter rather than a per-Registry
// one, so that Vars from two different Registries (e.g. a transition
// system's model Registry and a frame sequence's activation-literal
// Registry, see IsActivation) never collide when used as map keys by a
// solver.Solver that talks to both.
type Registry struct {
	byName     map[string]Var
	order      []Var
	activation bool
}

var nextGlobalVarID int

// NewRegistry returns an empty Registry for ordinary model variables.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Var)}
}

// NewActivationRegistry returns an empty Registry whose Vars report
// IsActivation() == true — used exclusively by package frame for delta-
// encoding gate literals, which a solver.Solver must exclude from any
// current-state witness it extracts.
func NewActivationRegistry() *Registry {
	return &Registry{byName: make(map[string]Var), activation: true}
}

// Declare registers a fresh Var under name. Declaring the same name twice
// returns ErrDuplicateName; declaring the empty name returns ErrEmptyName.
func (r *Registry) Declare(name string) (Var, error) {
	if name == "" {
		return Var{}, ErrEmptyName
	}
	if _, ok := r.byName[name]; ok {
		return Var{}, fmt.Errorf("%s: %w", name, ErrDuplicateName)
	}
	v := Var{id: nextGlobalVarID, name: name, activation: r.activation}
	nextGlobalVarID++
	r.byName[name] = v
	r.order = append(r.order, v)
	return v, nil
}

// MustDeclare is Declare but panics on error; intended for transition-system
// constructors where a name collision is a programming bug, not user input.
func (r *Registry) MustDeclare(name string) Var {
	v, err := r.Declare(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the Var previously declared under name, or ErrUnknownVar.
func (r *Registry) Lookup(name string) (Var, error) {
	v, ok := r.byName[name]
	if !ok {
		return Var{}, fmt.Errorf("%s: %w", name, ErrUnknownVar)
	}
	return v, nil
}

// Vars returns every declared Var in declaration order. The returned slice
// is owned by the caller; mutating it does not affect the Registry.
func (r *Registry) Vars() []Var {
	out := make([]Var, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of declared Vars.
func (r *Registry) Len() int { return len(r.order) }

// Cur returns the current-state positive literal for v.
func Cur(v Var) Literal { return Literal{v: v} }

// Next returns the next-state (primed) positive literal for v.
func Next(v Var) Literal { return Literal{v: v, primed: true} }

// Not returns the negation of l.
func Not(l Literal) Literal { return l.Negate() }
