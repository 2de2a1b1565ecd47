package pebbling

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ipdr/dag"
	"github.com/katalvlaran/ipdr/literal"
	"github.com/katalvlaran/ipdr/tsystem"
)

// Sentinel errors for the pebbling package.
var (
	// ErrNotAcyclic indicates the supplied DAG contains a cycle.
	ErrNotAcyclic = errors.New("pebbling: graph is not acyclic")

	// ErrUnknownOutput indicates an output node is not in the graph.
	ErrUnknownOutput = errors.New("pebbling: unknown output node")

	// ErrNegativeConstraint indicates Constrain was called with k < 0.
	ErrNegativeConstraint = errors.New("pebbling: constraint must be >= 0")
)

// System is the pebbling transition system (spec §4.3.1).
type System struct {
	reg     *literal.Registry
	g       *dag.Graph
	nodes   []string // topological order
	vars    map[string]literal.Var
	outputs map[string]bool
	k       int
	hasK    bool
}

// NewSystem builds the pebbling transition system over g with the given
// output node set. g must be acyclic (ErrNotAcyclic) and every output must
// be a vertex of g (ErrUnknownOutput). One Boolean Var is declared per
// node, named "p_<nodeID>".
func NewSystem(g *dag.Graph, outputs []string) (*System, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("pebbling: %w", ErrNotAcyclic)
	}
	outSet := make(map[string]bool, len(outputs))
	for _, o := range outputs {
		if !g.HasVertex(o) {
			return nil, fmt.Errorf("%s: %w", o, ErrUnknownOutput)
		}
		outSet[o] = true
	}

	reg := literal.NewRegistry()
	vars := make(map[string]literal.Var, len(order))
	for _, v := range order {
		vars[v] = reg.MustDeclare("p_" + v)
	}

	return &System{reg: reg, g: g, nodes: order, vars: vars, outputs: outSet, k: len(order), hasK: true}, nil
}

// Name implements tsystem.System.
func (s *System) Name() string { return "pebbling" }

// CurrentVars implements tsystem.System.
func (s *System) CurrentVars() []literal.Var {
	out := make([]literal.Var, len(s.nodes))
	for i, v := range s.nodes {
		out[i] = s.vars[v]
	}
	return out
}

// Init implements tsystem.System: no nodes pebbled.
func (s *System) Init() literal.Cube {
	lits := make([]literal.Literal, len(s.nodes))
	for i, v := range s.nodes {
		lits[i] = literal.Not(literal.Cur(s.vars[v]))
	}
	return literal.NewCube(lits...)
}

// Transition implements tsystem.System (spec §4.3.1): for each node v with
// parent p (an edge p→v, so p is v's prerequisite), four clauses encoding
// (p_v ⊕ p_v') ⇒ (p_p ∧ p_p') — v can only be pebbled or unpebbled while
// every prerequisite of v stays pebbled throughout the move.
func (s *System) Transition() []literal.Clause {
	var clauses []literal.Clause
	for _, v := range s.nodes {
		pv := literal.Cur(s.vars[v])
		pvN := literal.Next(s.vars[v])
		for _, p := range s.g.Parents(v) {
			pp := literal.Cur(s.vars[p])
			ppN := literal.Next(s.vars[p])
			clauses = append(clauses,
				literal.NewClause(literal.Not(pv), pvN, pp),
				literal.NewClause(pv, literal.Not(pvN), pp),
				literal.NewClause(literal.Not(pv), pvN, ppN),
				literal.NewClause(pv, literal.Not(pvN), ppN),
			)
		}
	}
	return clauses
}

// Constraint implements tsystem.System: at-most-k(current) ∧ at-most-k(next).
func (s *System) Constraint() []literal.Clause {
	cur := make([]literal.Literal, len(s.nodes))
	next := make([]literal.Literal, len(s.nodes))
	for i, v := range s.nodes {
		cur[i] = literal.Cur(s.vars[v])
		next[i] = literal.Next(s.vars[v])
	}
	var clauses []literal.Clause
	clauses = append(clauses, atMostK(s.reg, "cur", cur, s.k)...)
	clauses = append(clauses, atMostK(s.reg, "next", next, s.k)...)
	return clauses
}

// targetCube returns the cube "exactly the output nodes are pebbled".
func (s *System) targetCube(primed bool) literal.Cube {
	lits := make([]literal.Literal, len(s.nodes))
	for i, v := range s.nodes {
		l := literal.Cur(s.vars[v])
		if primed {
			l = literal.Next(s.vars[v])
		}
		if !s.outputs[v] {
			l = literal.Not(l)
		}
		lits[i] = l
	}
	return literal.NewCube(lits...)
}

// Property implements tsystem.System: P holds everywhere except at the
// target marking (¬target, as a single clause).
func (s *System) Property() []literal.Clause {
	return []literal.Clause{s.targetCube(false).Negate()}
}

// NegProperty implements tsystem.System: ¬P is the target cube itself,
// represented as one unit clause per literal.
func (s *System) NegProperty() []literal.Clause {
	return cubeAsUnitClauses(s.targetCube(false))
}

// PropertyNext implements tsystem.System.
func (s *System) PropertyNext() []literal.Clause {
	return []literal.Clause{s.targetCube(true).Negate()}
}

// NegPropertyNext implements tsystem.System.
func (s *System) NegPropertyNext() []literal.Clause {
	return cubeAsUnitClauses(s.targetCube(true))
}

func cubeAsUnitClauses(c literal.Cube) []literal.Clause {
	lits := c.Literals()
	out := make([]literal.Clause, len(lits))
	for i, l := range lits {
		out[i] = literal.NewClause(l)
	}
	return out
}

// Constrain implements tsystem.System: sets the pebble-count bound.
func (s *System) Constrain(value int) tsystem.ConstraintDiff {
	if value < 0 {
		panic(ErrNegativeConstraint)
	}
	old := s.k
	s.k = value
	switch {
	case !s.hasK || value == old:
		s.hasK = true
		return tsystem.DiffNone
	case value < old:
		return tsystem.DiffTightened
	default:
		return tsystem.DiffLoosened
	}
}

// ConstraintNum implements tsystem.System.
func (s *System) ConstraintNum() int { return s.k }

// Nodes returns the DAG's vertices in topological order.
func (s *System) Nodes() []string {
	out := make([]string, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Outputs returns the output node set, sorted.
func (s *System) Outputs() []string {
	out := make([]string, 0, len(s.outputs))
	for o := range s.outputs {
		out = append(out, o)
	}
	sort.Strings(out)
	return out
}

// VarFor returns the Boolean Var for node v.
func (s *System) VarFor(v string) (literal.Var, bool) {
	vv, ok := s.vars[v]
	return vv, ok
}
