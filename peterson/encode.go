// Package peterson — encode.go: small Tseitin helpers shared by the
// five-phase transition encoding (guarded implications, bit-level framing
// of unchanged state, AND-gate indicator literals).
package peterson

import (
	"fmt"

	"github.com/katalvlaran/ipdr/literal"
)

// bitsFor returns the number of bits needed to represent every integer in
// [0, maxValue], at least 1.
func bitsFor(maxValue int) int {
	if maxValue <= 0 {
		return 1
	}
	w := 0
	for (1 << uint(w)) <= maxValue {
		w++
	}
	return w
}

// impliesCube returns one clause per literal of cons: ante ⇒ (conjunction
// of cons's literals), i.e. (¬ante1 ∨ ... ∨ ¬anteN ∨ l) for each l in cons.
func impliesCube(ante []literal.Literal, cons literal.Cube) []literal.Clause {
	lits := cons.Literals()
	out := make([]literal.Clause, len(lits))
	for i, l := range lits {
		clauseLits := make([]literal.Literal, 0, len(ante)+1)
		for _, a := range ante {
			clauseLits = append(clauseLits, literal.Not(a))
		}
		clauseLits = append(clauseLits, l)
		out[i] = literal.NewClause(clauseLits...)
	}
	return out
}

// impliesClause returns the single clause ante ⇒ (disjunction of cons).
func impliesClause(ante []literal.Literal, cons ...literal.Literal) literal.Clause {
	lits := make([]literal.Literal, 0, len(ante)+len(cons))
	for _, a := range ante {
		lits = append(lits, literal.Not(a))
	}
	lits = append(lits, cons...)
	return literal.NewClause(lits...)
}

// frameBits returns, for each bit Var in bits, the pair of clauses
// asserting that ante ⇒ (bit unchanged): ante ⇒ (bit ↔ bit'). Used to
// explicitly state which state components a guarded move leaves alone.
func frameBits(ante []literal.Literal, bits []literal.Var) []literal.Clause {
	out := make([]literal.Clause, 0, 2*len(bits))
	for _, b := range bits {
		cur := literal.Cur(b)
		next := literal.Next(b)
		out = append(out,
			impliesClause(ante, literal.Not(cur), next),
			impliesClause(ante, cur, literal.Not(next)),
		)
	}
	return out
}

// frameBitVector frames every bit of bv.
func frameBitVector(ante []literal.Literal, bv literal.BitVector) []literal.Clause {
	bits := make([]literal.Var, bv.Width())
	for i := 0; i < bv.Width(); i++ {
		bits[i] = bv.Bit(i)
	}
	return frameBits(ante, bits)
}

// andIffLit declares a Var named name (or reuses the one already declared
// under that name, since Property/NegProperty and their next-state forms
// are rebuilt on every call), returns its literal (primed or current per
// the primed flag) and the clauses asserting it iff the conjunction of lits.
func andIffLit(reg *literal.Registry, name string, lits []literal.Literal, primed bool) (literal.Literal, []literal.Clause) {
	v, err := reg.Lookup(name)
	if err != nil {
		v = reg.MustDeclare(name)
	}
	out := literal.Cur(v)
	if primed {
		out = literal.Next(v)
	}

	// out ⇒ each conjunct.
	clauses := make([]literal.Clause, 0, len(lits)+1)
	for _, l := range lits {
		clauses = append(clauses, literal.NewClause(literal.Not(out), l))
	}
	// (all conjuncts) ⇒ out.
	negs := make([]literal.Literal, 0, len(lits)+1)
	for _, l := range lits {
		negs = append(negs, literal.Not(l))
	}
	negs = append(negs, out)
	clauses = append(clauses, literal.NewClause(negs...))

	return out, clauses
}

// orIffLit declares a fresh Var named name, returns its literal and the
// clauses asserting it iff the disjunction of lits.
func orIffLit(reg *literal.Registry, name string, lits []literal.Literal) (literal.Literal, []literal.Clause) {
	v := reg.MustDeclare(name)
	out := literal.Cur(v)

	clauses := make([]literal.Clause, 0, len(lits)+1)
	for _, l := range lits {
		clauses = append(clauses, literal.NewClause(literal.Not(l), out))
	}
	disj := make([]literal.Literal, 0, len(lits)+1)
	disj = append(disj, lits...)
	disj = append(disj, literal.Not(out))
	clauses = append(clauses, literal.NewClause(disj...))

	return out, clauses
}

// combineCubes flattens several cubes' literals into one NewCube.
func combineCubes(cubes ...literal.Cube) literal.Cube {
	var lits []literal.Literal
	for _, c := range cubes {
		lits = append(lits, c.Literals()...)
	}
	return literal.NewCube(lits...)
}

// atMostOnePairwise returns the O(n^2) pairwise at-most-one encoding over
// lits: ¬(lit_i ∧ lit_j) for every i<j. Fine for the small process counts
// a Peterson instance uses.
func atMostOnePairwise(lits []literal.Literal) []literal.Clause {
	var out []literal.Clause
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			out = append(out, literal.NewClause(literal.Not(lits[i]), literal.Not(lits[j])))
		}
	}
	return out
}

func fmtName(parts ...interface{}) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "_"
		}
		s += fmt.Sprint(p)
	}
	return s
}
