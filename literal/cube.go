// Package literal — cube.go: Cube (a sorted conjunction of literals),
// Clause (its negation), equality and the two subsumption relations
// required by the data model: strict a ⊑ b (a ⊂ b) and reflexive a ⊑= b.
package literal

import "sort"

// Cube is an ordered, duplicate-free set of literals, interpreted as their
// conjunction. No literal appears twice; current and primed copies of the
// same Var are distinct atoms, and NewCube does not reject a Var that
// occurs with both signs (see Contradictory).
// Literals are kept in canonical order so Equal/Subsumes are simple
// lexicographic comparisons over the backing slice.
type Cube struct {
	lits []Literal
}

// NewCube builds a Cube from lits, sorting them into canonical order and
// removing exact duplicates. It does not check for a literal and its
// negation both appearing (a contradictory cube is a valid, just
// unsatisfiable, cube — callers that need consistency call Contradictory).
func NewCube(lits ...Literal) Cube {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	cp = dedupSorted(cp)
	return Cube{lits: cp}
}

func dedupSorted(sorted []Literal) []Literal {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, l := range sorted[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}

// Literals returns the Cube's literals in canonical order. The returned
// slice must not be mutated by the caller.
func (c Cube) Literals() []Literal { return c.lits }

// Len returns the number of literals in the Cube.
func (c Cube) Len() int { return len(c.lits) }

// Contradictory reports whether c contains both a literal and its negation.
func (c Cube) Contradictory() bool {
	for i := 1; i < len(c.lits); i++ {
		if c.lits[i].v == c.lits[i-1].v && c.lits[i].primed == c.lits[i-1].primed &&
			c.lits[i].neg != c.lits[i-1].neg {
			return true
		}
	}
	return false
}

// Equal reports whether c and other contain exactly the same literals.
func (c Cube) Equal(other Cube) bool {
	if len(c.lits) != len(other.lits) {
		return false
	}
	for i := range c.lits {
		if c.lits[i] != other.lits[i] {
			return false
		}
	}
	return true
}

// Less gives Cubes a total order for use as an obligation-queue tie-break:
// shorter cubes sort first, then lexicographically by canonical literal
// order.
func (c Cube) Less(other Cube) bool {
	if len(c.lits) != len(other.lits) {
		return len(c.lits) < len(other.lits)
	}
	for i := range c.lits {
		if c.lits[i] != other.lits[i] {
			return c.lits[i].Less(other.lits[i])
		}
	}
	return false
}

// Subsumes reports the strict relation c ⊑ other: c ⊂ other as literal
// sets (c is a strictly smaller cube, so ¬c is a strictly stronger clause).
func (c Cube) Subsumes(other Cube) bool {
	return len(c.lits) < len(other.lits) && c.subsetOf(other)
}

// SubsumesEq reports the reflexive relation c ⊑= other: c ⊆ other.
func (c Cube) SubsumesEq(other Cube) bool {
	return c.subsetOf(other)
}

// subsetOf reports whether every literal of c appears in other. Both slices
// are sorted, so this runs in O(|c|+|other|).
func (c Cube) subsetOf(other Cube) bool {
	i, j := 0, 0
	for i < len(c.lits) {
		if j >= len(other.lits) {
			return false
		}
		switch {
		case c.lits[i] == other.lits[j]:
			i++
			j++
		case other.lits[j].Less(c.lits[i]):
			j++
		default:
			return false
		}
	}
	return true
}

// Intersect returns the cube containing exactly the literals common to c
// and other. Used by down (§4.6) to strengthen a candidate cube against a
// counter-example witness.
func (c Cube) Intersect(other Cube) Cube {
	var out []Literal
	i, j := 0, 0
	for i < len(c.lits) && j < len(other.lits) {
		switch {
		case c.lits[i] == other.lits[j]:
			out = append(out, c.lits[i])
			i++
			j++
		case other.lits[j].Less(c.lits[i]):
			j++
		default:
			i++
		}
	}
	return Cube{lits: out}
}

// Without returns a copy of c with the literal at index idx removed.
func (c Cube) Without(idx int) Cube {
	out := make([]Literal, 0, len(c.lits)-1)
	out = append(out, c.lits[:idx]...)
	out = append(out, c.lits[idx+1:]...)
	return Cube{lits: out}
}

// Primed returns the cube obtained by priming every literal of c.
func (c Cube) Primed() Cube {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Prime()
	}
	return NewCube(out...)
}

// Unprimed returns the cube obtained by un-priming every literal of c.
func (c Cube) Unprimed() Cube {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Unprime()
	}
	return NewCube(out...)
}

// Clause is the disjunction of a set of literals. Negate produces the
// clause ¬cube (one literal per literal of the cube, all negated).
type Clause struct {
	lits []Literal
}

// Negate returns the clause ¬c: the disjunction of the negation of every
// literal in c.
func (c Cube) Negate() Clause {
	out := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Negate()
	}
	return Clause{lits: out}
}

// Literals returns the Clause's literals; order is not significant for a
// disjunction but is kept stable (source-cube order) for determinism.
func (cl Clause) Literals() []Literal { return cl.lits }

// NewClause builds a Clause directly from literals, without sorting (order
// carries no semantic weight for a disjunction, only determinism).
func NewClause(lits ...Literal) Clause {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	return Clause{lits: cp}
}
