// Package literal — bitvector.go: groups of Vars representing a
// non-negative integer in standard binary (bit 0 = least significant),
// ForceValue cubes, a Tseitin "< n" CNF encoding, and witness extraction.
package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// BitVector is a fixed-width, LSB-first group of Vars: bit i of
// BitVector.bits holds weight 2^i. Width w represents values in [0, 2^w).
type BitVector struct {
	name string
	bits []Var
}

// NewBitVector declares width fresh Vars named "<name>_0".."<name>_{w-1}"
// in reg and returns the BitVector grouping them.
func NewBitVector(reg *Registry, name string, width int) BitVector {
	if width <= 0 {
		panic(fmt.Sprintf("literal: NewBitVector(%s): width must be > 0, got %d", name, width))
	}
	bits := make([]Var, width)
	for i := 0; i < width; i++ {
		bits[i] = reg.MustDeclare(fmt.Sprintf("%s_%d", name, i))
	}
	return BitVector{name: name, bits: bits}
}

// Width returns the number of bits in bv.
func (bv BitVector) Width() int { return len(bv.bits) }

// Max returns the largest value bv can represent, 2^Width-1.
func (bv BitVector) Max() int { return (1 << uint(len(bv.bits))) - 1 }

// Bit returns the Var holding the i'th bit (weight 2^i).
func (bv BitVector) Bit(i int) Var { return bv.bits[i] }

// ForceValue returns the cube that forces bv to hold exactly value in the
// given tense (current or primed), one literal per bit, value ≤ Max().
func (bv BitVector) ForceValue(value int, primed bool) Cube {
	if value < 0 || value > bv.Max() {
		panic(fmt.Sprintf("literal: ForceValue(%s, %d): out of range [0,%d]", bv.name, value, bv.Max()))
	}
	lits := make([]Literal, len(bv.bits))
	for i, v := range bv.bits {
		l := Literal{v: v, primed: primed}
		if value&(1<<uint(i)) == 0 {
			l = l.Negate()
		}
		lits[i] = l
	}
	return NewCube(lits...)
}

// LessThan returns a CNF clause set (as Clauses, one per disjunct) encoding
// "bv < n" via the standard Tseitin ripple comparison: starting from the
// most significant bit, bv < n iff there exists a bit position i where
// every higher bit of bv equals the corresponding bit of n and bit i of bv
// is 0 while bit i of n is 1. This produces O(width) clauses rather than
// expanding the disjunction naively (which would be exponential).
//
// The construction introduces one auxiliary Var per bit position, "eq up
// to here", via reg; clauses tie each auxiliary to its definition and the
// final clause asserts the disjunction of "strictly-less-at-i" witnesses.
func (bv BitVector) LessThan(reg *Registry, n int, primed bool) []Clause {
	w := len(bv.bits)
	if n <= 0 {
		// bv is unsigned; "bv < 0" is unsatisfiable — force false via an
		// empty clause (no satisfying assignment).
		return []Clause{NewClause()}
	}
	if n > bv.Max() {
		// Always true; a tautological clause set (a fresh Var asserted
		// both ways would be wrong — instead return no constraining
		// clauses at all, which is semantically "true").
		return nil
	}

	lit := func(i int) Literal {
		l := Literal{v: bv.bits[i], primed: primed}
		if n&(1<<uint(i)) == 0 {
			return l.Negate() // bit i of bv must equal bit i of n to stay "equal so far"
		}
		return l
	}

	// eq[i] is true iff bits w-1..i of bv equal the corresponding bits of n.
	eqName := func(i int) string {
		tense := "c"
		if primed {
			tense = "n"
		}
		return fmt.Sprintf("__lt_%s_%s_%d_%d", bv.name, tense, n, i)
	}
	eq := make([]Var, w)
	for i := w - 1; i >= 0; i-- {
		if v, err := reg.Lookup(eqName(i)); err == nil {
			eq[i] = v
		} else {
			eq[i] = reg.MustDeclare(eqName(i))
		}
	}

	var clauses []Clause
	// eq[w-1] <-> (bv_{w-1} == n_{w-1}), i.e. eq[w-1] <-> lit(w-1).
	top := Cur(eq[w-1])
	if primed {
		top = Next(eq[w-1])
	}
	clauses = append(clauses,
		NewClause(Not(top), lit(w-1)),
		NewClause(top, Not(lit(w-1))),
	)
	for i := w - 2; i >= 0; i-- {
		ei := Cur(eq[i])
		eip1 := Cur(eq[i+1])
		if primed {
			ei, eip1 = Next(eq[i]), Next(eq[i+1])
		}
		// eq[i] <-> eq[i+1] AND lit(i)
		clauses = append(clauses,
			NewClause(Not(ei), eip1),
			NewClause(Not(ei), lit(i)),
			NewClause(ei, Not(eip1), Not(lit(i))),
		)
	}

	// lt is the disjunction, over every bit i (MSB to LSB), of:
	//   eq[i+1] (or "true" if i==w-1) AND bv_i == 0 AND n_i == 1.
	var disjuncts []Literal
	for i := w - 1; i >= 0; i-- {
		if n&(1<<uint(i)) == 0 {
			continue // n_i == 0: bv can never be strictly-less at this bit
		}
		bi := Literal{v: bv.bits[i], primed: primed}
		// "strictly less at i" requires bv_i == 0: the witness literal is ¬bv_i.
		witness := bi.Negate()
		if i == w-1 {
			disjuncts = append(disjuncts, witness)
			continue
		}
		// Gate witness by eq[i+1] via a fresh auxiliary Tseitin variable
		// g_i <-> (eq[i+1] AND witness); add g_i to the outer disjunction.
		gName := fmt.Sprintf("%s_g%d", eqName(i), i)
		g, err := reg.Lookup(gName)
		if err != nil {
			g = reg.MustDeclare(gName)
		}
		eip1 := Cur(eq[i+1])
		if primed {
			eip1 = Next(eq[i+1])
		}
		gl := Cur(g)
		if primed {
			gl = Next(g)
		}
		clauses = append(clauses,
			NewClause(Not(gl), eip1),
			NewClause(Not(gl), witness),
			NewClause(gl, Not(eip1), Not(witness)),
		)
		disjuncts = append(disjuncts, gl)
	}
	clauses = append(clauses, NewClause(disjuncts...))
	return clauses
}

// ExtractValue reads back the integer held by bv from a witness cube w
// (typically solver.Witness()), matching by variable identity. Missing
// bits default to 0, per the round-trip contract in the project's design
// notes ("missing bits default to 0").
func (bv BitVector) ExtractValue(w Cube) int {
	present := make(map[int]bool, w.Len())
	for _, l := range w.Literals() {
		if !l.neg {
			present[l.v.id] = true
		}
	}
	value := 0
	for i, v := range bv.bits {
		if present[v.id] {
			value |= 1 << uint(i)
		}
	}
	return value
}

// String renders bv's current bit names, e.g. "bv[w4](bv_0,bv_1,bv_2,bv_3)".
func (bv BitVector) String() string {
	names := make([]string, len(bv.bits))
	for i, v := range bv.bits {
		names[i] = v.Name()
	}
	return bv.name + "[w" + strconv.Itoa(len(bv.bits)) + "](" + strings.Join(names, ",") + ")"
}
