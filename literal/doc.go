// Package literal defines the primed-variable layer shared by every
// transition system and by the PDR engine: Boolean atoms with a current
// and a next-state (primed) copy, cubes (sorted conjunctions of literals),
// clauses (their negation), and bit-vectors built from groups of Boolean
// variables.
//
// A Var is declared once per model. Declaring a Var gives you four
// expressions: Cur(v), Next(v), Not(Cur(v)), Not(Next(v)) — the
// current-state literal, the next-state (primed) literal, and their
// negations. Bit-vectors are
// built from a slice of Vars and support forcing an exact integer value
// (ForceValue) and an O(width) Tseitin "< n" comparator (LessThan).
//
// Cubes are kept in a canonical order (ascending by Var id, then current
// before primed, then positive before negative) so that
// cube equality and subsumption (Cube.Subsumes) are simple lexicographic
// comparisons, per the data model in the project's design notes.
package literal
