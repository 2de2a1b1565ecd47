// Package frame implements the PDR frame sequence F₀,F₁,…,F_frontier (spec
// §4.4): an ordered list of blocked-cube sets with the monotonicity
// invariant F_{i+1} ⊆ F_i, supporting both the "fat" encoding (one solver
// per frame, each carrying every clause blocked at its level or above) and
// the "delta" encoding (one shared solver, clauses gated by per-level
// activation literals pushed as assumptions).
//
// Per the project's design notes, a Frame itself never holds a solver
// pointer — Sequence owns every solver instance (the fatSolvers slice, or
// the one sharedSolver), and Frame stores only cube data and, in delta
// mode, nothing at all (the level's activation literal lives in Sequence's
// own acts slice, not on the Frame).
package frame
