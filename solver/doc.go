// Package solver wraps a SAT solver (github.com/go-air/gini) behind the
// stateful interface the PDR engine needs: Construct asserts base/
// transition/constraint formulas and records two backtracking checkpoints;
// Block asserts a blocking clause, optionally gated by an activation
// literal (delta encoding); Check runs a SAT query under assumptions;
// Witness/UnsatCore extract the result; Reset and Reconstrain roll back to
// a checkpoint, replaying the clause log gini itself cannot pop.
//
// gini's *gini.Gini has no native push/pop: once a clause is Add-ed it
// stays asserted for the life of the instance. Solver works around this by
// keeping an ordered log of every clause in three regions — base,
// constraint, blocked — and rebuilding a fresh *gini.Gini from the
// surviving regions whenever a checkpoint must be restored. Adding clauses
// (Block, growing the constraint) never needs a rebuild; only removing
// them (Reset, Reconstrain) does.
package solver
