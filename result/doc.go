// Package result defines the PDR/IPDR outcome type (spec §3, "Variant of
// outcome"): a tagged union of an inductive-invariant level or a
// counter-example trace, together with timing and the constraint value the
// run was performed under.
package result
