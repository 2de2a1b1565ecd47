// Package pebbling — cardinality.go: sequential-counter at-most-k CNF
// encoding (Sinz 2005) over a literal slice. Pebbling's constraint needs
// "at most k of these Booleans are true"; the sequential counter is the
// standard O(n*k)-clause encoding and is what the project's design notes
// call for when a solver's native cardinality primitive isn't used
// directly ("otherwise Tseitin-encode via a sorting-network or
// sequential-counter. The choice is not observable externally beyond
// performance.").
package pebbling

import (
	"fmt"

	"github.com/katalvlaran/ipdr/literal"
)

// atMostK returns CNF clauses asserting that at most k of xs are true. k
// must be ≥ 0; k ≥ len(xs) is always true (no clauses needed); k == 0
// forces every x false. reg declares the O(len(xs)*k) auxiliary "register"
// variables the encoding needs, named uniquely by tag so repeated calls
// (current vs. next-state tenses) never collide.
func atMostK(reg *literal.Registry, tag string, xs []literal.Literal, k int) []literal.Clause {
	n := len(xs)
	if k < 0 {
		panic(fmt.Sprintf("pebbling: atMostK(%s): k must be >= 0, got %d", tag, k))
	}
	if k >= n {
		return nil
	}
	if k == 0 {
		clauses := make([]literal.Clause, n)
		for i, x := range xs {
			clauses[i] = literal.NewClause(literal.Not(x))
		}
		return clauses
	}

	// s[i][j] (1-indexed i in 1..n-1, j in 1..k): "at least j of x_1..x_i are
	// true". Constraint() is called again on every Extend (and on every
	// Reconstrain), with the same tag/i/j names whenever k hasn't changed,
	// so these are looked up before being declared — the same idiom
	// literal/bitvector.go's LessThan uses for its own repeat-call aux vars —
	// rather than declared unconditionally, which would panic via
	// MustDeclare's ErrDuplicateName on the second call.
	s := make([][]literal.Var, n)
	for i := 1; i < n; i++ {
		s[i] = make([]literal.Var, k+1)
		for j := 1; j <= k; j++ {
			name := fmt.Sprintf("__amk_%s_s%d_%d", tag, i, j)
			if v, err := reg.Lookup(name); err == nil {
				s[i][j] = v
			} else {
				s[i][j] = reg.MustDeclare(name)
			}
		}
	}
	sLit := func(i, j int) literal.Literal { return literal.Cur(s[i][j]) }

	var clauses []literal.Clause
	// ¬x1 ∨ s_{1,1}
	clauses = append(clauses, literal.NewClause(literal.Not(xs[0]), sLit(1, 1)))
	// ¬s_{1,j} for j=2..k
	for j := 2; j <= k; j++ {
		clauses = append(clauses, literal.NewClause(literal.Not(sLit(1, j))))
	}
	for i := 2; i <= n-1; i++ {
		clauses = append(clauses,
			literal.NewClause(literal.Not(xs[i-1]), sLit(i, 1)),
			literal.NewClause(literal.Not(sLit(i-1, 1)), sLit(i, 1)),
			literal.NewClause(literal.Not(xs[i-1]), literal.Not(sLit(i-1, k))),
		)
		for j := 2; j <= k; j++ {
			clauses = append(clauses,
				literal.NewClause(literal.Not(xs[i-1]), literal.Not(sLit(i-1, j-1)), sLit(i, j)),
				literal.NewClause(literal.Not(sLit(i-1, j)), sLit(i, j)),
			)
		}
	}
	clauses = append(clauses, literal.NewClause(literal.Not(xs[n-1]), literal.Not(sLit(n-1, k))))
	return clauses
}
