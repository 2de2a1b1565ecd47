package generalize

import (
	"sort"

	"github.com/katalvlaran/ipdr/literal"
)

// DefaultMICRetries is the default retry budget passed to each down call
// MIC makes: how many failed (sat) inductive_rel_to checks one down
// attempt tolerates before it gives up (spec §4.6).
const DefaultMICRetries = 3

// Result is MIC's output: the minimised cube and whether the mic-retries
// budget was exhausted for at least one literal along the way.
type Result struct {
	Cube     literal.Cube
	HitLimit bool
}

// MIC minimises s, known to be inductive relative to frame i, by greedily
// trying to drop each literal in canonical order and keeping the drop
// whenever the resulting smaller cube is still inductive (via down). The
// mic-retries counter is reset for each literal under consideration and
// governs only that literal's down attempt, per the enclosing-loop
// ownership the retry budget is given.
func MIC(seq sequence, s literal.Cube, i int, maxRetries int) (Result, error) {
	lits := append([]literal.Literal(nil), s.Literals()...)
	sort.Slice(lits, func(a, b int) bool { return lits[a].Less(lits[b]) })
	s = literal.NewCube(lits...)

	hitLimit := false
	idx := 0
	for idx < s.Len() {
		trial := s.Without(idx)

		ok, limited, err := down(seq, trial, i, maxRetries)
		if err != nil {
			return Result{}, err
		}
		hitLimit = hitLimit || limited
		if ok {
			s = trial
			continue // don't advance idx: trial shifted the remaining literals down
		}
		idx++
	}
	return Result{Cube: s, HitLimit: hitLimit}, nil
}
