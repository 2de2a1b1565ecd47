package generalize

import "github.com/katalvlaran/ipdr/literal"

// sequence is the subset of frame.Sequence that down needs. Declaring it
// here (rather than importing frame directly) keeps generalize from
// depending on frame's full surface and avoids an import cycle should frame
// ever want to call into generalize.
type sequence interface {
	IntersectsInit(cube literal.Cube) (bool, error)
	InductiveRelToWitness(cube literal.Cube, i int) (ok bool, witness literal.Cube, err error)
}

// down shrinks c by repeatedly intersecting it with counter-example
// witnesses until either it is proven inductive relative to frame i
// (success), or it comes to intersect an initial state (failure). Each
// iteration strictly removes at least one literal from c, so it terminates
// in at most c's original length many steps; maxRetries additionally bounds
// how many failed (sat) inductive_rel_to calls this attempt tolerates before
// aborting early, per the enclosing mic-retries budget. hitLimit reports
// whether that abort is what ended the attempt, as opposed to a definitive
// intersection with an initial state.
func down(seq sequence, c literal.Cube, i int, maxRetries int) (ok bool, hitLimit bool, err error) {
	retries := 0
	for {
		intersects, err := seq.IntersectsInit(c)
		if err != nil {
			return false, false, err
		}
		if intersects {
			return false, false, nil
		}

		done, witness, err := seq.InductiveRelToWitness(c, i)
		if err != nil {
			return false, false, err
		}
		if done {
			return true, false, nil
		}

		retries++
		if retries > maxRetries {
			return false, true, nil
		}

		next := c.Intersect(witness)
		if next.Len() == c.Len() {
			// No progress is possible: every literal of c also holds in the
			// witness, so repeating would loop forever. This only happens if
			// the witness itself satisfies c, which inductive_rel_to's ¬c
			// guard rules out; kept as a defensive stop, not a reachable path.
			return false, false, nil
		}
		c = next
	}
}
