// Package frame — frame.go: Frame, the per-level blocked-cube set, and the
// subsumption-aware insertion spec §4.4 requires ("before insertion, remove
// strictly-subsumed cubes").
package frame

import "github.com/katalvlaran/ipdr/literal"

// Frame holds the cubes blocked at one level. F₀ is special (it represents
// I structurally and is never given a Frame entry of its own data); every
// Frame returned by Sequence.At is for level ≥ 1.
type Frame struct {
	cubes []literal.Cube
}

// Cubes returns the blocked cubes at this level, in insertion order.
func (f *Frame) Cubes() []literal.Cube {
	out := make([]literal.Cube, len(f.cubes))
	copy(out, f.cubes)
	return out
}

// Len returns the number of cubes blocked at this level.
func (f *Frame) Len() int { return len(f.cubes) }

// insert adds cube to f, first discarding any existing cube that cube
// subsumes (strictly, per spec §4.4), and skipping the insert entirely if
// an existing cube already subsumes-or-equals cube. Reports whether cube
// was actually added, so callers can skip re-asserting an already-present
// clause to a solver.
func (f *Frame) insert(cube literal.Cube) bool {
	for _, c := range f.cubes {
		if c.SubsumesEq(cube) {
			return false
		}
	}
	kept := f.cubes[:0:0]
	for _, c := range f.cubes {
		if !cube.Subsumes(c) {
			kept = append(kept, c)
		}
	}
	kept = append(kept, cube)
	f.cubes = kept
	return true
}

// equalCubeSets reports whether a and b contain the same cubes, order
// irrelevant. Used by Propagate's convergence check (F_i = F_{i+1}).
func equalCubeSets(a, b []literal.Cube) bool {
	if len(a) != len(b) {
		return false
	}
	for _, ca := range a {
		found := false
		for _, cb := range b {
			if ca.Equal(cb) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
