// Package generalize implements MIC (Minimal Inductive Clause) and its
// down() subroutine (spec §4.6): shrinking a cube known to be inductive
// relative to some frame into a smaller one that is still inductive,
// strengthening against counter-example witnesses along the way.
package generalize
