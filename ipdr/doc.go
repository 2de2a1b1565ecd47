// Package ipdr implements the incremental driver (spec §4.8): relax and
// constrain loops that walk a transition system's single integer
// constraint toward its optimum, reusing PDR frames across runs instead of
// starting each run from scratch.
package ipdr
