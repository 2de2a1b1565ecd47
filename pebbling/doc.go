// Package pebbling implements the reversible-pebble-game transition
// system over a DAG (spec §4.3.1): one Boolean p_v per node, initial state
// "no nodes pebbled", transition relation that lets a node's pebble flip
// only when every parent (prerequisite) of that node is pebbled both
// before and after the flip — several such nodes may flip in the same
// step — an at-most-k cardinality constraint on the
// number of pebbled nodes, and a target property "exactly the output
// nodes are pebbled".
//
// The DAG itself is a dag.Graph (see that package's doc.go for why it is
// narrower than the teacher's core.Graph); this package additionally
// supplies deterministic benchmark-DAG generators — Path, Grid,
// RandomSparse, Complete — adapted from the teacher's builder package
// (impl_path.go, impl_grid.go, impl_random_sparse.go, impl_complete.go)
// for use in tests and the boundary scenarios of the project's §8.
package pebbling
