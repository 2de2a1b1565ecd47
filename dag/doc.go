// Package dag provides a minimal directed-acyclic-graph type for the
// pebbling transition system: add vertices and edges, enumerate parents
// and children in deterministic (sorted-ID) order, and validate
// acyclicity via a topological sort.
//
// Unlike the teacher package this is grounded on (lvlath's core.Graph,
// a general-purpose concurrent multigraph with weights, mixed directions,
// loops and clone/view support), dag.Graph is deliberately narrow: a
// pebbling model is always directed, simple (no parallel edges, no
// self-loops), unweighted, and owned by exactly one goroutine for its
// entire lifetime (the transition-system constructor that builds it). The
// narrower type carries none of core.Graph's sync.RWMutex machinery.
package dag
