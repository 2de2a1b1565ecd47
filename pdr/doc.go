// Package pdr implements the PDR engine (spec §4.7): the init check, the
// main CTI-driven loop, block()'s backward search over the obligation
// queue, and propagate()'s forward clause pushing, terminating in either an
// inductive invariant or a counter-example trace.
package pdr
