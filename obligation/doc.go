// Package obligation implements the PDR backward-search obligation queue
// (spec §4.5): a min-priority queue of (level, state, depth) triples,
// ordered ascending by level, then depth, then canonical cube order.
// Insertion and removal are its only operations; an empty queue terminates
// block().
package obligation
