// Package tsystem declares the transition-system capability set the PDR
// engine and the IPDR driver are polymorphic over (spec §4.3, design notes
// "Variant of transition system"): current/next variable lists, the
// initial-state cube I, the transition relation T, an auxiliary Constraint,
// the property P and its negation, and Constrain/ConstraintNum for the
// incremental driver. Implementations: pebbling.System, peterson.System.
package tsystem
