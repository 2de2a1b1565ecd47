// Package logstats wires a structured logger and a set of run counters
// through the PDR/IPDR engines (spec §9, "statistics are owned by a logger
// passed by reference"; SPEC_FULL §4.10). Logging itself is not part of
// correctness (spec §2) — a nil *Stats is safe to use everywhere and simply
// discards counts, so tests can construct an Engine without wiring one up.
package logstats
