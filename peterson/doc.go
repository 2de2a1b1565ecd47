// Package peterson implements the N-process Peterson mutual-exclusion
// transition system (spec §4.3.2): per process i a program counter pc_i ∈
// {0..4}, a tournament level_i ∈ {0..N_max-1}, a free_i flag, and shared
// last_j registers for j ∈ {0..N_max-2}; a five-phase guarded transition
// (start, boundcheck, setlast, await, release); property "at most one
// process has pc=4" (mutual exclusion); and a constraint on the number of
// active processes.
//
// All N_max processes' variables are declared once at construction time.
// Constrain(p) never adds variables — it only changes which processes are
// "active": inactive processes (index ≥ p) are frozen idle by the
// constraint formula, not removed from the model.
package peterson
