// Package objective defines the totally ordered minimization value shared by
// every search engine in heurigo.
//
// # What & Why
//
// Every engine in this module — beam search, local search, simulated and
// microcanonical annealing — minimizes a single scalar value. That value
// carries two sentinels beyond the ordinary reals: Unbounded, meaning "no
// primal solution can be this good" (a dual-bound floor), and Unfeasible,
// meaning "no such solution exists" (what an infeasible candidate reports).
// The ordering invariant is Unbounded < v < Unfeasible for every feasible v.
//
// # Representation
//
// Obj is a named float64. The two sentinels are ±Inf, so the invariant above
// holds for free under IEEE-754 comparison — no custom Less/Compare method
// is needed, and Real() is the identity. This mirrors how the original
// implementation's own test harness represented its sentinels
// (UNFEAS = +Inf, UNBOUNDED = -Inf) rather than inventing a new encoding.
//
// Guide is a second named float64 with identical semantics, kept distinct
// from Obj so a tree space's guide function and objective function cannot be
// swapped by accident at a call site, even though both are ordered floats.
package objective
