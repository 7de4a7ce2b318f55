// Package localsearch implements single-trajectory local search over a
// NeighborhoodIndirect problem: SteepestDescent always moves to the best
// available neighbour, FirstImprovingRandom samples one neighbour at a time
// and moves on the first strict improvement. Both own their current
// solution exclusively and report every accepted step to a keeper.
package localsearch
