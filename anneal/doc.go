// Package anneal implements the two annealing engines: SimulatedAnnealing,
// driven by a pluggable CoolingSchedule and an exp(-delta/T) acceptance
// rule, and Microcanonical, driven by a conserved demon energy instead of a
// temperature. Both sample one random neighbour per iteration from a
// NeighborhoodIndirectRandom and own their current solution exclusively.
package anneal
