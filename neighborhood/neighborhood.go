// Package neighborhood declares the local-move graph contract: given a
// solution, enumerate or sample nearby solutions ("neighbours") and their
// objective values, directly or through a cheap identifier.
package neighborhood

import (
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/rng"
)

// NeighborhoodIndirect identifies moves by a small NeighborId before
// committing to building the neighbour solution, so local search and
// annealing engines can evaluate many candidate moves cheaply.
//
// Contract: NeighborObj(p, s, nid) must equal Objective(Neighbor(p, s,
// nid)) exactly. When that equality cannot be computed cheaply, the
// implementation must still compute it correctly by applying the move to a
// scratch copy and evaluating Objective there — the engine relies on
// correctness of NeighborObj, never on it being free.
type NeighborhoodIndirect[Sol, NeighborId any] interface {
	// NeighborhoodID returns every move identifier reachable from s.
	NeighborhoodID(p problem.Problem[Sol], s Sol) []NeighborId
	// NeighborObj returns the objective value s would have after applying
	// nid, without necessarily materialising the neighbour.
	NeighborObj(p problem.Problem[Sol], s Sol, nid NeighborId) objective.Obj
	// Neighbor applies nid to s and returns the resulting solution.
	Neighbor(p problem.Problem[Sol], s Sol, nid NeighborId) Sol
}

// NeighborhoodIndirectRandom samples a single move identifier instead of
// enumerating the whole neighbourhood, for engines that only ever need one
// candidate per iteration (first-improving random search, annealing).
type NeighborhoodIndirectRandom[Sol, NeighborId any] interface {
	// RandomNeighborID samples one move identifier reachable from s.
	RandomNeighborID(p problem.Problem[Sol], s Sol, r rng.Rng) NeighborId
	// NeighborObj returns the objective value s would have after applying
	// nid. Same contract as NeighborhoodIndirect.NeighborObj.
	NeighborObj(p problem.Problem[Sol], s Sol, nid NeighborId) objective.Obj
	// RandomNeighbor applies nid to s and returns the resulting solution.
	RandomNeighbor(p problem.Problem[Sol], s Sol, nid NeighborId) Sol
}

// NeighborhoodDirect returns moved solutions directly, skipping the
// NeighborId indirection entirely — appropriate when there is no cheaper
// way to describe a move than to produce it.
type NeighborhoodDirect[Sol any] interface {
	// Neighborhood returns every solution reachable from s in one move.
	Neighborhood(p problem.Problem[Sol], s Sol) []Sol
}

// NeighborhoodDirectRandom samples one moved solution directly.
type NeighborhoodDirectRandom[Sol any] interface {
	// RandomNeighbor samples one solution reachable from s in one move.
	RandomNeighbor(p problem.Problem[Sol], s Sol, r rng.Rng) Sol
}

// CheckContract asserts, for a sample of (solution, move) pairs, that
// NeighborObj agrees exactly with the objective of the materialised
// neighbour, as the NeighborhoodIndirect contract requires. Test helper
// only: a violation is a programmer bug in the Neighborhood implementation,
// not something a caller can recover from at runtime.
func CheckContract[Sol, NeighborId any](
	p problem.Problem[Sol],
	n NeighborhoodIndirect[Sol, NeighborId],
	s Sol,
) (ok bool, offender int) {
	ids := n.NeighborhoodID(p, s)
	for i, nid := range ids {
		claimed := n.NeighborObj(p, s, nid)
		actual := p.Objective(n.Neighbor(p, s, nid))
		if claimed != actual {
			return false, i
		}
	}
	return true, -1
}
