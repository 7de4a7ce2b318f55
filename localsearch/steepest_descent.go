package localsearch

import (
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/neighborhood"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/stopcond"
)

// SteepestDescent owns a single search trajectory: on every iteration it
// moves to the best available neighbour, stopping at the first local
// optimum (no neighbour strictly improves) or when the stop condition
// fires. Constructing it consumes the initial solution; the engine is the
// sole owner of the current solution thereafter.
type SteepestDescent[Sol, NeighborId any] struct {
	p    problem.Problem[Sol]
	n    neighborhood.NeighborhoodIndirect[Sol, NeighborId]
	cur  Sol
	curObj objective.Obj
}

// NewSteepestDescent builds an engine starting from s0, evaluating its
// objective immediately.
func NewSteepestDescent[Sol, NeighborId any](
	p problem.Problem[Sol],
	n neighborhood.NeighborhoodIndirect[Sol, NeighborId],
	s0 Sol,
) *SteepestDescent[Sol, NeighborId] {
	return &SteepestDescent[Sol, NeighborId]{
		p:      p,
		n:      n,
		cur:    s0,
		curObj: p.Objective(s0),
	}
}

// Run drives the engine to a local optimum or until stop fires, reporting
// every accepted step to k.
func (e *SteepestDescent[Sol, NeighborId]) Run(k keeper.Keeper[Sol], stop stopcond.StopCondition) {
	k.AddSolution(e.cur, e.curObj)
	for {
		k.Iter()
		if stop.Stop(k.BestObj(), objective.Unbounded) {
			return
		}

		ids := e.n.NeighborhoodID(e.p, e.cur)
		bestNid, bestObj, found := findBest(e.p, e.n, e.cur, ids)
		if !found || bestObj >= e.curObj {
			return
		}

		e.cur = e.n.Neighbor(e.p, e.cur, bestNid)
		e.curObj = bestObj
		k.AddSolution(e.cur, e.curObj)
	}
}

// Best returns the current (solution, objective) pair.
func (e *SteepestDescent[Sol, NeighborId]) Best() (Sol, objective.Obj) {
	return e.cur, e.curObj
}

func findBest[Sol, NeighborId any](
	p problem.Problem[Sol],
	n neighborhood.NeighborhoodIndirect[Sol, NeighborId],
	s Sol,
	ids []NeighborId,
) (best NeighborId, bestObj objective.Obj, found bool) {
	bestObj = objective.Unfeasible
	for _, nid := range ids {
		obj := n.NeighborObj(p, s, nid)
		if !found || obj < bestObj {
			best = nid
			bestObj = obj
			found = true
		}
	}
	return best, bestObj, found
}
