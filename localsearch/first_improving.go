package localsearch

import (
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/neighborhood"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/rng"
	"github.com/katalvlaran/heurigo/stopcond"
)

// FirstImprovingRandom samples one random neighbour per iteration and
// accepts it iff it strictly improves the current objective. Unlike
// SteepestDescent it never halts on a local optimum by itself; only the
// stop condition ends the run.
type FirstImprovingRandom[Sol, NeighborId any] struct {
	p      problem.Problem[Sol]
	n      neighborhood.NeighborhoodIndirectRandom[Sol, NeighborId]
	r      rng.Rng
	cur    Sol
	curObj objective.Obj
}

// NewFirstImprovingRandom builds an engine starting from s0, owning r for
// the lifetime of the run.
func NewFirstImprovingRandom[Sol, NeighborId any](
	p problem.Problem[Sol],
	n neighborhood.NeighborhoodIndirectRandom[Sol, NeighborId],
	r rng.Rng,
	s0 Sol,
) *FirstImprovingRandom[Sol, NeighborId] {
	return &FirstImprovingRandom[Sol, NeighborId]{
		p:      p,
		n:      n,
		r:      r,
		cur:    s0,
		curObj: p.Objective(s0),
	}
}

// Run drives the engine until stop fires, reporting every accepted step to
// k.
func (e *FirstImprovingRandom[Sol, NeighborId]) Run(k keeper.Keeper[Sol], stop stopcond.StopCondition) {
	k.AddSolution(e.cur, e.curObj)
	for {
		k.Iter()
		if stop.Stop(k.BestObj(), objective.Unbounded) {
			return
		}

		nid := e.n.RandomNeighborID(e.p, e.cur, e.r)
		obj := e.n.NeighborObj(e.p, e.cur, nid)
		if obj >= e.curObj {
			continue
		}

		e.cur = e.n.RandomNeighbor(e.p, e.cur, nid)
		e.curObj = obj
		k.AddSolution(e.cur, e.curObj)
	}
}

// Best returns the current (solution, objective) pair.
func (e *FirstImprovingRandom[Sol, NeighborId]) Best() (Sol, objective.Obj) {
	return e.cur, e.curObj
}
