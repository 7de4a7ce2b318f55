package anneal

import (
	"math"

	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/neighborhood"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/rng"
	"github.com/katalvlaran/heurigo/stopcond"
)

// SimulatedAnnealing owns a single search trajectory, accepting worsening
// moves with probability exp(-delta/T) where T comes from a pluggable
// CoolingSchedule. Constructing it consumes the initial solution and the
// RNG; both are owned exclusively by the engine for the run's duration.
type SimulatedAnnealing[Sol, NeighborId any] struct {
	p       problem.Problem[Sol]
	n       neighborhood.NeighborhoodIndirectRandom[Sol, NeighborId]
	r       rng.Rng
	cooling CoolingSchedule
	cur     Sol
	curObj  objective.Obj
}

// NewSimulatedAnnealing builds an engine starting from s0.
func NewSimulatedAnnealing[Sol, NeighborId any](
	p problem.Problem[Sol],
	n neighborhood.NeighborhoodIndirectRandom[Sol, NeighborId],
	r rng.Rng,
	cooling CoolingSchedule,
	s0 Sol,
) *SimulatedAnnealing[Sol, NeighborId] {
	return &SimulatedAnnealing[Sol, NeighborId]{
		p:       p,
		n:       n,
		r:       r,
		cooling: cooling,
		cur:     s0,
		curObj:  p.Objective(s0),
	}
}

// Run drives the engine until its cooling schedule reaches a non-positive
// temperature or stop fires, reporting every accepted move to k.
func (e *SimulatedAnnealing[Sol, NeighborId]) Run(k keeper.Keeper[Sol], stop stopcond.StopCondition) {
	for {
		if stop.Stop(k.BestObj(), objective.Unbounded) {
			return
		}
		k.Iter()

		temp := e.cooling.Temperature(e.curObj.Real())
		if temp <= 0 {
			return
		}

		nid := e.n.RandomNeighborID(e.p, e.cur, e.r)
		nobj := e.n.NeighborObj(e.p, e.cur, nid)
		delta := nobj.Real() - e.curObj.Real()

		if delta < 0 || e.r.Next01() < math.Exp(-delta/temp) {
			e.cur = e.n.RandomNeighbor(e.p, e.cur, nid)
			e.curObj = nobj
			k.AddSolution(e.cur, e.curObj)
		}
	}
}

// Best returns the current (solution, objective) pair.
func (e *SimulatedAnnealing[Sol, NeighborId]) Best() (Sol, objective.Obj) {
	return e.cur, e.curObj
}
