package anneal

import (
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/neighborhood"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/rng"
	"github.com/katalvlaran/heurigo/stopcond"
)

// Microcanonical implements demon annealing: instead of a temperature
// schedule it carries a non-negative demon energy E, accepting a move iff
// E >= delta and paying E -= delta on acceptance (so E grows when delta is
// negative). obj + E is conserved across every accepted move.
type Microcanonical[Sol, NeighborId any] struct {
	p      problem.Problem[Sol]
	n      neighborhood.NeighborhoodIndirectRandom[Sol, NeighborId]
	r      rng.Rng
	cur    Sol
	curObj objective.Obj
	energy float64
}

// NewMicrocanonical builds an engine starting from s0 with initial demon
// energy e0. Panics if e0 is negative — a negative demon energy has no
// meaning in this model.
func NewMicrocanonical[Sol, NeighborId any](
	p problem.Problem[Sol],
	n neighborhood.NeighborhoodIndirectRandom[Sol, NeighborId],
	r rng.Rng,
	e0 float64,
	s0 Sol,
) *Microcanonical[Sol, NeighborId] {
	if e0 < 0 {
		panic("anneal: NewMicrocanonical requires e0 >= 0")
	}
	return &Microcanonical[Sol, NeighborId]{
		p:      p,
		n:      n,
		r:      r,
		cur:    s0,
		curObj: p.Objective(s0),
		energy: e0,
	}
}

// Run drives the engine until stop fires, reporting every accepted move to
// k (including the initial solution).
func (e *Microcanonical[Sol, NeighborId]) Run(k keeper.Keeper[Sol], stop stopcond.StopCondition) {
	k.AddSolution(e.cur, e.curObj)
	for {
		if stop.Stop(k.BestObj(), objective.Unbounded) {
			return
		}
		k.Iter()

		nid := e.n.RandomNeighborID(e.p, e.cur, e.r)
		nobj := e.n.NeighborObj(e.p, e.cur, nid)
		delta := nobj.Real() - e.curObj.Real()

		if e.energy >= delta {
			e.cur = e.n.RandomNeighbor(e.p, e.cur, nid)
			e.curObj = nobj
			e.energy -= delta
			k.AddSolution(e.cur, e.curObj)
		}
	}
}

// Best returns the current (solution, objective) pair.
func (e *Microcanonical[Sol, NeighborId]) Best() (Sol, objective.Obj) {
	return e.cur, e.curObj
}

// Energy returns the current demon energy.
func (e *Microcanonical[Sol, NeighborId]) Energy() float64 {
	return e.energy
}
