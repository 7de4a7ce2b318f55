package keeper

import "github.com/katalvlaran/heurigo/objective"

// Keeper is the single sink for solver output. Every engine in this module
// reports through this interface exclusively; it never inspects or mutates
// the best-so-far solution directly.
type Keeper[Sol any] interface {
	// AddSolution is called on every candidate solution; the keeper tracks
	// best-so-far.
	AddSolution(sol Sol, obj objective.Obj)
	// AddSolutionFunc behaves like AddSolution but builds sol lazily: f is
	// invoked only if the keeper actually wants to persist the candidate
	// (obj improves on the current best). Engines should prefer this form
	// whenever materialising sol is nontrivial.
	AddSolutionFunc(f func() Sol, obj objective.Obj)
	// AddDualBound records a monotone non-decreasing global lower-bound
	// hint.
	AddDualBound(db objective.Obj)
	// Iter is called once per engine iteration for bookkeeping.
	Iter()
	// BestSolution returns the best solution recorded so far, if any.
	BestSolution() (sol Sol, obj objective.Obj, ok bool)
	// BestObj returns the best objective recorded so far, or
	// objective.Unfeasible if nothing has been recorded yet.
	BestObj() objective.Obj
}

// Simple is the minimum viable Keeper: it tracks only the best-so-far
// solution and ignores dual bounds and iteration counts.
type Simple[Sol any] struct {
	hasSolution bool
	bestSol     Sol
	bestObj     objective.Obj
}

// NewSimple returns an empty Simple keeper, BestObj() == objective.Unfeasible
// until a solution is added.
func NewSimple[Sol any]() *Simple[Sol] {
	return &Simple[Sol]{bestObj: objective.Unfeasible}
}

// AddSolution implements Keeper.
func (k *Simple[Sol]) AddSolution(sol Sol, obj objective.Obj) {
	if obj < k.bestObj {
		k.bestSol = sol
		k.bestObj = obj
		k.hasSolution = true
	}
}

// AddSolutionFunc implements Keeper, invoking f only when obj improves the
// current best.
func (k *Simple[Sol]) AddSolutionFunc(f func() Sol, obj objective.Obj) {
	if obj < k.bestObj {
		k.AddSolution(f(), obj)
	}
}

// AddDualBound implements Keeper; Simple does not track dual bounds.
func (k *Simple[Sol]) AddDualBound(objective.Obj) {}

// Iter implements Keeper; Simple does no per-iteration bookkeeping.
func (k *Simple[Sol]) Iter() {}

// BestSolution implements Keeper.
func (k *Simple[Sol]) BestSolution() (Sol, objective.Obj, bool) {
	return k.bestSol, k.bestObj, k.hasSolution
}

// BestObj implements Keeper.
func (k *Simple[Sol]) BestObj() objective.Obj {
	return k.bestObj
}
