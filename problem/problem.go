// Package problem declares the contract every solvable instance must
// satisfy: a solution type, an objective function, a feasibility predicate,
// and the reduction machinery that lets one problem be solved in terms of
// another.
package problem

import "github.com/katalvlaran/heurigo/objective"

// Problem declares the solution space and objective for a single instance.
// Implementations must be clonable and self-contained: no hidden global
// state. Feasibility and objective must agree:
//
//	IsFeasible(s) == false  <=>  Objective(s) == objective.Unfeasible
type Problem[Sol any] interface {
	// Objective returns the objective value of a solution.
	Objective(sol Sol) objective.Obj
	// IsFeasible reports whether sol is a feasible solution.
	IsFeasible(sol Sol) bool
}

// Reduction maps a reduced problem's solutions and objective values back
// into the units of the original problem it was derived from. This is what
// lets an engine solving P (the reduced problem) report events that a
// caller holding OP (the original problem) can interpret.
type Reduction[OSol, RSol any] interface {
	// ReduceFrom constructs the reduced problem an engine actually solves,
	// given the original problem this Reduction was built for. It is the
	// P1 -> P2 counterpart to LiftSolution/LiftObj's P2 -> P1 direction.
	ReduceFrom(op Problem[OSol]) Problem[RSol]
	// LiftSolution converts a reduced-problem solution back to the
	// original problem's solution type.
	LiftSolution(rsol RSol) OSol
	// LiftObj converts a reduced-problem objective value back to the
	// original problem's objective units.
	LiftObj(robj objective.Obj) objective.Obj
}

// IdentityReduction is the trivial Reduction for Sol == Sol, used when an
// engine solves the original problem directly with no reduction step.
type IdentityReduction[Sol any] struct{}

// ReduceFrom implements Reduction by returning op unchanged: the reduced
// problem and the original are the same Sol type, so there is nothing to
// construct.
func (IdentityReduction[Sol]) ReduceFrom(op Problem[Sol]) Problem[Sol] { return op }

// LiftSolution implements Reduction by returning rsol unchanged.
func (IdentityReduction[Sol]) LiftSolution(rsol Sol) Sol { return rsol }

// LiftObj implements Reduction by returning robj unchanged.
func (IdentityReduction[Sol]) LiftObj(robj objective.Obj) objective.Obj { return robj }

// CheckContract asserts, for a sample of solutions, that Objective and
// IsFeasible agree as the Problem contract requires. It is a test helper,
// not a runtime guard: contract violations are programmer bugs and are
// not defended against outside of tests.
func CheckContract[Sol any](p Problem[Sol], samples []Sol) (ok bool, offender int) {
	for i, s := range samples {
		feasible := p.IsFeasible(s)
		obj := p.Objective(s)
		if feasible == (obj == objective.Unfeasible) {
			return false, i
		}
	}
	return true, -1
}
