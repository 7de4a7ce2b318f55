package objective

import "math"

// Obj is a totally ordered minimization value. Smaller is better.
//
// unbounded < v < unfeasible holds for every finite v by construction: the
// sentinels are the IEEE-754 infinities, so ordinary float64 comparison
// already gives the required total order.
type Obj float64

// Unbounded is strictly less than any feasible value: "no primal solution
// can be this good". Used as the dual-bound floor.
//
// Unfeasible is strictly greater than any feasible value: "no such solution
// exists". Returned by Objective for an infeasible candidate.
//
// math.Inf is a function, not a constant, so these are package-level vars
// initialized once and never mutated thereafter.
var (
	Unbounded  = Obj(math.Inf(-1))
	Unfeasible = Obj(math.Inf(1))
)

// Real returns the plain float64 projection used by cooling-driven
// acceptance rules and by reporting.
func (o Obj) Real() float64 { return float64(o) }

// IsFeasible reports whether o represents a feasible, finite-or-unbounded
// value, i.e. whether o != Unfeasible.
func (o Obj) IsFeasible() bool { return o != Unfeasible }

// IsUnbounded reports whether o is exactly the Unbounded sentinel.
func (o Obj) IsUnbounded() bool { return o == Unbounded }

// Min returns the smaller (better) of a and b.
func Min(a, b Obj) Obj {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger (worse) of a and b.
func Max(a, b Obj) Obj {
	if a > b {
		return a
	}
	return b
}

// Guide ranks candidate expansions for beam search; smaller is more
// promising. In the simple case Guide has the same numeric range as Obj, but
// it may encode a problem-specific look-ahead heuristic distinct from the
// objective. Kept as a distinct type from Obj for call-site safety.
type Guide float64

// Real returns the plain float64 projection of the guide value.
func (g Guide) Real() float64 { return float64(g) }
