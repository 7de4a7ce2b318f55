package treespace

import (
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/rng"
)

// Tree is the base contract for a subproblem tree. root() returns the
// topmost subproblem; children form a finite, acyclic tree. A node is a leaf
// exactly when IsLeaf reports true, and only then do Objective and
// ToSolution return a usable value (their second return is the "is this
// valid" flag, replacing Rust's Option).
type Tree[Sol, Node any] interface {
	// Root returns the topmost subproblem.
	Root() Node
	// IsLeaf reports whether n has no children.
	IsLeaf(n Node) bool
	// Objective returns the objective of the solution n represents, valid
	// only when IsLeaf(n).
	Objective(n Node) (objective.Obj, bool)
	// ToSolution converts a leaf node to a solution, valid only when
	// IsLeaf(n).
	ToSolution(n Node) (Sol, bool)
}

// TreeDirect exposes children by value. Prefer TreeIndirect when
// materialising a child is expensive and many candidates will be discarded.
type TreeDirect[Sol, Node any] interface {
	Tree[Sol, Node]
	// Children returns every child of n.
	Children(n Node) []Node
}

// TreeIndirect exposes children by a small, cheaply-comparable identifier
// first; materialising the actual child node is a separate, potentially
// expensive step.
type TreeIndirect[Sol, Node, ChildId any] interface {
	Tree[Sol, Node]
	// ChildrenID returns the identifiers of every child of n. Finite;
	// empty if and only if IsLeaf(n).
	ChildrenID(n Node) []ChildId
	// Child materialises the child of n identified by cid. Deterministic
	// and side-effect free.
	Child(n Node, cid ChildId) Node
}

// TreeBounded provides a primal bound (an achievable objective reachable
// from n) and a dual bound (a lower bound on anything reachable from n,
// which may short-circuit once it is known to exceed a given primal).
type TreeBounded[Sol, Node any] interface {
	Tree[Sol, Node]
	// PrimalBound returns an achievable objective value reachable from n.
	PrimalBound(n Node) objective.Obj
	// DualBound returns a lower bound on the objective reachable from n,
	// given the current best-known primal bound (for early-exit bounds).
	DualBound(n Node, primal objective.Obj) objective.Obj
}

// TreeIndirectBounded computes bounds directly on (n, cid) without
// materialising the child.
type TreeIndirectBounded[Sol, Node, ChildId any] interface {
	TreeIndirect[Sol, Node, ChildId]
	// ChildPrimalBound returns an achievable objective for the child
	// identified by cid, without materialising it.
	ChildPrimalBound(n Node, cid ChildId) objective.Obj
	// ChildDualBound returns a lower bound for the child identified by
	// cid, without materialising it.
	ChildDualBound(n Node, cid ChildId, primal objective.Obj) objective.Obj
}

// TreeGuided ranks nodes by a problem-specific heuristic used to steer beam
// search. Must be pure (deterministic) for a given (tree space, n).
type TreeGuided[Sol, Node any] interface {
	Tree[Sol, Node]
	// Goodness ranks n; smaller is more promising.
	Goodness(n Node) objective.Guide
}

// TreeIndirectGuided ranks child identifiers without materialising the
// child — this is the capability beam.Search actually requires, since it
// ranks cheap candidate identifiers before paying for materialisation.
type TreeIndirectGuided[Sol, Node, ChildId any] interface {
	TreeIndirect[Sol, Node, ChildId]
	// ChildGoodness ranks the child identified by cid; smaller is more
	// promising.
	ChildGoodness(n Node, cid ChildId) objective.Guide
}

// TreeDirectRandom produces a single randomly-chosen child, for randomized
// tree walks. The second return is false if n is a leaf (no child exists).
type TreeDirectRandom[Sol, Node any] interface {
	Tree[Sol, Node]
	// RandomChild returns a uniformly-or-problem-weighted random child of
	// n, or (_, false) if n has no children.
	RandomChild(n Node, r rng.Rng) (Node, bool)
}

// TreeRollback produces a child together with the information needed to
// revert the mutation, enabling engines that operate on a mutable current
// node instead of cloning on every step.
type TreeRollback[Sol, Node, RollbackInfo any] interface {
	Tree[Sol, Node]
	// Rollback reverts the mutation recorded in info, returning n to its
	// pre-mutation state.
	Rollback(n Node, info RollbackInfo) Node
}

// TreeRollbackIndirect pairs indirect child enumeration with rollback
// information for each child.
type TreeRollbackIndirect[Sol, Node, ChildIdR, RollbackInfo any] interface {
	TreeRollback[Sol, Node, RollbackInfo]
	// ChildrenIDRollback returns, for every child of n, an identifier and
	// the rollback information needed to return to n.
	ChildrenIDRollback(n Node) []struct {
		ID       ChildIdR
		Rollback RollbackInfo
	}
	// ChildR materialises the child identified by cid, consuming n.
	ChildR(n Node, cid ChildIdR) Node
}

// TreeRollbackDirectRandom produces a random child together with its
// rollback information.
type TreeRollbackDirectRandom[Sol, Node, RollbackInfo any] interface {
	TreeRollback[Sol, Node, RollbackInfo]
	// RandomChildRollback returns a random child of n and the information
	// needed to roll back to n, or (_, _, false) if n has no children.
	RandomChildRollback(n Node, r rng.Rng) (Node, RollbackInfo, bool)
}
