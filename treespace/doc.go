// Package treespace declares the capability lattice a tree search space can
// implement: a base contract (root, leaf test, objective, solution
// conversion) plus independent extensions for direct/indirect children,
// bounds, guides, randomized children, and rollback-capable mutation.
//
// Go has no associated types, so each capability type (Node, ChildId,
// RollbackInfo) becomes an explicit type parameter here instead; guide
// values are always objective.Guide. An engine
// is generic over exactly the capability set it needs — beam.Search needs
// TreeIndirectGuided, nothing more.
package treespace
