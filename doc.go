// Package heurigo is a library of reusable search engines for combinatorial
// and continuous optimization: beam search over a lazily-expanded tree
// space, local search and simulated/microcanonical annealing over a
// neighbourhood graph.
//
// Every engine is generic over a problem's solution type and is driven by
// two small contracts the caller supplies: problem.Problem (the objective
// and feasibility predicate) and either a treespace.Tree variant or a
// neighborhood interface such as neighborhood.NeighborhoodIndirect (how to
// move through the search space). An
// engine never inspects a solution's internals; it only ever calls back
// into these contracts and reports through a keeper.Keeper.
//
//	core packages  — objective, rng, stopcond, problem: the shared algebra
//	                 every engine is built from.
//	search spaces  — treespace, neighborhood: the two ways a caller exposes
//	                 a problem to an engine.
//	engines        — beam, localsearch, anneal: the search algorithms
//	                 themselves.
//	bookkeeping    — keeper, dedup: recording results and pruning duplicate
//	                 work.
//	standalone     — lp: an unwired linear-programming DSL and simplex
//	                 solver, included as a general-purpose utility rather
//	                 than a core engine dependency.
//	worked problems — examples: Knapsack and NumberLine, used by package
//	                 tests and by cmd/bench's default instance generator.
//	testing harness — bench, cmd/bench: runs a solver repeatedly over
//	                 generated instances and reports aggregated results.
package heurigo
