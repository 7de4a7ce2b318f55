// Package bench runs a solver repeatedly over freshly generated problem
// instances and folds the results into per-seed and averaged statistics:
// a benchmarking driver that runs a solver N times over generated
// instances and prints aggregates.
//
// There is no common Solver interface to drive uniformly here: beam.Search
// is a free function, while localsearch and anneal expose engine structs
// with a Run method. RunSolver takes the solve step
// as a plain function value instead, which is the idiomatic Go stand-in for
// a single-method interface the caller can't implement polymorphically
// across unrelated constructors.
package bench
