// Package rng provides the seedable, cloneable pseudo-random uint64 stream
// used by every randomized search engine in heurigo.
//
// The canonical implementation, Splitmix64, is bit-exact across platforms:
// the same seed always produces the same sequence, which is what lets
// heurigo's benchmarking harness (package bench) reproduce a run from its
// seed alone. Do not share a single Rng across goroutines; each engine owns
// its stream exclusively; no method here is safe for concurrent use.
package rng
