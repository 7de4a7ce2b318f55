// Package dedup provides the Set contract used by search engines to prune
// already-visited solutions, along with two implementations of it:
// AlwaysEmptySet, which disables pruning, and BloomFilter, a probabilistic
// membership set built on top of BitArray, a flat fixed-size bit vector. The caller supplies an expected item count and
// a target false-positive rate,
// and the bit count and hash count are computed at construction time rather
// than fixed as type parameters, since Go generics have no const-integer
// parameters to carry a fixed bit width the way a const-generic array type
// would.
package dedup
