// Package beam implements layer-synchronous beam search over a
// TreeIndirectGuided tree space.
//
// What & Why:
//
//	Beam search keeps only the W most promising nodes per layer (the "beam
//	width"), expanding every kept node's children, scoring each child by its
//	ChildGoodness guide value, and retaining only the global top W before moving to the
//	next layer. It trades completeness for a search that stays linear in
//	depth times width rather than exponential in depth.
//
// Algorithms & Complexity:
//
//	Selecting the top W children out of C candidates per layer is done with
//	a bounded max-heap of size W (beamHeap): each candidate costs O(log W)
//	to consider, for O(C log W) per layer instead of an O(C log C) full
//	sort. beamHeap is a 0-indexed array max-heap that only ever holds the W
//	smallest guide values seen so far.
//
// Determinism:
//
//	Given a deterministic TreeIndirectGuided and a deterministic
//	ChildGoodness, Search visits the same nodes in the same order on every run;
//	it performs no randomized tie-breaking.
package beam
