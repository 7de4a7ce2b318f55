// Package keeper provides the single sink through which a search engine
// reports candidate solutions and dual bounds. Keeper owns the best-so-far
// solution; Stats wraps any Keeper to additionally record a time-and-
// iteration-stamped, append-only event log preserving the monotone
// envelope of both bounds (primal bound non-increasing, dual bound
// non-decreasing).
package keeper
