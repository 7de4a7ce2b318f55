// Package lp provides a small linear-programming expression DSL
// (ModelBuilder, Expression, Inequality) plus a single-phase Big-M primal
// simplex solver. It is a standalone utility: no search engine in
// this module imports it. It exists because the framework's original
// implementation carried an LP layer (used historically to cross-check
// branch-and-bound lower bounds against exact LP relaxations) and is kept
// here in the same capacity — a tool a caller can reach for when building a
// Problem whose dual bound comes from an LP relaxation, not a dependency of
// beam/localsearch/anneal themselves.
package lp
