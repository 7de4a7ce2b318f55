package beam

import "github.com/katalvlaran/heurigo/dedup"

// searchConfig holds the validated configuration assembled by Option
// constructors before a Search begins. dedup is keyed by Node, not Sol:
// duplicate pruning compares materialised tree nodes, since identical
// subproblems reached via different parents would otherwise redundantly
// expand.
type searchConfig[Node any] struct {
	width int
	dedup dedup.Set[Node]
}

// Option customizes a Search by mutating its searchConfig before the run
// starts. Constructors validate and panic on meaningless inputs, since a
// malformed beam configuration is a programmer error, not a recoverable
// runtime condition.
type Option[Node any] func(*searchConfig[Node])

// WithWidth sets the beam width (the number of nodes retained per layer).
// Panics if width <= 0.
func WithWidth[Node any](width int) Option[Node] {
	if width <= 0 {
		panic("beam: WithWidth requires width > 0")
	}
	return func(c *searchConfig[Node]) {
		c.width = width
	}
}

// WithDedup installs a dedup.Set used to discard tree nodes already seen at
// a previous layer. Panics on nil; pass dedup.AlwaysEmptySet[Node]{} to
// explicitly disable pruning instead of omitting the option.
func WithDedup[Node any](set dedup.Set[Node]) Option[Node] {
	if set == nil {
		panic("beam: WithDedup requires a non-nil Set")
	}
	return func(c *searchConfig[Node]) {
		c.dedup = set
	}
}
