package bench

import "github.com/katalvlaran/heurigo/problem"

// Generator produces a fresh problem instance for a given seed, letting
// Aggregate build an independent, reproducible instance per run instead of
// reusing the same one across seeds.
type Generator[OSol any] interface {
	Generate(seed uint64) problem.Problem[OSol]
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc[OSol any] func(seed uint64) problem.Problem[OSol]

// Generate implements Generator.
func (f GeneratorFunc[OSol]) Generate(seed uint64) problem.Problem[OSol] { return f(seed) }
