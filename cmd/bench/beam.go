package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/heurigo/bench"
	"github.com/katalvlaran/heurigo/beam"
	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/stopcond"
)

// runBeam aggregates beam search over one randomized Knapsack instance per
// seed. beam.Search takes a tree, not a problem.Problem, so it cannot be
// driven through bench.Generator/bench.Solve the way the neighbourhood
// solvers below are; this mirrors bench.Aggregate's own averaging instead
// of forcing beam through an interface it does not implement.
func runBeam(width, itemCount int, seeds []uint64, stop stopcond.StopCondition) bench.AggregateResult {
	runs := make([]bench.RunResult, 0, len(seeds))
	var sumLB, sumIter float64
	var sumTime time.Duration

	for _, seed := range seeds {
		tree := randomKnapsack(seed, itemCount)
		timer := stopcond.NewWallTimer()
		sk := keeper.NewStats[[]bool](keeper.NewSimple[[]bool](), timer)

		beam.Search[[]bool, examples.KnapsackNode, examples.KnapsackChildId](
			tree, sk, stop.Clone(), beam.WithWidth[examples.KnapsackNode](width),
		)

		r := bench.RunResult{
			RunID:      uuid.New(),
			Primal:     sk.BestObj(),
			Dual:       sk.BestObj(),
			Iterations: sk.Iters(),
			WallTime:   timer.Time(),
		}
		runs = append(runs, r)
		sumLB += r.Primal.Real()
		sumIter += float64(r.Iterations)
		sumTime += r.WallTime
	}

	agg := bench.AggregateResult{Name: "beam", Runs: runs}
	if n := float64(len(seeds)); n > 0 {
		agg.AvgLB = sumLB / n
		agg.AvgUB = agg.AvgLB
		agg.AvgIter = sumIter / n
		agg.AvgTime = sumTime / time.Duration(len(seeds))
	}
	return agg
}
