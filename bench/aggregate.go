package bench

import (
	"time"

	"github.com/katalvlaran/heurigo/stopcond"
)

// AggregateResult is a named solver's results across every seed in a run,
// plus four running averages: AvgLB, the average final primal bound; AvgUB,
// the average final dual bound; the average iteration count; and the
// average wall time.
type AggregateResult struct {
	Name    string
	Runs    []RunResult
	AvgLB   float64
	AvgUB   float64
	AvgIter float64
	AvgTime time.Duration
}

// Aggregate runs solve against gen once per seed and folds the results into
// an AggregateResult named name. stop is cloned before each run so that a
// time-budgeted condition gets a fresh budget per seed instead of the first
// run exhausting it for every run after it.
func Aggregate[OSol any](name string, gen Generator[OSol], solve Solve[OSol], stop stopcond.StopCondition, seeds []uint64) AggregateResult {
	runs := make([]RunResult, 0, len(seeds))
	var sumLB, sumUB, sumIter float64
	var sumTime time.Duration
	for _, seed := range seeds {
		r := RunSolver[OSol](gen, solve, stop.Clone(), seed)
		runs = append(runs, r)
		sumLB += r.Primal.Real()
		sumUB += r.Dual.Real()
		sumIter += float64(r.Iterations)
		sumTime += r.WallTime
	}
	n := float64(len(seeds))
	agg := AggregateResult{Name: name, Runs: runs}
	if n > 0 {
		agg.AvgLB = sumLB / n
		agg.AvgUB = sumUB / n
		agg.AvgIter = sumIter / n
		agg.AvgTime = sumTime / time.Duration(len(seeds))
	}
	return agg
}

// Seeds returns the sequence 0..n-1, one seed per requested run.
func Seeds(n uint64) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = uint64(i)
	}
	return seeds
}
