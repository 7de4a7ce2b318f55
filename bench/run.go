package bench

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/stopcond"
)

// Solve drives one solver to completion against p, reporting every
// accepted solution and dual bound to k until stop fires. Constructing the
// concrete engine (beam.Search, a localsearch engine's Run, an anneal
// engine's Run) and closing over it into a function value of this shape is
// the caller's job; RunSolver only needs to invoke it uniformly.
type Solve[OSol any] func(p problem.Problem[OSol], k keeper.Keeper[OSol], stop stopcond.StopCondition)

// RunResult is the outcome of one (generator, solve, stop, seed)
// combination: the final primal and dual bounds, the iteration count, the
// wall-clock time taken, and a unique id identifying this specific run.
type RunResult struct {
	RunID      uuid.UUID
	Primal     objective.Obj
	Dual       objective.Obj
	Iterations uint64
	WallTime   time.Duration
}

// RunSolver generates one instance from seed, runs solve against it with a
// fresh event-logging keeper, and reports the resulting RunResult.
func RunSolver[OSol any](gen Generator[OSol], solve Solve[OSol], stop stopcond.StopCondition, seed uint64) RunResult {
	p := gen.Generate(seed)
	timer := stopcond.NewWallTimer()
	sk := keeper.NewStats[OSol](keeper.NewSimple[OSol](), timer)

	solve(p, sk, stop)

	result := RunResult{
		RunID:      uuid.New(),
		Primal:     objective.Unfeasible,
		Dual:       objective.Unbounded,
		Iterations: sk.Iters(),
		WallTime:   timer.Time(),
	}
	if events := sk.Events(); len(events) > 0 {
		last := events[len(events)-1]
		result.Primal = last.PrimalBound
		result.Dual = last.DualBound
	}
	return result
}
