package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heurigo/bench"
	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/localsearch"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/stopcond"
)

// fixedStartGenerator always hands back the same NumberLine instance,
// enough to exercise RunSolver/Aggregate deterministically without needing
// a seed-dependent instance space.
type fixedStartGenerator struct {
	bound int
}

func (g fixedStartGenerator) Generate(seed uint64) problem.Problem[int] {
	return examples.NewNumberLine(g.bound)
}

func steepestDescentFromFour(p problem.Problem[int], k keeper.Keeper[int], stop stopcond.StopCondition) {
	n := examples.NewNumberLine(5)
	e := localsearch.NewSteepestDescent[int, examples.NumberLineStep](p, n, 4)
	e.Run(k, stop)
}

func TestRunSolver_ReportsFinalPrimalAndIterations(t *testing.T) {
	gen := fixedStartGenerator{bound: 5}
	result := bench.RunSolver[int](gen, steepestDescentFromFour, stopcond.Never{}, 0)

	require.Equal(t, objective.Obj(0), result.Primal, "descent converges to s=0")
	require.NotZero(t, result.Iterations, "expected at least one recorded iteration")
	require.NotEmpty(t, result.RunID.String())
}

func TestAggregate_AveragesAcrossSeeds(t *testing.T) {
	gen := fixedStartGenerator{bound: 5}
	seeds := bench.Seeds(3)
	agg := bench.Aggregate[int]("steepest-descent", gen, steepestDescentFromFour, stopcond.Never{}, seeds)

	require.Len(t, agg.Runs, 3)
	require.Zero(t, agg.AvgLB, "every run converges to the same optimum")
	require.Equal(t, "steepest-descent", agg.Name)
}

func TestSeeds_ProducesSequentialRange(t *testing.T) {
	got := bench.Seeds(4)
	require.Equal(t, []uint64{0, 1, 2, 3}, got)
}
