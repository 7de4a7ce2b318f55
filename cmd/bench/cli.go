package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/heurigo/anneal"
	"github.com/katalvlaran/heurigo/bench"
	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/localsearch"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/rng"
	"github.com/katalvlaran/heurigo/stopcond"
)

// bkeeper is the keeper type every NumberLine-based solve closure reports
// to; spelled out once since every solver below needs it.
type bkeeper = keeper.Keeper[int]

// CLI is the bench driver's flag set: instance count, time budget, seed,
// and solver selection, parsed with kong.Parse(&cli). Tunable engine
// parameters (Width, InitialTemp, ...) are left at
// their Go zero value by default rather than given a kong "default" tag, so
// that a --config preset can fill them in; firstNonZero{Int,Float} then
// falls back to a hardcoded constant only if neither the flag nor the
// preset set one.
type CLI struct {
	Solver string `arg:"" help:"Solver to benchmark." enum:"steepest-descent,first-improving,simulated-annealing,microcanonical,beam" default:"steepest-descent"`

	Config string `help:"YAML file of named solver presets." type:"existingfile" name:"config"`
	Preset string `help:"Named preset to load from --config." name:"preset"`

	Instances uint64        `help:"Number of seeded runs to aggregate." short:"n" default:"10"`
	Seed      uint64        `help:"Base seed; runs use Seed..Seed+Instances-1." default:"0"`
	Timeout   time.Duration `help:"Per-run wall-clock budget; 0 disables the timer (rejected for first-improving and microcanonical, which never stop on their own)." default:"2s"`

	Bound int `help:"NumberLine instance half-width, used by every solver except beam." default:"5"`
	Items int `help:"Knapsack item count, used only by -solver beam." default:"12"`

	Width       int     `help:"Beam width, used only by -solver beam."`
	InitialTemp float64 `help:"Initial temperature, used only by simulated-annealing." name:"initial-temp"`
	CoolingA    float64 `help:"Arithmetic-geometric cooling coefficient a, used only by simulated-annealing." name:"cooling-a"`
	CoolingB    float64 `help:"Arithmetic-geometric cooling coefficient b, used only by simulated-annealing." name:"cooling-b"`
	Energy0     float64 `help:"Initial demon energy, used only by microcanonical."`
}

// seedRange returns base, base+1, ..., base+n-1.
func seedRange(base, n uint64) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = base + uint64(i)
	}
	return seeds
}

func newStop(timeout time.Duration) stopcond.StopCondition {
	if timeout <= 0 {
		return stopcond.Never{}
	}
	return stopcond.NewTimeStop(stopcond.NewWallTimer(), timeout)
}

// Run dispatches to the requested solver and prints its aggregate to
// stderr.
func (c *CLI) Run() error {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}
	preset := cfg.preset(c.Preset)

	if (c.Solver == "first-improving" || c.Solver == "microcanonical") && c.Timeout <= 0 {
		return fmt.Errorf("-solver %s never halts on its own (every rejected move keeps it looping); --timeout must be > 0", c.Solver)
	}

	width := firstNonZeroInt(c.Width, preset.Width, 4)
	initialTemp := firstNonZeroFloat(c.InitialTemp, preset.InitialTemp, 2)
	coolingA := firstNonZeroFloat(c.CoolingA, preset.CoolingA, 1)
	coolingB := firstNonZeroFloat(c.CoolingB, preset.CoolingB, -0.1)
	energy0 := firstNonZeroFloat(c.Energy0, preset.Energy0, 1)

	stop := newStop(c.Timeout)
	seeds := seedRange(c.Seed, c.Instances)

	var agg bench.AggregateResult
	switch c.Solver {
	case "steepest-descent":
		gen := bench.GeneratorFunc[int](func(seed uint64) problem.Problem[int] {
			return examples.NewNumberLine(c.Bound)
		})
		agg = bench.Aggregate[int](c.Solver, gen, solveSteepestDescent(c.Bound), stop, seeds)
	case "first-improving":
		box := &seedBox{}
		gen := bench.GeneratorFunc[int](func(seed uint64) problem.Problem[int] {
			box.seed = seed
			return examples.NewNumberLine(c.Bound)
		})
		agg = bench.Aggregate[int](c.Solver, gen, solveFirstImproving(c.Bound, box), stop, seeds)
	case "simulated-annealing":
		box := &seedBox{}
		gen := bench.GeneratorFunc[int](func(seed uint64) problem.Problem[int] {
			box.seed = seed
			return examples.NewNumberLine(c.Bound)
		})
		agg = bench.Aggregate[int](c.Solver, gen, solveSimulatedAnnealing(c.Bound, initialTemp, coolingA, coolingB, box), stop, seeds)
	case "microcanonical":
		box := &seedBox{}
		gen := bench.GeneratorFunc[int](func(seed uint64) problem.Problem[int] {
			box.seed = seed
			return examples.NewNumberLine(c.Bound)
		})
		agg = bench.Aggregate[int](c.Solver, gen, solveMicrocanonical(c.Bound, energy0, box), stop, seeds)
	case "beam":
		agg = runBeam(width, c.Items, seeds, stop)
	}

	renderReport(agg)
	return nil
}

// seedBox threads the seed RunSolver generated into the solve closure that
// runs immediately after: bench.Solve carries no seed parameter of its own,
// and Aggregate's loop is strictly sequential, so writing here and reading
// there in the same synchronous call is safe.
type seedBox struct {
	seed uint64
}

func solveSteepestDescent(bound int) bench.Solve[int] {
	return func(p problem.Problem[int], k bkeeper, stop stopcond.StopCondition) {
		n := examples.NewNumberLine(bound)
		e := localsearch.NewSteepestDescent[int, examples.NumberLineStep](p, n, bound)
		e.Run(k, stop)
	}
}

func solveFirstImproving(bound int, box *seedBox) bench.Solve[int] {
	return func(p problem.Problem[int], k bkeeper, stop stopcond.StopCondition) {
		n := examples.NewNumberLine(bound)
		r := rng.NewSplitmix64(box.seed)
		e := localsearch.NewFirstImprovingRandom[int, examples.NumberLineStep](p, n, r, bound)
		e.Run(k, stop)
	}
}

func solveSimulatedAnnealing(bound int, initialTemp, a, b float64, box *seedBox) bench.Solve[int] {
	return func(p problem.Problem[int], k bkeeper, stop stopcond.StopCondition) {
		n := examples.NewNumberLine(bound)
		r := rng.NewSplitmix64(box.seed)
		cooling := anneal.NewArithmeticGeometricCooling(initialTemp, a, b)
		e := anneal.NewSimulatedAnnealing[int, examples.NumberLineStep](p, n, r, cooling, bound)
		e.Run(k, stop)
	}
}

func solveMicrocanonical(bound int, energy0 float64, box *seedBox) bench.Solve[int] {
	return func(p problem.Problem[int], k bkeeper, stop stopcond.StopCondition) {
		n := examples.NewNumberLine(bound)
		r := rng.NewSplitmix64(box.seed)
		e := anneal.NewMicrocanonical[int, examples.NumberLineStep](p, n, r, energy0, bound)
		e.Run(k, stop)
	}
}
