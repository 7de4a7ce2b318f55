package localsearch_test

import (
	"fmt"

	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/localsearch"
	"github.com/katalvlaran/heurigo/stopcond"
)

// ExampleSteepestDescent walks the s^2 parabola from s=4 to its minimum,
// always taking the better of the two neighbours (s-1, s+1) until neither
// improves.
//
// Complexity: O(steps * |neighbourhood|), here O(4*2).
func ExampleSteepestDescent() {
	p := examples.NewNumberLine(5)
	n := examples.NewNumberLine(5)
	e := localsearch.NewSteepestDescent[int, examples.NumberLineStep](p, n, 4)
	k := keeper.NewSimple[int]()

	e.Run(k, stopcond.Never{})

	sol, obj := e.Best()
	fmt.Printf("sol=%d obj=%v\n", sol, obj)
	// Output:
	// sol=0 obj=0
}
