package localsearch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/localsearch"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/stopcond"
)

type fakeTimer struct{}

func (fakeTimer) Time() time.Duration { return 0 }

func TestSteepestDescent_ParabolaFromFour(t *testing.T) {
	p := examples.NewNumberLine(5)
	n := examples.NewNumberLine(5)
	e := localsearch.NewSteepestDescent[int, examples.NumberLineStep](p, n, 4)
	k := keeper.NewStats[int](keeper.NewSimple[int](), &fakeTimer{})

	e.Run(k, stopcond.Never{})

	var gotObjs []objective.Obj
	for _, ev := range k.Events() {
		if ev.Kind == keeper.PrimalUpdate {
			gotObjs = append(gotObjs, ev.PrimalBound)
		}
	}
	require.Equal(t, []objective.Obj{16, 9, 4, 1, 0}, gotObjs)

	sol, obj := e.Best()
	require.Equal(t, 0, sol)
	require.Equal(t, objective.Obj(0), obj)
}
