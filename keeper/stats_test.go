package keeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heurigo/objective"
)

type fakeTimer struct{ d time.Duration }

func (f *fakeTimer) Time() time.Duration { return f.d }

// TestStats_MonotoneEnvelope feeds the sequence add_solution(_,50),
// add_solution(_,60), add_solution(_,40), add_dual_bound(10),
// add_dual_bound(5), add_dual_bound(20) and checks the recorded envelope
// is primal [50,50,40] and dual [10,10,20] — each series only ever moves
// in its improving direction.
func TestStats_MonotoneEnvelope(t *testing.T) {
	ft := &fakeTimer{}
	st := NewStats[int](NewSimple[int](), ft)

	st.AddSolution(0, objective.Obj(50))
	st.AddSolution(0, objective.Obj(60))
	st.AddSolution(0, objective.Obj(40))
	st.AddDualBound(objective.Obj(10))
	st.AddDualBound(objective.Obj(5))
	st.AddDualBound(objective.Obj(20))

	var primalEnvelope []objective.Obj
	var dualEnvelope []objective.Obj
	for _, e := range st.Events() {
		switch e.Kind {
		case PrimalUpdate:
			primalEnvelope = append(primalEnvelope, e.PrimalBound)
		case DualUpdate:
			dualEnvelope = append(dualEnvelope, e.DualBound)
		}
	}

	require.Equal(t, []objective.Obj{50, 50, 40}, primalEnvelope)
	require.Equal(t, []objective.Obj{10, 10, 20}, dualEnvelope)
}

func TestStats_ForwardsToUnderlying(t *testing.T) {
	ft := &fakeTimer{}
	underlying := NewSimple[string]()
	st := NewStats[string](underlying, ft)

	st.AddSolution("a", objective.Obj(5))
	st.AddSolution("b", objective.Obj(10)) // worse, should not replace best

	sol, obj, ok := st.BestSolution()
	require.True(t, ok)
	require.Equal(t, "a", sol)
	require.Equal(t, objective.Obj(5), obj)
}

func TestSimple_AddSolutionFunc_LazyOnlyOnImprovement(t *testing.T) {
	k := NewSimple[int]()
	k.AddSolution(1, objective.Obj(10))

	called := false
	k.AddSolutionFunc(func() int { called = true; return 2 }, objective.Obj(20))
	require.False(t, called, "AddSolutionFunc must not call f when obj does not improve the best")

	k.AddSolutionFunc(func() int { called = true; return 3 }, objective.Obj(5))
	require.True(t, called, "AddSolutionFunc must call f when obj improves the best")

	sol, obj, _ := k.BestSolution()
	require.Equal(t, 3, sol)
	require.Equal(t, objective.Obj(5), obj)
}

func TestStats_RingBufferBoundsLog(t *testing.T) {
	ft := &fakeTimer{}
	st := NewStatsRingBuffer[int](NewSimple[int](), ft, 2)
	st.AddSolution(0, objective.Obj(30))
	st.AddSolution(0, objective.Obj(20))
	st.AddSolution(0, objective.Obj(10))

	require.Lenf(t, st.Events(), 2, "expected ring buffer to cap log at 2 events")
	last := st.Events()[len(st.Events())-1]
	require.Equal(t, objective.Obj(10), last.PrimalBound, "expected most recent event to reflect latest envelope")
}
