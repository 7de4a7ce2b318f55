package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heurigo/anneal"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/problem"
	"github.com/katalvlaran/heurigo/rng"
)

// sequencedNeighbor always proposes the single configured next-objective,
// one move per run.
type sequencedNeighbor struct {
	nextObjs []objective.Obj
	i        int
}

func (n *sequencedNeighbor) RandomNeighborID(p problem.Problem[int], s int, r rng.Rng) int {
	return n.i
}
func (n *sequencedNeighbor) NeighborObj(p problem.Problem[int], s int, nid int) objective.Obj {
	return n.nextObjs[nid]
}
func (n *sequencedNeighbor) RandomNeighbor(p problem.Problem[int], s int, nid int) int {
	obj := n.nextObjs[nid]
	if n.i < len(n.nextObjs)-1 {
		n.i++
	}
	return int(obj.Real())
}

func TestMicrocanonical_ConservesObjPlusEnergyAcrossAcceptedMoves(t *testing.T) {
	p := identityProblem{}
	n := &sequencedNeighbor{nextObjs: []objective.Obj{12}}
	r := &fakeRng{values: []float64{0}}
	e := anneal.NewMicrocanonical[int, int](p, n, r, 3, 10)
	k := keeper.NewSimple[int]()

	e.Run(k, &stopAfterN{n: 1})
	sol, obj := e.Best()
	require.Equal(t, 12, sol, "after accepting delta=2")
	require.Equal(t, objective.Obj(12), obj, "after accepting delta=2")
	require.Equal(t, 1.0, e.Energy(), "after accepting delta=2")
	require.Equal(t, 13.0, obj.Real()+e.Energy(), "obj+E must be conserved relative to the pre-move total (10+3=13)")
}

func TestMicrocanonical_RejectsWhenEnergyBelowDelta(t *testing.T) {
	p := identityProblem{}
	n := &sequencedNeighbor{nextObjs: []objective.Obj{12}}
	r := &fakeRng{values: []float64{0}}
	e := anneal.NewMicrocanonical[int, int](p, n, r, 1, 10)
	k := keeper.NewSimple[int]()

	e.Run(k, &stopAfterN{n: 1})
	sol, obj := e.Best()
	require.Equal(t, 10, sol, "delta=2 > E=1 must reject")
	require.Equal(t, objective.Obj(10), obj, "delta=2 > E=1 must reject")
	require.Equal(t, 1.0, e.Energy(), "delta=2 > E=1 must reject")
}

func TestMicrocanonical_GainsEnergyOnNegativeDelta(t *testing.T) {
	p := identityProblem{}
	n := &sequencedNeighbor{nextObjs: []objective.Obj{6}}
	r := &fakeRng{values: []float64{0}}
	e := anneal.NewMicrocanonical[int, int](p, n, r, 1, 10)
	k := keeper.NewSimple[int]()

	e.Run(k, &stopAfterN{n: 1})
	sol, obj := e.Best()
	require.Equal(t, 6, sol, "delta=-4, E=1")
	require.Equal(t, objective.Obj(6), obj, "delta=-4, E=1")
	require.Equal(t, 5.0, e.Energy(), "delta=-4, E=1")
}

func TestMicrocanonical_PanicsOnNegativeInitialEnergy(t *testing.T) {
	require.Panics(t, func() {
		anneal.NewMicrocanonical[int, int](identityProblem{}, &sequencedNeighbor{}, &fakeRng{values: []float64{0}}, -1, 10)
	}, "expected panic for negative initial demon energy")
}
