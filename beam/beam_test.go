package beam_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heurigo/beam"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/stopcond"
)

// toyTree is a small fixture: root has children A (goodness 3) and B
// (goodness 1); B has one leaf child C (objective 7); A has one leaf
// child D (objective 5).
type toyTree struct {
	children map[string][]string
	goodness map[string]objective.Guide
	objs     map[string]objective.Obj
}

func newToyTree() *toyTree {
	return &toyTree{
		children: map[string][]string{
			"root": {"A", "B"},
			"A":    {"D"},
			"B":    {"C"},
		},
		goodness: map[string]objective.Guide{
			"A": 3,
			"B": 1,
		},
		objs: map[string]objective.Obj{
			"C": 7,
			"D": 5,
		},
	}
}

func (t *toyTree) Root() string { return "root" }

func (t *toyTree) IsLeaf(n string) bool {
	_, hasChildren := t.children[n]
	return !hasChildren
}

func (t *toyTree) Objective(n string) (objective.Obj, bool) {
	o, ok := t.objs[n]
	return o, ok
}

func (t *toyTree) ToSolution(n string) (string, bool) {
	if !t.IsLeaf(n) {
		return "", false
	}
	return n, true
}

func (t *toyTree) ChildrenID(n string) []string {
	return t.children[n]
}

func (t *toyTree) Child(n string, cid string) string {
	return cid
}

func (t *toyTree) ChildGoodness(n string, cid string) objective.Guide {
	return t.goodness[cid]
}

func TestSearch_GreedyBeamFollowsGuideNotObjective(t *testing.T) {
	tree := newToyTree()
	k := keeper.NewSimple[string]()

	beam.Search[string, string, string](tree, k, stopcond.Never{}, beam.WithWidth[string](1))

	sol, obj, ok := k.BestSolution()
	require.True(t, ok, "expected a solution to be found")
	require.Equal(t, "C", sol, "guide must steer the beam, not objective")
	require.Equal(t, objective.Obj(7), obj, "guide must steer the beam, not objective")
}

// wideTree mirrors toyTree but with a wider branching factor, used to
// cross-check Search's top-W selection against a reference full-sort
// implementation.
type wideTree struct {
	childGoodness map[string]objective.Guide
	leafObj       map[string]objective.Obj
}

func newWideTree() *wideTree {
	return &wideTree{
		childGoodness: map[string]objective.Guide{
			"n1": 5, "n2": 1, "n3": 9, "n4": 2, "n5": 7,
		},
		leafObj: map[string]objective.Obj{
			"n1": 100, "n2": 10, "n3": 90, "n4": 20, "n5": 70,
		},
	}
}

func (t *wideTree) Root() string { return "root" }
func (t *wideTree) IsLeaf(n string) bool {
	return n != "root"
}
func (t *wideTree) Objective(n string) (objective.Obj, bool) {
	o, ok := t.leafObj[n]
	return o, ok
}
func (t *wideTree) ToSolution(n string) (string, bool) {
	if n == "root" {
		return "", false
	}
	return n, true
}
func (t *wideTree) ChildrenID(n string) []string {
	if n != "root" {
		return nil
	}
	return []string{"n1", "n2", "n3", "n4", "n5"}
}
func (t *wideTree) Child(n string, cid string) string { return cid }
func (t *wideTree) ChildGoodness(n string, cid string) objective.Guide {
	return t.childGoodness[cid]
}

func TestSearch_TopWSelectionMatchesFullSortReference(t *testing.T) {
	tree := newWideTree()

	type entry struct {
		cid     string
		goodness objective.Guide
	}
	all := []entry{}
	for cid, g := range tree.childGoodness {
		all = append(all, entry{cid, g})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].goodness < all[j].goodness })
	want := map[string]bool{}
	const w = 3
	for i := 0; i < w; i++ {
		want[all[i].cid] = true
	}

	k := keeper.NewSimple[string]()
	beam.Search[string, string, string](tree, k, stopcond.Never{}, beam.WithWidth[string](w))

	sol, _, ok := k.BestSolution()
	require.True(t, ok, "expected a solution to be found")
	require.Truef(t, want[sol], "best solution %q is not among the top-%d by goodness %v", sol, w, want)
}
