package beam

import (
	"math"

	"github.com/katalvlaran/heurigo/dedup"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/objective"
	"github.com/katalvlaran/heurigo/stopcond"
	"github.com/katalvlaran/heurigo/treespace"
)

// Tree is the capability beam.Search requires: children identified cheaply
// (TreeIndirect) and ranked cheaply by a problem-specific goodness
// (TreeIndirectGuided), without needing to materialise a child to learn
// whether it is worth keeping.
type Tree[Sol, Node, ChildId any] interface {
	treespace.TreeIndirectGuided[Sol, Node, ChildId]
}

// candidate is one entry of a beamHeap: the guide value, the index of the
// parent node in the current beam, and the child identifier. valid is false
// for the heap's initial filler entries, standing in for Rust's
// Option<ChildId>.
type candidate[ChildId any] struct {
	guide  objective.Guide
	parent int
	cid    ChildId
	valid  bool
}

// beamHeap is a 0-indexed bounded max-heap of size W, keyed by guide value:
// it always holds the W smallest guides seen via add, with the largest of
// those W at the root. This mirrors the original BeamHeap's sift-down
// top-W selection.
type beamHeap[ChildId any] struct {
	entries []candidate[ChildId]
}

func newBeamHeap[ChildId any](width int) *beamHeap[ChildId] {
	entries := make([]candidate[ChildId], width)
	for i := range entries {
		entries[i].guide = objective.Guide(math.Inf(1))
	}
	return &beamHeap[ChildId]{entries: entries}
}

func (h *beamHeap[ChildId]) add(g objective.Guide, parent int, cid ChildId) {
	if g >= h.entries[0].guide {
		return
	}
	h.entries[0] = candidate[ChildId]{guide: g, parent: parent, cid: cid, valid: true}
	i := 0
	for i*2+1 < len(h.entries) {
		j := i*2 + 1
		if j+1 < len(h.entries) && h.entries[j+1].guide > h.entries[j].guide {
			j++
		}
		if h.entries[i].guide >= h.entries[j].guide {
			break
		}
		h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
		i = j
	}
}

func (h *beamHeap[ChildId]) survivors() []candidate[ChildId] {
	out := make([]candidate[ChildId], 0, len(h.entries))
	for _, e := range h.entries {
		if e.valid {
			out = append(out, e)
		}
	}
	return out
}

// Search runs layer-synchronous beam search over tree, reporting every leaf
// it reaches to k, until stop fires or the beam empties out. WithWidth is
// mandatory; Search panics if it was not supplied.
func Search[Sol, Node, ChildId any](
	tree Tree[Sol, Node, ChildId],
	k keeper.Keeper[Sol],
	stop stopcond.StopCondition,
	opts ...Option[Node],
) {
	cfg := &searchConfig[Node]{width: 0, dedup: dedup.AlwaysEmptySet[Node]{}}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.width <= 0 {
		panic("beam: Search requires beam.WithWidth")
	}

	currentBeam := []Node{tree.Root()}
	bestObj := objective.Unfeasible

	k.Iter()
	for {
		if stop.Stop(bestObj, objective.Unbounded) {
			return
		}

		heap := newBeamHeap[ChildId](cfg.width)
		for i, n := range currentBeam {
			if tree.IsLeaf(n) {
				obj, ok := tree.Objective(n)
				if !ok {
					continue
				}
				node := n
				k.AddSolutionFunc(func() Sol {
					sol, _ := tree.ToSolution(node)
					return sol
				}, obj)
				if obj < bestObj {
					bestObj = obj
				}
				continue
			}
			for _, cid := range tree.ChildrenID(n) {
				g := tree.ChildGoodness(n, cid)
				heap.add(g, i, cid)
			}
		}

		survivors := heap.survivors()
		if len(survivors) == 0 {
			return
		}

		nextBeam := make([]Node, 0, len(survivors))
		for _, c := range survivors {
			child := tree.Child(currentBeam[c.parent], c.cid)
			if cfg.dedup.Insert(child) {
				continue
			}
			nextBeam = append(nextBeam, child)
		}
		if len(nextBeam) == 0 {
			return
		}
		currentBeam = nextBeam
		k.Iter()
	}
}
