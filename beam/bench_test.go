// Package beam_test benchmarks Search's layer-expansion loop: per layer, a
// bounded-heap scan of every child goodness followed by materialising the
// surviving width.
package beam_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/heurigo/beam"
	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/keeper"
	"github.com/katalvlaran/heurigo/stopcond"
)

// benchWidths are the beam widths exercised below.
var benchWidths = []int{1, 4, 16}

// benchItems builds n knapsack items with varied weight/value so neither
// the sort nor the goodness ranking degenerates to a tie on every entry.
func benchItems(n int) []examples.Item {
	items := make([]examples.Item, n)
	for i := range items {
		items[i] = examples.Item{
			Name:   fmt.Sprintf("item-%d", i),
			Weight: float64(1 + i%5),
			Value:  float64(1 + (i*7)%11),
		}
	}
	return items
}

// BenchmarkSearch runs full beam searches over a 20-item knapsack tree at
// several widths, covering the per-layer cost of ranking children into a
// bounded heap and materialising survivors.
//
// Complexity: O(depth * width * branching * log(width)) per run.
func BenchmarkSearch(b *testing.B) {
	items := benchItems(20)
	for _, width := range benchWidths {
		width := width
		b.Run(fmt.Sprintf("width=%d", width), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k := examples.NewKnapsack(items, 30)
				sk := keeper.NewSimple[[]bool]()
				beam.Search[[]bool, examples.KnapsackNode, examples.KnapsackChildId](
					k, sk, stopcond.Never{}, beam.WithWidth[examples.KnapsackNode](width),
				)
			}
		})
	}
}
