package main

import (
	"fmt"

	"github.com/katalvlaran/heurigo/examples"
	"github.com/katalvlaran/heurigo/rng"
)

// randomKnapsack builds a reproducible Knapsack instance from seed: n items
// with weight and value drawn from a splitmix64 stream seeded accordingly,
// and a capacity set to half the total weight so that the instance is
// neither trivially emptiable nor trivially fully packable.
func randomKnapsack(seed uint64, n int) *examples.Knapsack {
	r := rng.NewSplitmix64(seed)
	items := make([]examples.Item, n)
	total := 0.0
	for i := range items {
		weight := 1 + r.Next01()*19
		value := 1 + r.Next01()*19
		items[i] = examples.Item{Name: fmt.Sprintf("item-%d", i), Weight: weight, Value: value}
		total += weight
	}
	return examples.NewKnapsack(items, total/2)
}
