package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/bellmanford"
	"github.com/katalvlaran/wgraph/core"
)

func ExampleBellmanFord() {
	g := core.MustNewGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddVertex("D")

	dist, _ := bellmanford.BellmanFord(g, "A")
	for v, d := range dist.All() {
		if d == bellmanford.Infinity {
			fmt.Printf("%s: INF\n", v)
			continue
		}
		fmt.Printf("%s: %d\n", v, d)
	}

	// Output:
	// A: 0
	// B: 1
	// C: 3
	// D: INF
}
