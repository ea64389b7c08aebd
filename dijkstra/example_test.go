// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra() {
	g := core.MustNewGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	dist, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v, d := range dist.All() {
		fmt.Printf("dist[%s]=%d\n", v, d)
	}

	// Output:
	// dist[A]=0
	// dist[B]=1
	// dist[C]=3
}

// ExampleShortestPath reconstructs the cheapest route between two vertices.
func ExampleShortestPath() {
	g := core.MustNewGraph[string]()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)
	_ = g.AddEdge("B", "D", 3)
	_ = g.AddEdge("C", "D", 5)

	path, cost, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, cost)

	// Output:
	// [A B D] 5
}
