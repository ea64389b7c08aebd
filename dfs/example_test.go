package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
)

// ExampleDFS walks a small tree: the first neighbor's subtree is finished
// before the second neighbor is visited.
func ExampleDFS() {
	g := core.MustNewGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("B", "D", 1)

	order, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [A B D C]
}

// ExampleWalk streams vertices to a callback instead of collecting them.
func ExampleWalk() {
	g := core.MustNewGraph[int]()
	_ = g.AddEdge(1, 2, 7)
	_ = g.AddEdge(2, 3, 7)

	sep := ""
	_ = dfs.Walk(g, 3, func(v int) error {
		fmt.Print(sep, v)
		sep = " "
		return nil
	})
	fmt.Println()

	_, err := dfs.DFS(g, 9)
	fmt.Println(err)

	// Output:
	// 3 2 1
	// dfs: start core: vertex not found: 9
}
