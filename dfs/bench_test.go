package dfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on an undirected path of 10,000 vertices.
// The graph is built once; each iteration walks it from one end.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}
