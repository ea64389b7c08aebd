// Package wgraph is an in-memory weighted undirected graph engine built on
// hand-rolled generic containers.
//
// Packages:
//
//	collections    – Array, chained hash Map, Set, Stack, Queue, hashers
//	core           – Graph[V]: vertices, symmetric weighted edges, queries
//	dfs, bfs       – traversals over Adjacent() order
//	dijkstra       – single-source shortest paths (non-negative weights)
//	bellmanford    – single-source shortest paths, any weights
//	floydwarshall  – all-pairs distance matrix
//	prim_kruskal   – minimum spanning trees
//	builder        – deterministic topology generators
//	render         – canonical text dumps of graphs and results
//
// The wgraph command (cmd/wgraph) drives all of the above from scripts, TOML
// graph files or an interactive shell.
//
// Quick start:
//
//	g := core.MustNewGraph[string]()
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("B", "C", 1)
//	dist, _ := dijkstra.Dijkstra(g, "A")
//	d, _ := dist.Get("C") // 5
//
// Enumeration order of vertices and neighbors follows the hash-table layout,
// which is a pure function of the operation sequence, so every algorithm and
// dump is reproducible.
package wgraph
