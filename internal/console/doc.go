// Package console interprets the wgraph command language against a single
// string-keyed core.Graph.
//
// A Session executes one line at a time and writes human-readable results to
// its output writer. Input that the user can fix (a missing name, a bad
// weight, an unknown vertex) is reported as an error wrapping ErrUsage and
// never modifies the graph.
//
// # Commands
//
//	vertex V           add vertex V
//	edge A B W         add or re-weight edge A–B (both vertices must exist)
//	rmvertex V         remove V and its edges
//	rmedge A B         remove edge A–B
//	matrix             adjacency matrix
//	floyd              Floyd–Warshall distance matrix
//	bellman V          Bellman–Ford distances from V
//	dijkstra V         Dijkstra distances from V
//	dfs V / bfs V      traversal order from V
//	info               counts and adjacency lists
//	load FILE          merge a TOML graph description
//	clear              remove everything
//	help               list commands
//
// Graph description files are TOML:
//
//	buckets = 16
//	load_factor = 0.0
//	vertices = ["A", "B"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 5
package console
