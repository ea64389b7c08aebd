// Package core provides the weighted undirected Graph of wgraph, built entirely
// on the hand-rolled containers of package collections.
//
// The Graph G = (V,E) stores
//
//	adj[u][w] = weight   and   adj[w][u] = weight
//
// for every edge {u, w}, in a chained collections.Map keyed by vertex whose
// values are per-vertex neighbor-maps. Vertex keys may be any comparable type;
// the zero value of that type ("" for strings) is reserved as the null vertex
// and rejected by mutations.
//
// Why this shape?
//
//   - O(1) expected vertex and edge lookups.
//   - One weight per unordered pair: re-adding an edge overwrites its weight.
//   - Reproducible enumeration: Vertices(), Adjacent() and Edges() follow the
//     table order of seedless hash functions, so traversal orders and matrix
//     layouts are stable for a fixed sequence of operations.
//
// Configuration Options (GraphOption):
//
//	– WithBucketCount(n)   bucket count of every table (default 16, static).
//	– WithLoadFactor(f)    opt in to rehashing at size > buckets*f.
//	– WithLogger(l)        charmbracelet/log logger for debug mutation logs.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) error                  // O(1), idempotent
//	HasVertex(v V) bool                   // O(1)
//	RemoveVertex(v V) bool                // O(V): purges v from every neighbor-map
//
//	// Edge lifecycle
//	AddEdge(from, to V, weight int) error // O(1), creates endpoints, symmetric
//	RemoveEdge(from, to V) bool           // O(1), symmetric
//	HasEdge(from, to V) bool              // O(1)
//	EdgeWeight(from, to V) (int, bool)    // O(1)
//
//	// Query
//	Vertices() *collections.Array[V]      // fresh copy
//	Adjacent(v V) *collections.Array[V]   // fresh copy, empty if v is absent
//	Neighbors(v V) iter.Seq2[V, int]      // live read-only view
//	Edges() *collections.Array[Edge[V]]   // flat list, each edge in both directions
//	VertexCount() int / EdgeCount() int / Degree(v V)
//
// Algorithms live in sibling packages: dfs, bfs, dijkstra, bellmanford,
// floydwarshall; canonical text dumps in render.
//
// Errors:
//
//	ErrEmptyVertex      – zero-value vertex passed to AddVertex/AddEdge
//	ErrVertexNotFound   – missing vertex (Degree; wrapped by algorithm packages)
//	ErrOptionViolation  – invalid GraphOption
//
// A Graph is not safe for concurrent use.
package core
