// Package bfs provides breadth-first traversal of a core.Graph.
//
// What
//
//   - Walk(g, start, visit) visits vertices in non-decreasing hop distance
//     from start, using a collections.Queue.
//   - WalkLevels(g, start, visit) additionally reports each vertex's depth.
//   - BFS(g, start) collects the visit order; Depths(g, start) the hop counts.
//
// Determinism
//
//	Neighbors are enqueued in Adjacent(v) order, which is the graph's
//	neighbor-map order, so the visit sequence is reproducible for a fixed
//	sequence of graph mutations. A vertex is marked visited when it is
//	enqueued, never when it is dequeued.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	order, err := bfs.BFS(g, "A")
//	if errors.Is(err, core.ErrVertexNotFound) {
//		// start vertex missing; order is empty
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - Wrapped visit errors.
package bfs
