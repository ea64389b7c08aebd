// Package dfs implements depth-first traversal of a core.Graph.
//
// What:
//
//   - Walk(g, start, visit) explores as far as possible along each branch
//     before backtracking, using an explicit collections.Stack (no recursion,
//     so deep graphs cannot overflow the goroutine stack).
//   - DFS(g, start) collects the same order into a collections.Array.
//
// Ordering:
//
//	Neighbors are pushed in reverse Adjacent(v) order and the visited check
//	happens at pop time, so the walk follows the first neighbor first. For
//	the path A–B, A–C, B–D built on a default string graph:
//
//	  DFS(g, "A") → [A B D C]
//
// Complexity:
//
//   - Time O(V+E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph (wraps core.ErrVertexNotFound)
//   - visit errors            propagated, wrapped with the offending vertex
package dfs
