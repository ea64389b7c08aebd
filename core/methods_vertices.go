// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() follows the vertex table's enumeration order (bucket order,
//     newest collision first), a pure function of the operation sequence.

package core

import "github.com/katalvlaran/wgraph/collections"

// AddVertex inserts v with an empty neighbor-map if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject the zero value (ErrEmptyVertex).
//   - Stage 2: If v is already present, return without touching its neighbors.
//   - Stage 3: Register v with a fresh neighbor-map.
//
// Errors:
//   - ErrEmptyVertex: if v is the zero value of V.
//
// Complexity:
//   - Time O(1) expected (O(chain) worst case), Space O(buckets) for the new map.
func (g *Graph[V]) AddVertex(v V) error {
	if isEmpty(v) {
		return ErrEmptyVertex
	}
	if g.adj.ContainsKey(v) {
		return nil
	}
	g.adj.Put(v, g.newNeighbors())
	g.logger.Debug("add vertex", "vertex", v)

	return nil
}

// HasVertex reports whether v exists.
func (g *Graph[V]) HasVertex(v V) bool {
	return g.adj.ContainsKey(v)
}

// RemoveVertex deletes v and every edge incident to it.
// It reports whether v existed; removing an absent vertex is a no-op.
//
// Implementation:
//   - Stage 1: Return false if v is absent.
//   - Stage 2: Snapshot the vertex keys, then delete v from each neighbor-map by key.
//   - Stage 3: Delete v's own entry.
//
// Behavior highlights:
//   - The vertex table is never mutated while it is being enumerated.
//   - Afterwards no neighbor-map references v.
//
// Complexity:
//   - Time O(V) map removals, Space O(V) for the snapshot.
func (g *Graph[V]) RemoveVertex(v V) bool {
	if !g.adj.ContainsKey(v) {
		g.logger.Debug("remove vertex: not found", "vertex", v)
		return false
	}

	for other := range g.Vertices().Values() {
		if nbrs, ok := g.adj.Get(other); ok {
			nbrs.Remove(v)
		}
	}
	g.adj.Remove(v)
	g.logger.Debug("remove vertex", "vertex", v)

	return true
}

// Vertices returns a fresh Array of all vertices in enumeration order.
// Complexity: O(V + buckets).
func (g *Graph[V]) Vertices() *collections.Array[V] {
	return g.adj.Keys()
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int {
	return g.adj.Size()
}
