// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves bucket counts and chain order, so the clone enumerates
//     vertices, neighbors and edges exactly like the source.

package core

import "github.com/katalvlaran/wgraph/collections"

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Mutating the clone never affects g.
//
// Complexity: O(V + E + buckets).
func (g *Graph[V]) Clone() *Graph[V] {
	adj := g.adj.CloneFunc(func(nbrs *collections.Map[V, int]) *collections.Map[V, int] {
		return nbrs.Clone()
	})

	return &Graph[V]{adj: adj, cfg: g.cfg, logger: g.logger}
}

// CloneEmpty returns a Graph with identical configuration and vertices, but no edges.
// Complexity: O(V * buckets).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	clone := &Graph[V]{cfg: g.cfg, logger: g.logger}
	clone.adj = g.adj.CloneFunc(func(*collections.Map[V, int]) *collections.Map[V, int] {
		return clone.newNeighbors()
	})

	return clone
}

// Clear removes every vertex and edge while keeping the table configuration.
// Complexity: O(buckets).
func (g *Graph[V]) Clear() {
	g.adj.Clear()
	g.logger.Debug("clear graph")
}
