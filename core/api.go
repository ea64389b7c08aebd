// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the graph configuration and a Stats snapshot.

package core

import "github.com/katalvlaran/wgraph/collections"

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int     // number of vertices
	EdgeCount   int     // distinct unordered pairs, loops included
	SelfLoops   int     // vertices adjacent to themselves
	Isolated    int     // vertices with an empty neighbor-map
	Buckets     int     // current bucket count of the vertex table
	LoadFactor  float64 // rehash threshold; 0 means static tables
}

// Buckets returns the current bucket count of the vertex table.
func (g *Graph[V]) Buckets() int {
	return g.adj.Capacity()
}

// LoadFactor returns the configured rehash threshold (0 for static tables).
func (g *Graph[V]) LoadFactor() float64 {
	return g.cfg.LoadFactor
}

// Stats returns a compact snapshot of counts and table configuration.
//
// Implementation:
//   - Stage 1: One pass over the vertex table collecting neighbor-map sizes.
//   - Stage 2: Derive EdgeCount the same way EdgeCount() does.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[V]) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: g.adj.Size(),
		Buckets:     g.adj.Capacity(),
		LoadFactor:  g.cfg.LoadFactor,
	}

	sum := 0
	for v, nbrs := range g.adj.All() {
		sum += nbrs.Size()
		switch {
		case nbrs.IsEmpty():
			stats.Isolated++
		case nbrs.ContainsKey(v):
			stats.SelfLoops++
		}
	}
	stats.EdgeCount = (sum + stats.SelfLoops) / 2

	return stats
}

// NewVertexMap returns a map holding fill for every vertex of g. It shares
// g's hasher, bucket count and load factor and copies the vertex table's
// chain order, so it enumerates exactly like g.Vertices() even when vertices
// collide. Overwriting a key keeps its position; keys that are not vertices
// of g are added at their chain head. Algorithm packages use it for per-call
// distance and index tables.
func NewVertexMap[V comparable, T any](g *Graph[V], fill T) *collections.Map[V, T] {
	return collections.MapValues(g.adj, func(V, *collections.Map[V, int]) T { return fill })
}
