// SPDX-License-Identifier: MIT
// Package dfs provides an iterative, stack-based depth-first walk over a
// weighted undirected core.Graph.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// visitedLoadFactor keeps the per-call visited set's chains short.
const visitedLoadFactor = 0.75

// Walk performs a depth-first walk from start, calling visit for every vertex
// reachable from it, each exactly once, in pre-order.
//
// Implementation:
//   - Stage 1: Validate the graph and start vertex.
//   - Stage 2: Push start. Pop a vertex; if it is already visited, drop it.
//   - Stage 3: Otherwise mark and visit it, then push its unvisited neighbors in
//     reverse Adjacent order, so the first neighbor is popped first.
//
// Behavior highlights:
//   - Visited is checked at pop: a vertex may sit on the stack several times but
//     is visited once.
//   - Neighbor order is the graph's neighbor-map order; weights are ignored.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
//   - visit errors, wrapped with the vertex that produced them.
//
// Complexity:
//   - Time O(V + E), Memory O(V + E) (stack holds up to one entry per edge end).
func Walk[V comparable](g *core.Graph[V], start V, visit VisitFunc[V]) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	visited, _ := collections.NewSetWithConfig[V](collections.MapConfig[V]{
		Capacity:   collections.DefaultMapCapacity,
		LoadFactor: visitedLoadFactor,
	})
	stack := collections.NewStack[V]()
	stack.Push(start)

	for !stack.IsEmpty() {
		v, _ := stack.Pop()
		if !visited.Add(v) {
			continue
		}
		if err := visit(v); err != nil {
			return fmt.Errorf("dfs: visit %v: %w", v, err)
		}

		adj := g.Adjacent(v).Slice()
		for i := len(adj) - 1; i >= 0; i-- {
			if !visited.Contains(adj[i]) {
				stack.Push(adj[i])
			}
		}
	}

	return nil
}

// DFS returns the depth-first visit order from start.
// On error the returned Array is empty, never nil.
func DFS[V comparable](g *core.Graph[V], start V) (*collections.Array[V], error) {
	order := collections.NewArray[V]()
	err := Walk(g, start, func(v V) error {
		order.Add(v)
		return nil
	})
	if err != nil {
		return collections.NewArray[V](), err
	}

	return order, nil
}
