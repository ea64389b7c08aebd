// Package bfs implements an iterative, queue-based breadth-first walk over a
// weighted undirected core.Graph. Weights are ignored: distance is edge count.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

const workLoadFactor = 0.75

// queued pairs a vertex with its hop distance from the start.
type queued[V comparable] struct {
	v     V
	depth int
}

// WalkLevels performs a breadth-first walk from start and calls visit with
// each reachable vertex and its depth, in non-decreasing depth order.
//
// Steps:
//  1. Validate inputs.
//  2. Enqueue start and mark it visited.
//  3. Loop: dequeue, visit, then enqueue each neighbor not yet visited, marking
//     it at enqueue time so no vertex enters the queue twice.
//
// Complexity: O(V + E) time, O(V) memory.
func WalkLevels[V comparable](g *core.Graph[V], start V, visit LevelFunc[V]) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	visited, _ := collections.NewSetWithConfig[V](collections.MapConfig[V]{
		Capacity:   collections.DefaultMapCapacity,
		LoadFactor: workLoadFactor,
	})
	queue := collections.NewQueue[queued[V]]()
	queue.Offer(queued[V]{v: start})
	visited.Add(start)

	for !queue.IsEmpty() {
		cur, _ := queue.Poll()
		if err := visit(cur.v, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %v: %w", cur.v, err)
		}
		for nbr := range g.Adjacent(cur.v).Values() {
			if visited.Add(nbr) {
				queue.Offer(queued[V]{v: nbr, depth: cur.depth + 1})
			}
		}
	}

	return nil
}

// Walk is WalkLevels without the depth argument.
func Walk[V comparable](g *core.Graph[V], start V, visit VisitFunc[V]) error {
	return WalkLevels(g, start, func(v V, _ int) error { return visit(v) })
}

// BFS returns the breadth-first visit order from start.
// On error the returned Array is empty, never nil.
func BFS[V comparable](g *core.Graph[V], start V) (*collections.Array[V], error) {
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

// Depths returns the hop distance from start to every reachable vertex.
func Depths[V comparable](g *core.Graph[V], start V) (*collections.Map[V, int], error) {
	depths, _ := collections.NewMapWithConfig[V, int](collections.MapConfig[V]{
		Capacity:   collections.DefaultMapCapacity,
		LoadFactor: workLoadFactor,
	})
	err := WalkLevels(g, start, func(v V, d int) error {
		depths.Put(v, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return depths, nil
}
