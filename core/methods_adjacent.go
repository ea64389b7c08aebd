// File: methods_adjacent.go
// Role: Neighborhood queries used by the traversal and shortest-path packages.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/wgraph/collections"
)

// Adjacent returns a fresh Array of v's neighbors in neighbor-map order.
// It is empty (never nil) when v is absent.
func (g *Graph[V]) Adjacent(v V) *collections.Array[V] {
	nbrs, ok := g.adj.Get(v)
	if !ok {
		return collections.NewArray[V]()
	}

	return nbrs.Keys()
}

// Neighbors yields (neighbor, weight) pairs of v in neighbor-map order.
// It yields nothing when v is absent. The graph must not be mutated while
// ranging.
func (g *Graph[V]) Neighbors(v V) iter.Seq2[V, int] {
	return func(yield func(V, int) bool) {
		nbrs, ok := g.adj.Get(v)
		if !ok {
			return
		}
		for to, w := range nbrs.All() {
			if !yield(to, w) {
				return
			}
		}
	}
}

// Degree returns the number of neighbor-map entries of v (a self-loop counts once).
func (g *Graph[V]) Degree(v V) (int, error) {
	nbrs, ok := g.adj.Get(v)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return nbrs.Size(), nil
}
