// Package dijkstra defines the errors, sentinel and internal priority queue of
// Dijkstra's single-source shortest-path algorithm.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each vertex is finalized once; each relaxation may push a heap entry.
//	– Space: O(V + E)
//	   • O(E) heap entries in the worst case (lazy decrease-key).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source (or target) vertex does not exist.
//	– ErrNegativeWeight  if a negative edge weight is reached.
//	– ErrUnreachable     if ShortestPath's target cannot be reached.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// Infinity marks an unreachable vertex in a distance map.
const Infinity = math.MaxInt32

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	// It wraps core.ErrVertexNotFound.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no path joins source and target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// nodeItem is one lazy heap entry.
type nodeItem[V comparable] struct {
	id   V
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist, stored in a
// collections.Array and driven by container/heap. Stale entries are left in
// place and skipped when popped.
type nodePQ[V comparable] struct {
	items *collections.Array[nodeItem[V]]
}

func (pq nodePQ[V]) Len() int { return pq.items.Size() }

func (pq nodePQ[V]) Less(i, j int) bool {
	a, _ := pq.items.Get(i)
	b, _ := pq.items.Get(j)
	return a.dist < b.dist
}

func (pq nodePQ[V]) Swap(i, j int) {
	a, _ := pq.items.Get(i)
	b, _ := pq.items.Set(j, a)
	_, _ = pq.items.Set(i, b)
}

// Push is called by heap.Push; x must be a nodeItem[V].
func (pq nodePQ[V]) Push(x any) { pq.items.Add(x.(nodeItem[V])) }

// Pop is called by heap.Pop after the minimum has been swapped to the end.
func (pq nodePQ[V]) Pop() any {
	last, _ := pq.items.Remove(pq.items.Size() - 1)
	return last
}
