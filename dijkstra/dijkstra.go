// Package dijkstra implements Dijkstra's shortest-path algorithm on a weighted
// undirected core.Graph with non-negative weights.
//
// It processes vertices in order of increasing distance using a min-heap,
// with a lazy decrease-key strategy: improved distances push duplicates and
// outdated entries are ignored when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// Dijkstra computes the minimum distance from source to every vertex.
//
// The returned map holds one entry per vertex, inserted in g.Vertices()
// order; unreachable vertices keep Infinity and source maps to 0.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
func Dijkstra[V comparable](g *core.Graph[V], source V) (*collections.Map[V, int], error) {
	r, err := run(g, source)
	if err != nil {
		return nil, err
	}

	return r.dist, nil
}

// ShortestPath returns the vertices of one minimum-weight path from source to
// target (both inclusive) and its total weight.
//
// Errors: those of Dijkstra, ErrVertexNotFound for a missing target,
// ErrUnreachable when target lies in another component.
func ShortestPath[V comparable](g *core.Graph[V], source, target V) (*collections.Array[V], int, error) {
	r, err := run(g, source)
	if err != nil {
		return nil, 0, err
	}
	d, ok := r.dist.Get(target)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, target)
	}
	if d == Infinity {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrUnreachable, source, target)
	}

	// walk predecessors back to the source, then reverse in place
	path := collections.NewArray[V]()
	for v := target; ; {
		path.Add(v)
		if v == source {
			break
		}
		v, _ = r.prev.Get(v)
	}
	for i, j := 0, path.Size()-1; i < j; i, j = i+1, j-1 {
		a, _ := path.Get(i)
		b, _ := path.Set(j, a)
		_, _ = path.Set(i, b)
	}

	return path, d, nil
}

// InitialDistances returns the distance table Dijkstra starts from: every
// vertex at Infinity, source at 0. No edge is relaxed.
// The source is inserted even when it is not a vertex of g.
func InitialDistances[V comparable](g *core.Graph[V], source V) *collections.Map[V, int] {
	dist := core.NewVertexMap(g, Infinity)
	dist.Put(source, 0)

	return dist
}

// runner holds the per-call state.
type runner[V comparable] struct {
	g       *core.Graph[V]
	dist    *collections.Map[V, int]
	prev    *collections.Map[V, V]
	visited *collections.Set[V]
	pq      nodePQ[V]
}

func run[V comparable](g *core.Graph[V], source V) (*runner[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	var none V
	r := &runner[V]{
		g:       g,
		dist:    InitialDistances(g, source),
		prev:    core.NewVertexMap(g, none),
		visited: collections.NewSet[V](),
		pq:      nodePQ[V]{items: collections.NewArray[nodeItem[V]]()},
	}
	heap.Push(r.pq, nodeItem[V]{id: source})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r, nil
}

// process pops vertices in order of distance until the heap is empty.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(r.pq).(nodeItem[V])
		if !r.visited.Add(item.id) {
			continue // stale entry
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner[V]) relax(u V, du int) error {
	for v, w := range r.g.Neighbors(u) {
		if w < 0 {
			return fmt.Errorf("%w: %v-%v (%d)", ErrNegativeWeight, u, v, w)
		}
		if r.visited.Contains(v) {
			continue
		}
		dv, _ := r.dist.Get(v)
		if nd := du + w; nd < dv {
			r.dist.Put(v, nd)
			r.prev.Put(v, u)
			heap.Push(r.pq, nodeItem[V]{id: v, dist: nd})
		}
	}

	return nil
}
