package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// Prim computes a minimum spanning tree by growing outwards from root with a
// min-heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrEmptyRoot    : root is the zero value of V.
//   - ErrRootNotFound : root is not a vertex of g.
//   - ErrDisconnected : some vertex is unreachable from root.
//
// Edges of equal weight leave the heap in push order, and neighbors are
// pushed in neighbor-map order, so the tree is deterministic. Each tree edge
// is reported as parent → child.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[V comparable](g *core.Graph[V], root V) (*collections.Array[core.Edge[V]], int, error) {
	mst := collections.NewArray[core.Edge[V]]()
	if g == nil {
		return mst, 0, ErrInvalidGraph
	}
	var zero V
	if root == zero {
		return mst, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return mst, 0, ErrRootNotFound
	}

	n := g.VertexCount()
	visited, _ := collections.NewSetWithConfig(collections.MapConfig[V]{
		Capacity:   g.Buckets(),
		LoadFactor: visitedLoadFactor,
	})
	pq := &edgePQ[V]{items: collections.NewArray[edgeItem[V]]()}

	total := 0
	visit := func(u V) {
		visited.Add(u)
		for v, w := range g.Neighbors(u) {
			if !visited.Contains(v) {
				pq.seq++
				heap.Push(pq, edgeItem[V]{edge: core.Edge[V]{From: u, To: v, Weight: w}, seq: pq.seq})
			}
		}
	}

	visit(root)
	for pq.Len() > 0 && mst.Size() < n-1 {
		it := heap.Pop(pq).(edgeItem[V])
		if visited.Contains(it.edge.To) {
			continue
		}
		mst.Add(it.edge)
		total += it.edge.Weight
		visit(it.edge.To)
	}
	if mst.Size() < n-1 {
		return collections.NewArray[core.Edge[V]](), 0, ErrDisconnected
	}

	return mst, total, nil
}

// visitedLoadFactor keeps the visited set's chains short.
const visitedLoadFactor = 0.75

type edgeItem[V comparable] struct {
	edge core.Edge[V]
	seq  int
}

// edgePQ is a min-heap of candidate edges ordered by (weight, seq).
type edgePQ[V comparable] struct {
	items *collections.Array[edgeItem[V]]
	seq   int
}

func (pq *edgePQ[V]) Len() int { return pq.items.Size() }

func (pq *edgePQ[V]) Less(i, j int) bool {
	a, _ := pq.items.Get(i)
	b, _ := pq.items.Get(j)
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}
	return a.seq < b.seq
}

func (pq *edgePQ[V]) Swap(i, j int) {
	a, _ := pq.items.Get(i)
	b, _ := pq.items.Set(j, a)
	_, _ = pq.items.Set(i, b)
}

func (pq *edgePQ[V]) Push(x any) { pq.items.Add(x.(edgeItem[V])) }

func (pq *edgePQ[V]) Pop() any {
	last, _ := pq.items.Remove(pq.items.Size() - 1)
	return last
}
