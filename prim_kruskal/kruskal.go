package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// Kruskal computes a minimum spanning tree with a disjoint-set forest (path
// compression, union by rank).
//
// Steps:
//  1. Validate: g != nil; |V|==0 → ErrDisconnected; |V|==1 → empty tree.
//  2. Collect each undirected edge once (the direction whose From comes first
//     in Vertices() order), skipping self-loops.
//  3. Stable-sort by weight, so equal weights keep Edges() order.
//  4. Union endpoints of each edge joining two components; stop at |V|-1 edges.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Negative weights are allowed. Complexity: O(E log E + α(V)·E), memory O(V + E).
func Kruskal[V comparable](g *core.Graph[V]) (*collections.Array[core.Edge[V]], int, error) {
	mst := collections.NewArray[core.Edge[V]]()
	if g == nil {
		return mst, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	switch vertices.Size() {
	case 0:
		return mst, 0, ErrDisconnected
	case 1:
		return mst, 0, nil
	}

	pos := core.NewVertexMap(g, 0)
	for i, v := range vertices.All() {
		pos.Put(v, i)
	}
	var edges []core.Edge[V]
	for _, e := range g.Edges().All() {
		pf, _ := pos.Get(e.From)
		pt, _ := pos.Get(e.To)
		if pf < pt {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(g)
	total, need := 0, vertices.Size()-1
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst.Add(e)
		total += e.Weight
		if mst.Size() == need {
			break
		}
	}
	if mst.Size() < need {
		return collections.NewArray[core.Edge[V]](), 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest over the graph's vertices.
type disjointSet[V comparable] struct {
	parent *collections.Map[V, V]
	rank   *collections.Map[V, int]
}

func newDisjointSet[V comparable](g *core.Graph[V]) *disjointSet[V] {
	var none V
	ds := &disjointSet[V]{parent: core.NewVertexMap(g, none), rank: core.NewVertexMap(g, 0)}
	for v := range ds.parent.Keys().Values() {
		ds.parent.Put(v, v)
	}

	return ds
}

// find returns the root of u, halving the path on the way up.
func (ds *disjointSet[V]) find(u V) V {
	for {
		p, _ := ds.parent.Get(u)
		if p == u {
			return u
		}
		gp, _ := ds.parent.Get(p)
		ds.parent.Put(u, gp)
		u = gp
	}
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet[V]) union(u, v V) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	ku, _ := ds.rank.Get(ru)
	kv, _ := ds.rank.Get(rv)
	switch {
	case ku < kv:
		ds.parent.Put(ru, rv)
	case ku > kv:
		ds.parent.Put(rv, ru)
	default:
		ds.parent.Put(rv, ru)
		ds.rank.Put(ru, ku+1)
	}

	return true
}
