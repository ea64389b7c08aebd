// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeWeight/Edges/EdgeCount.
//
// Invariant:
//   - Symmetry: w in adj[u] with weight k  ⇔  u in adj[w] with weight k.

package core

import "github.com/katalvlaran/wgraph/collections"

// AddEdge sets the weight of the undirected edge {from, to}, creating missing
// endpoints. Re-adding an existing edge overwrites its weight (last write wins);
// parallel edges are never created.
//
// Implementation:
//   - Stage 1: Validate both endpoints before any mutation (ErrEmptyVertex).
//   - Stage 2: Ensure both vertices exist.
//   - Stage 3: Write the weight into both neighbor-maps.
//
// Errors:
//   - ErrEmptyVertex: if from or to is the zero value of V.
//
// Complexity:
//   - Time O(1) expected, Space O(1) (plus new vertices).
//
// AI-Hints:
//   - AddEdge(v, v, w) stores a single self-loop entry in v's own map.
func (g *Graph[V]) AddEdge(from, to V, weight int) error {
	if isEmpty(from) || isEmpty(to) {
		return ErrEmptyVertex
	}
	// cannot fail: both endpoints were validated above
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	fromNbrs, _ := g.adj.Get(from)
	toNbrs, _ := g.adj.Get(to)
	fromNbrs.Put(to, weight)
	toNbrs.Put(from, weight)
	g.logger.Debug("add edge", "from", from, "to", to, "weight", weight)

	return nil
}

// RemoveEdge deletes the edge {from, to} from both neighbor-maps.
// It is a no-op returning false when either endpoint is absent or no such edge
// exists.
func (g *Graph[V]) RemoveEdge(from, to V) bool {
	fromNbrs, ok := g.adj.Get(from)
	if !ok {
		g.logger.Debug("remove edge: vertex not found", "vertex", from)
		return false
	}
	toNbrs, ok := g.adj.Get(to)
	if !ok {
		g.logger.Debug("remove edge: vertex not found", "vertex", to)
		return false
	}

	_, a := fromNbrs.Remove(to)
	_, b := toNbrs.Remove(from)
	if a || b {
		g.logger.Debug("remove edge", "from", from, "to", to)
	}

	return a || b
}

// HasEdge reports whether the edge {from, to} exists.
func (g *Graph[V]) HasEdge(from, to V) bool {
	nbrs, ok := g.adj.Get(from)
	return ok && nbrs.ContainsKey(to)
}

// EdgeWeight returns the weight of {from, to} and whether the edge exists.
func (g *Graph[V]) EdgeWeight(from, to V) (int, bool) {
	nbrs, ok := g.adj.Get(from)
	if !ok {
		return 0, false
	}

	return nbrs.Get(to)
}

// EdgeCount returns the number of distinct unordered vertex pairs joined by
// an edge.
//
// Every ordinary edge appears in two neighbor-maps and a self-loop in one, so
// the count is (Σ|adj[v]| + loops) / 2, which is exact under the symmetry
// invariant.
// Complexity: O(V).
func (g *Graph[V]) EdgeCount() int {
	sum, loops := 0, 0
	for v, nbrs := range g.adj.All() {
		sum += nbrs.Size()
		if nbrs.ContainsKey(v) {
			loops++
		}
	}

	return (sum + loops) / 2
}

// Edges returns the flat edge list: for each vertex in Vertices() order, one
// Edge per neighbor-map entry in neighbor order. Every ordinary edge therefore
// appears twice (once per direction) and a self-loop once.
// Complexity: O(V + E).
func (g *Graph[V]) Edges() *collections.Array[Edge[V]] {
	out := collections.NewArray[Edge[V]]()
	for from, nbrs := range g.adj.All() {
		for to, w := range nbrs.All() {
			out.Add(Edge[V]{From: from, To: to, Weight: w})
		}
	}

	return out
}
