// Package bellmanford computes single-source shortest paths over a weighted
// undirected core.Graph by repeated edge relaxation.
package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// Infinity marks an unreachable vertex.
const Infinity = math.MaxInt32

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the start vertex does not exist.
	// It wraps core.ErrVertexNotFound.
	ErrVertexNotFound = fmt.Errorf("bellmanford: %w", core.ErrVertexNotFound)
)

// BellmanFord returns the distance from start to every vertex.
//
// Implementation:
//   - Stage 1: Every vertex at Infinity in g.Vertices() order, then start at 0.
//   - Stage 2: |V|-1 passes over g.Edges(); each undirected edge is relaxed in
//     both directions because the flat list carries both. An edge is relaxed
//     only when its source distance is finite.
//
// Negative weights are accepted. No negative-cycle pass is run: with a
// negative edge reachable from start the result after |V|-1 passes is
// returned as is.
//
// Complexity: Time O(V·E), Space O(V + E).
func BellmanFord[V comparable](g *core.Graph[V], start V) (*collections.Map[V, int], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}

	dist := core.NewVertexMap(g, Infinity)
	dist.Put(start, 0)

	edges := g.Edges()
	for pass := 1; pass < g.VertexCount(); pass++ {
		if !relaxAll(dist, edges) {
			break
		}
	}

	return dist, nil
}

// relaxAll runs one pass and reports whether any distance changed.
func relaxAll[V comparable](dist *collections.Map[V, int], edges *collections.Array[core.Edge[V]]) bool {
	changed := false
	for e := range edges.Values() {
		du, _ := dist.Get(e.From)
		if du == Infinity {
			continue
		}
		if dv, _ := dist.Get(e.To); du+e.Weight < dv {
			dist.Put(e.To, du+e.Weight)
			changed = true
		}
	}

	return changed
}
