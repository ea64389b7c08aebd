// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense all-pairs shortest paths over a core.Graph with a fixed k → i → j
//     loop order and an integer "no path" sentinel.

package floydwarshall

import (
	"errors"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// Infinity is the "no path" sentinel stored in Result.Dist.
const Infinity = 99999

// ErrNilGraph is returned when FloydWarshall is given a nil graph.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// Result is the distance matrix of one FloydWarshall run.
//
// Vertices[i] labels row i and column i of Dist, in g.Vertices() order at the
// time of the call. Later graph mutations do not affect a Result.
type Result[V comparable] struct {
	Vertices []V
	Dist     [][]int

	index *collections.Map[V, int]
}

// Distance returns the shortest distance from one vertex to another and
// whether both are part of the matrix. Unreachable pairs report Infinity.
func (r *Result[V]) Distance(from, to V) (int, bool) {
	i, ok := r.index.Get(from)
	if !ok {
		return 0, false
	}
	j, ok := r.index.Get(to)
	if !ok {
		return 0, false
	}

	return r.Dist[i][j], true
}

// FloydWarshall computes all-pairs shortest paths.
//
// Initialization:
//   - every cell Infinity, the diagonal 0;
//   - then every stored edge writes its weight, so a self-loop overwrites its
//     diagonal cell.
//
// Closure:
//   - dist[i][j] = dist[i][k] + dist[k][j] whenever that is strictly smaller.
//     Sums through the sentinel are compared like any other value; with
//     non-negative weights they never win against an existing path.
//
// Errors: ErrNilGraph.
//
// Complexity: Time O(V^3), Space O(V^2).
func FloydWarshall[V comparable](g *core.Graph[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	verts := g.Vertices().Slice()
	n := len(verts)

	index := core.NewVertexMap(g, 0)
	for i, v := range verts {
		index.Put(v, i)
	}

	dist := initDistances(n)
	for i, from := range verts {
		for to, w := range g.Neighbors(from) {
			j, _ := index.Get(to)
			dist[i][j] = w
		}
	}

	closeInPlace(dist)

	return &Result[V]{Vertices: verts, Dist: dist, index: index}, nil
}

// initDistances allocates an n×n matrix with 0 on the diagonal and Infinity
// elsewhere. Rows share one backing slice.
func initDistances(n int) [][]int {
	data := make([]int, n*n)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = data[i*n : (i+1)*n : (i+1)*n]
		for j := range dist[i] {
			if i != j {
				dist[i][j] = Infinity
			}
		}
	}

	return dist
}

// closeInPlace runs the triple loop; the loop order is fixed for deterministic
// accumulation.
func closeInPlace(dist [][]int) {
	n := len(dist)
	var k, i, j int
	for k = 0; k < n; k++ {
		rowK := dist[k]
		for i = 0; i < n; i++ {
			rowI := dist[i]
			ik := rowI[k]
			for j = 0; j < n; j++ {
				if cand := ik + rowK[j]; cand < rowI[j] {
					rowI[j] = cand
				}
			}
		}
	}
}
