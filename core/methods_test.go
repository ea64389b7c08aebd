// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

func TestNewGraph_Options(t *testing.T) {
	_, err := core.NewGraph[string](core.WithBucketCount(0))
	require.ErrorIs(t, err, core.ErrOptionViolation)

	_, err = core.NewGraph[string](core.WithLoadFactor(-1))
	require.ErrorIs(t, err, core.ErrOptionViolation)

	g, err := core.NewGraph[string](core.WithBucketCount(4), core.WithLoadFactor(0.75), core.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Buckets())
	assert.Equal(t, 0.75, g.LoadFactor())

	assert.Panics(t, func() { core.MustNewGraph[int](core.WithBucketCount(-3)) })
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.MustNewGraph[string]()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertex)
	assert.Equal(t, 0, g.VertexCount())

	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasVertex(VertexA))

	// duplicate add keeps existing neighbors
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight5))
	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.Equal(t, 2, g.VertexCount())

	assert.False(t, g.RemoveVertex(VertexX))
	assert.True(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.Adjacent(VertexB).IsEmpty(), "B must not keep a dangling neighbor")
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.MustNewGraph[string]()

	require.ErrorIs(t, g.AddEdge(VertexEmpty, VertexA, Weight1), core.ErrEmptyVertex)
	require.ErrorIs(t, g.AddEdge(VertexA, VertexEmpty, Weight1), core.ErrEmptyVertex)
	assert.Equal(t, 0, g.VertexCount(), "failed AddEdge must not create endpoints")

	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight5))
	assert.True(t, g.HasVertex(VertexA))
	assert.True(t, g.HasVertex(VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))

	w, ok := g.EdgeWeight(VertexB, VertexA)
	require.True(t, ok)
	assert.Equal(t, Weight5, w)

	// re-adding overwrites in both directions
	require.NoError(t, g.AddEdge(VertexB, VertexA, Weight7))
	w, _ = g.EdgeWeight(VertexA, VertexB)
	assert.Equal(t, Weight7, w)
	assert.Equal(t, 1, g.EdgeCount())
	requireSymmetric(t, g)
}

func TestGraph_NegativeAndZeroWeights(t *testing.T) {
	g := buildGraph(t, edgeSpec{VertexA, VertexB, -4}, edgeSpec{VertexB, VertexC, 0})

	w, ok := g.EdgeWeight(VertexA, VertexB)
	assert.True(t, ok)
	assert.Equal(t, -4, w)

	w, ok = g.EdgeWeight(VertexC, VertexB)
	assert.True(t, ok, "a zero weight is still an edge")
	assert.Equal(t, 0, w)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := buildGraph(t, edgeSpec{VertexA, VertexA, Weight3}, edgeSpec{VertexA, VertexB, Weight1})

	assert.True(t, g.HasEdge(VertexA, VertexA))
	assert.Equal(t, 2, g.EdgeCount())

	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	edges := g.Edges().Slice()
	assert.Len(t, edges, 3, "loop appears once, A-B twice")

	assert.True(t, g.RemoveEdge(VertexA, VertexA))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := triangle(t)

	assert.False(t, g.RemoveEdge(VertexA, VertexX), "missing endpoint")
	assert.False(t, g.RemoveEdge(VertexX, VertexA), "missing endpoint")

	assert.True(t, g.RemoveEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.RemoveEdge(VertexA, VertexB), "second removal is a no-op")
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount(), "endpoints survive edge removal")
	requireSymmetric(t, g)
}

func TestGraph_Queries(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex(VertexD))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices().Slice())
	assert.Equal(t, []string{"B", "C"}, g.Adjacent(VertexA).Slice())
	assert.True(t, g.Adjacent(VertexX).IsEmpty())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	_, err := g.Degree(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	got := map[string]int{}
	for w, k := range g.Neighbors(VertexC) {
		got[w] = k
	}
	assert.Equal(t, map[string]int{"A": Weight3, "B": Weight2}, got)

	want := []core.Edge[string]{
		{From: "A", To: "B", Weight: 1}, {From: "A", To: "C", Weight: 3},
		{From: "B", To: "A", Weight: 1}, {From: "B", To: "C", Weight: 2},
		{From: "C", To: "A", Weight: 3}, {From: "C", To: "B", Weight: 2},
	}
	assert.Equal(t, want, g.Edges().Slice())
}

func TestGraph_QueriesReturnCopies(t *testing.T) {
	g := triangle(t)

	vs := g.Vertices()
	vs.Add(VertexX)
	assert.Equal(t, 3, g.VertexCount())

	adj := g.Adjacent(VertexA)
	adj.Clear()
	assert.Equal(t, 2, g.Adjacent(VertexA).Size())
}

func TestGraph_Stats(t *testing.T) {
	g := buildGraph(t,
		edgeSpec{VertexA, VertexB, Weight1},
		edgeSpec{VertexC, VertexC, Weight2},
	)
	require.NoError(t, g.AddVertex(VertexD))

	assert.Equal(t, core.GraphStats{
		VertexCount: 4,
		EdgeCount:   2,
		SelfLoops:   1,
		Isolated:    1,
		Buckets:     collections.DefaultMapCapacity,
	}, g.Stats())
}

func TestGraph_CloneAndClear(t *testing.T) {
	g := triangle(t)

	c := g.Clone()
	assert.Equal(t, g.Edges().Slice(), c.Edges().Slice())
	c.RemoveVertex(VertexA)
	assert.True(t, g.HasVertex(VertexA), "clone must be independent")
	assert.Equal(t, 3, g.EdgeCount())

	empty := g.CloneEmpty()
	assert.Equal(t, g.Vertices().Slice(), empty.Vertices().Slice())
	assert.Equal(t, 0, empty.EdgeCount())

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 1, c.EdgeCount(), "clone keeps B-C after source Clear")
}

func TestGraph_IntVertices(t *testing.T) {
	g := core.MustNewGraph[int]()

	require.ErrorIs(t, g.AddVertex(0), core.ErrEmptyVertex)
	require.NoError(t, g.AddEdge(3, 1, 9))
	require.NoError(t, g.AddEdge(1, 2, 4))
	assert.Equal(t, []int{1, 2, 3}, g.Vertices().Slice())
}

func TestGraph_CustomHasherCollisions(t *testing.T) {
	g, err := core.NewGraphWithHasher[string](func(string) uint64 { return 0 })
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%20), i))
	}
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, 20, g.EdgeCount())
	requireSymmetric(t, g)

	for i := 0; i < 20; i += 2 {
		require.True(t, g.RemoveVertex(fmt.Sprintf("v%d", i)))
	}
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount(), "every ring edge touched an even vertex")
}

func TestGraph_LoadFactorRehash(t *testing.T) {
	g, err := core.NewGraph[string](core.WithBucketCount(2), core.WithLoadFactor(1))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("hub", fmt.Sprintf("n%d", i), i))
	}
	assert.Greater(t, g.Buckets(), 2)
	assert.Equal(t, 51, g.VertexCount())
	deg, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 50, deg)
	requireSymmetric(t, g)
}

// TestGraph_RandomOps replays a deterministic operation stream and checks the
// counts against a plain map model after every step.
func TestGraph_RandomOps(t *testing.T) {
	g := core.MustNewGraph[string](core.WithBucketCount(3))
	model := map[string]map[string]int{}
	names := []string{"A", "B", "C", "D", "E", "F"}

	seed := uint32(7)
	next := func(n int) int {
		seed = seed*1103515245 + 12345
		return int(seed>>16) % n
	}

	for step := 0; step < 400; step++ {
		u, w := names[next(len(names))], names[next(len(names))]
		switch next(4) {
		case 0, 1:
			require.NoError(t, g.AddEdge(u, w, step))
			if model[u] == nil {
				model[u] = map[string]int{}
			}
			if model[w] == nil {
				model[w] = map[string]int{}
			}
			model[u][w], model[w][u] = step, step
		case 2:
			g.RemoveEdge(u, w)
			if model[u] != nil && model[w] != nil {
				delete(model[u], w)
				delete(model[w], u)
			}
		case 3:
			g.RemoveVertex(u)
			for _, nbrs := range model {
				delete(nbrs, u)
			}
			delete(model, u)
		}

		require.Equal(t, len(model), g.VertexCount(), "step %d", step)
		pairs := 0
		for a, nbrs := range model {
			for b := range nbrs {
				if a <= b {
					pairs++
				}
			}
		}
		require.Equal(t, pairs, g.EdgeCount(), "step %d", step)
	}
	requireSymmetric(t, g)
}

func TestNewVertexMap_SharesOrder(t *testing.T) {
	g := core.MustNewGraph[string](core.WithBucketCount(5))
	for _, v := range []string{"delta", "alpha", "kilo", "echo", "bravo", "zulu"} {
		require.NoError(t, g.AddVertex(v))
	}

	m := core.NewVertexMap(g, -1)
	assert.Equal(t, g.Vertices().Slice(), m.Keys().Slice())
	assert.Equal(t, 5, m.Capacity())
	for v := range g.Vertices().Values() {
		m.Put(v, len(v))
	}
	assert.Equal(t, g.Vertices().Slice(), m.Keys().Slice(), "overwrites keep positions")
	got, _ := m.Get("kilo")
	assert.Equal(t, 4, got)
}
