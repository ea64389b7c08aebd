// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// edgeSpec is a tiny literal form of an undirected edge for fixtures.
type edgeSpec struct {
	from, to string
	w        int
}

// buildGraph creates a default string graph and adds the given edges in order.
func buildGraph(t testing.TB, edges ...edgeSpec) *core.Graph[string] {
	t.Helper()
	g, err := core.NewGraph[string]()
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w), "AddEdge(%s,%s)", e.from, e.to)
	}

	return g
}

// triangle returns A–B(1), B–C(2), C–A(3).
func triangle(t testing.TB) *core.Graph[string] {
	t.Helper()
	return buildGraph(t,
		edgeSpec{VertexA, VertexB, Weight1},
		edgeSpec{VertexB, VertexC, Weight2},
		edgeSpec{VertexC, VertexA, Weight3},
	)
}

// requireSymmetric asserts the undirected storage invariant for every vertex pair.
func requireSymmetric(t testing.TB, g *core.Graph[string]) {
	t.Helper()
	for u := range g.Vertices().Values() {
		for w, k := range g.Neighbors(u) {
			back, ok := g.EdgeWeight(w, u)
			require.True(t, ok, "edge %s-%s stored one way only", u, w)
			require.Equal(t, k, back, "asymmetric weight on %s-%s", u, w)
		}
	}
}
