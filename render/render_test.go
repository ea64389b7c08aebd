package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bellmanford"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim_kruskal"
	"github.com/katalvlaran/wgraph/render"
)

// requireGolden fails with a line diff when got != want.
func requireGolden(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func pathGraph(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	return g
}

func TestAdjacencyMatrix(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 5))

	requireGolden(t, "Adjacency matrix:\n  A B \nA 0 5 \nB 5 0 \n", render.AdjacencyMatrix(g))
}

func TestAdjacencyMatrix_Empty(t *testing.T) {
	requireGolden(t, "Adjacency matrix:\n  \n", render.AdjacencyMatrix(core.MustNewGraph[string]()))
}

func TestAdjacencyMatrix_SelfLoop(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "A", 4))
	require.NoError(t, g.AddVertex("B"))

	requireGolden(t, "Adjacency matrix:\n  A B \nA 4 0 \nB 0 0 \n", render.AdjacencyMatrix(g))
}

func TestFloydWarshall(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddVertex("D"))

	want := "Shortest paths matrix (Floyd-Warshall):\n" +
		"  A B C D \n" +
		"A 0 1 3 INF \n" +
		"B 1 0 2 INF \n" +
		"C 3 2 0 INF \n" +
		"D INF INF INF 0 \n"
	requireGolden(t, want, render.FloydWarshall(g))
}

func TestBellmanFord(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddVertex("D"))

	got, err := render.BellmanFord(g, "A")
	require.NoError(t, err)
	requireGolden(t, "Shortest paths (Bellman-Ford) from A:\nTo A: 0\nTo B: 1\nTo C: 3\nTo D: INF\n", got)

	_, err = render.BellmanFord(g, "Z")
	require.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

func TestDijkstra(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddEdge("A", "C", 10))

	got, err := render.Dijkstra(g, "C")
	require.NoError(t, err)
	requireGolden(t, "Shortest paths (Dijkstra) from C:\nTo A: 3\nTo B: 2\nTo C: 0\n", got)
}

func TestTraversal(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddEdge("A", "D", 1))

	var buf bytes.Buffer
	require.NoError(t, render.DFS(&buf, g, "A"))
	require.NoError(t, render.BFS(&buf, g, "A"))
	require.NoError(t, render.DFS(&buf, g, "Q"))

	want := "DFS from A: A B C D \n" +
		"BFS from A: A B D C \n" +
		"error: vertex Q does not exist\n"
	requireGolden(t, want, buf.String())
}

func TestTraversal_VisitError(t *testing.T) {
	g := pathGraph(t)
	boom := errors.New("boom")

	err := render.Traversal(&bytes.Buffer{}, "X", g, "A",
		func(*core.Graph[string], string, func(string) error) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestSummary(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddVertex("D"))

	want := "=== Graph info ===\n" +
		"Vertices: 4\n" +
		"Edges: 2\n" +
		"Vertex list: [A B C D]\n" +
		"Adjacent to A: [B]\n" +
		"Adjacent to B: [A C]\n" +
		"Adjacent to C: [B]\n" +
		"Adjacent to D: []\n" +
		"==================\n"
	requireGolden(t, want, render.Summary(g))
}

func TestSpanningTrees(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddEdge("A", "C", 9))

	out, err := render.Kruskal(g)
	require.NoError(t, err)
	requireGolden(t, "Minimum spanning tree (Kruskal):\n"+
		"A - B (weight: 1)\n"+
		"B - C (weight: 2)\n"+
		"Total weight: 3\n", out)

	out, err = render.Prim(g, "C")
	require.NoError(t, err)
	requireGolden(t, "Minimum spanning tree (Prim) from C:\n"+
		"C - B (weight: 2)\n"+
		"B - A (weight: 1)\n"+
		"Total weight: 3\n", out)

	require.NoError(t, g.AddVertex("D"))
	_, err = render.Kruskal(g)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestDumps_CollidingVertices: "A" and "Q" share bucket 1 of a 16-bucket
// table, so Q (newest) enumerates first; every dump must agree on that order.
func TestDumps_CollidingVertices(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "Q", 1))
	require.NoError(t, g.AddVertex("B"))
	require.Equal(t, []string{"Q", "A", "B"}, g.Vertices().Slice())

	requireGolden(t, "Adjacency matrix:\n  Q A B \nQ 0 1 0 \nA 1 0 0 \nB 0 0 0 \n",
		render.AdjacencyMatrix(g))
	requireGolden(t, "Shortest paths matrix (Floyd-Warshall):\n  Q A B \n"+
		"Q 0 1 INF \nA 1 0 INF \nB INF INF 0 \n", render.FloydWarshall(g))

	got, err := render.BellmanFord(g, "A")
	require.NoError(t, err)
	requireGolden(t, "Shortest paths (Bellman-Ford) from A:\nTo Q: 1\nTo A: 0\nTo B: INF\n", got)

	got, err = render.Dijkstra(g, "A")
	require.NoError(t, err)
	requireGolden(t, "Shortest paths (Dijkstra) from A:\nTo Q: 1\nTo A: 0\nTo B: INF\n", got)
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	requireGolden(t, "", render.FloydWarshall[string](nil))
}
