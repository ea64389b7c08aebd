package floydwarshall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/floydwarshall"
)

// closure runs FloydWarshall and fails the test on error.
func closure[V comparable](t *testing.T, g *core.Graph[V]) *floydwarshall.Result[V] {
	t.Helper()
	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	return res
}

func TestFloydWarshall_NilGraph(t *testing.T) {
	res, err := floydwarshall.FloydWarshall[string](nil)
	require.ErrorIs(t, err, floydwarshall.ErrNilGraph)
	assert.Nil(t, res)
}

func TestFloydWarshall_Path(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))

	res := closure(t, g)
	require.Equal(t, []string{"A", "B", "C"}, res.Vertices)
	assert.Equal(t, [][]int{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}, res.Dist)

	d, ok := res.Distance("A", "C")
	assert.True(t, ok)
	assert.Equal(t, 3, d)

	d, ok = res.Distance("A", "A")
	assert.True(t, ok)
	assert.Zero(t, d)

	_, ok = res.Distance("A", "Z")
	assert.False(t, ok)
	_, ok = res.Distance("Z", "A")
	assert.False(t, ok)
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddVertex("D"))

	res := closure(t, g)
	d, _ := res.Distance("A", "D")
	assert.Equal(t, floydwarshall.Infinity, d)
	d, _ = res.Distance("D", "D")
	assert.Zero(t, d)
}

func TestFloydWarshall_SelfLoopOverwritesDiagonal(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "A", 6))
	require.NoError(t, g.AddEdge("A", "B", 1))

	res := closure(t, g)
	d, _ := res.Distance("A", "A")
	assert.Equal(t, 2, d, "A→B→A beats the stored loop weight")

	g2 := core.MustNewGraph[string]()
	require.NoError(t, g2.AddEdge("A", "A", 6))
	d, _ = closure(t, g2).Distance("A", "A")
	assert.Equal(t, 6, d, "a lone loop keeps its weight on the diagonal")
}

func TestFloydWarshall_ShorterDetourWins(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "C", 3))

	res := closure(t, g)
	d, _ := res.Distance("C", "A")
	assert.Equal(t, 6, d)
	for i := range res.Dist {
		for j := range res.Dist {
			assert.Equal(t, res.Dist[i][j], res.Dist[j][i], "symmetric at %d,%d", i, j)
		}
	}
}

func TestFloydWarshall_EmptyGraph(t *testing.T) {
	res := closure(t, core.MustNewGraph[int]())
	assert.Empty(t, res.Vertices)
	assert.Empty(t, res.Dist)
}

func TestFloydWarshall_SnapshotIndependent(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))

	res := closure(t, g)
	g.RemoveVertex("B")
	d, ok := res.Distance("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 1, d)
}
