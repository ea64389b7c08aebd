// Package render produces the canonical text dumps of a core.Graph and of the
// algorithm results computed over it.
//
// Every renderer reads the graph live, in g.Vertices() order, and is pure: it
// never mutates the graph.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wgraph/bellmanford"
	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/floydwarshall"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// Titles of the matrix and distance dumps.
const (
	AdjacencyTitle   = "Adjacency matrix:"
	FloydTitle       = "Shortest paths matrix (Floyd-Warshall):"
	BellmanFordTitle = "Shortest paths (Bellman-Ford) from %v:"
	DijkstraTitle    = "Shortest paths (Dijkstra) from %v:"
	KruskalTitle     = "Minimum spanning tree (Kruskal):"
	PrimTitle        = "Minimum spanning tree (Prim) from %v:"
)

// inf is printed for sentinel distances.
const inf = "INF"

// AdjacencyMatrix renders the weight of every ordered vertex pair, 0 where no
// edge exists:
//
//	Adjacency matrix:
//	  A B
//	A 0 5
//	B 5 0
//
// Every label and cell is followed by a single space.
func AdjacencyMatrix[V comparable](g *core.Graph[V]) string {
	verts := g.Vertices().Slice()

	var sb strings.Builder
	writeHeader(&sb, AdjacencyTitle, verts)
	for _, from := range verts {
		fmt.Fprintf(&sb, "%v ", from)
		for _, to := range verts {
			w, _ := g.EdgeWeight(from, to)
			sb.WriteString(strconv.Itoa(w))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FloydWarshall renders the all-pairs distance matrix in the AdjacencyMatrix
// layout, with INF for unreachable pairs. A nil graph renders as "".
func FloydWarshall[V comparable](g *core.Graph[V]) string {
	res, err := floydwarshall.FloydWarshall(g)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	writeHeader(&sb, FloydTitle, res.Vertices)
	for i, from := range res.Vertices {
		fmt.Fprintf(&sb, "%v ", from)
		for _, d := range res.Dist[i] {
			sb.WriteString(cell(d, floydwarshall.Infinity))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BellmanFord renders one "To X: d" line per vertex in distance-map order.
func BellmanFord[V comparable](g *core.Graph[V], start V) (string, error) {
	dist, err := bellmanford.BellmanFord(g, start)
	if err != nil {
		return "", err
	}

	return distances(fmt.Sprintf(BellmanFordTitle, start), dist, bellmanford.Infinity), nil
}

// Dijkstra renders Dijkstra distances in the BellmanFord layout.
func Dijkstra[V comparable](g *core.Graph[V], start V) (string, error) {
	dist, err := dijkstra.Dijkstra(g, start)
	if err != nil {
		return "", err
	}

	return distances(fmt.Sprintf(DijkstraTitle, start), dist, dijkstra.Infinity), nil
}

// Kruskal renders the Kruskal spanning tree, one "A - B (weight: w)" line per
// tree edge followed by the total.
func Kruskal[V comparable](g *core.Graph[V]) (string, error) {
	mst, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return "", err
	}

	return spanningTree(KruskalTitle, mst, total), nil
}

// Prim renders the Prim spanning tree grown from root in the Kruskal layout.
func Prim[V comparable](g *core.Graph[V], root V) (string, error) {
	mst, total, err := prim_kruskal.Prim(g, root)
	if err != nil {
		return "", err
	}

	return spanningTree(fmt.Sprintf(PrimTitle, root), mst, total), nil
}

// WalkFunc is the shape shared by dfs.Walk and bfs.Walk.
type WalkFunc[V comparable] func(g *core.Graph[V], start V, visit func(V) error) error

// Traversal writes "<name> from <start>: v1 v2 ... \n" to w, printing each
// vertex as it is visited. When start is absent it writes
// "error: vertex <start> does not exist\n" instead and returns nil; other
// errors are returned.
func Traversal[V comparable](w io.Writer, name string, g *core.Graph[V], start V, walk WalkFunc[V]) error {
	if !g.HasVertex(start) {
		_, err := fmt.Fprintf(w, "error: vertex %v does not exist\n", start)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s from %v: ", name, start); err != nil {
		return err
	}
	err := walk(g, start, func(v V) error {
		_, err := fmt.Fprintf(w, "%v ", v)
		return err
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")

	return err
}

// DFS writes the depth-first line for start.
func DFS[V comparable](w io.Writer, g *core.Graph[V], start V) error {
	return Traversal(w, "DFS", g, start, func(g *core.Graph[V], s V, visit func(V) error) error {
		return dfs.Walk(g, s, visit)
	})
}

// BFS writes the breadth-first line for start.
func BFS[V comparable](w io.Writer, g *core.Graph[V], start V) error {
	return Traversal(w, "BFS", g, start, func(g *core.Graph[V], s V, visit func(V) error) error {
		return bfs.Walk(g, s, visit)
	})
}

// Summary renders the counts, the vertex list and every adjacency list.
func Summary[V comparable](g *core.Graph[V]) string {
	var sb strings.Builder
	sb.WriteString("=== Graph info ===\n")
	fmt.Fprintf(&sb, "Vertices: %d\n", g.VertexCount())
	fmt.Fprintf(&sb, "Edges: %d\n", g.EdgeCount())
	fmt.Fprintf(&sb, "Vertex list: %v\n", g.Vertices())
	for v := range g.Vertices().Values() {
		fmt.Fprintf(&sb, "Adjacent to %v: %v\n", v, g.Adjacent(v))
	}
	sb.WriteString("==================\n")

	return sb.String()
}

func writeHeader[V comparable](sb *strings.Builder, title string, verts []V) {
	sb.WriteString(title)
	sb.WriteString("\n  ")
	for _, v := range verts {
		fmt.Fprintf(sb, "%v ", v)
	}
	sb.WriteByte('\n')
}

func distances[V comparable](title string, dist *collections.Map[V, int], sentinel int) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	for v, d := range dist.All() {
		fmt.Fprintf(&sb, "To %v: %s\n", v, cell(d, sentinel))
	}

	return sb.String()
}

func spanningTree[V comparable](title string, mst *collections.Array[core.Edge[V]], total int) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	for e := range mst.Values() {
		fmt.Fprintf(&sb, "%v - %v (weight: %d)\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintf(&sb, "Total weight: %d\n", total)

	return sb.String()
}

func cell(d, sentinel int) string {
	if d == sentinel {
		return inf
	}
	return strconv.Itoa(d)
}
