// Package dijkstra provides Dijkstra's shortest-path algorithm on a weighted
// undirected core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, source) computes the minimum-cost distance from source to
//     every vertex in O((V + E) log V).
//   - ShortestPath(g, source, target) rebuilds one minimum path from the
//     predecessor table.
//   - InitialDistances(g, source) returns only the starting table (every
//     vertex at Infinity, source at 0) without relaxing any edge.
//
// Distance tables:
//
//	The returned collections.Map shares the graph's hasher and bucket count
//	and receives its keys in g.Vertices() order, so ranging over it lists
//	vertices the way the graph lists them. Unreachable vertices hold
//	Infinity (math.MaxInt32).
//
// Heap:
//
//	The priority queue is a container/heap over a collections.Array with lazy
//	decrease-key: improved distances push a new entry, stale ones are skipped
//	at pop time.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil graph pointer.
//   - ErrVertexNotFound: source or target not in the graph (wraps core.ErrVertexNotFound).
//   - ErrNegativeWeight: a reachable edge has a negative weight.
//   - ErrUnreachable:    ShortestPath target is in another component.
//
// Example:
//
//	dist, err := dijkstra.Dijkstra(g, "A")
//	if err != nil {
//		return err
//	}
//	d, _ := dist.Get("C")
package dijkstra
