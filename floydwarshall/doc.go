// Package floydwarshall computes all-pairs shortest paths of a weighted
// undirected core.Graph into a dense integer matrix.
//
// Rows and columns follow g.Vertices() order. Pairs with no path hold the
// sentinel Infinity (99999); the package never reports +Inf or overflow, so
// callers should keep path lengths below that sentinel.
//
// Negative weights are accepted and relaxed like any other; no negative-cycle
// check is made.
//
//	res, err := floydwarshall.FloydWarshall(g)
//	if err != nil { ... }
//	d, ok := res.Distance("A", "C")
package floydwarshall
