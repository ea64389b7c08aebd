// Package prim_kruskal computes minimum spanning trees of a weighted
// undirected core.Graph.
//
// Two algorithms are provided:
//
//	Kruskal(g)        – sorted edges + union-find, O(E log E)
//	Prim(g, root)     – grow from root with a min-heap, O(E log E)
//	Compute(g, opts…) – dispatch by MSTOptions.Method (Kruskal by default)
//
// Both return the tree edges as a collections.Array and the total weight.
// Self-loops are never part of a tree; negative weights are allowed. A graph
// with zero vertices or more than one component yields ErrDisconnected; a
// single vertex yields an empty tree.
//
// Determinism: Kruskal breaks weight ties by Edges() order and reports each
// edge with the endpoint that comes first in Vertices() order as From. Prim
// breaks ties by discovery order and reports edges parent → child.
package prim_kruskal
