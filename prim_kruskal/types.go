// Package prim_kruskal defines configuration options and sentinel errors for
// minimum spanning tree computation over a core.Graph.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/collections"
	"github.com/katalvlaran/wgraph/core"
)

// ErrInvalidGraph is returned for a nil graph or an unknown method.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrEmptyRoot indicates that Prim was given the null vertex as its root.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that no spanning tree covers every vertex: the
// graph is empty or has more than one component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootNotFound wraps core.ErrVertexNotFound for a missing Prim root.
var ErrRootNotFound = fmt.Errorf("prim_kruskal: root %w", core.ErrVertexNotFound)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
// Fields:
//
//	Method string - MethodPrim or MethodKruskal.
//	Root   V      - start vertex for Prim; ignored by Kruskal.
type MSTOptions[V comparable] struct {
	Method string
	Root   V
}

// Option configures MSTOptions.
type Option[V comparable] func(*MSTOptions[V])

// WithMethod sets the algorithm Method.
func WithMethod[V comparable](m string) Option[V] {
	return func(opts *MSTOptions[V]) {
		opts.Method = m
	}
}

// WithRoot sets the start vertex for Prim.
func WithRoot[V comparable](root V) Option[V] {
	return func(opts *MSTOptions[V]) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions[V comparable]() MSTOptions[V] {
	return MSTOptions[V]{Method: MethodKruskal}
}

// Compute applies opts over DefaultOptions and dispatches to Kruskal or Prim.
// An unknown method yields ErrInvalidGraph.
func Compute[V comparable](g *core.Graph[V], opts ...Option[V]) (*collections.Array[core.Edge[V]], int, error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return collections.NewArray[core.Edge[V]](), 0, fmt.Errorf("%w: method %q", ErrInvalidGraph, o.Method)
	}
}
