// Package core defines the central Graph and Edge types of wgraph: a weighted,
// undirected graph stored as a chained hash map from vertex to neighbor-map.
//
// This file declares Graph, Edge, GraphOption, sentinel errors, and the
// constructors.
//
// Errors:
//
//	ErrEmptyVertex      - vertex is the zero value of V.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrOptionViolation  - an invalid GraphOption was supplied.
package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wgraph/collections"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertex indicates a zero-value vertex ("" for strings, 0 for ints, ...).
	ErrEmptyVertex = errors.New("core: vertex is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrOptionViolation indicates an invalid GraphOption.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// Edge is the flat (from, to, weight) view of one stored adjacency entry.
// It is materialized by Graph.Edges and never stored.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight int
}

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	buckets    int
	loadFactor float64
	logger     *log.Logger
	err        error // first invalid option, surfaced by the constructor
}

func defaultOptions() graphOptions {
	return graphOptions{
		buckets: collections.DefaultMapCapacity,
		logger:  log.New(io.Discard),
	}
}

// WithBucketCount sets the bucket count of the vertex table and of every
// neighbor-map. n must be positive.
func WithBucketCount(n int) GraphOption {
	return func(o *graphOptions) {
		if n <= 0 {
			o.setErr(fmt.Errorf("%w: bucket count must be positive (%d)", ErrOptionViolation, n))
			return
		}
		o.buckets = n
	}
}

// WithLoadFactor enables rehashing of the vertex table and neighbor-maps once
// their size exceeds buckets*f. Zero keeps tables static (the default);
// negative values are rejected.
//
// Rehashing changes enumeration order, and with it Vertices(), traversal
// order and matrix layout.
func WithLoadFactor(f float64) GraphOption {
	return func(o *graphOptions) {
		if f < 0 {
			o.setErr(fmt.Errorf("%w: load factor cannot be negative (%v)", ErrOptionViolation, f))
			return
		}
		o.loadFactor = f
	}
}

// WithLogger routes debug-level mutation logs to l. A nil logger is ignored.
func WithLogger(l *log.Logger) GraphOption {
	return func(o *graphOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o *graphOptions) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Graph is a weighted undirected graph.
//
// adj maps every vertex to its neighbor-map (neighbor → weight). Each edge is
// stored in both endpoints' maps with the same weight; a self-loop is a single
// entry in its vertex's own map.
//
// A Graph is not safe for concurrent use.
type Graph[V comparable] struct {
	adj    *collections.Map[V, *collections.Map[V, int]]
	cfg    collections.MapConfig[V]
	logger *log.Logger
}

// NewGraph creates an empty Graph using collections.DefaultHasher for V.
// Returns ErrOptionViolation if any option is invalid.
// Complexity: O(buckets).
func NewGraph[V comparable](opts ...GraphOption) (*Graph[V], error) {
	return NewGraphWithHasher[V](nil, opts...)
}

// NewGraphWithHasher creates an empty Graph whose tables hash vertices with h
// (nil selects collections.DefaultHasher).
func NewGraphWithHasher[V comparable](h collections.Hasher[V], opts ...GraphOption) (*Graph[V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cfg := collections.MapConfig[V]{Capacity: o.buckets, Hash: h, LoadFactor: o.loadFactor}
	adj, err := collections.NewMapWithConfig[V, *collections.Map[V, int]](cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	return &Graph[V]{adj: adj, cfg: cfg, logger: o.logger}, nil
}

// MustNewGraph is like NewGraph but panics on an invalid option.
// It is meant for tests and package-level fixtures.
func MustNewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	g, err := NewGraph[V](opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// newNeighbors allocates an empty neighbor-map with the graph's table config.
// cfg was validated by the constructor, so the error is unreachable.
func (g *Graph[V]) newNeighbors() *collections.Map[V, int] {
	m, _ := collections.NewMapWithConfig[V, int](g.cfg)
	return m
}

// isEmpty reports whether v is the zero value of V.
func isEmpty[V comparable](v V) bool {
	var zero V
	return v == zero
}
