// Package bfs provides error definitions and callback types for breadth-first
// search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start %w", core.ErrVertexNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// VisitFunc is called when a vertex is dequeued and visited.
type VisitFunc[V comparable] func(v V) error

// LevelFunc is VisitFunc with the vertex's hop distance from the start.
type LevelFunc[V comparable] func(v V, depth int) error
