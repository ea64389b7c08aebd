// Package dfs defines the errors and the visit callback of the depth-first walk.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk or DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start %w", core.ErrVertexNotFound)
)

// VisitFunc is called once per vertex, in visit order.
// Returning a non-nil error stops the walk; Walk returns it wrapped.
type VisitFunc[V comparable] func(v V) error
