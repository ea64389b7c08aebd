// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - Build applies constructors to a caller-owned graph; BuildGraph creates one first.
//   - Functional options resolve into a builderConfig passed by value.
//   - Determinism: same options, seed and constructor order give identical graphs.
//   - Constructors return sentinel errors wrapped with method context; never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// Build resolves bopts and applies cons to g in order, stopping at the first
// error. Vertices and edges added before a failure stay in g.
//
// Errors:
//   - ErrConstructFailed: g is nil or a constructor is nil.
//   - Any constructor error, wrapped as "Build: %w".
func Build(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// BuildGraph creates a graph with gopts and applies cons via Build.
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g, err := core.NewGraph[string](gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}
