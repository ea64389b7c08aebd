// Package builder generates deterministic graph topologies for wgraph:
// paths, cycles, stars, wheels, complete graphs, grids and seeded random
// sparse graphs.
//
// A Constructor mutates an existing *core.Graph[string]; Build applies a
// sequence of them to a graph the caller owns and BuildGraph creates a fresh
// one first:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
//	    builder.Cycle(5))
//
// Vertex IDs come from an IDFn (decimal by default) and edge weights from a
// WeightFn (constant 1 by default). Stochastic constructors need an RNG set
// with WithSeed or WithRand; equal options and constructor order always
// produce equal graphs.
//
// Errors:
//
//	ErrTooFewVertices      – size parameter below the constructor's minimum
//	ErrInvalidProbability  – p outside [0,1]
//	ErrNeedRandSource      – stochastic constructor without an RNG
//	ErrConstructFailed     – nil constructor or nil graph
package builder
