// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_ring.go - Path, Cycle, Star and Wheel constructors.
//
// Contract:
//   • Vertices are added via cfg.idFn in ascending index order.
//   • Edges are emitted in ascending index order; the hub of Star/Wheel is
//     vertex 0 and the rim is 1..n-1.
//   • Returns only wrapped sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n) edges for each constructor.

package builder

import "github.com/katalvlaran/wgraph/core"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path returns a Constructor that builds the simple path P_n: 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		// i -> (i+1)%n; the last step closes the ring
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that joins hub 0 to each of 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a rim cycle over 1..n-1 plus
// spokes from hub 0. Rim edges are emitted before spokes.
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := addVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim)
			if err := addEdge(g, cfg, methodWheel, u, v); err != nil {
				return err
			}
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
