package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph[string], cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts {u, v} with the next configured weight.
func addEdge(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

func tooFew(method, param string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, minimum, ErrTooFewVertices)
}
