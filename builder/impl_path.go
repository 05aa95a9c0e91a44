package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodPath      = "Path"
	minPathVertices = 1
)

// Path returns a Constructor that chains n nodes: 0 → 1 → … → n-1.
// On an undirected graph the chain is traversable both ways.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}

		prev := cfg.idFn(0)
		if err := g.AddNode(prev); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %v: %w", methodPath, prev, err, ErrConstructFailed)
		}
		for i := 1; i < n; i++ {
			id := cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(prev, id, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %v: %w", methodPath, prev, id, w, err, ErrConstructFailed)
			}
			prev = id
		}

		return nil
	}
}
