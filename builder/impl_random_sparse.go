package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
//
// Directed graphs try every ordered pair (i,j) with i≠j; undirected graphs
// try unordered pairs i<j. Trials run i ascending, then j ascending, so a
// fixed seed always yields the same graph. An RNG is required unless p is
// 0 or 1.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes in index order.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %v: %w", methodRandomSparse, id, err, ErrConstructFailed)
			}
		}

		keep := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}

		// 3) Bernoulli trial per admissible pair.
		directed := g.Directed()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			j := 0
			if !directed {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %v: %w",
						methodRandomSparse, u, v, w, err, ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
