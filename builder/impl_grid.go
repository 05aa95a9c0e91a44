package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
//
// Node IDs are always "r,c" in row-major order; cfg.idFn is not consulted.
// Each cell links to its right and bottom neighbors; on directed graphs the
// reverse arc is emitted too, with its own weight draw.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 1) Nodes, row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddNode(id); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %v: %w", methodGrid, id, err, ErrConstructFailed)
				}
			}
		}

		link := func(u, v string) error {
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %v: %w", methodGrid, u, v, w, err, ErrConstructFailed)
			}
			if g.Directed() {
				w = cfg.weightFn(cfg.rng)
				if err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %v: %w", methodGrid, v, u, w, err, ErrConstructFailed)
				}
			}
			return nil
		}

		// 2) Edges: right, then bottom.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
