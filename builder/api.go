package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/graph"
)

// Constructor adds nodes and edges to g according to cfg.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies each constructor in order.
// The first failing constructor aborts the build.
func BuildGraph(gopts []graph.GraphOption, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.NewGraph(gopts...)

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
