package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/graph"
)

// ParseBasic reads a "basic" edge list.
func ParseBasic(r io.Reader) (*graph.Graph, error) {
	var (
		g      *graph.Graph
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Directive is only honored before the first edge.
		if g == nil {
			switch strings.ToLower(line) {
			case "directed":
				g = graph.NewGraph(graph.WithDirected(true))
				continue
			case "undirected":
				g = graph.NewGraph(graph.WithDirected(false))
				continue
			}
			g = graph.NewGraph()
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want FROM TO WEIGHT, got %q", ErrSyntax, lineNo, line)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrSyntax, lineNo, fields[2])
		}
		if err = g.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read basic: %w", err)
	}
	if g == nil {
		g = graph.NewGraph()
	}

	return g, nil
}
