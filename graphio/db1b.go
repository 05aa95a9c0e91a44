package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/graph"
)

// ParseDB1B reads a DB1B-style CSV into a directed graph.
func ParseDB1B(r io.Reader, opts ...Option) (*graph.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input, want a header row", ErrSyntax)
	}
	if err != nil {
		return nil, fmt.Errorf("graphio: read db1b header: %w", err)
	}
	h := headerIndex(header)

	cols := [3]string{cfg.OriginColumn, cfg.DestColumn, cfg.WeightColumn}
	var idx [3]int
	for i, name := range cols {
		j, ok := h[strings.ToUpper(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[i] = j
	}

	g := graph.NewGraph(graph.WithDirected(true))
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		line, _ := cr.FieldPos(0)

		get := func(i int) string {
			if idx[i] >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx[i]])
		}
		from, to := get(0), get(1)
		if from == "" || to == "" {
			return nil, fmt.Errorf("%w: line %d: empty %s or %s", ErrSyntax, line, cols[0], cols[1])
		}
		w, err := strconv.ParseFloat(get(2), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad %s %q", ErrSyntax, line, cols[2], get(2))
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}

	return g, nil
}

func headerIndex(hdr []string) map[string]int {
	m := make(map[string]int, len(hdr))
	for i, k := range hdr {
		m[strings.ToUpper(strings.TrimSpace(k))] = i
	}
	return m
}
