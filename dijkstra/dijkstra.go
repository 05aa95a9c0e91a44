// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single origin node to all
// other reachable nodes in a graph with non-negative edge weights.
// It settles nodes in order of increasing distance using an indexed min-heap,
// relaxing edges and lowering tentative distances in place.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node enters the heap at most once and is polled at most once.
//   - Each improving relaxation is one ChangePriority: O(log V).
//   - Space: O(V)
//   - One PathRecord per reached node, one heap entry per frontier node.
//
// Notes on implementation choices:
//
//   - The frontier never holds a node twice: an improved distance moves the
//     node's existing heap entry (decrease-key) instead of pushing a copy.
//   - Neighbors are relaxed in ascending ID order so that ties between
//     equally short paths always resolve to the same predecessor.
//   - Negative weights are detected when first relaxed; Compute stops with
//     ErrNegativeWeight and discards partial results.
package dijkstra

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/shortpath/indexheap"
)

// ShortestPaths holds the results of the most recent Compute call.
// It is not safe for concurrent use; run one ShortestPaths per computation.
type ShortestPaths struct {
	g       Graph
	options Options

	origin  string
	records map[string]*PathRecord // nil until a Compute succeeds
}

// New returns an engine over g. Options are applied left to right.
func New(g Graph, opts ...Option) *ShortestPaths {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ShortestPaths{g: g, options: cfg}
}

// Compute runs Dijkstra's algorithm from origin and replaces any previous
// results.
//
// Preconditions and validation (in order):
//  1. The graph must be non-nil (ErrNilGraph).
//  2. origin must be non-empty (ErrEmptyOrigin).
//  3. origin must exist in the graph (ErrUnknownNode).
//
// On any error the engine is left with no results.
func (sp *ShortestPaths) Compute(origin string) error {
	// 1) Clear previous results up front so a failed run never leaves stale data.
	sp.origin = ""
	sp.records = nil

	// 2) Validate inputs
	if sp.g == nil {
		return ErrNilGraph
	}
	if origin == "" {
		return ErrEmptyOrigin
	}
	if !sp.g.HasNode(origin) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, origin)
	}

	// 3) Run
	r := newRunner(sp.g, sp.options, origin)
	if err := r.process(); err != nil {
		return err
	}

	sp.origin = origin
	sp.records = r.records

	return nil
}

// Origin returns the origin of the last successful Compute, or "".
func (sp *ShortestPaths) Origin() string { return sp.origin }

// Record returns the PathRecord of dest and whether dest was reached.
func (sp *ShortestPaths) Record(dest string) (PathRecord, bool) {
	rec, ok := sp.records[dest]
	if !ok {
		return PathRecord{}, false
	}

	return *rec, true
}

// ShortestPathLength returns the length of the shortest path from the
// origin to dest. ok is false when no path exists (or Compute has not run).
func (sp *ShortestPaths) ShortestPathLength(dest string) (length float64, ok bool) {
	rec, ok := sp.records[dest]
	if !ok {
		return 0, false
	}

	return rec.Distance, true
}

// ShortestPath returns the nodes from the origin to dest inclusive.
// If dest is the origin the slice holds it once. ok is false when no path
// exists (or Compute has not run).
//
// Complexity: O(path length).
func (sp *ShortestPaths) ShortestPath(dest string) (path []string, ok bool) {
	rec, ok := sp.records[dest]
	if !ok {
		return nil, false
	}

	// Walk predecessors back to the origin, then reverse.
	path = append(path, dest)
	for rec.HasPredecessor {
		path = append(path, rec.Predecessor)
		rec = sp.records[rec.Predecessor]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Distances returns a snapshot of the distance to every reached node.
func (sp *ShortestPaths) Distances() map[string]float64 {
	out := make(map[string]float64, len(sp.records))
	for id, rec := range sp.records {
		out[id] = rec.Distance
	}

	return out
}

// Dijkstra is a one-shot helper: it computes shortest paths from origin and
// returns the distance map and the predecessor map of every reached node.
// The origin has no predecessor entry. Unreached nodes appear in neither map.
func Dijkstra(g Graph, origin string, opts ...Option) (map[string]float64, map[string]string, error) {
	sp := New(g, opts...)
	if err := sp.Compute(origin); err != nil {
		return nil, nil, err
	}

	prev := make(map[string]string, len(sp.records))
	for id, rec := range sp.records {
		if rec.HasPredecessor {
			prev[id] = rec.Predecessor
		}
	}

	return sp.Distances(), prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        Graph
	options  Options
	records  map[string]*PathRecord           // node → best distance and predecessor
	settled  map[string]struct{}              // nodes whose distance is final
	frontier *indexheap.Heap[string, float64] // discovered, unsettled nodes by tentative distance
}

// newRunner records the origin at distance 0 and seeds the frontier with it.
func newRunner(g Graph, opts Options, origin string) *runner {
	r := &runner{
		g:        g,
		options:  opts,
		records:  map[string]*PathRecord{origin: {Distance: 0}},
		settled:  make(map[string]struct{}),
		frontier: indexheap.New[string, float64](),
	}
	// Cannot fail: the heap is empty.
	_ = r.frontier.Add(origin, 0)

	return r
}

// process is the core loop: poll the closest frontier node, settle it and
// relax its outgoing edges, until the frontier is empty.
func (r *runner) process() error {
	for r.frontier.Len() > 0 {
		f, err := r.frontier.Poll()
		if err != nil {
			return err
		}
		r.settled[f] = struct{}{}

		if err = r.relax(f); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge out of the settled node f.
//
// For neighbor w with weight d, candidate = dist(f) + d:
//   - settled w is never revisited;
//   - undiscovered w gets a PathRecord and enters the frontier;
//   - frontier w with a strictly better candidate is updated in place.
func (r *runner) relax(f string) error {
	neighbors, err := r.g.Neighbors(f)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", f, err)
	}

	ids := make([]string, 0, len(neighbors))
	for w := range neighbors {
		ids = append(ids, w)
	}
	sort.Strings(ids)

	base := r.records[f].Distance
	for _, w := range ids {
		d := neighbors[w]
		if d < 0 || math.IsNaN(d) {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, f, w, d)
		}
		if d >= r.options.InfEdgeThreshold {
			continue
		}
		if _, done := r.settled[w]; done {
			continue
		}

		candidate := base + d
		if candidate > r.options.MaxDistance {
			continue
		}

		rec, seen := r.records[w]
		switch {
		case !seen:
			r.records[w] = &PathRecord{Distance: candidate, Predecessor: f, HasPredecessor: true}
			if err = r.frontier.Add(w, candidate); err != nil {
				return err
			}
		case candidate < rec.Distance:
			rec.Distance = candidate
			rec.Predecessor = f
			rec.HasPredecessor = true
			if err = r.frontier.ChangePriority(w, candidate); err != nil {
				return err
			}
		}
	}

	return nil
}
