// Package dijkstra provides a single-source shortest-path engine for
// weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths.Compute(origin) settles every node reachable from origin
//     in O((V + E) log V), using an indexheap.Heap as the frontier.
//   - An improved tentative distance is applied with Heap.ChangePriority, so
//     each node occupies at most one heap slot (no stale entries).
//   - Results are kept as one PathRecord (distance, predecessor) per reached
//     node and replaced wholesale by the next Compute.
//
// Queries:
//
//   - ShortestPathLength(dest) (float64, bool): ok == false means no path.
//   - ShortestPath(dest) ([]string, bool): origin … dest inclusive.
//   - Record(dest), Distances(), Origin().
//   - Dijkstra(g, origin, opts...) is a one-shot helper returning the
//     distance and predecessor maps.
//
// "No path" is a normal outcome, reported through the boolean, never as an
// error and never as a magic distance value.
//
// Key features:
//
//   - WithMaxDistance: nodes farther than the cap are left unreached.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//   - Deterministic predecessors: neighbors are relaxed in ascending ID order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyOrigin, ErrUnknownNode: Compute refused to start.
//   - ErrNegativeWeight: a negative or NaN edge weight was relaxed.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the option.
//   - Errors from Graph.Neighbors are wrapped and returned unchanged in kind.
//
// Thread safety:
//
//   - A ShortestPaths value is single-writer. For concurrent queries create
//     one engine per goroutine over a shared read-only graph.
//
// See also:
//
//   - graph.Graph: the in-memory Graph implementation.
//   - indexheap.Heap: the decrease-key priority queue used as frontier.
package dijkstra
