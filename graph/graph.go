package graph

import (
	"fmt"
	"math"
	"sort"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// AddNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// AddEdge records an edge from→to with weight w, creating both endpoints
// if needed. Undirected graphs also record to→from. If the edge already
// exists the smaller of the two weights is kept.
//
// Errors:
//   - ErrEmptyNodeID: if from or to is empty.
//   - ErrBadWeight:   if w is negative, NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure endpoints and link
	g.ensureNode(from)
	g.ensureNode(to)
	g.link(from, to, w)

	// 3) Mirror undirected
	if !g.directed && from != to {
		g.link(to, from, w)
	}

	return nil
}

// link stores from→to, keeping the cheaper weight. Caller holds mu.
func (g *Graph) link(from, to string, w float64) {
	if old, ok := g.adjacency[from][to]; ok {
		if w < old {
			g.adjacency[from][to] = w
		}
		return
	}
	g.adjacency[from][to] = w
	g.edgeCount++
}

// ensureNode creates an empty adjacency bucket for id. Caller holds mu.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Node returns a snapshot of the node with the given ID.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrUnknownNode: if the node does not exist (wrapped with the ID).
func (g *Graph) Node(id string) (*Node, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return &Node{ID: id, neighbors: nbrs}, nil
}

// Neighbors returns a copy of the outgoing neighbor → weight map of id.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrUnknownNode: if the node does not exist (wrapped with the ID).
//
// Complexity: O(d), d = out-degree of id.
func (g *Graph) Neighbors(id string) (map[string]float64, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make(map[string]float64, len(adj))
	for to, w := range adj {
		out[to] = w
	}

	return out, nil
}

// Nodes returns all node IDs sorted lexicographically ascending.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored edges. Each undirected edge
// between distinct nodes counts twice, once per direction.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Stats returns a consistent snapshot of size counters.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		Directed:  g.directed,
		NodeCount: len(g.adjacency),
		EdgeCount: g.edgeCount,
	}
}

// Report formats Stats as a one-line summary.
func (g *Graph) Report() string {
	s := g.Stats()
	kind := "directed"
	if !s.Directed {
		kind = "undirected"
	}

	return fmt.Sprintf("%s graph: %d nodes, %d edges", kind, s.NodeCount, s.EdgeCount)
}
