// Package graph defines the weighted Graph consumed by the shortest-path
// engine: string-identified nodes, each with a neighbor → weight view.
//
// All Graph methods take an internal sync.RWMutex, so a fully built graph
// can be queried from many goroutines at once (for example one Dijkstra
// computation per HTTP request).
//
// Errors:
//
//	ErrEmptyNodeID - node ID is the empty string.
//	ErrUnknownNode - requested node does not exist.
//	ErrBadWeight   - weight is negative, NaN or infinite.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite and non-negative")
)

// Node is a read-only snapshot of one vertex and its outgoing edges.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	neighbors map[string]float64
}

// Neighbors returns a copy of the node's neighbor → edge weight view.
func (n *Node) Neighbors() map[string]float64 {
	out := make(map[string]float64, len(n.neighbors))
	for id, w := range n.neighbors {
		out[id] = w
	}

	return out
}

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.neighbors) }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true, the default) or
// mirrored in both directions (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an in-memory weighted adjacency map.
//
// adjacency[from][to] holds the weight of edge from→to. Undirected graphs
// store every edge in both directions. A repeated edge keeps the smaller
// weight, since only the cheapest parallel edge can lie on a shortest path.
type Graph struct {
	mu sync.RWMutex // guards every field below

	directed bool

	// adjacency[from][to] = weight
	adjacency map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph. By default edges are directed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stats is a snapshot of graph size, as printed by the CLI before a run.
type Stats struct {
	Directed  bool
	NodeCount int
	EdgeCount int
}
