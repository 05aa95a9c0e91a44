// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the engine was built over a nil Graph.
//	– ErrEmptyOrigin     if the origin ID is empty.
//	– ErrUnknownNode     if the origin does not exist in the graph.
//	– ErrNegativeWeight  if a negative or NaN edge weight is met during relaxation.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN (option constructor panics).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN (option constructor panics).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was handed to the engine.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyOrigin indicates that the origin node ID is empty.
	ErrEmptyOrigin = errors.New("dijkstra: origin node ID is empty")

	// ErrUnknownNode indicates that the origin does not exist in the graph.
	ErrUnknownNode = errors.New("dijkstra: origin node not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was met.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// a negative value or NaN, which would make zero-weight edges impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view of a weighted graph that the engine needs.
// *graph.Graph satisfies it.
type Graph interface {
	// HasNode reports whether id is a node of the graph.
	HasNode(id string) bool

	// Neighbors returns the outgoing neighbor → weight map of id.
	// Weights must be non-negative.
	Neighbors(id string) (map[string]float64, error)
}

// PathRecord is the per-node bookkeeping of one Compute call: the best
// known distance from the origin and the predecessor on that path.
type PathRecord struct {
	Distance       float64 // best known distance from the origin
	Predecessor    string  // previous node on the best path; "" for the origin
	HasPredecessor bool    // false only for the origin
}

// Options configures the behavior of the engine.
//
// MaxDistance      – nodes whose distance would exceed this value are not reached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max get no PathRecord.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Invalid configuration is reported early, at option construction time.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Panics with ErrBadInfThreshold on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
