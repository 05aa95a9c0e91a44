// Package builder generates reproducible weighted graphs for tests,
// benchmarks and demos.
//
// A Constructor adds nodes and edges to a *graph.Graph; BuildGraph creates
// the graph from graph.GraphOption values and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]graph.GraphOption{graph.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//		builder.RandomSparse(100, 0.05),
//	)
//
// Constructors:
//
//   - Path(n):            0 → 1 → … → n-1.
//   - Grid(rows, cols):   4-neighborhood lattice with IDs "r,c", both directions.
//   - RandomSparse(n, p): every admissible pair kept independently with probability p.
//
// Determinism: node IDs, edge trial order and RNG draws are fixed, so a
// given seed always yields the same graph.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Options panic on nil arguments.
package builder
