// Package shortpath finds single-source shortest paths in weighted graphs,
// built on an indexed min-heap with in-place priority changes.
//
// What is inside?
//
//	chainmap/    generic separate-chaining hash table (grows past load 0.8)
//	indexheap/   binary min-heap with value → slot index for ChangePriority
//	graph/       thread-safe weighted graph with string node IDs
//	dijkstra/    ShortestPaths: Compute, ShortestPathLength, ShortestPath
//	graphio/     "basic" edge lists and "db1b" flight CSVs, optional snappy
//	builder/     reproducible Path, Grid and RandomSparse graphs
//	pathd/       HTTP query daemon with prometheus metrics
//	cmd/         the shortpaths CLI and the pathd service binary
//
// Quick example:
//
//	g := graph.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//
//	sp := dijkstra.New(g)
//	_ = sp.Compute("A")
//	path, _ := sp.ShortestPath("C")        // [A B C]
//	length, _ := sp.ShortestPathLength("C") // 3
//
// A destination with no path reports ok == false; it is never an error.
package shortpath
