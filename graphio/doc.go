// Package graphio reads weighted graphs from files.
//
// Two formats are supported, selected by name:
//
//   - "basic": one edge per line, "FROM TO WEIGHT", whitespace separated.
//     Blank lines and lines starting with '#' are skipped. The first
//     significant line may be the directive "directed" or "undirected";
//     without it the graph is directed.
//   - "db1b": a CSV flight table with a header row. Each row is a directed
//     edge ORIGIN→DEST weighted by the configured column
//     (MARKET_MILES_FLOWN by default). When a pair repeats, the smallest
//     weight is kept.
//
// Load opens a file by path; names ending in ".sz" are decoded with
// snappy stream framing first.
//
// Errors:
//
//   - ErrUnknownFormat: the format name is not "basic" or "db1b".
//   - ErrSyntax:        a line or record could not be parsed.
//   - ErrMissingColumn: a required db1b column is absent from the header.
//   - graph.ErrBadWeight is returned wrapped for negative weights.
package graphio
