package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/shortpath/graph"
)

// Parse reads a graph in the named format from r.
func Parse(format string, r io.Reader, opts ...Option) (*graph.Graph, error) {
	switch strings.ToLower(format) {
	case FormatBasic:
		return ParseBasic(r)
	case FormatDB1B:
		return ParseDB1B(r, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load opens path and parses it in the named format. A ".sz" suffix
// selects snappy stream decoding.
func Load(format, path string, opts ...Option) (*graph.Graph, error) {
	if !IsFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: could not open file %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, SnappySuffix) {
		r = snappy.NewReader(r)
	}

	return Parse(format, r, opts...)
}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	switch strings.ToLower(name) {
	case FormatBasic, FormatDB1B:
		return true
	}
	return false
}
