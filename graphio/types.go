package graphio

import "errors"

// Format names accepted by Parse and Load.
const (
	FormatBasic = "basic"
	FormatDB1B  = "db1b"
)

// DefaultWeightColumn is the db1b column used as edge weight.
const DefaultWeightColumn = "MARKET_MILES_FLOWN"

// SnappySuffix marks snappy-framed graph files.
const SnappySuffix = ".sz"

var (
	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrSyntax indicates a malformed line or record.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrMissingColumn indicates a db1b header lacks a required column.
	ErrMissingColumn = errors.New("graphio: missing column")
)

// Options configures parsing.
type Options struct {
	// WeightColumn is the db1b header name read as edge weight.
	WeightColumn string

	// OriginColumn and DestColumn name the db1b endpoint columns.
	OriginColumn string
	DestColumn   string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the db1b column names of the public DB1B tables.
func DefaultOptions() Options {
	return Options{
		WeightColumn: DefaultWeightColumn,
		OriginColumn: "ORIGIN",
		DestColumn:   "DEST",
	}
}

// WithWeightColumn selects the db1b weight column.
// Panics if name is empty.
func WithWeightColumn(name string) Option {
	if name == "" {
		panic("graphio: weight column name is empty")
	}

	return func(o *Options) { o.WeightColumn = name }
}
