package pathd

import (
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/lg"
)

type Options struct {
	// basic options
	LogLevel    string `flag:"log-level"`
	LogPrefix   string `flag:"log-prefix"`
	Verbose     bool   `flag:"verbose"` // for backwards compatibility
	HTTPAddress string `flag:"http-address"`

	// graph source
	GraphFormat  string `flag:"graph-format"`
	GraphFile    string `flag:"graph-file"`
	WeightColumn string `flag:"weight-column"`

	// query limits; 0 disables the cap
	MaxDistance float64 `flag:"max-distance"`

	Logger   lg.Logger
	logLevel lg.LogLevel // private, not really an option
}

func NewOptions() *Options {
	return &Options{
		LogPrefix:   "[pathd] ",
		LogLevel:    "info",
		HTTPAddress: "0.0.0.0:4180",

		GraphFormat:  graphio.FormatBasic,
		WeightColumn: graphio.DefaultWeightColumn,
	}
}
