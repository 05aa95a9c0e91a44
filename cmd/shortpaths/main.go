// shortpaths loads a graph file and prints shortest paths from an origin.
//
//	shortpaths [flags] <basic|db1b> <file> <origin> [destination]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mreiferson/go-options"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/lg"
	"github.com/katalvlaran/shortpath/internal/version"
)

type cliOptions struct {
	LogLevel     string  `flag:"log-level"`
	WeightColumn string  `flag:"weight-column"`
	MaxDistance  float64 `flag:"max-distance"`
}

func newOptions() *cliOptions {
	return &cliOptions{
		LogLevel:     "warn",
		WeightColumn: graphio.DefaultWeightColumn,
	}
}

func shortpathsFlagSet(opts *cliOptions, stderr io.Writer) *flag.FlagSet {
	flagSet := flag.NewFlagSet("shortpaths", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, "usage: shortpaths [flags] <basic|db1b> <file> <origin> [destination]")
		flagSet.PrintDefaults()
	}

	flagSet.String("config", "", "path to config file")
	flagSet.Bool("version", false, "print version string")
	flagSet.String("log-level", opts.LogLevel, "set log verbosity: debug, info, warn, error, or fatal")
	flagSet.String("weight-column", opts.WeightColumn, "db1b column used as edge weight")
	flagSet.Float64("max-distance", opts.MaxDistance, "ignore paths longer than this (0 = unlimited)")

	return flagSet
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "[shortpaths] ", log.Ldate|log.Ltime|log.Lmicroseconds)

	opts := newOptions()
	flagSet := shortpathsFlagSet(opts, stderr)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if flagSet.Lookup("version").Value.(flag.Getter).Get().(bool) {
		fmt.Fprintln(stdout, version.String("shortpaths"))
		return 0
	}

	var cfg map[string]interface{}
	if configFile := flagSet.Lookup("config").Value.String(); configFile != "" {
		if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
			lg.Logf(logger, lg.FATAL, lg.FATAL, "failed to load config file %s - %s", configFile, err)
			return 1
		}
	}
	options.Resolve(opts, flagSet, cfg)

	level, err := lg.ParseLogLevel(opts.LogLevel, false)
	if err != nil {
		lg.Logf(logger, lg.FATAL, lg.FATAL, "%s", err)
		return 1
	}
	logf := func(msgLevel lg.LogLevel, f string, args ...interface{}) {
		lg.Logf(logger, level, msgLevel, f, args...)
	}

	rest := flagSet.Args()
	if len(rest) < 3 || len(rest) > 4 {
		flagSet.Usage()
		return 2
	}
	format, file, origin := rest[0], rest[1], rest[2]
	if opts.MaxDistance < 0 {
		logf(lg.ERROR, "--max-distance must be >= 0, got %v", opts.MaxDistance)
		return 1
	}

	var parseOpts []graphio.Option
	if opts.WeightColumn != "" {
		parseOpts = append(parseOpts, graphio.WithWeightColumn(opts.WeightColumn))
	}
	g, err := graphio.Load(format, file, parseOpts...)
	if err != nil {
		logf(lg.ERROR, "%s", err)
		return 1
	}
	fmt.Fprintln(stdout, g.Report())

	var engineOpts []dijkstra.Option
	if opts.MaxDistance > 0 {
		engineOpts = append(engineOpts, dijkstra.WithMaxDistance(opts.MaxDistance))
	}
	sp := dijkstra.New(g, engineOpts...)
	if err = sp.Compute(origin); err != nil {
		logf(lg.ERROR, "%s", err)
		return 1
	}
	logf(lg.DEBUG, "reached %d of %d nodes from %s", len(sp.Distances()), g.NodeCount(), origin)

	if len(rest) == 4 {
		return printPath(stdout, g, sp, rest[3], logf)
	}
	printDistances(stdout, g, sp)
	return 0
}

func printPath(stdout io.Writer, g *graph.Graph, sp *dijkstra.ShortestPaths, dest string, logf lg.AppLogFunc) int {
	if !g.HasNode(dest) {
		logf(lg.ERROR, "%s", fmt.Errorf("%w: %q", graph.ErrUnknownNode, dest))
		return 1
	}

	path, ok := sp.ShortestPath(dest)
	if !ok {
		fmt.Fprintf(stdout, "No path exists from %s to %s.\n", sp.Origin(), dest)
		return 0
	}
	length, _ := sp.ShortestPathLength(dest)
	fmt.Fprintf(stdout, "%s %g\n", strings.Join(path, " "), length)
	return 0
}

func printDistances(stdout io.Writer, g *graph.Graph, sp *dijkstra.ShortestPaths) {
	fmt.Fprintf(stdout, "Shortest Paths From %s:\n", sp.Origin())
	for _, id := range g.Nodes() {
		if d, ok := sp.ShortestPathLength(id); ok {
			fmt.Fprintf(stdout, "%s: %g\n", id, d)
		}
	}
}
