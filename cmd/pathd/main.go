package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/judwhite/go-svc"
	"github.com/mreiferson/go-options"

	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/lg"
	"github.com/katalvlaran/shortpath/internal/version"
	"github.com/katalvlaran/shortpath/pathd"
)

func pathdFlagSet(opts *pathd.Options) *flag.FlagSet {
	flagSet := flag.NewFlagSet("pathd", flag.ExitOnError)

	flagSet.String("config", "", "path to config file")
	flagSet.Bool("version", false, "print version string")

	flagSet.String("log-level", opts.LogLevel, "set log verbosity: debug, info, warn, error, or fatal")
	flagSet.String("log-prefix", opts.LogPrefix, "log message prefix")
	flagSet.Bool("verbose", false, "[deprecated] has no effect, use --log-level")
	flagSet.String("http-address", opts.HTTPAddress, "<addr>:<port> to listen on for HTTP clients")

	flagSet.String("graph-format", opts.GraphFormat, "graph file format: basic or db1b")
	flagSet.String("graph-file", opts.GraphFile, "path to the graph file (.sz for snappy-compressed)")
	flagSet.String("weight-column", opts.WeightColumn, "db1b column used as edge weight")
	flagSet.Float64("max-distance", opts.MaxDistance, "ignore paths longer than this (0 = unlimited)")

	return flagSet
}

type program struct {
	once  sync.Once
	pathd *pathd.PathD
}

func main() {
	prg := &program{}
	if err := svc.Run(prg, syscall.SIGINT, syscall.SIGTERM); err != nil {
		logFatal("%s", err)
	}
}

func (p *program) Init(env svc.Environment) error {
	if env.IsWindowsService() {
		dir := filepath.Dir(os.Args[0])
		return os.Chdir(dir)
	}
	return nil
}

func (p *program) Start() error {
	opts := pathd.NewOptions()

	flagSet := pathdFlagSet(opts)
	flagSet.Parse(os.Args[1:])

	if flagSet.Lookup("version").Value.(flag.Getter).Get().(bool) {
		fmt.Println(version.String("pathd"))
		os.Exit(0)
	}

	var cfg config
	configFile := flagSet.Lookup("config").Value.String()
	if configFile != "" {
		_, err := toml.DecodeFile(configFile, &cfg)
		if err != nil {
			logFatal("failed to load config file %s - %s", configFile, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		logFatal("%s", err)
	}

	options.Resolve(opts, flagSet, cfg)

	daemon, err := pathd.New(opts)
	if err != nil {
		logFatal("failed to instantiate pathd - %s", err)
	}
	p.pathd = daemon

	if err := p.pathd.Main(); err != nil {
		logFatal("%s", err)
	}
	return nil
}

func (p *program) Stop() error {
	p.once.Do(func() {
		if p.pathd != nil {
			p.pathd.Exit()
		}
	})
	return nil
}

type config map[string]interface{}

// Validate checks settings in the config file that flags cannot express.
func (cfg config) Validate() error {
	if v, exists := cfg["log_level"]; exists {
		if _, err := lg.ParseLogLevel(fmt.Sprintf("%v", v), false); err != nil {
			return fmt.Errorf("failed parsing log_level %+v", v)
		}
	}
	if v, exists := cfg["graph_format"]; exists {
		if !graphio.IsFormat(fmt.Sprintf("%v", v)) {
			return fmt.Errorf("%w: graph_format %+v", graphio.ErrUnknownFormat, v)
		}
	}
	return nil
}

func logFatal(f string, args ...interface{}) {
	lg.LogFatal("[pathd] ", f, args...)
}
