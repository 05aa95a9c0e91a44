package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/mreiferson/go-options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/pathd"
)

const exampleConfig = `
log_level = "debug"
http_address = "127.0.0.1:4999"
graph_format = "db1b"
graph_file = "flights.csv.sz"
max_distance = 5000.0
`

func TestConfigFlagParsing(t *testing.T) {
	opts := pathd.NewOptions()

	flagSet := pathdFlagSet(opts)
	require.NoError(t, flagSet.Parse([]string{"--weight-column", "PASSENGERS"}))

	cfgFile := filepath.Join(t.TempDir(), "pathd.cfg")
	require.NoError(t, os.WriteFile(cfgFile, []byte(exampleConfig), 0o644))

	var cfg config
	_, err := toml.DecodeFile(cfgFile, &cfg)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	options.Resolve(opts, flagSet, cfg)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "127.0.0.1:4999", opts.HTTPAddress)
	assert.Equal(t, graphio.FormatDB1B, opts.GraphFormat)
	assert.Equal(t, "flights.csv.sz", opts.GraphFile)
	assert.Equal(t, 5000.0, opts.MaxDistance)
	assert.Equal(t, "PASSENGERS", opts.WeightColumn)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, config{}.Validate())
	assert.Error(t, config{"log_level": "loud"}.Validate())
	assert.ErrorIs(t, config{"graph_format": "xml"}.Validate(), graphio.ErrUnknownFormat)
}

func TestProgramStopWithoutStart(t *testing.T) {
	p := &program{}
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}
