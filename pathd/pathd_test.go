package pathd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/lg"
)

type testLogger struct {
	t *testing.T
}

func (tl testLogger) Output(maxdepth int, s string) error {
	tl.t.Log(s)
	return nil
}

func classicGraph(t *testing.T) *graph.Graph {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddNode("E"))
	return g
}

func mustStartPathD(t *testing.T, opts *Options) *PathD {
	opts.HTTPAddress = "127.0.0.1:0"
	opts.Logger = testLogger{t}
	opts.logLevel = lg.DEBUG

	p := newPathD(opts, classicGraph(t))
	require.NoError(t, p.Main())
	t.Cleanup(p.Exit)
	return p
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	StatusTxt  string          `json:"status_txt"`
	Data       json.RawMessage `json:"data"`
}

func getJSON(t *testing.T, p *PathD, uri string) (int, envelope) {
	resp, err := http.Get(fmt.Sprintf("http://%s%s", p.RealHTTPAddr(), uri))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestPing(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", p.RealHTTPAddr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte("OK"), body)
}

func TestInfo(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	code, env := getJSON(t, p, "/info")
	require.Equal(t, 200, code)

	var info struct {
		Nodes    int  `json:"nodes"`
		Edges    int  `json:"edges"`
		Directed bool `json:"directed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, 5, info.Nodes)
	assert.Equal(t, 4, info.Edges)
	assert.True(t, info.Directed)
}

func TestPath(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	code, env := getJSON(t, p, "/path?from=A&to=D")
	require.Equal(t, 200, code)
	assert.Equal(t, "OK", env.StatusTxt)

	var pr pathResponse
	require.NoError(t, json.Unmarshal(env.Data, &pr))
	assert.True(t, pr.Reachable)
	require.NotNil(t, pr.Length)
	assert.Equal(t, 4.0, *pr.Length)
	assert.Equal(t, []string{"A", "B", "C", "D"}, pr.Path)
}

func TestPath_NoPath(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	code, env := getJSON(t, p, "/path?from=A&to=E")
	require.Equal(t, 200, code)

	var pr pathResponse
	require.NoError(t, json.Unmarshal(env.Data, &pr))
	assert.False(t, pr.Reachable)
	assert.Nil(t, pr.Length)
	assert.Nil(t, pr.Path)
}

func TestPath_MaxDistance(t *testing.T) {
	opts := NewOptions()
	opts.MaxDistance = 3
	p := mustStartPathD(t, opts)

	_, env := getJSON(t, p, "/path?from=A&to=D")
	var pr pathResponse
	require.NoError(t, json.Unmarshal(env.Data, &pr))
	assert.False(t, pr.Reachable)
}

func TestPath_Errors(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	cases := []struct {
		uri  string
		code int
		txt  string
	}{
		{"/path?to=D", 400, "MISSING_ARG_FROM"},
		{"/path?from=A", 400, "MISSING_ARG_TO"},
		{"/path?from=A&to=Z", 404, "UNKNOWN_NODE_TO"},
		{"/path?from=Z&to=A", 404, "UNKNOWN_NODE_FROM"},
		{"/distances", 400, "MISSING_ARG_FROM"},
		{"/nope", 404, "NOT_FOUND"},
	}
	for _, tc := range cases {
		code, env := getJSON(t, p, tc.uri)
		assert.Equal(t, tc.code, code, tc.uri)
		assert.Equal(t, tc.code, env.StatusCode, tc.uri)
		assert.Equal(t, tc.txt, env.StatusTxt, tc.uri)
	}
}

func TestDistances(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	code, env := getJSON(t, p, "/distances?from=B")
	require.Equal(t, 200, code)

	var dr struct {
		From      string             `json:"from"`
		Distances map[string]float64 `json:"distances"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dr))
	assert.Equal(t, "B", dr.From)
	assert.Equal(t, map[string]float64{"B": 0, "C": 2, "D": 3}, dr.Distances)
}

func TestMetrics(t *testing.T) {
	p := mustStartPathD(t, NewOptions())

	getJSON(t, p, "/path?from=A&to=D")
	getJSON(t, p, "/path?from=A&to=E")

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", p.RealHTTPAddr()))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Contains(t, string(body), `pathd_queries_total{endpoint="path",result="found"} 1`)
	assert.Contains(t, string(body), `pathd_queries_total{endpoint="path",result="no_path"} 1`)
	assert.Contains(t, string(body), "pathd_graph_nodes 5")
}

func TestNew_LoadsGraphFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(file, []byte("undirected\nX Y 2\n"), 0o644))

	opts := NewOptions()
	opts.Logger = testLogger{t}
	opts.GraphFile = file
	p, err := New(opts)
	require.NoError(t, err)
	assert.Equal(t, "undirected graph: 2 nodes, 2 edges", p.Graph().Report())
}

func TestNew_Errors(t *testing.T) {
	opts := NewOptions()
	opts.Logger = testLogger{t}
	_, err := New(opts)
	assert.ErrorContains(t, err, "--graph-file")

	opts.GraphFile = "g.txt"
	opts.LogLevel = "loud"
	_, err = New(opts)
	assert.ErrorContains(t, err, "log level")

	opts.LogLevel = "info"
	opts.GraphFormat = "xml"
	_, err = New(opts)
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	opts.GraphFormat = graphio.FormatBasic
	opts.MaxDistance = -1
	_, err = New(opts)
	assert.ErrorContains(t, err, "--max-distance")
}
