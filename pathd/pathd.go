package pathd

import (
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/lg"
)

// PathD serves shortest-path queries over one graph loaded at startup.
// The graph is read-only after New; each request runs its own engine.
type PathD struct {
	sync.RWMutex

	opts      *Options
	graph     *graph.Graph
	metrics   *metrics
	startTime time.Time

	httpListener net.Listener
	waitGroup    sync.WaitGroup
}

// New validates opts and loads the configured graph file.
func New(opts *Options) (*PathD, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, opts.LogPrefix, log.Ldate|log.Ltime|log.Lmicroseconds)
	}

	var err error
	opts.logLevel, err = lg.ParseLogLevel(opts.LogLevel, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", opts.LogLevel, err)
	}
	if opts.MaxDistance < 0 {
		return nil, fmt.Errorf("--max-distance must be >= 0, got %v", opts.MaxDistance)
	}
	if opts.GraphFile == "" {
		return nil, fmt.Errorf("--graph-file is required")
	}

	var parseOpts []graphio.Option
	if opts.WeightColumn != "" {
		parseOpts = append(parseOpts, graphio.WithWeightColumn(opts.WeightColumn))
	}
	g, err := graphio.Load(opts.GraphFormat, opts.GraphFile, parseOpts...)
	if err != nil {
		return nil, err
	}

	return newPathD(opts, g), nil
}

func newPathD(opts *Options, g *graph.Graph) *PathD {
	p := &PathD{
		opts:      opts,
		graph:     g,
		metrics:   newMetrics(),
		startTime: time.Now(),
	}
	p.metrics.observeGraph(g.Stats())

	p.logf(lg.INFO, "loaded %s", g.Report())

	return p
}

// Graph returns the served graph.
func (p *PathD) Graph() *graph.Graph { return p.graph }

func (p *PathD) RealHTTPAddr() *net.TCPAddr {
	p.RLock()
	defer p.RUnlock()
	return p.httpListener.Addr().(*net.TCPAddr)
}

// Main binds the HTTP listener and serves in the background.
func (p *PathD) Main() error {
	httpListener, err := net.Listen("tcp", p.opts.HTTPAddress)
	if err != nil {
		return fmt.Errorf("listen (%s) failed - %s", p.opts.HTTPAddress, err)
	}
	p.Lock()
	p.httpListener = httpListener
	p.Unlock()

	server := newHTTPServer(p)
	p.waitGroup.Add(1)
	go func() {
		defer p.waitGroup.Done()
		serve(httpListener, server, p.opts.Logger)
	}()

	return nil
}

// Exit closes the listener and waits for the server goroutine.
func (p *PathD) Exit() {
	p.Lock()
	if p.httpListener != nil {
		p.httpListener.Close()
	}
	p.Unlock()

	p.waitGroup.Wait()
}

// engine returns a fresh engine configured from opts.
func (p *PathD) engine() *dijkstra.ShortestPaths {
	var opts []dijkstra.Option
	if p.opts.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(p.opts.MaxDistance))
	}

	return dijkstra.New(p.graph, opts...)
}
