package pathd

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/internal/lg"
	"github.com/katalvlaran/shortpath/internal/version"
)

type httpServer struct {
	pathd  *PathD
	router http.Handler
}

func newHTTPServer(p *PathD) *httpServer {
	log := logRequests(p.opts.Logger)

	router := httprouter.New()
	router.HandleMethodNotAllowed = true
	router.PanicHandler = logPanicHandler(p.opts.Logger)
	router.NotFound = logNotFoundHandler(p.opts.Logger)
	router.MethodNotAllowed = logMethodNotAllowedHandler(p.opts.Logger)
	s := &httpServer{
		pathd:  p,
		router: router,
	}

	router.Handle("GET", "/ping", decorate(s.pingHandler, log, plainText))
	router.Handle("GET", "/info", decorate(s.doInfo, log, jsonEnvelope))

	router.Handle("GET", "/path", decorate(s.doPath, log, jsonEnvelope))
	router.Handle("GET", "/distances", decorate(s.doDistances, log, jsonEnvelope))

	router.Handler("GET", "/metrics", promhttp.HandlerFor(p.metrics.registry, promhttp.HandlerOpts{}))

	return s
}

func (s *httpServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *httpServer) pingHandler(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	return "OK", nil
}

func (s *httpServer) doInfo(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	st := s.pathd.graph.Stats()
	return struct {
		Version   string `json:"version"`
		StartTime int64  `json:"start_time"`
		Directed  bool   `json:"directed"`
		Nodes     int    `json:"nodes"`
		Edges     int    `json:"edges"`
	}{
		Version:   version.Binary,
		StartTime: s.pathd.startTime.Unix(),
		Directed:  st.Directed,
		Nodes:     st.NodeCount,
		Edges:     st.EdgeCount,
	}, nil
}

type pathResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Length    *float64 `json:"length"`
	Path      []string `json:"path"`
}

func (s *httpServer) doPath(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	const endpoint = "path"

	reqParams, err := url.ParseQuery(req.URL.RawQuery)
	if err != nil {
		s.pathd.metrics.query(endpoint, "bad_request")
		return nil, apiErr{400, "INVALID_REQUEST"}
	}
	from, to := reqParams.Get("from"), reqParams.Get("to")
	if from == "" {
		s.pathd.metrics.query(endpoint, "bad_request")
		return nil, apiErr{400, "MISSING_ARG_FROM"}
	}
	if to == "" {
		s.pathd.metrics.query(endpoint, "bad_request")
		return nil, apiErr{400, "MISSING_ARG_TO"}
	}
	if !s.pathd.graph.HasNode(to) {
		s.pathd.metrics.query(endpoint, "unknown_node")
		return nil, apiErr{404, "UNKNOWN_NODE_TO"}
	}

	sp, err := s.compute(endpoint, from)
	if err != nil {
		return nil, err
	}

	resp := pathResponse{From: from, To: to}
	length, ok := sp.ShortestPathLength(to)
	if !ok {
		s.pathd.metrics.query(endpoint, "no_path")
		return resp, nil
	}
	resp.Reachable = true
	resp.Length = &length
	resp.Path, _ = sp.ShortestPath(to)
	s.pathd.metrics.query(endpoint, "found")

	return resp, nil
}

func (s *httpServer) doDistances(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	const endpoint = "distances"

	reqParams, err := url.ParseQuery(req.URL.RawQuery)
	if err != nil {
		s.pathd.metrics.query(endpoint, "bad_request")
		return nil, apiErr{400, "INVALID_REQUEST"}
	}
	from := reqParams.Get("from")
	if from == "" {
		s.pathd.metrics.query(endpoint, "bad_request")
		return nil, apiErr{400, "MISSING_ARG_FROM"}
	}

	sp, err := s.compute(endpoint, from)
	if err != nil {
		return nil, err
	}
	s.pathd.metrics.query(endpoint, "found")

	return struct {
		From      string             `json:"from"`
		Distances map[string]float64 `json:"distances"`
	}{from, sp.Distances()}, nil
}

// compute runs one engine from origin and maps its errors to API errors.
func (s *httpServer) compute(endpoint, origin string) (*dijkstra.ShortestPaths, error) {
	sp := s.pathd.engine()

	start := time.Now()
	err := sp.Compute(origin)
	s.pathd.metrics.computeDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		s.pathd.metrics.reachedNodes.Observe(float64(len(sp.Distances())))
		return sp, nil
	case errors.Is(err, dijkstra.ErrUnknownNode):
		s.pathd.metrics.query(endpoint, "unknown_node")
		return nil, apiErr{404, "UNKNOWN_NODE_FROM"}
	default:
		s.pathd.metrics.query(endpoint, "error")
		s.pathd.logf(lg.ERROR, "compute from %q failed - %s", origin, err)
		return nil, apiErr{500, "INTERNAL_ERROR"}
	}
}
