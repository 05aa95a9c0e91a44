package pathd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/shortpath/graph"
)

// metrics holds the collectors of one PathD. Each instance owns its
// registry so several daemons can coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	// queriesTotal counts queries by endpoint and result.
	// Result labels: "found", "no_path", "bad_request", "unknown_node", "error".
	queriesTotal    *prometheus.CounterVec
	computeDuration prometheus.Histogram
	reachedNodes    prometheus.Histogram
	graphNodes      prometheus.Gauge
	graphEdges      prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathd_queries_total",
			Help: "Total shortest-path queries by endpoint and result",
		}, []string{"endpoint", "result"}),
		computeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathd_compute_duration_seconds",
			Help:    "Duration of one single-source computation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		reachedNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathd_reached_nodes",
			Help:    "Nodes reached per computation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		graphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pathd_graph_nodes",
			Help: "Nodes in the served graph",
		}),
		graphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pathd_graph_edges",
			Help: "Edges in the served graph",
		}),
	}
}

func (m *metrics) observeGraph(s graph.Stats) {
	m.graphNodes.Set(float64(s.NodeCount))
	m.graphEdges.Set(float64(s.EdgeCount))
}

func (m *metrics) query(endpoint, result string) {
	m.queriesTotal.WithLabelValues(endpoint, result).Inc()
}
