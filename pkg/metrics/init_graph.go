package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_graph_vertices",
			Help: "Number of vertices in the loaded graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_graph_edges",
			Help: "Number of edges in the loaded graph",
		},
	)

	r.GraphLoadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "communities_graph_load_duration_seconds",
			Help:    "Edge list parse and graph build duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60},
		},
	)

	r.GraphLoadErrors = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "communities_graph_load_errors_total",
			Help: "Total number of edge lists that failed to load",
		},
	)
}
