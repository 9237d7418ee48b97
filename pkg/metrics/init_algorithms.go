package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAlgorithmMetrics() {
	r.CliquesEnumerated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "communities_cpm_cliques_total",
			Help: "Total number of k-cliques fed into overlap graphs",
		},
	)

	r.OverlapEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_cpm_overlap_edges",
			Help: "Edges in the most recent clique overlap graph",
		},
	)

	r.OverlapComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_cpm_overlap_components",
			Help: "Connected components of the most recent clique overlap graph",
		},
	)

	r.PropagationSweeps = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "communities_lpa_sweeps",
			Help:    "Sweeps performed per label propagation run",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 1000},
		},
	)

	r.PropagationUnconverged = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "communities_lpa_unconverged_total",
			Help: "Label propagation runs stopped by the sweep ceiling",
		},
	)
}
