package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPartitionMetrics() {
	r.Communities = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_detected",
			Help: "Non-empty communities found by the most recent run",
		},
		[]string{"algorithm"},
	)

	r.Modularity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_modularity",
			Help: "Modularity of the most recent partition",
		},
		[]string{"algorithm"},
	)

	r.Conductance = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_conductance",
			Help: "Mean conductance of the most recent partition",
		},
		[]string{"algorithm"},
	)

	r.Coverage = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_coverage",
			Help: "Fraction of edges inside communities for the most recent partition",
		},
		[]string{"algorithm"},
	)
}
