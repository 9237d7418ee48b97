package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "communities_runs_total",
			Help: "Total number of detection runs",
		},
		[]string{"algorithm", "status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_run_duration_seconds",
			Help:    "Detection run duration in seconds, evaluation included",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 300, 1800},
		},
		[]string{"algorithm"},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_stage_duration_seconds",
			Help:    "Duration of each run stage in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 300, 1800},
		},
		[]string{"algorithm", "stage"},
	)
}
