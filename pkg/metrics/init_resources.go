package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initResourceMetrics() {
	r.RunPeakHeapBytes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_run_peak_heap_bytes",
			Help: "Largest heap in use observed at the stage boundaries of the last run",
		},
		[]string{"algorithm"},
	)

	r.RunAllocatedBytes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "communities_run_allocated_bytes",
			Help:    "Bytes allocated while a run was in progress",
			Buckets: prometheus.ExponentialBuckets(1<<20, 4, 10), // 1MiB .. 256GiB
		},
		[]string{"algorithm"},
	)

	r.LastRunTimestamp = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "communities_last_run_timestamp_seconds",
			Help: "Unix time at which the last run finished",
		},
		[]string{"algorithm", "status"},
	)

	r.HeapSysBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "communities_heap_sys_bytes",
			Help: "Heap memory obtained from the OS when metrics were exported",
		},
	)
}
