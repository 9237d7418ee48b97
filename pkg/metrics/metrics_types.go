package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Run Metrics
	RunsTotal     *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	StageDuration *prometheus.HistogramVec

	// Graph Metrics
	GraphVertices     prometheus.Gauge
	GraphEdges        prometheus.Gauge
	GraphLoadDuration prometheus.Histogram
	GraphLoadErrors   prometheus.Counter

	// Clique Percolation Metrics
	CliquesEnumerated prometheus.Counter
	OverlapEdges      prometheus.Gauge
	OverlapComponents prometheus.Gauge

	// Label Propagation Metrics
	PropagationSweeps      prometheus.Histogram
	PropagationUnconverged prometheus.Counter

	// Partition Metrics
	Communities *prometheus.GaugeVec
	Modularity  *prometheus.GaugeVec
	Conductance *prometheus.GaugeVec
	Coverage    *prometheus.GaugeVec

	// Resource Metrics
	RunPeakHeapBytes  *prometheus.GaugeVec
	RunAllocatedBytes *prometheus.HistogramVec
	LastRunTimestamp  *prometheus.GaugeVec
	HeapSysBytes      prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	// Initialize all metrics
	r.initRunMetrics()
	r.initGraphMetrics()
	r.initAlgorithmMetrics()
	r.initPartitionMetrics()
	r.initResourceMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
