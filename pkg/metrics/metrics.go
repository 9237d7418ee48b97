package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RecordRun records a finished detection run with its duration
func (r *Registry) RecordRun(algorithm, status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(algorithm, status).Inc()
	r.RunDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordStage records the duration of one stage of a run
func (r *Registry) RecordStage(algorithm, stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(algorithm, stage).Observe(duration.Seconds())
}

// RecordGraphLoad records a loaded graph, or a failed load when err is set
func (r *Registry) RecordGraphLoad(vertices, edges int, duration time.Duration, err error) {
	if err != nil {
		r.GraphLoadErrors.Inc()
		return
	}
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
	r.GraphLoadDuration.Observe(duration.Seconds())
}

// RecordCliquePercolation records the overlap graph of a CPM run
func (r *Registry) RecordCliquePercolation(cliques, overlapEdges, components int) {
	r.CliquesEnumerated.Add(float64(cliques))
	r.OverlapEdges.Set(float64(overlapEdges))
	r.OverlapComponents.Set(float64(components))
}

// RecordPropagation records how a label propagation run stopped
func (r *Registry) RecordPropagation(sweeps int, converged bool) {
	r.PropagationSweeps.Observe(float64(sweeps))
	if !converged {
		r.PropagationUnconverged.Inc()
	}
}

// RecordPartition records the community count and quality of a partition
func (r *Registry) RecordPartition(algorithm string, communities int, modularity, conductance, coverage float64) {
	r.Communities.WithLabelValues(algorithm).Set(float64(communities))
	r.Modularity.WithLabelValues(algorithm).Set(modularity)
	r.Conductance.WithLabelValues(algorithm).Set(conductance)
	r.Coverage.WithLabelValues(algorithm).Set(coverage)
}

// ResourceSample tracks heap use across the stages of one run. Samples
// are taken only at stage boundaries since reading memory statistics
// stops the world.
type ResourceSample struct {
	startTotalAlloc uint64
	totalAlloc      uint64
	peakHeap        uint64
}

// StartResourceSample takes the first sample of a run
func StartResourceSample() *ResourceSample {
	s := &ResourceSample{}
	s.Sample()
	s.startTotalAlloc = s.totalAlloc
	return s
}

// Sample records the current heap, keeping the peak
func (s *ResourceSample) Sample() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s.totalAlloc = mem.TotalAlloc
	s.peakHeap = max(s.peakHeap, mem.HeapAlloc)
}

// PeakHeap is the largest heap in use seen so far
func (s *ResourceSample) PeakHeap() uint64 {
	return s.peakHeap
}

// Allocated is the number of bytes allocated between the first and the
// latest sample
func (s *ResourceSample) Allocated() uint64 {
	return s.totalAlloc - s.startTotalAlloc
}

// RecordRunResources takes a final sample and records the resource use of
// a run that finished at finishedAt with the given status
func (r *Registry) RecordRunResources(algorithm, status string, s *ResourceSample, finishedAt time.Time) {
	s.Sample()
	r.RunPeakHeapBytes.WithLabelValues(algorithm).Set(float64(s.PeakHeap()))
	r.RunAllocatedBytes.WithLabelValues(algorithm).Observe(float64(s.Allocated()))
	r.LastRunTimestamp.WithLabelValues(algorithm, status).Set(float64(finishedAt.UnixNano()) / 1e9)
}

// WriteTextfile writes every metric in the text exposition format, for
// node_exporter's textfile collector on batch hosts
func (r *Registry) WriteTextfile(path string) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	r.HeapSysBytes.Set(float64(mem.HeapSys))

	return prometheus.WriteToTextfile(path, r.registry)
}
