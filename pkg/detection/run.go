package detection

import (
	"fmt"
	"time"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
	"github.com/google/uuid"
)

// Run records one detection plus evaluation of a graph
type Run struct {
	ID          uuid.UUID          `json:"id"`
	Algorithm   Algorithm          `json:"algorithm"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	Vertices    int                `json:"vertices"`
	Edges       int                `json:"edges"`
	Directed    bool               `json:"directed"`
	Communities int                `json:"communities"`
	Labeled     int                `json:"labeled_vertices"`
	Quality     algorithms.Quality `json:"quality"`

	Result *algorithms.CommunityDetectionResult `json:"-"`
}

// Duration returns the wall time of the run
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Run detects communities of g with algorithm and evaluates the labeling.
// A graph without vertices yields a trivial run unless the detector
// requires vertices.
func (d *Detector) Run(g *graph.Graph, algorithm Algorithm) (*Run, error) {
	run := &Run{
		ID:        uuid.New(),
		Algorithm: algorithm,
		StartedAt: d.cfg.Clock.Now(),
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Directed:  g.Directed(),
	}
	logger := d.logger.With(logging.RunID(run.ID.String()), logging.Algorithm(string(algorithm)))
	resources := metrics.StartResourceSample()

	if g.VertexCount() == 0 {
		if d.cfg.RequireVertices {
			return nil, d.fail(run, logger, resources, graph.ErrEmptyGraph)
		}
		logger.Warn("graph has no vertices, returning a trivial run")
	}

	result, err := d.detect(g, algorithm)
	if err != nil {
		return nil, d.fail(run, logger, resources, err)
	}
	detected := d.cfg.Clock.Now()
	resources.Sample()
	d.metrics.RecordStage(string(algorithm), stageDetect, detected.Sub(run.StartedAt))

	quality, err := d.Evaluate(g, result.Labels)
	if err != nil {
		return nil, d.fail(run, logger, resources, err)
	}
	run.FinishedAt = d.cfg.Clock.Now()
	d.metrics.RecordStage(string(algorithm), stageEvaluate, run.FinishedAt.Sub(detected))

	run.Result = result
	run.Communities = result.Labels.CommunityCount()
	run.Labeled = result.Labels.Labeled()
	run.Quality = quality

	d.metrics.RecordRun(string(algorithm), metrics.StatusSuccess, run.Duration())
	d.metrics.RecordRunResources(string(algorithm), metrics.StatusSuccess, resources, run.FinishedAt)
	d.metrics.RecordPartition(string(algorithm), run.Communities, quality.Modularity, quality.Conductance, quality.Coverage)
	logger.Info("detection run completed",
		logging.Communities(run.Communities),
		logging.Int("labeled", run.Labeled),
		logging.Float64("modularity", quality.Modularity),
		logging.Float64("conductance", quality.Conductance),
		logging.Float64("coverage", quality.Coverage),
		logging.Latency(run.Duration()),
		logging.Int("peak_heap_bytes", int(resources.PeakHeap())),
	)
	return run, nil
}

func (d *Detector) fail(run *Run, logger logging.Logger, resources *metrics.ResourceSample, err error) error {
	now := d.cfg.Clock.Now()
	elapsed := now.Sub(run.StartedAt)
	d.metrics.RecordRun(string(run.Algorithm), metrics.StatusError, elapsed)
	d.metrics.RecordRunResources(string(run.Algorithm), metrics.StatusError, resources, now)
	logger.Error("detection run failed", logging.Error(err), logging.Latency(elapsed))
	return fmt.Errorf("detection run %s: %w", run.Algorithm, err)
}
