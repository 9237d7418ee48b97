// Package detection runs community detection end to end: it builds graphs
// from edge lists, dispatches to the detection algorithms, scores the
// partition and records each run in logs and metrics.
package detection

import (
	"fmt"
	"io"
	"time"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/edgelist"
	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
)

// Stage names used in stage duration metrics
const (
	stageDetect   = "detect"
	stageEvaluate = "evaluate"
)

// BuildGraph creates a graph with vertexCount vertices from an edge list
func BuildGraph(r io.Reader, vertexCount int, directed bool) (*graph.Graph, error) {
	return edgelist.Load(r, vertexCount, directed)
}

// Detector runs detection algorithms with shared timing, logging and
// metrics. It is not safe for concurrent use.
type Detector struct {
	cfg     Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewDetector creates a detector with the specified config.
func NewDetector(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("detector: config validation failed: %w", err)
	}
	return &Detector{
		cfg:     cfg,
		logger:  cfg.Logger.With(logging.Component("detection")),
		metrics: cfg.Metrics,
	}, nil
}

// Metrics returns the registry the detector records into
func (d *Detector) Metrics() *metrics.Registry {
	return d.metrics
}

// LoadGraph builds a graph from r like BuildGraph and records the load
func (d *Detector) LoadGraph(r io.Reader, vertexCount int, directed bool) (*graph.Graph, error) {
	start := d.cfg.Clock.Now()
	g, err := BuildGraph(r, vertexCount, directed)
	return g, d.recordLoad(g, start, err)
}

// LoadRemapped builds a graph over dense ids assigned to the distinct
// vertex ids of r
func (d *Detector) LoadRemapped(r io.Reader, directed bool) (*graph.Graph, *edgelist.Mapping, error) {
	start := d.cfg.Clock.Now()
	g, mapping, err := edgelist.LoadRemapped(r, directed)
	return g, mapping, d.recordLoad(g, start, err)
}

func (d *Detector) recordLoad(g *graph.Graph, start time.Time, err error) error {
	elapsed := d.cfg.Clock.Now().Sub(start)
	if err != nil {
		d.metrics.RecordGraphLoad(0, 0, elapsed, err)
		d.logger.Error("graph load failed", logging.Error(err))
		return fmt.Errorf("load graph: %w", err)
	}

	d.metrics.RecordGraphLoad(g.VertexCount(), g.EdgeCount(), elapsed, nil)
	d.logger.Info("graph loaded",
		logging.Vertices(g.VertexCount()),
		logging.Edges(g.EdgeCount()),
		logging.Bool("directed", g.Directed()),
		logging.Latency(elapsed),
	)
	return nil
}

// DetectCPM runs clique percolation with clique size k
func (d *Detector) DetectCPM(g *graph.Graph, k int) (*algorithms.CommunityDetectionResult, error) {
	result, err := algorithms.CliquePercolation(g, algorithms.CPMOptions{
		CliqueSize: k,
		Logger:     d.logger,
	})
	if err != nil {
		return nil, err
	}

	d.metrics.RecordCliquePercolation(result.Cliques, result.OverlapEdges, result.Components)
	d.logger.Info("clique percolation finished",
		logging.CliqueSize(k),
		logging.Cliques(result.Cliques),
		logging.Int("overlap_edges", result.OverlapEdges),
		logging.Communities(len(result.Communities)),
	)
	return result, nil
}

// DetectLPA runs label propagation with the configured seed and sweep ceiling
func (d *Detector) DetectLPA(g *graph.Graph) (*algorithms.CommunityDetectionResult, error) {
	result, err := algorithms.LabelPropagation(g, algorithms.PropagationOptions{
		Seed:      d.cfg.Seed,
		MaxSweeps: d.cfg.MaxSweeps,
		Logger:    d.logger,
	})
	if err != nil {
		return nil, err
	}

	d.metrics.RecordPropagation(result.Sweeps, result.Converged)
	d.logger.Info("label propagation finished",
		logging.Sweep(result.Sweeps),
		logging.Bool("converged", result.Converged),
		logging.Communities(len(result.Communities)),
	)
	return result, nil
}

// DetectComponents labels vertices by connected component
func (d *Detector) DetectComponents(g *graph.Graph) (*algorithms.CommunityDetectionResult, error) {
	return algorithms.ConnectedComponents(g)
}

// Evaluate scores a labeling of g
func (d *Detector) Evaluate(g *graph.Graph, labels algorithms.Labeling) (algorithms.Quality, error) {
	return algorithms.Evaluate(g, labels)
}

func (d *Detector) detect(g *graph.Graph, algorithm Algorithm) (*algorithms.CommunityDetectionResult, error) {
	switch algorithm {
	case CPM:
		return d.DetectCPM(g, d.cfg.CliqueSize)
	case LPA:
		return d.DetectLPA(g)
	case Components:
		return d.DetectComponents(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
