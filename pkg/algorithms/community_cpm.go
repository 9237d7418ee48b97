package algorithms

import (
	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
)

// CPMOptions configures clique percolation
type CPMOptions struct {
	CliqueSize int // Size k of the maximal cliques that percolate
	Logger     logging.Logger
}

// DefaultCPMOptions returns default clique percolation configuration
func DefaultCPMOptions() CPMOptions {
	return CPMOptions{
		CliqueSize: 3,
	}
}

// CliquePercolation detects communities with the clique percolation method:
// enumerate maximal cliques, keep those of size k, join cliques sharing
// k-1 vertices and label vertices by the component of their cliques.
func CliquePercolation(g *graph.Graph, opts CPMOptions) (*CommunityDetectionResult, error) {
	if opts.CliqueSize < 2 {
		return nil, graph.NewError("CliquePercolation").Graph().
			Context("clique size %d, need at least 2", opts.CliqueSize).
			Cause(graph.ErrOutOfRange).Err()
	}
	logger := logging.OrNop(opts.Logger).With(logging.Algorithm(AlgorithmCPM), logging.CliqueSize(opts.CliqueSize))

	all := EnumerateMaximalCliques(g)
	cliques := FilterBySize(all, opts.CliqueSize)
	logger.Debug("maximal cliques enumerated", logging.Int("maximal", len(all)), logging.Cliques(len(cliques)))

	og, err := BuildOverlapGraph(cliques, opts.CliqueSize)
	if err != nil {
		return nil, err
	}
	logger.Debug("overlap graph built", logging.Int("overlap_edges", og.Graph.EdgeCount()))

	componentOf, components := Decompose(og)
	logger.Debug("overlap graph decomposed", logging.Int("components", components))

	labels, err := ProjectToVertices(g.VertexCount(), cliques, componentOf)
	if err != nil {
		return nil, err
	}

	return &CommunityDetectionResult{
		Algorithm:    AlgorithmCPM,
		Labels:       labels,
		Communities:  Summarize(g, labels),
		CliqueSize:   opts.CliqueSize,
		Cliques:      len(cliques),
		OverlapEdges: og.Graph.EdgeCount(),
		Components:   components,
	}, nil
}

// DetectCommunitiesCPM runs clique percolation with clique size k
func DetectCommunitiesCPM(g *graph.Graph, k int) (*CommunityDetectionResult, error) {
	opts := DefaultCPMOptions()
	opts.CliqueSize = k
	return CliquePercolation(g, opts)
}
