package algorithms

import (
	"math/rand"
	"slices"

	"github.com/dd0wney/cluso-communities/pkg/graph"
	"github.com/dd0wney/cluso-communities/pkg/logging"
)

// PropagationOptions configures label propagation
type PropagationOptions struct {
	Seed      int64 // Seed for the visitation order generator
	MaxSweeps int   // Hard ceiling on full passes over the vertices
	Logger    logging.Logger
}

// DefaultPropagationOptions returns default label propagation configuration
func DefaultPropagationOptions() PropagationOptions {
	return PropagationOptions{
		Seed:      3000,
		MaxSweeps: 1000,
	}
}

// PropagationStats describes how a propagation run stopped
type PropagationStats struct {
	Sweeps    int
	Converged bool // False when MaxSweeps was reached with labels still changing
}

// Propagator runs asynchronous label propagation over a single label array.
// Labels updated earlier in a sweep are visible to vertices visited later
// in the same sweep.
type Propagator struct {
	graph  *graph.Graph
	labels Labeling
	order  []int
	tally  []int
	seen   []int
	rng    *rand.Rand
	sweeps int
	logger logging.Logger
}

// NewPropagator creates a propagator with every vertex in its own
// community. A nil rng is replaced by one seeded with opts.Seed.
func NewPropagator(g *graph.Graph, rng *rand.Rand, opts PropagationOptions) (*Propagator, error) {
	if opts.MaxSweeps < 1 {
		return nil, graph.NewError("NewPropagator").Graph().
			Context("max sweeps %d", opts.MaxSweeps).
			Cause(graph.ErrOutOfRange).Err()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	n := g.VertexCount()
	p := &Propagator{
		graph:  g,
		labels: make(Labeling, n),
		order:  make([]int, n),
		tally:  make([]int, n),
		rng:    rng,
		logger: logging.OrNop(opts.Logger).With(logging.Algorithm(AlgorithmLPA)),
	}
	for v := range n {
		p.labels[v] = v
		p.order[v] = v
	}
	return p, nil
}

// Labels returns the current labels. The slice is owned by the propagator.
func (p *Propagator) Labels() Labeling {
	return p.labels
}

// Sweeps returns the number of sweeps performed so far
func (p *Propagator) Sweeps() int {
	return p.sweeps
}

// Sweep visits every vertex once in a fresh random order and moves it to the
// most frequent label among its neighbours. Ties favour the vertex's current
// label, then the lowest label. It reports whether any label changed.
func (p *Propagator) Sweep() (bool, error) {
	p.sweeps++
	p.rng.Shuffle(len(p.order), func(i, j int) {
		p.order[i], p.order[j] = p.order[j], p.order[i]
	})

	changed := false
	for _, v := range p.order {
		best, err := p.dominantLabel(v)
		if err != nil {
			return changed, err
		}
		if best != p.labels[v] {
			p.labels[v] = best
			changed = true
		}
	}
	return changed, nil
}

// dominantLabel tallies the current labels of v's neighbours
func (p *Propagator) dominantLabel(v int) (int, error) {
	n := len(p.labels)

	current := p.labels[v]
	if current < 0 || current >= n {
		return 0, graph.InvalidLabelError("Sweep", v, current, n)
	}

	p.seen = p.seen[:0]
	for u := range p.graph.Neighbors(v) {
		if u < 0 || u >= n {
			return 0, graph.NewError("Sweep").Vertex(v).
				Context("neighbour %d outside [0, %d)", u, n).
				Cause(graph.ErrInvalidLabel).Err()
		}
		label := p.labels[u]
		if label < 0 || label >= n {
			return 0, graph.InvalidLabelError("Sweep", u, label, n)
		}
		if p.tally[label] == 0 {
			p.seen = append(p.seen, label)
		}
		p.tally[label]++
	}

	best, bestCount := current, p.tally[current]
	slices.Sort(p.seen)
	for _, label := range p.seen {
		if p.tally[label] > bestCount {
			best, bestCount = label, p.tally[label]
		}
	}

	for _, label := range p.seen {
		p.tally[label] = 0
	}
	return best, nil
}

// Run sweeps until a sweep changes nothing or maxSweeps sweeps have been
// performed in total. Hitting the ceiling is not an error.
func (p *Propagator) Run(maxSweeps int) (PropagationStats, error) {
	for p.sweeps < maxSweeps {
		changed, err := p.Sweep()
		if err != nil {
			return PropagationStats{Sweeps: p.sweeps}, err
		}
		p.logger.Debug("sweep completed", logging.Sweep(p.sweeps), logging.Bool("changed", changed))
		if !changed {
			return PropagationStats{Sweeps: p.sweeps, Converged: true}, nil
		}
	}

	p.logger.Warn("label propagation stopped at the sweep ceiling", logging.Sweep(p.sweeps))
	return PropagationStats{Sweeps: p.sweeps}, nil
}

// LabelPropagation performs label propagation for community detection
// Fast, scalable algorithm for large graphs
func LabelPropagation(g *graph.Graph, opts PropagationOptions) (*CommunityDetectionResult, error) {
	p, err := NewPropagator(g, nil, opts)
	if err != nil {
		return nil, err
	}

	stats, err := p.Run(opts.MaxSweeps)
	if err != nil {
		return nil, err
	}

	labels := p.Labels()
	return &CommunityDetectionResult{
		Algorithm:   AlgorithmLPA,
		Labels:      labels,
		Communities: Summarize(g, labels),
		Sweeps:      stats.Sweeps,
		Converged:   stats.Converged,
	}, nil
}

// DetectCommunitiesLPA runs label propagation with the default seed and
// sweep ceiling
func DetectCommunitiesLPA(g *graph.Graph) (*CommunityDetectionResult, error) {
	return LabelPropagation(g, DefaultPropagationOptions())
}
