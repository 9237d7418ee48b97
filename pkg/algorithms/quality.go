package algorithms

import (
	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// communityTally accumulates per-community edge counts
type communityTally struct {
	internal int
	boundary int
	degree   int
}

func checkLabeling(op string, g *graph.Graph, labels Labeling) error {
	if len(labels) != g.VertexCount() {
		return graph.NewError(op).Graph().
			Context("%d labels for %d vertices", len(labels), g.VertexCount()).
			Cause(graph.ErrOutOfRange).Err()
	}
	return nil
}

// totalWeight is M: E for directed graphs, 2E for undirected ones
func totalWeight(g *graph.Graph) float64 {
	if g.Directed() {
		return float64(g.EdgeCount())
	}
	return 2 * float64(g.EdgeCount())
}

// Modularity computes Σ (e_ii/M − (d_i/M)²) over communities.
// e_ii counts adjacency entries with both endpoints in community i, so an
// undirected internal edge contributes once from each end; d_i is the sum
// of adjacency-list lengths of the community's vertices. The result is 0
// when fewer than two communities exist or the graph has no edges.
func Modularity(g *graph.Graph, labels Labeling) (float64, error) {
	if err := checkLabeling("Modularity", g, labels); err != nil {
		return 0, err
	}

	m := totalWeight(g)
	tallies := make(map[int]*communityTally)
	for v, c := range labels {
		if c < 0 {
			continue
		}
		t := tallies[c]
		if t == nil {
			t = &communityTally{}
			tallies[c] = t
		}
		t.degree += g.Degree(v)
		for u := range g.Neighbors(v) {
			if labels[u] == c {
				t.internal++
			}
		}
	}

	if len(tallies) < 2 || m == 0 {
		return 0.0, nil
	}

	modularity := 0.0
	for _, t := range tallies {
		a := float64(t.degree) / m
		modularity += float64(t.internal)/m - a*a
	}
	return modularity, nil
}

// logicalEdges calls fn once per logical edge: every arc of a directed
// graph, and each undirected edge from its lower endpoint only. Undirected
// self-loops are skipped.
func logicalEdges(g *graph.Graph, fn func(v, u int)) {
	for v := range g.Vertices() {
		for u := range g.Neighbors(v) {
			if !g.Directed() && v >= u {
				continue
			}
			fn(v, u)
		}
	}
}

// Conductance averages boundary/(internal+boundary) over all non-empty
// communities. An edge leaving a community counts towards the boundary of
// each labelled endpoint, including edges to unlabelled vertices.
// Communities without boundary edges contribute 0.
func Conductance(g *graph.Graph, labels Labeling) (float64, error) {
	if err := checkLabeling("Conductance", g, labels); err != nil {
		return 0, err
	}

	tallies := make(map[int]*communityTally)
	for _, c := range labels {
		if c >= 0 && tallies[c] == nil {
			tallies[c] = &communityTally{}
		}
	}
	if len(tallies) == 0 {
		return 0.0, nil
	}

	logicalEdges(g, func(v, u int) {
		cv, cu := labels[v], labels[u]
		if cv >= 0 && cv == cu {
			tallies[cv].internal++
			return
		}
		if cv >= 0 {
			tallies[cv].boundary++
		}
		if cu >= 0 {
			tallies[cu].boundary++
		}
	})

	sum := 0.0
	for _, t := range tallies {
		if t.boundary > 0 {
			sum += float64(t.boundary) / float64(t.internal+t.boundary)
		}
	}
	return sum / float64(len(tallies)), nil
}

// Coverage is the fraction of edges whose endpoints share a community. The
// denominator is the logical edge count E on both directed and undirected
// graphs, so a single community spanning a connected graph scores 1.
func Coverage(g *graph.Graph, labels Labeling) (float64, error) {
	if err := checkLabeling("Coverage", g, labels); err != nil {
		return 0, err
	}
	if g.EdgeCount() == 0 {
		return 0.0, nil
	}

	intra := 0
	logicalEdges(g, func(v, u int) {
		if labels[v] >= 0 && labels[v] == labels[u] {
			intra++
		}
	})
	return float64(intra) / float64(g.EdgeCount()), nil
}

// Evaluate computes modularity, conductance and coverage of labels on g
func Evaluate(g *graph.Graph, labels Labeling) (Quality, error) {
	var (
		q   Quality
		err error
	)
	if q.Modularity, err = Modularity(g, labels); err != nil {
		return Quality{}, err
	}
	if q.Conductance, err = Conductance(g, labels); err != nil {
		return Quality{}, err
	}
	if q.Coverage, err = Coverage(g, labels); err != nil {
		return Quality{}, err
	}
	return q, nil
}
