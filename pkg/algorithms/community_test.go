package algorithms

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// sameCommunity reports whether all vertices share one non-negative label
func sameCommunity(labels Labeling, vertices ...int) bool {
	first := labels[vertices[0]]
	if first < 0 {
		return false
	}
	for _, v := range vertices[1:] {
		if labels[v] != first {
			return false
		}
	}
	return true
}

// TestConnectedComponents_EmptyGraph tests connected components on empty graph
func TestConnectedComponents_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, false, nil)

	result, err := ConnectedComponents(g)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}

	if len(result.Communities) != 0 {
		t.Errorf("Expected 0 communities for empty graph, got %d", len(result.Communities))
	}
}

// TestConnectedComponents_TwoComponentsAndIsolated tests separate components
func TestConnectedComponents_TwoComponentsAndIsolated(t *testing.T) {
	g := buildGraph(t, 6, false, [][2]int{{0, 1}, {1, 2}, {3, 4}})

	result, err := ConnectedComponents(g)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}

	want := Labeling{0, 0, 0, 1, 1, 2}
	if !slices.Equal(result.Labels, want) {
		t.Errorf("Expected labels %v, got %v", want, result.Labels)
	}
	if result.Components != 3 {
		t.Errorf("Expected 3 components, got %d", result.Components)
	}
	if result.Communities[0].Size != 3 {
		t.Errorf("Expected largest community first, got size %d", result.Communities[0].Size)
	}
}

// TestConnectedComponents_DirectedIsWeak tests arcs are followed both ways
func TestConnectedComponents_DirectedIsWeak(t *testing.T) {
	g := buildGraph(t, 4, true, [][2]int{{1, 0}, {2, 1}, {3, 3}})

	result, err := ConnectedComponents(g)
	if err != nil {
		t.Fatalf("ConnectedComponents failed: %v", err)
	}

	if !sameCommunity(result.Labels, 0, 1, 2) || result.Labels[3] == result.Labels[0] {
		t.Errorf("Unexpected weak components: %v", result.Labels)
	}
}

// TestCliquePercolation_SharedEdge tests two triangles sharing an edge merge
func TestCliquePercolation_SharedEdge(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {2, 3}}
	edges = append(edges, completeEdges(4, 5, 6)...)
	edges = append(edges, [2]int{6, 7})
	g := buildGraph(t, 9, false, edges)

	result, err := DetectCommunitiesCPM(g, 3)
	if err != nil {
		t.Fatalf("DetectCommunitiesCPM failed: %v", err)
	}

	if result.Cliques != 3 {
		t.Errorf("Expected 3 triangles, got %d", result.Cliques)
	}
	if !sameCommunity(result.Labels, 0, 1, 2, 3) {
		t.Errorf("Expected 0-3 in one community, got %v", result.Labels)
	}
	if !sameCommunity(result.Labels, 4, 5, 6) || result.Labels[4] == result.Labels[0] {
		t.Errorf("Expected 4-6 in a second community, got %v", result.Labels)
	}
	if result.Labels[7] != Unlabeled || result.Labels[8] != Unlabeled {
		t.Errorf("Expected vertices outside triangles unlabelled, got %v", result.Labels)
	}
	if len(result.Communities) != 2 || result.Communities[0].Size != 4 {
		t.Errorf("Unexpected communities: %+v", result.Communities)
	}
}

// TestCliquePercolation_SharedVertexOnly tests triangles sharing one vertex stay apart
func TestCliquePercolation_SharedVertexOnly(t *testing.T) {
	edges := append(completeEdges(0, 1, 2), completeEdges(2, 3, 4)...)
	g := buildGraph(t, 5, false, edges)

	result, err := DetectCommunitiesCPM(g, 3)
	if err != nil {
		t.Fatalf("DetectCommunitiesCPM failed: %v", err)
	}

	if result.Components != 2 {
		t.Errorf("Expected 2 components, got %d", result.Components)
	}
	if !sameCommunity(result.Labels, 0, 1) || !sameCommunity(result.Labels, 3, 4) {
		t.Errorf("Unexpected labels: %v", result.Labels)
	}
}

// TestCliquePercolation_InvalidK tests k below 2 is rejected
func TestCliquePercolation_InvalidK(t *testing.T) {
	g := buildGraph(t, 3, false, completeEdges(0, 1, 2))

	for _, k := range []int{-1, 0, 1} {
		if _, err := DetectCommunitiesCPM(g, k); !errors.Is(err, graph.ErrOutOfRange) {
			t.Errorf("k=%d: expected ErrOutOfRange, got %v", k, err)
		}
	}
}

// TestCliquePercolation_EmptyGraph tests an empty graph yields no communities
func TestCliquePercolation_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, false, nil)

	result, err := DetectCommunitiesCPM(g, 3)
	if err != nil {
		t.Fatalf("DetectCommunitiesCPM failed: %v", err)
	}
	if len(result.Labels) != 0 || len(result.Communities) != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}
}

// TestLabelPropagation_DisjointCliques tests each clique settles on one label
func TestLabelPropagation_DisjointCliques(t *testing.T) {
	edges := append(completeEdges(0, 1, 2, 3), completeEdges(4, 5, 6, 7)...)
	g := buildGraph(t, 8, false, edges)

	result, err := DetectCommunitiesLPA(g)
	if err != nil {
		t.Fatalf("DetectCommunitiesLPA failed: %v", err)
	}

	if !result.Converged {
		t.Error("Expected propagation to converge")
	}
	if !sameCommunity(result.Labels, 0, 1, 2, 3) || !sameCommunity(result.Labels, 4, 5, 6, 7) {
		t.Errorf("Expected one label per clique, got %v", result.Labels)
	}
	if result.Labels.CommunityCount() != 2 {
		t.Errorf("Expected 2 communities, got %d", result.Labels.CommunityCount())
	}
}

// TestLabelPropagation_IsolatedVerticesKeepLabels tests vertices without neighbours
func TestLabelPropagation_IsolatedVerticesKeepLabels(t *testing.T) {
	g := buildGraph(t, 3, false, nil)

	result, err := DetectCommunitiesLPA(g)
	if err != nil {
		t.Fatalf("DetectCommunitiesLPA failed: %v", err)
	}

	if !slices.Equal(result.Labels, Labeling{0, 1, 2}) {
		t.Errorf("Expected initial labels, got %v", result.Labels)
	}
	if result.Sweeps != 1 || !result.Converged {
		t.Errorf("Expected convergence after 1 sweep, got %d (converged=%v)", result.Sweeps, result.Converged)
	}
}

// TestLabelPropagation_Deterministic tests the same seed gives the same labels
func TestLabelPropagation_Deterministic(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 10; i++ {
		base := i * 3
		edges = append(edges, completeEdges(base, base+1, base+2)...)
		edges = append(edges, [2]int{base + 2, (base + 3) % 30})
	}
	g := buildGraph(t, 30, false, edges)

	opts := DefaultPropagationOptions()
	opts.Seed = 42

	first, err := LabelPropagation(g, opts)
	if err != nil {
		t.Fatalf("LabelPropagation failed: %v", err)
	}
	second, err := LabelPropagation(g, opts)
	if err != nil {
		t.Fatalf("LabelPropagation failed: %v", err)
	}

	if !slices.Equal(first.Labels, second.Labels) || first.Sweeps != second.Sweeps {
		t.Errorf("Runs with the same seed differ:\n%v\n%v", first.Labels, second.Labels)
	}
}

// TestLabelPropagation_SweepCeiling tests stopping at MaxSweeps is not an error
func TestLabelPropagation_SweepCeiling(t *testing.T) {
	g := buildGraph(t, 2, false, [][2]int{{0, 1}})

	opts := DefaultPropagationOptions()
	opts.MaxSweeps = 1

	result, err := LabelPropagation(g, opts)
	if err != nil {
		t.Fatalf("LabelPropagation failed: %v", err)
	}
	if result.Sweeps != 1 || result.Converged {
		t.Errorf("Expected 1 unconverged sweep, got %d (converged=%v)", result.Sweeps, result.Converged)
	}
}

// TestLabelPropagation_InvalidMaxSweeps tests a zero ceiling is rejected
func TestLabelPropagation_InvalidMaxSweeps(t *testing.T) {
	g := buildGraph(t, 2, false, [][2]int{{0, 1}})

	opts := DefaultPropagationOptions()
	opts.MaxSweeps = 0
	if _, err := LabelPropagation(g, opts); err == nil {
		t.Error("Expected error for MaxSweeps=0")
	}
}

// TestPropagator_SweepAfterConvergence tests a converged labeling is a fixed point
func TestPropagator_SweepAfterConvergence(t *testing.T) {
	edges := append(completeEdges(0, 1, 2), [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3})
	g := buildGraph(t, 6, false, edges)

	p, err := NewPropagator(g, rand.New(rand.NewSource(7)), DefaultPropagationOptions())
	if err != nil {
		t.Fatalf("NewPropagator failed: %v", err)
	}
	stats, err := p.Run(1000)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !stats.Converged {
		t.Fatalf("Expected convergence, stopped after %d sweeps", stats.Sweeps)
	}

	before := p.Labels().Clone()
	changed, err := p.Sweep()
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if changed || !slices.Equal(before, p.Labels()) {
		t.Errorf("Extra sweep changed labels: %v -> %v", before, p.Labels())
	}
	if p.Sweeps() != stats.Sweeps+1 {
		t.Errorf("Expected sweep counter %d, got %d", stats.Sweeps+1, p.Sweeps())
	}
}

// TestPropagator_TieBreak tests ties keep the current label, else take the lowest
func TestPropagator_TieBreak(t *testing.T) {
	g := buildGraph(t, 6, false, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})

	p, err := NewPropagator(g, nil, DefaultPropagationOptions())
	if err != nil {
		t.Fatalf("NewPropagator failed: %v", err)
	}
	copy(p.labels, Labeling{0, 5, 5, 2, 2, 5})

	best, err := p.dominantLabel(0)
	if err != nil {
		t.Fatalf("dominantLabel failed: %v", err)
	}
	if best != 2 {
		t.Errorf("Expected lowest tied label 2, got %d", best)
	}

	p.labels[0] = 5
	best, err = p.dominantLabel(0)
	if err != nil {
		t.Fatalf("dominantLabel failed: %v", err)
	}
	if best != 5 {
		t.Errorf("Expected current label 5 to win the tie, got %d", best)
	}

	// A strict majority beats the current label
	p.labels[3] = 5
	p.labels[0] = 2
	if best, _ = p.dominantLabel(0); best != 5 {
		t.Errorf("Expected majority label 5, got %d", best)
	}
}

// TestPropagator_InvalidLabel tests corrupted labels fail the sweep
func TestPropagator_InvalidLabel(t *testing.T) {
	g := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}})

	p, err := NewPropagator(g, nil, DefaultPropagationOptions())
	if err != nil {
		t.Fatalf("NewPropagator failed: %v", err)
	}
	p.labels[1] = 99

	_, err = p.Sweep()
	if !graph.IsInvalidLabel(err) {
		t.Errorf("Expected invalid label error, got %v", err)
	}
}

// TestLabelPropagation_DirectedUsesOutArcs tests only successors vote
func TestLabelPropagation_DirectedUsesOutArcs(t *testing.T) {
	// 1 and 2 point at 0, 0 points nowhere
	g := buildGraph(t, 3, true, [][2]int{{1, 0}, {2, 0}})

	result, err := DetectCommunitiesLPA(g)
	if err != nil {
		t.Fatalf("DetectCommunitiesLPA failed: %v", err)
	}
	if !slices.Equal(result.Labels, Labeling{0, 0, 0}) {
		t.Errorf("Expected every vertex to adopt label 0, got %v", result.Labels)
	}
}

// TestSummarize tests ordering and density of community summaries
func TestSummarize(t *testing.T) {
	edges := append(completeEdges(0, 1, 2), [2]int{3, 4})
	g := buildGraph(t, 6, false, edges)
	labels := Labeling{7, 7, 7, 3, 3, Unlabeled}

	communities := Summarize(g, labels)

	if len(communities) != 2 {
		t.Fatalf("Expected 2 communities, got %d", len(communities))
	}
	if communities[0].ID != 7 || communities[0].Size != 3 || communities[0].InternalEdges != 3 {
		t.Errorf("Unexpected first community: %+v", communities[0])
	}
	if !approxEqual(communities[0].Density, 1.0) || !approxEqual(communities[1].Density, 1.0) {
		t.Errorf("Expected full density, got %v and %v", communities[0].Density, communities[1].Density)
	}
	if !slices.Equal(communities[1].Vertices, []int{3, 4}) {
		t.Errorf("Expected vertices [3 4], got %v", communities[1].Vertices)
	}
}

// TestSummarize_EqualSizesByID tests equal sizes are ordered by id
func TestSummarize_EqualSizesByID(t *testing.T) {
	g := buildGraph(t, 4, false, nil)

	communities := Summarize(g, Labeling{9, 2, 9, 2})
	if communities[0].ID != 2 || communities[1].ID != 9 {
		t.Errorf("Expected ids [2 9], got [%d %d]", communities[0].ID, communities[1].ID)
	}
	if communities[0].Density != 0 {
		t.Errorf("Expected zero density without edges, got %v", communities[0].Density)
	}
}

// TestClusteringCoefficient tests local and average clustering
func TestClusteringCoefficient(t *testing.T) {
	// Triangle 0-1-2 with a pendant 3 on vertex 2
	g := buildGraph(t, 5, false, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})

	coefficients := ClusteringCoefficient(g)
	want := []float64{1, 1, 1.0 / 3.0, 0, 0}
	for v, c := range coefficients {
		if !approxEqual(c, want[v]) {
			t.Errorf("vertex %d: expected %v, got %v", v, want[v], c)
		}
	}

	avg := AverageClusteringCoefficient(g)
	if !approxEqual(avg, (2+1.0/3.0)/5) {
		t.Errorf("Unexpected average clustering %v", avg)
	}
}

// TestLabeling tests labeling helpers
func TestLabeling(t *testing.T) {
	labels := Labeling{4, Unlabeled, 4, 9, 2}

	if labels.CommunityCount() != 3 {
		t.Errorf("CommunityCount() = %d, want 3", labels.CommunityCount())
	}
	if labels.Labeled() != 4 {
		t.Errorf("Labeled() = %d, want 4", labels.Labeled())
	}
	if sizes := labels.Sizes(); sizes[4] != 2 || sizes[9] != 1 {
		t.Errorf("Unexpected sizes %v", sizes)
	}

	compact := labels.Compact()
	if !slices.Equal(compact, Labeling{0, Unlabeled, 0, 1, 2}) {
		t.Errorf("Compact() = %v", compact)
	}

	clone := labels.Clone()
	clone[0] = 0
	if labels[0] != 4 {
		t.Error("Clone() shares storage with the original")
	}

	if fresh := NewLabeling(2); !slices.Equal(fresh, Labeling{Unlabeled, Unlabeled}) {
		t.Errorf("NewLabeling() = %v", fresh)
	}
}
