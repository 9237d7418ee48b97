package algorithms

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// buildGraph creates a graph from an edge list for algorithm tests
func buildGraph(t *testing.T, vertexCount int, directed bool, edges [][2]int) *graph.Graph {
	t.Helper()

	g, err := graph.New(vertexCount, directed)
	if err != nil {
		t.Fatalf("Failed to create graph: %v", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("Failed to add edge %v: %v", e, err)
		}
	}
	return g
}

// completeEdges returns all edges of the complete graph over vertices
func completeEdges(vertices ...int) [][2]int {
	var edges [][2]int
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			edges = append(edges, [2]int{vertices[i], vertices[j]})
		}
	}
	return edges
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
