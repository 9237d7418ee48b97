package algorithms

import (
	"cmp"
	"slices"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// TriangleCountResult holds per-vertex and global triangle counts together
// with the local clustering coefficients derived from them.
type TriangleCountResult struct {
	PerVertex    []int
	GlobalCount  int
	Coefficients []float64
}

// CountTriangles counts triangles on the simple undirected view of g.
// For each vertex v, every linked pair of its neighbours closes one triangle
// through v, so GlobalCount = sum(PerVertex) / 3. Clustering coefficients are
// computed in the same pass; vertices with fewer than two distinct
// neighbours get 0.
func CountTriangles(g *graph.Graph) *TriangleCountResult {
	adj := simpleAdjacency(g)
	perVertex := make([]int, len(adj))
	coefficients := make([]float64, len(adj))

	total := 0
	for v, neighbors := range adj {
		k := len(neighbors)
		if k < 2 {
			continue
		}

		links := 0
		for _, u := range neighbors {
			links += intersectCount(adj[u], neighbors)
		}
		// Each pair is seen from both ends
		links /= 2

		perVertex[v] = links
		total += links
		coefficients[v] = float64(links) / float64(k*(k-1)/2)
	}

	return &TriangleCountResult{
		PerVertex:    perVertex,
		GlobalCount:  total / 3,
		Coefficients: coefficients,
	}
}

// TopVertices returns up to n vertices with at least one triangle, by
// descending count with ties broken by ascending id.
func (r *TriangleCountResult) TopVertices(n int) []int {
	top := make([]int, 0, len(r.PerVertex))
	for v, c := range r.PerVertex {
		if c > 0 {
			top = append(top, v)
		}
	}
	slices.SortStableFunc(top, func(a, b int) int {
		return cmp.Compare(r.PerVertex[b], r.PerVertex[a])
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// AverageCoefficient is the mean local clustering coefficient over all
// vertices, 0 for an empty graph.
func (r *TriangleCountResult) AverageCoefficient() float64 {
	if len(r.Coefficients) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, c := range r.Coefficients {
		sum += c
	}
	return sum / float64(len(r.Coefficients))
}
