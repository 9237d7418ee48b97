package algorithms

import "github.com/dd0wney/cluso-communities/pkg/graph"

// ClusteringCoefficient computes the local clustering coefficient of every
// vertex on the simple undirected view of g.
func ClusteringCoefficient(g *graph.Graph) []float64 {
	return CountTriangles(g).Coefficients
}

// AverageClusteringCoefficient computes the mean local clustering
// coefficient over all vertices
func AverageClusteringCoefficient(g *graph.Graph) float64 {
	return CountTriangles(g).AverageCoefficient()
}
