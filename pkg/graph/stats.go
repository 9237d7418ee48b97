package graph

// DegreeStatistics computes the degree distribution summary of g.
// Degree here is adjacency-list length, matching Graph.Degree.
func DegreeStatistics(g *Graph) Statistics {
	stats := Statistics{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	}
	if stats.Vertices == 0 {
		return stats
	}

	stats.MinDegree = g.Degree(0)
	for v := range g.Vertices() {
		d := g.Degree(v)
		stats.AdjacencyEntries += d

		if d == 0 {
			stats.IsolatedVertices++
		}
		if d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	stats.IsolatedPercent = float64(stats.IsolatedVertices) / float64(stats.Vertices) * 100
	stats.MeanDegree = float64(stats.AdjacencyEntries) / float64(stats.Vertices)

	return stats
}
