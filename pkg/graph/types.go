package graph

// Graph is an adjacency-list graph over the dense vertex range [0, vertexCount).
//
// Neighbour lists keep edge-insertion order and are not deduplicated, so
// parallel edges appear as repeated entries. An undirected edge (u, v)
// appears as u→v and v→u but is counted once in EdgeCount.
type Graph struct {
	vertexCount int
	edgeCount   int
	directed    bool
	adjacency   [][]int
}

// Statistics summarises the degree distribution of a graph
type Statistics struct {
	Vertices         int
	Edges            int
	AdjacencyEntries int
	IsolatedVertices int
	IsolatedPercent  float64
	MinDegree        int
	MaxDegree        int
	MeanDegree       float64
}
