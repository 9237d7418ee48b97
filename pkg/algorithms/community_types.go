package algorithms

// Unlabeled marks a vertex that belongs to no community
const Unlabeled = -1

// Labeling maps every vertex id to a community id, or Unlabeled
type Labeling []int

// Community represents a detected community
type Community struct {
	ID            int
	Vertices      []int
	Size          int
	InternalEdges int
	Density       float64 // Edge density within community
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Algorithm   string
	Labels      Labeling     // Vertex ID -> Community ID
	Communities []*Community // Largest first

	// Clique percolation
	CliqueSize   int
	Cliques      int // Maximal cliques of CliqueSize
	OverlapEdges int
	Components   int

	// Label propagation
	Sweeps    int
	Converged bool
}

// Quality holds the partition quality metrics of a labeling
type Quality struct {
	Modularity  float64 `json:"modularity"`
	Conductance float64 `json:"conductance"`
	Coverage    float64 `json:"coverage"`
}

// Algorithm names used in results, logs and metrics
const (
	AlgorithmCPM        = "cpm"
	AlgorithmLPA        = "lpa"
	AlgorithmComponents = "components"
)
