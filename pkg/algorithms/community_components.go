package algorithms

import (
	"slices"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// ConnectedComponents labels every vertex with the id of its (weakly)
// connected component. Isolated vertices form singleton components.
func ConnectedComponents(g *graph.Graph) (*CommunityDetectionResult, error) {
	componentOf, count := componentAssignment(g)

	labels := Labeling(componentOf)
	return &CommunityDetectionResult{
		Algorithm:   AlgorithmComponents,
		Labels:      labels,
		Communities: Summarize(g, labels),
		Components:  count,
	}, nil
}

// componentAssignment runs a depth-first traversal from every unvisited
// vertex in ascending order, following neighbours in adjacency order.
// Directed graphs are traversed ignoring arc direction.
func componentAssignment(g *graph.Graph) ([]int, int) {
	n := g.VertexCount()
	neighbors := func(v int) []int { return slices.Collect(g.Neighbors(v)) }
	if g.Directed() {
		reverse := make([][]int, n)
		for v := range g.Vertices() {
			for u := range g.Neighbors(v) {
				reverse[u] = append(reverse[u], v)
			}
		}
		neighbors = func(v int) []int {
			return append(slices.Collect(g.Neighbors(v)), reverse[v]...)
		}
	}

	component := make([]int, n)
	visited := make([]bool, n)
	count := 0

	for start := range g.Vertices() {
		if visited[start] {
			continue
		}

		visited[start] = true
		component[start] = count
		// Each stack entry holds the neighbours still to visit for one vertex
		stack := [][]int{neighbors(start)}

		for len(stack) > 0 {
			top := len(stack) - 1
			if len(stack[top]) == 0 {
				stack = stack[:top]
				continue
			}

			u := stack[top][0]
			stack[top] = stack[top][1:]
			if visited[u] {
				continue
			}
			visited[u] = true
			component[u] = count
			stack = append(stack, neighbors(u))
		}
		count++
	}

	return component, count
}
