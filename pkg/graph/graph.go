package graph

import "iter"

// New creates an empty graph with vertexCount vertices and no edges.
func New(vertexCount int, directed bool) (*Graph, error) {
	if vertexCount < 0 {
		return nil, NewError("New").Graph().
			Context("vertex count %d", vertexCount).
			Cause(ErrInvalidVertexCount).Err()
	}

	return &Graph{
		vertexCount: vertexCount,
		directed:    directed,
		adjacency:   make([][]int, vertexCount),
	}, nil
}

// AddEdge inserts the edge src→dest. On an undirected graph the reverse
// entry dest→src is added as well. Both ids are checked before anything is
// written, so a failed call leaves the graph untouched.
func (g *Graph) AddEdge(src, dest int) error {
	if !g.valid(src) {
		return OutOfRangeError("AddEdge", src, g.vertexCount)
	}
	if !g.valid(dest) {
		return OutOfRangeError("AddEdge", dest, g.vertexCount)
	}

	g.adjacency[src] = append(g.adjacency[src], dest)
	if !g.directed {
		g.adjacency[dest] = append(g.adjacency[dest], src)
	}
	g.edgeCount++

	return nil
}

// Neighbors returns the neighbours of v in insertion order. The sequence
// can be ranged over any number of times. An out-of-range vertex yields
// nothing; use NeighborsOf to get an error instead.
func (g *Graph) Neighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !g.valid(v) {
			return
		}
		for _, n := range g.adjacency[v] {
			if !yield(n) {
				return
			}
		}
	}
}

// NeighborsOf is the checked form of Neighbors.
func (g *Graph) NeighborsOf(v int) (iter.Seq[int], error) {
	if !g.valid(v) {
		return nil, OutOfRangeError("NeighborsOf", v, g.vertexCount)
	}
	return g.Neighbors(v), nil
}

// Degree returns the length of v's adjacency list (out-degree for directed
// graphs). Parallel edges and self-loops are counted per entry.
func (g *Graph) Degree(v int) int {
	if !g.valid(v) {
		return 0
	}
	return len(g.adjacency[v])
}

// HasEdge reports whether dest appears in src's adjacency list.
func (g *Graph) HasEdge(src, dest int) bool {
	if !g.valid(src) || !g.valid(dest) {
		return false
	}
	for _, n := range g.adjacency[src] {
		if n == dest {
			return true
		}
	}
	return false
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// EdgeCount returns the number of logical edges inserted.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// Vertices returns the vertex ids in ascending order.
func (g *Graph) Vertices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := 0; v < g.vertexCount; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

func (g *Graph) valid(v int) bool {
	return v >= 0 && v < g.vertexCount
}
