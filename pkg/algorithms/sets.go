package algorithms

import (
	"slices"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// simpleAdjacency returns the undirected simple-graph view of g: for each
// vertex an ascending, duplicate-free neighbour list without self-loops.
// On directed graphs an arc in either direction makes two vertices adjacent.
func simpleAdjacency(g *graph.Graph) [][]int {
	n := g.VertexCount()
	adj := make([][]int, n)
	for v := range g.Vertices() {
		for u := range g.Neighbors(v) {
			if u == v {
				continue
			}
			adj[v] = append(adj[v], u)
			if g.Directed() {
				adj[u] = append(adj[u], v)
			}
		}
	}
	for v := range adj {
		slices.Sort(adj[v])
		adj[v] = slices.Compact(adj[v])
	}
	return adj
}

// intersect returns a new ascending slice of the values present in both
// ascending inputs.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// intersectCount is len(intersect(a, b)) without allocating.
func intersectCount(a, b []int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

// difference returns a new ascending slice of the values of a not in b.
func difference(a, b []int) []int {
	out := make([]int, 0, len(a))
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}

// union merges two ascending, mutually disjoint slices.
func union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// without removes v from the ascending slice s in place.
func without(s []int, v int) []int {
	if i, ok := slices.BinarySearch(s, v); ok {
		return slices.Delete(s, i, i+1)
	}
	return s
}

// with inserts v into the ascending slice s in place.
func with(s []int, v int) []int {
	i, ok := slices.BinarySearch(s, v)
	if ok {
		return s
	}
	return slices.Insert(s, i, v)
}
