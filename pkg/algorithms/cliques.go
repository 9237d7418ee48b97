package algorithms

import (
	"iter"
	"slices"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// Clique is a set of pairwise adjacent vertices, held in ascending order
type Clique struct {
	Vertices []int
}

// Size returns the number of vertices in the clique
func (c Clique) Size() int {
	return len(c.Vertices)
}

// Contains reports whether v is a member of the clique
func (c Clique) Contains(v int) bool {
	_, ok := slices.BinarySearch(c.Vertices, v)
	return ok
}

// SharedVertices counts the vertices two cliques have in common
func SharedVertices(a, b Clique) int {
	return intersectCount(a.Vertices, b.Vertices)
}

// MaximalCliques enumerates every maximal clique of g using Bron–Kerbosch
// with pivoting.
//
// Cliques are computed on the simple undirected view of g (self-loops and
// parallel edges ignored, arc direction ignored). Each range over the
// returned sequence runs a fresh traversal; breaking out of the loop stops
// the search. Isolated vertices are reported as cliques of size 1.
func MaximalCliques(g *graph.Graph) iter.Seq[Clique] {
	return func(yield func(Clique) bool) {
		if g.VertexCount() == 0 {
			return
		}
		bk := &bronKerbosch{adj: simpleAdjacency(g)}

		p := make([]int, g.VertexCount())
		for v := range p {
			p[v] = v
		}
		bk.expand(nil, p, nil, yield)
	}
}

// EnumerateMaximalCliques collects one traversal of MaximalCliques
func EnumerateMaximalCliques(g *graph.Graph) []Clique {
	return slices.Collect(MaximalCliques(g))
}

// FilterBySize returns the cliques with exactly k vertices, in input order
func FilterBySize(cliques []Clique, k int) []Clique {
	out := make([]Clique, 0, len(cliques))
	for _, c := range cliques {
		if c.Size() == k {
			out = append(out, c)
		}
	}
	return out
}

// CliqueNumber returns the size of the largest maximal clique of g
func CliqueNumber(g *graph.Graph) int {
	largest := 0
	for c := range MaximalCliques(g) {
		largest = max(largest, c.Size())
	}
	return largest
}

type bronKerbosch struct {
	adj [][]int
}

// expand owns p and x; every recursive call receives freshly intersected
// copies so sibling branches never share candidate or exclusion sets.
// It returns false once the consumer stops the iteration.
func (bk *bronKerbosch) expand(r, p, x []int, yield func(Clique) bool) bool {
	if len(p) == 0 {
		if len(x) == 0 {
			members := slices.Clone(r)
			slices.Sort(members)
			return yield(Clique{Vertices: members})
		}
		return true
	}

	pivot := bk.pivot(p, x)
	for _, u := range difference(p, bk.adj[pivot]) {
		nu := bk.adj[u]

		branch := make([]int, len(r)+1)
		copy(branch, r)
		branch[len(r)] = u

		if !bk.expand(branch, intersect(p, nu), intersect(x, nu), yield) {
			return false
		}

		p = without(p, u)
		x = with(x, u)
	}
	return true
}

// pivot picks the vertex of P ∪ X with the most neighbours inside P ∪ X,
// breaking ties towards the lowest id.
func (bk *bronKerbosch) pivot(p, x []int) int {
	candidates := union(p, x)

	best, bestDegree := candidates[0], -1
	for _, w := range candidates {
		if d := intersectCount(bk.adj[w], candidates); d > bestDegree {
			best, bestDegree = w, d
		}
	}
	return best
}
