package algorithms

import (
	"cmp"
	"slices"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// Summarize groups labelled vertices into communities, largest first and
// by ascending id among equal sizes, with internal edge counts and density.
func Summarize(g *graph.Graph, labels Labeling) []*Community {
	byID := make(map[int]*Community)
	for v, c := range labels {
		if c < 0 {
			continue
		}
		community := byID[c]
		if community == nil {
			community = &Community{ID: c}
			byID[c] = community
		}
		community.Vertices = append(community.Vertices, v)
	}

	if len(labels) == g.VertexCount() {
		logicalEdges(g, func(v, u int) {
			if c := labels[v]; c >= 0 && c == labels[u] {
				byID[c].InternalEdges++
			}
		})
	}

	communities := make([]*Community, 0, len(byID))
	for _, community := range byID {
		community.Size = len(community.Vertices)
		if n := community.Size; n > 1 {
			possible := float64(n * (n - 1))
			if !g.Directed() {
				possible /= 2
			}
			community.Density = float64(community.InternalEdges) / possible
		}
		communities = append(communities, community)
	}

	slices.SortFunc(communities, func(a, b *Community) int {
		if c := cmp.Compare(b.Size, a.Size); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return communities
}
