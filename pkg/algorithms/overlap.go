package algorithms

import (
	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// OverlapGraph is the clique-overlap graph: vertex i is cliques[i], and two
// cliques of TargetSize are adjacent when they share at least TargetSize-1
// vertices.
type OverlapGraph struct {
	Graph      *graph.Graph
	Cliques    []Clique
	TargetSize int
}

// BuildOverlapGraph connects every unordered pair of TargetSize cliques
// sharing at least targetSize-1 vertices. Cliques of any other size are
// kept as isolated vertices so indices still line up with the input.
func BuildOverlapGraph(cliques []Clique, targetSize int) (*OverlapGraph, error) {
	if targetSize < 1 {
		return nil, graph.NewError("BuildOverlapGraph").Graph().
			Context("target clique size %d", targetSize).
			Cause(graph.ErrOutOfRange).Err()
	}

	og, err := graph.New(len(cliques), false)
	if err != nil {
		return nil, err
	}

	for i := range cliques {
		if cliques[i].Size() != targetSize {
			continue
		}
		for j := i + 1; j < len(cliques); j++ {
			if cliques[j].Size() != targetSize {
				continue
			}
			if SharedVertices(cliques[i], cliques[j]) >= targetSize-1 {
				if err := og.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return &OverlapGraph{
		Graph:      og,
		Cliques:    cliques,
		TargetSize: targetSize,
	}, nil
}

// Decompose splits the overlap graph into connected components.
// componentOf[i] is the component id of clique i; ids are assigned in
// ascending order of each component's lowest clique index.
func Decompose(og *OverlapGraph) (componentOf []int, componentCount int) {
	return componentAssignment(og.Graph)
}

// ProjectToVertices labels every vertex of every clique with the clique's
// component id. Cliques are applied in order, so a vertex shared by cliques
// in different components keeps the id of the last one. Vertices in no
// clique stay Unlabeled.
func ProjectToVertices(vertexCount int, cliques []Clique, componentOf []int) (Labeling, error) {
	if len(componentOf) != len(cliques) {
		return nil, graph.NewError("ProjectToVertices").Graph().
			Context("%d component ids for %d cliques", len(componentOf), len(cliques)).
			Cause(graph.ErrOutOfRange).Err()
	}

	labels := NewLabeling(vertexCount)
	for i, c := range cliques {
		for _, v := range c.Vertices {
			if v < 0 || v >= vertexCount {
				return nil, graph.NewError("ProjectToVertices").Clique(i).
					Context("vertex %d outside [0, %d)", v, vertexCount).
					Cause(graph.ErrOutOfRange).Err()
			}
			labels[v] = componentOf[i]
		}
	}
	return labels, nil
}
