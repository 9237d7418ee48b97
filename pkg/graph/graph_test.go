package graph

import (
	"errors"
	"slices"
	"testing"
)

// newTestGraph builds a graph from an edge list, failing the test on error
func newTestGraph(t *testing.T, vertexCount int, directed bool, edges [][2]int) *Graph {
	t.Helper()

	g, err := New(vertexCount, directed)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", vertexCount, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d) failed: %v", e[0], e[1], err)
		}
	}
	return g
}

func TestNew_NegativeVertexCount(t *testing.T) {
	_, err := New(-1, false)
	if !errors.Is(err, ErrInvalidVertexCount) {
		t.Fatalf("Expected ErrInvalidVertexCount, got %v", err)
	}
}

func TestNew_EmptyGraph(t *testing.T) {
	g := newTestGraph(t, 0, false, nil)

	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("Expected empty graph, got V=%d E=%d", g.VertexCount(), g.EdgeCount())
	}
	if g.Directed() {
		t.Error("Expected undirected graph")
	}
}

func TestAddEdge_UndirectedCountsOnce(t *testing.T) {
	tests := []struct {
		name string
		src  int
		dest int
	}{
		{"forward", 0, 1},
		{"reverse", 1, 0},
		{"self loop", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(t, 3, false, nil)

			if err := g.AddEdge(tt.src, tt.dest); err != nil {
				t.Fatalf("AddEdge failed: %v", err)
			}
			if g.EdgeCount() != 1 {
				t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
			}
			if !g.HasEdge(tt.src, tt.dest) || !g.HasEdge(tt.dest, tt.src) {
				t.Errorf("Expected both directions for %d-%d", tt.src, tt.dest)
			}
		})
	}
}

func TestAddEdge_Directed(t *testing.T) {
	g := newTestGraph(t, 2, true, [][2]int{{0, 1}})

	if !g.HasEdge(0, 1) {
		t.Error("Expected arc 0->1")
	}
	if g.HasEdge(1, 0) {
		t.Error("Did not expect arc 1->0 on a directed graph")
	}
	if g.Degree(0) != 1 || g.Degree(1) != 0 {
		t.Errorf("Unexpected degrees: %d, %d", g.Degree(0), g.Degree(1))
	}
}

func TestAddEdge_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		src  int
		dest int
	}{
		{"negative source", -1, 0},
		{"source too large", 3, 0},
		{"negative dest", 0, -2},
		{"dest too large", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(t, 3, false, nil)

			err := g.AddEdge(tt.src, tt.dest)
			if !IsOutOfRange(err) {
				t.Fatalf("Expected out-of-range error, got %v", err)
			}

			var gerr *GraphError
			if !errors.As(err, &gerr) || gerr.Op != "AddEdge" {
				t.Errorf("Expected *GraphError from AddEdge, got %#v", err)
			}

			// Nothing may have been written
			if g.EdgeCount() != 0 {
				t.Errorf("EdgeCount() = %d after failed insert", g.EdgeCount())
			}
			for v := range g.Vertices() {
				if g.Degree(v) != 0 {
					t.Errorf("Vertex %d has degree %d after failed insert", v, g.Degree(v))
				}
			}
		})
	}
}

func TestNeighbors_InsertionOrderWithDuplicates(t *testing.T) {
	g := newTestGraph(t, 4, false, [][2]int{{0, 3}, {0, 1}, {2, 0}, {0, 1}})

	got := slices.Collect(g.Neighbors(0))
	want := []int{3, 1, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(0) = %v, want %v", got, want)
	}

	// Restartable
	again := slices.Collect(g.Neighbors(0))
	if !slices.Equal(got, again) {
		t.Errorf("Second traversal = %v, want %v", again, got)
	}

	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
}

func TestNeighbors_EarlyStop(t *testing.T) {
	g := newTestGraph(t, 4, false, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	var seen []int
	for n := range g.Neighbors(0) {
		seen = append(seen, n)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", seen)
	}
}

func TestNeighborsOf_OutOfRange(t *testing.T) {
	g := newTestGraph(t, 2, false, nil)

	if _, err := g.NeighborsOf(5); !IsOutOfRange(err) {
		t.Errorf("Expected out-of-range error, got %v", err)
	}
	if got := slices.Collect(g.Neighbors(5)); len(got) != 0 {
		t.Errorf("Expected no neighbours for invalid vertex, got %v", got)
	}
	if g.Degree(-1) != 0 {
		t.Error("Expected zero degree for invalid vertex")
	}
}

func TestGraphError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GraphError
		expected string
	}{
		{
			name:     "with ID and context",
			err:      &GraphError{Op: "AddEdge", Entity: "vertex", ID: 7, HasID: true, Context: "valid range [0, 5)", Cause: ErrOutOfRange},
			expected: "AddEdge vertex 7 (valid range [0, 5)): index out of range",
		},
		{
			name:     "zero ID is still printed",
			err:      &GraphError{Op: "Sweep", Entity: "label", ID: 0, HasID: true, Cause: ErrInvalidLabel},
			expected: "Sweep label 0: invalid label",
		},
		{
			name:     "context only",
			err:      &GraphError{Op: "New", Entity: "graph", Context: "vertex count -1", Cause: ErrInvalidVertexCount},
			expected: "New graph (vertex count -1): invalid vertex count",
		},
		{
			name:     "minimal",
			err:      &GraphError{Op: "Run", Entity: "graph", Cause: ErrEmptyGraph},
			expected: "Run graph: graph has no vertices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInvalidLabelError(t *testing.T) {
	err := InvalidLabelError("Sweep", 3, 99, 10)

	if !IsInvalidLabel(err) {
		t.Errorf("Expected ErrInvalidLabel in chain, got %v", err)
	}
	if IsOutOfRange(err) {
		t.Error("InvalidLabelError should not match ErrOutOfRange")
	}
}

func TestDegreeStatistics(t *testing.T) {
	// 0-1, 0-2, vertex 3 and 4 isolated
	g := newTestGraph(t, 5, false, [][2]int{{0, 1}, {0, 2}})

	stats := DegreeStatistics(g)

	if stats.Vertices != 5 || stats.Edges != 2 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.IsolatedVertices != 2 {
		t.Errorf("IsolatedVertices = %d, want 2", stats.IsolatedVertices)
	}
	if stats.IsolatedPercent != 40 {
		t.Errorf("IsolatedPercent = %v, want 40", stats.IsolatedPercent)
	}
	if stats.MinDegree != 0 || stats.MaxDegree != 2 {
		t.Errorf("Min/Max degree = %d/%d, want 0/2", stats.MinDegree, stats.MaxDegree)
	}
	if stats.AdjacencyEntries != 4 || stats.MeanDegree != 0.8 {
		t.Errorf("AdjacencyEntries=%d MeanDegree=%v", stats.AdjacencyEntries, stats.MeanDegree)
	}
}

func TestDegreeStatistics_Empty(t *testing.T) {
	stats := DegreeStatistics(newTestGraph(t, 0, true, nil))

	if stats != (Statistics{}) {
		t.Errorf("Expected zero statistics, got %+v", stats)
	}
}
