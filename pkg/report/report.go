// Package report renders detection runs for the console and as JSON.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/detection"
	"github.com/dd0wney/cluso-communities/pkg/edgelist"
	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// Options controls how much of a run is reported
type Options struct {
	Top        int               // Largest communities listed, 0 for all
	MaxMembers int               // Members shown per community, 0 for all
	Mapping    *edgelist.Mapping // Translates dense ids back to input ids
}

// DefaultOptions returns the console defaults
func DefaultOptions() Options {
	return Options{Top: 10, MaxMembers: 8}
}

// SizeBucket counts communities of one size
type SizeBucket struct {
	Size  int `json:"size"`
	Count int `json:"count"`
}

// SizeDistribution returns how many communities have each size, largest
// size first
func SizeDistribution(communities []*algorithms.Community) []SizeBucket {
	counts := make(map[int]int)
	for _, c := range communities {
		counts[c.Size]++
	}

	sizes := slices.Sorted(maps.Keys(counts))
	slices.Reverse(sizes)

	buckets := make([]SizeBucket, len(sizes))
	for i, size := range sizes {
		buckets[i] = SizeBucket{Size: size, Count: counts[size]}
	}
	return buckets
}

func topCommunities(communities []*algorithms.Community, top int) []*algorithms.Community {
	if top > 0 && len(communities) > top {
		return communities[:top]
	}
	return communities
}

// members formats community vertices, translated through the mapping
func members(c *algorithms.Community, opts Options) string {
	vertices := c.Vertices
	truncated := opts.MaxMembers > 0 && len(vertices) > opts.MaxMembers
	if truncated {
		vertices = vertices[:opts.MaxMembers]
	}
	if opts.Mapping != nil {
		vertices = opts.Mapping.Originals(vertices)
	}

	parts := make([]string, len(vertices))
	for i, v := range vertices {
		parts[i] = strconv.Itoa(v)
	}
	out := strings.Join(parts, " ")
	if truncated {
		out += fmt.Sprintf(" … (+%d)", len(c.Vertices)-opts.MaxMembers)
	}
	return out
}

func communityTable(communities []*algorithms.Community, opts Options) string {
	rows := make([][]string, 0, len(communities))
	for i, c := range communities {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(c.ID),
			strconv.Itoa(c.Size),
			strconv.Itoa(c.InternalEdges),
			strconv.FormatFloat(c.Density, 'f', 3, 64),
			members(c, opts),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tableBorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("#", "ID", "SIZE", "EDGES", "DENSITY", "MEMBERS").
		Rows(rows...)
	return t.Render()
}

// RenderRun writes a styled summary of a detection run to w
func RenderRun(w io.Writer, run *detection.Run, opts Options) error {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("🔍 Communities (%s)", strings.ToUpper(string(run.Algorithm)))))
	s.WriteString("\n\n")

	stats := fmt.Sprintf(`📊 Graph
Vertices:    %d
Edges:       %d
Directed:    %v

🧩 Partition
Communities: %d
Labelled:    %d
Duration:    %s`,
		run.Vertices, run.Edges, run.Directed,
		run.Communities, run.Labeled, run.Duration(),
	)
	if result := run.Result; result != nil {
		switch run.Algorithm {
		case detection.CPM:
			stats += fmt.Sprintf("\nCliques:     %d (k=%d)\nOverlaps:    %d", result.Cliques, result.CliqueSize, result.OverlapEdges)
		case detection.LPA:
			stats += fmt.Sprintf("\nSweeps:      %d", result.Sweeps)
		}
	}

	quality := fmt.Sprintf(`📈 Quality
Modularity:  %.4f
Conductance: %.4f
Coverage:    %.4f`,
		run.Quality.Modularity, run.Quality.Conductance, run.Quality.Coverage,
	)

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statsBoxStyle.Render(stats),
		qualityBoxStyle.Render(quality),
	))
	s.WriteString("\n")

	if run.Result != nil && run.Algorithm == detection.LPA && !run.Result.Converged {
		s.WriteString(warnStyle.Render("⚠️  Label propagation stopped at the sweep ceiling"))
		s.WriteString("\n")
	}

	if run.Result != nil && len(run.Result.Communities) > 0 {
		communities := run.Result.Communities
		shown := topCommunities(communities, opts.Top)

		s.WriteString("\n")
		s.WriteString(communityTable(shown, opts))
		s.WriteString("\n")
		if len(shown) < len(communities) {
			s.WriteString(helpStyle.Render(fmt.Sprintf("%d more communities not shown", len(communities)-len(shown))))
			s.WriteString("\n")
		}

		s.WriteString("\n")
		s.WriteString(headerStyle.Render("Size distribution"))
		s.WriteString("\n")
		for _, b := range SizeDistribution(communities) {
			fmt.Fprintf(&s, "  %6d × %d\n", b.Size, b.Count)
		}
	}

	_, err := io.WriteString(w, s.String())
	return err
}

// RenderDegrees writes the degree statistics, triangle count and clustering
// of a graph to w
func RenderDegrees(w io.Writer, stats graph.Statistics, triangles *algorithms.TriangleCountResult) error {
	content := fmt.Sprintf(`📊 Degree statistics
Vertices:          %d
Edges:             %d
Adjacency entries: %d
Isolated:          %d (%.2f%%)
Degree min/max:    %d / %d
Degree mean:       %.4f
Triangles:         %d
Clustering (avg):  %.4f`,
		stats.Vertices, stats.Edges, stats.AdjacencyEntries,
		stats.IsolatedVertices, stats.IsolatedPercent,
		stats.MinDegree, stats.MaxDegree, stats.MeanDegree,
		triangles.GlobalCount, triangles.AverageCoefficient(),
	)

	_, err := io.WriteString(w, statsBoxStyle.Render(content)+"\n")
	return err
}
