package report

import (
	"encoding/json"
	"io"

	"github.com/dd0wney/cluso-communities/pkg/algorithms"
	"github.com/dd0wney/cluso-communities/pkg/detection"
)

// CommunityJSON is the exported form of one community
type CommunityJSON struct {
	ID            int     `json:"id"`
	Size          int     `json:"size"`
	InternalEdges int     `json:"internal_edges"`
	Density       float64 `json:"density"`
	Members       []int   `json:"members"`
}

// RunJSON is the document written by WriteJSON
type RunJSON struct {
	*detection.Run
	Sweeps           int             `json:"sweeps,omitempty"`
	Converged        *bool           `json:"converged,omitempty"`
	Cliques          int             `json:"cliques,omitempty"`
	SizeDistribution []SizeBucket    `json:"size_distribution"`
	Communities      []CommunityJSON `json:"top_communities"`
}

// NewRunJSON builds the exported document of a run. Members are reported
// with input ids when opts carries a mapping.
func NewRunJSON(run *detection.Run, opts Options) *RunJSON {
	doc := &RunJSON{
		Run:              run,
		SizeDistribution: []SizeBucket{},
		Communities:      []CommunityJSON{},
	}
	if run.Result == nil {
		return doc
	}

	switch run.Algorithm {
	case detection.CPM:
		doc.Cliques = run.Result.Cliques
	case detection.LPA:
		doc.Sweeps = run.Result.Sweeps
		converged := run.Result.Converged
		doc.Converged = &converged
	}

	doc.SizeDistribution = SizeDistribution(run.Result.Communities)
	for _, c := range topCommunities(run.Result.Communities, opts.Top) {
		doc.Communities = append(doc.Communities, communityJSON(c, opts))
	}
	return doc
}

func communityJSON(c *algorithms.Community, opts Options) CommunityJSON {
	members := c.Vertices
	if opts.Mapping != nil {
		members = opts.Mapping.Originals(members)
	}
	return CommunityJSON{
		ID:            c.ID,
		Size:          c.Size,
		InternalEdges: c.InternalEdges,
		Density:       c.Density,
		Members:       members,
	}
}

// WriteJSON writes the run document as indented JSON
func WriteJSON(w io.Writer, run *detection.Run, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRunJSON(run, opts))
}
