// Package edgelist reads and writes graphs as whitespace-separated edge
// lists, the format used by the SNAP and KONECT dataset collections.
package edgelist

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

const maxLineLength = 1 << 20

// isComment reports whether a trimmed line carries no edge
func isComment(line string) bool {
	return line == "" || line[0] == '#' || line[0] == '%'
}

func parseLine(line string) (src, dest int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrMalformedLine
	}
	if src, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, err
	}
	if dest, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, err
	}
	return src, dest, nil
}

// Read streams every edge of r to fn in input order. Blank lines and lines
// starting with '#' or '%' are skipped, and columns after the first two
// are ignored. An error from fn stops the read and is returned wrapped in
// a *ParseError for the line that produced it.
func Read(r io.Reader, fn func(src, dest int) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if isComment(line) {
			continue
		}

		src, dest, err := parseLine(line)
		if err != nil {
			return &ParseError{Line: lineNo, Text: line, Cause: err}
		}
		if err := fn(src, dest); err != nil {
			return &ParseError{Line: lineNo, Text: line, Cause: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return &ParseError{Line: lineNo + 1, Cause: err}
	}
	return nil
}

// Load builds a graph of vertexCount vertices from the edges in r. Every id
// must already lie in [0, vertexCount).
func Load(r io.Reader, vertexCount int, directed bool) (*graph.Graph, error) {
	g, err := graph.New(vertexCount, directed)
	if err != nil {
		return nil, err
	}
	if err := Read(r, g.AddEdge); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadRemapped reads every edge of r, assigns the distinct ids dense
// values in ascending order of the original id and builds the graph over
// them. The returned mapping translates between the two id spaces.
func LoadRemapped(r io.Reader, directed bool) (*graph.Graph, *Mapping, error) {
	var edges [][2]int
	err := Read(r, func(src, dest int) error {
		edges = append(edges, [2]int{src, dest})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	mapping := newMapping(edges)
	g, err := graph.New(mapping.Len(), directed)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range edges {
		src, _ := mapping.Dense(e[0])
		dest, _ := mapping.Dense(e[1])
		if err := g.AddEdge(src, dest); err != nil {
			return nil, nil, err
		}
	}
	return g, mapping, nil
}
