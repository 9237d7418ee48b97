package edgelist

import (
	"bufio"
	"io"
	"strconv"

	"github.com/dd0wney/cluso-communities/pkg/graph"
)

// Write emits one "src dest" line per edge of g. Undirected edges are
// written once, from their lower endpoint, so Load of the output rebuilds
// an equivalent graph.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	for v := range g.Vertices() {
		// An undirected self-loop sits twice in v's list
		loopPending := false
		for u := range g.Neighbors(v) {
			if !g.Directed() {
				if u < v {
					continue
				}
				if u == v {
					loopPending = !loopPending
					if !loopPending {
						continue
					}
				}
			}

			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(u), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
