package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/wlgraph/core"
)

// Write emits g as an edge list, one edge per line in Edge.ID order,
// with a weight column iff the graph is weighted.
// Isolated vertices are not representable in the format and are
// omitted; round trips preserve edges, not isolates.
// Complexity: O(E log E)
func Write(w io.Writer, g *core.Graph) error {
	if w == nil {
		return ErrNilWriter
	}
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		var err error
		if weighted {
			_, err = fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight)
		} else {
			_, err = fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
		}
		if err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// WriteFile creates path (truncating) and delegates to Write.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: create %q: %w", path, err)
	}
	defer f.Close()

	if err = Write(f, g); err != nil {
		return err
	}

	return f.Sync()
}
