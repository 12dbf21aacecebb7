package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wlgraph/core"
)

// Read parses an edge list from r into a fresh core.Graph.
//
// Each non-comment, non-blank line must carry at least two
// whitespace-separated tokens (src, dst). With WithWeighted, the third
// token is parsed as an int64 weight; otherwise trailing tokens are
// ignored. Any malformed line aborts the parse with ErrBadLine — bad
// input is surfaced, never silently dropped.
//
// The returned graph permits loops and multi-edges, since the text
// format cannot exclude them.
// Complexity: O(lines)
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gOpts := []core.GraphOption{
		core.WithDirected(o.Directed),
		core.WithLoops(),
		core.WithMultiEdges(),
	}
	if o.Weighted {
		gOpts = append(gOpts, core.WithWeighted())
	}
	g := core.NewGraph(gOpts...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if o.Comment != "" && strings.HasPrefix(line, o.Comment) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w %d: %q", ErrBadLine, lineNo, line)
		}

		var weight int64
		if o.Weighted {
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w %d: missing weight column: %q", ErrBadLine, lineNo, line)
			}
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %d: bad weight %q: %v", ErrBadLine, lineNo, fields[2], err)
			}
			weight = w
		}

		if _, err := g.AddEdge(fields[0], fields[1], weight); err != nil {
			return nil, fmt.Errorf("%w %d: %q: %v", ErrBadLine, lineNo, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}
