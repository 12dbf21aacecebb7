package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/wlgraph/core"
	"github.com/katalvlaran/wlgraph/wl"
)

// Sentinel errors for DOT export.
var (
	// ErrNilWriter is returned if a nil writer is supplied.
	ErrNilWriter = errors.New("dot: writer is nil")

	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrMissingColor is returned when a vertex has no entry in the
	// color assignment; an incomplete coloring is surfaced, not drawn
	// partially.
	ErrMissingColor = errors.New("dot: vertex missing from color assignment")
)

// maxPalette is the largest class count rendered as fill colors;
// beyond it, hues stop being distinguishable and classes are labeled
// numerically instead.
const maxPalette = 8

// Export writes g in DOT format to w, annotating each node with its
// color class from colors (typically wl.ColorClasses output, or one
// round of wl.NeighbourhoodHash for per-iteration snapshots).
//
// Output is deterministic: nodes in sorted ID order, edges in Edge.ID
// order, classes numbered by ascending Color value.
// Complexity: O(V log V + E)
func Export(w io.Writer, g *core.Graph, colors map[string]wl.Color) error {
	if w == nil {
		return ErrNilWriter
	}
	if g == nil {
		return ErrNilGraph
	}

	verts := g.Vertices()
	classOf, err := classIndex(verts, colors)
	if err != nil {
		return err
	}

	var palette []string
	if len(classOf) <= maxPalette {
		palette = contrastingColors(len(classOf))
	}

	bw := bufio.NewWriter(w)
	edgeOp := "--"
	if g.Directed() {
		fmt.Fprintln(bw, "digraph wl {")
		edgeOp = "->"
	} else {
		fmt.Fprintln(bw, "graph wl {")
	}

	for _, v := range verts {
		class := classOf[colors[v]]
		if palette != nil {
			fmt.Fprintf(bw, "\t%q [style=filled, fillcolor=%q];\n", v, palette[class])
		} else {
			fmt.Fprintf(bw, "\t%q [label=%q];\n", v, fmt.Sprintf("%s/%d", v, class))
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "\t%q %s %q;\n", e.From, edgeOp, e.To)
	}
	fmt.Fprintln(bw, "}")

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}

// classIndex validates that every vertex is colored and numbers the
// distinct colors in ascending order. A red-black tree keeps the
// ordering canonical without materializing and re-sorting the palette.
func classIndex(verts []string, colors map[string]wl.Color) (map[wl.Color]int, error) {
	tree := redblacktree.NewWith(utils.UInt64Comparator)
	for _, v := range verts {
		c, ok := colors[v]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColor, v)
		}
		tree.Put(uint64(c), struct{}{})
	}

	classOf := make(map[wl.Color]int, tree.Size())
	for i, k := range tree.Keys() {
		classOf[wl.Color(k.(uint64))] = i
	}

	return classOf, nil
}
