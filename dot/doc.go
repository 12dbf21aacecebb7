// Package dot exports a graph with a Weisfeiler-Leman coloring to the
// Graphviz DOT format, annotating every node with its color class.
//
// Up to eight classes are rendered as filled nodes with maximally
// contrasting hues; larger palettes fall back to numeric class labels,
// which stay readable where dozens of fill colors would not.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/wlgraph/dot"
//	  "github.com/katalvlaran/wlgraph/wl"
//	)
//
//	colors, _ := wl.ColorClasses(g)
//	err := dot.Export(w, g, colors)
//
// Class indices are assigned by ascending Color value, so output is
// deterministic for a fixed coloring — but Colors are run-local: the
// same graph may paint differently across runs with different seeds.
//
// The package consumes refinement output and never feeds back into it.
package dot
