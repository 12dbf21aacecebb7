// Package edgelist reads and writes graphs in the line-oriented
// edge-list text format, one edge per line:
//
//	<src> <dst> [weight]
//
// The format matches what NetworkX's write_edgelist produces for
// unweighted graphs: whitespace-separated tokens, optional trailing
// columns, '#' comments and blank lines ignored. Tokens become vertex
// IDs verbatim, so numeric and symbolic node names both work.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wlgraph/edgelist"
//
//	g, err := edgelist.ReadFile("graph.edgelist")                  // undirected
//	d, err := edgelist.ReadFile("graph.edgelist",
//	    edgelist.WithDirected(true))                               // directed
//	w, err := edgelist.Read(r, edgelist.WithWeighted())            // third column = weight
//
//	err = edgelist.WriteFile("out.edgelist", g)
//
// Reading populates a core.Graph with loops and multi-edges allowed —
// the text format cannot promise their absence. Malformed lines are
// reported as ErrBadLine with the line number, never dropped.
//
// The package is a thin I/O adapter: it feeds refinement, it contains
// no refinement logic of its own.
package edgelist
