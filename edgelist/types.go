// Package edgelist provides tunable options and error definitions for
// edge-list parsing.
package edgelist

import "errors"

// Sentinel errors for edge-list I/O.
var (
	// ErrBadLine is returned when a non-comment line cannot be parsed
	// as an edge; the wrapped message carries the line number and text.
	ErrBadLine = errors.New("edgelist: malformed line")

	// ErrNilGraph is returned if a nil graph is passed to a writer.
	ErrNilGraph = errors.New("edgelist: graph is nil")

	// ErrNilReader is returned if a nil reader is supplied.
	ErrNilReader = errors.New("edgelist: reader is nil")

	// ErrNilWriter is returned if a nil writer is supplied.
	ErrNilWriter = errors.New("edgelist: writer is nil")
)

// defaultComment prefixes skipped lines, as NetworkX emits them.
const defaultComment = "#"

// Option configures edge-list parsing via functional arguments.
type Option func(*Options)

// Options holds the parsing parameters.
type Options struct {
	// Directed builds a directed graph; lines orient src→dst.
	Directed bool

	// Weighted parses the third column as an int64 edge weight.
	// Without it, extra columns are ignored (NetworkX attribute blobs).
	Weighted bool

	// Comment prefixes lines to skip. Empty disables comment handling.
	Comment string
}

// DefaultOptions returns the parsing defaults: undirected, unweighted,
// '#' comments.
func DefaultOptions() Options {
	return Options{Comment: defaultComment}
}

// WithDirected sets edge orientation for the parsed graph.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWeighted parses the third column of every edge line as a weight.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithComment overrides the comment prefix ("" disables skipping).
func WithComment(prefix string) Option {
	return func(o *Options) { o.Comment = prefix }
}
