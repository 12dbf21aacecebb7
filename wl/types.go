// Package wl provides tunable options, error definitions and the graph
// consumer contract for Weisfeiler-Leman refinement.
package wl

import (
	"errors"
	"fmt"
	"runtime"
)

// Color is a run-local equivalence-class identifier assigned to a node
// (1-WL) or an ordered node pair (2-WL). Colors are compared for
// equality only; a total order is imposed on them solely inside
// canonicalization to make multiset folding deterministic.
type Color uint64

// DefaultSeed seeds the mixing function when WithSeed is not supplied.
const DefaultSeed uint64 = 42

// Graph is the read-only topology contract consumed by the refinement
// engines. *core.Graph satisfies it; any container with deterministic,
// multiset-faithful neighbor enumeration works.
//
// Neighbor listings must contain one entry per incident edge instance
// (parallel edges repeat), and for undirected graphs NeighborIDs,
// OutNeighborIDs and InNeighborIDs must agree.
// The topology must not change for the duration of a refinement run.
type Graph interface {
	// Directed reports whether edge orientation is significant.
	Directed() bool

	// Vertices enumerates all vertex IDs deterministically.
	Vertices() []string

	// VertexLabel returns the optional integer label of a vertex
	// (0 = unlabeled).
	VertexLabel(id string) (uint64, error)

	// NeighborIDs lists neighbors of id, one per edge instance.
	NeighborIDs(id string) ([]string, error)

	// OutNeighborIDs lists neighbors reached via outgoing edges.
	OutNeighborIDs(id string) ([]string, error)

	// InNeighborIDs lists neighbors reaching id via incoming edges.
	InNeighborIDs(id string) ([]string, error)

	// HasEdge reports whether an edge from→to exists.
	HasEdge(from, to string) bool
}

// Sentinel errors for refinement execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("wl: graph is nil")

	// ErrBadIterations is returned for a negative iteration count.
	ErrBadIterations = errors.New("wl: iteration count must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wl: invalid option supplied")

	// ErrStabilizationOverflow is returned when a run-to-stabilization
	// request exceeds its round bound. Refinement only splits classes,
	// so the bound can only be crossed by a broken partition test or a
	// mutated topology; the condition is fatal rather than wrapped
	// around.
	ErrStabilizationOverflow = errors.New("wl: refinement exceeded its stabilization bound")

	// ErrGraphTooLarge is returned when the vertex count exceeds 2-WL
	// pair addressing.
	ErrGraphTooLarge = errors.New("wl: vertex count exceeds 2-WL pair addressing")

	// ErrVertexLookup wraps vertex/label lookup failures from the graph.
	ErrVertexLookup = errors.New("wl: vertex lookup error")

	// ErrNeighbors wraps neighbor iteration failures from the graph.
	ErrNeighbors = errors.New("wl: neighbor iteration error")
)

// Option configures refinement via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the entry point is invoked.
type Option func(*Options)

// Options holds parameters shared by all refinement entry points.
type Options struct {
	// Seed parameterizes the mixing function. Invariants produced with
	// different seeds are not comparable.
	Seed uint64

	// Workers bounds the number of goroutines recoloring 2-WL pair rows
	// within one round. 1 runs sequentially; the output is identical
	// for any value.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Seed = DefaultSeed (42)
//   - Workers = 1 (sequential rounds)
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, Workers: 1}
}

// WithSeed sets the mix-function seed. Any value is valid; compare
// invariants only across runs sharing a seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the per-round goroutine count for 2-WL pair updates.
//
//	n > 0:  use exactly n workers
//	n == 0: use runtime.NumCPU()
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = n
		}
	}
}

// buildOptions folds opts over DefaultOptions and surfaces any
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
