package wl

import "fmt"

// Invariant computes the 1-WL graph invariant, refining until the color
// partition stabilizes. Equal invariants mean the graphs are *possibly*
// isomorphic; different invariants prove they are not. On regular
// graphs prefer Invariant2WL, which is more expressive but much slower.
//
// Complexity: O(K·(V+E)) for K stabilization rounds, K ≤ V.
func Invariant(g Graph, opts ...Option) (Color, error) {
	return run1D(g, stabilizeRounds, opts)
}

// InvariantIters computes the 1-WL graph invariant after exactly iters
// refinement rounds, even if the partition stabilized earlier — the
// value is documented to depend on the iteration count, so rounds are
// never skipped. iters = 0 reduces to the initial degree/label coloring.
//
// Complexity: O(iters·(V+E)).
func InvariantIters(g Graph, iters int, opts ...Option) (Color, error) {
	if iters < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadIterations, iters)
	}

	return run1D(g, iters, opts)
}

// Invariant2WL computes the 2-WL graph invariant, refining ordered
// vertex pairs until the pair partition stabilizes. Strictly more
// powerful than Invariant — it separates many regular graphs 1-WL
// cannot — at O(V³) per round.
func Invariant2WL(g Graph, opts ...Option) (Color, error) {
	return run2D(g, stabilizeRounds, opts)
}

// Iter2WL computes the 2-WL graph invariant after exactly iters rounds.
// See InvariantIters for the fixed-count contract.
func Iter2WL(g Graph, iters int, opts ...Option) (Color, error) {
	if iters < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadIterations, iters)
	}

	return run2D(g, iters, opts)
}

// ColorClasses runs 1-WL to stabilization and returns the final color
// of every vertex, keyed by vertex ID — the input expected by the DOT
// exporter. Colors are run-local class identifiers: compare them for
// equality within one result only.
func ColorClasses(g Graph, opts ...Option) (map[string]Color, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r, err := newRefiner1D(g, o, false)
	if err != nil {
		return nil, err
	}
	if err = drive(r, stabilizeRounds); err != nil {
		return nil, err
	}

	classes := make(map[string]Color, len(r.verts))
	for i, v := range r.verts {
		classes[v] = r.cur[i]
	}

	return classes, nil
}

// stabilizeRounds selects the run-to-stabilization policy in drive.
const stabilizeRounds = -1

// run1D executes a 1-WL run and reduces the final node colors.
func run1D(g Graph, iters int, opts []Option) (Color, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	r, err := newRefiner1D(g, o, false)
	if err != nil {
		return 0, err
	}
	if err = drive(r, iters); err != nil {
		return 0, err
	}

	return reduce(o.Seed, r.current()), nil
}

// run2D executes a 2-WL run and reduces the final pair colors.
func run2D(g Graph, iters int, opts []Option) (Color, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	r, err := newRefiner2D(g, o)
	if err != nil {
		return 0, err
	}
	if err = drive(r, iters); err != nil {
		return 0, err
	}

	return reduce(o.Seed, r.current()), nil
}
