package wl

import "fmt"

// NeighbourhoodHash records the 1-WL color of every node at every round
// from 0 through iters, keyed by vertex ID. Row t of a node's sequence
// summarizes its t-hop neighbourhood, which makes the rows directly
// usable as WL-kernel features.
//
// The function is pure: calling it twice with the same graph, count and
// options yields identical sequences.
//
// Complexity: O(iters·(V+E)) time, O(iters·V) memory for the sequences.
func NeighbourhoodHash(g Graph, iters int, opts ...Option) (map[string][]Color, error) {
	if iters < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadIterations, iters)
	}

	return features(g, iters, opts)
}

// NeighbourhoodStable is NeighbourhoodHash run to stabilization: the
// sequences cover round 0 through the round at which the color
// partition stopped refining, inclusive.
func NeighbourhoodStable(g Graph, opts ...Option) (map[string][]Color, error) {
	return features(g, stabilizeRounds, opts)
}

// features runs a history-tracking 1-WL refinement and exposes the
// per-round snapshots as per-node sequences.
func features(g Graph, iters int, opts []Option) (map[string][]Color, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r, err := newRefiner1D(g, o, true)
	if err != nil {
		return nil, err
	}
	if err = drive(r, iters); err != nil {
		return nil, err
	}

	return r.featureMap(), nil
}
