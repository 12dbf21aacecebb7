// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Read-only neighbor enumeration with deterministic ordering.
// Policy:
//   - Every accessor returns a freshly allocated, sorted slice.
//   - One entry per incident edge instance: parallel edges keep their
//     multiplicity, which multiset-based algorithms rely on.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the neighbor IDs of vertex id, one per incident
// edge instance, sorted ascending. For directed graphs this lists
// outgoing neighbors only; use OutNeighborIDs/InNeighborIDs to make the
// direction explicit. Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg(v) log deg(v))
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.collect(id, false)
}

// OutNeighborIDs returns neighbors reached via outgoing edges of id,
// one per edge instance, sorted ascending. Equal to NeighborIDs for
// undirected graphs. Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg(v) log deg(v))
func (g *Graph) OutNeighborIDs(id string) ([]string, error) {
	return g.collect(id, false)
}

// InNeighborIDs returns neighbors that reach id via incoming edges,
// one per edge instance, sorted ascending. Equal to NeighborIDs for
// undirected graphs. Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg(v) log deg(v))
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.collect(id, true)
}

// collect walks one adjacency index of id and flattens it into a sorted
// per-edge neighbor list.
func (g *Graph) collect(id string, incoming bool) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	index := g.out
	if incoming && g.directed {
		index = g.in
	}

	ids := make([]string, 0, len(index[id]))
	for nbr, bucket := range index[id] {
		for range bucket {
			ids = append(ids, nbr)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
