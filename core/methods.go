// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Mutating operations (vertices, labels, edges) plus scalar queries.
// Policy:
//   - Every mutation validates before touching state; no partial writes.
//   - All methods hold mu for their full duration.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID.
// Adding an existing ID is a no-op (label preserved).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// SetVertexLabel attaches an integer label to an existing vertex.
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(1)
func (g *Graph) SetVertexLabel(id string, label uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Label = label

	return nil
}

// VertexLabel returns the label of vertex id (0 when unlabeled).
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(1)
func (g *Graph) VertexLabel(id string) (uint64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v.Label, nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to with the given weight, creating
// missing endpoints on the fly. The returned string is the new Edge.ID.
//
// Validation, in order:
//   - empty endpoint ID           → ErrEmptyVertexID
//   - non-zero weight, unweighted → ErrBadWeight
//   - from == to, loops disabled  → ErrLoopNotAllowed
//   - duplicate endpoints, multi-edges disabled → ErrMultiEdgeNotAllowed
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if weight != 0 && !g.weighted {
		return "", fmt.Errorf("%w: weight %d on edge %q→%q", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if !g.allowMulti && g.connected(from, to) {
		return "", fmt.Errorf("%w: %q→%q", ErrMultiEdgeNotAllowed, from, to)
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.nextEdgeID++
	eid := fmt.Sprintf("e%d", g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	if g.directed {
		g.link(g.out, from, to, eid)
		g.link(g.in, to, from, eid)
	} else {
		g.link(g.out, from, to, eid)
		g.link(g.out, to, from, eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the query is symmetric.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connected(from, to)
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a snapshot of all edges sorted by Edge.ID.
// Undirected edges appear once, with From/To as originally added.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	es := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		es = append(es, &cp)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })

	return es
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges (undirected edges count once).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the out- and in-degree of vertex id, counting one per
// incident edge instance. For undirected graphs both numbers equal the
// plain degree. Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg(v))
func (g *Graph) Degree(id string) (out, in int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	for _, bucket := range g.out[id] {
		out += len(bucket)
	}
	if !g.directed {
		return out, out, nil
	}
	for _, bucket := range g.in[id] {
		in += len(bucket)
	}

	return out, in, nil
}

// ensureVertex creates the vertex and its adjacency buckets if absent.
// Caller must hold mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.out[id] = make(map[string]map[string]struct{})
	g.in[id] = make(map[string]map[string]struct{})
}

// connected reports whether any edge from→to exists. Caller must hold mu.
func (g *Graph) connected(from, to string) bool {
	return len(g.out[from][to]) > 0
}

// link records eid in index[from][to]. Caller must hold mu.
func (g *Graph) link(index map[string]map[string]map[string]struct{}, from, to, eid string) {
	bucket, ok := index[from][to]
	if !ok {
		bucket = make(map[string]struct{})
		index[from][to] = bucket
	}
	bucket[eid] = struct{}{}
}
