// Package core provides a thread-safe in-memory Graph implementation
// with a minimal, composable API surface, tuned for structural
// algorithms that need deterministic iteration.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Optional per-vertex integer labels (SetVertexLabel), consumed by
//     refinement algorithms as initial color seeds
//   - Constant-time edge operations via nested maps:
//     out[from][to][edgeID] = struct{}{} and the mirrored in[...] index
//   - Collision-free Edge.ID generation (“e1”, “e2”, …)
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs(),
//     OutNeighborIDs(), InNeighborIDs() all return sorted results.
//   - Multiset-faithful adjacency — neighbor listings contain one entry
//     per edge instance, so parallel edges keep their multiplicity.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the orientation of edges.
//	    • Directed graphs record from→to in the out index and to→from in the in index.
//	    • Undirected graphs mirror every edge in both directions of the out index.
//
//	– WithWeighted()
//	    Permits non-zero weights globally; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Concurrency: a single sync.RWMutex guards all state; read accessors
// take the read lock and return freshly allocated snapshots, so callers
// may retain and mutate results freely.
//
// See example_test.go for typical construction patterns.
package core
