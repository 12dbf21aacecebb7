// Package wl implements Weisfeiler-Leman (WL) color refinement over a
// graph, producing order-independent graph invariants and per-node
// neighbourhood hashes.
//
// 🚀 What is WL refinement?
//
//	Each node starts with a color derived from its label and degree.
//	Every round, a node's color is re-derived from its own color plus
//	the multiset of its neighbors' colors.  Nodes that cannot be told
//	apart by their surroundings keep equal colors; nodes that can are
//	split into separate color classes.  The final palette, folded into
//	one hash, is an isomorphism invariant:
//	  • different invariants  ⇒ graphs are provably non-isomorphic
//	  • equal invariants      ⇒ graphs are *possibly* isomorphic
//	It’s widely used in:
//	  • isomorphism pre-tests inside complete solvers
//	  • WL subtree kernels for graph classification
//	  • deduplication of large graph collections
//
// ✨ Key features:
//   - 1-WL: per-node refinement, O(V+E) per round
//   - 2-WL: per-ordered-pair refinement — far stronger on regular
//     graphs, at O(V³) per round (optionally parallel via WithWorkers)
//   - run-to-stabilization or a fixed iteration count
//   - per-node, per-round color sequences for kernel features
//   - deterministic under any vertex relabeling, stable across
//     architectures (all hashing is little-endian)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/wlgraph/core"
//	  "github.com/katalvlaran/wlgraph/wl"
//	)
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("B", "C", 0)
//	g.AddEdge("C", "A", 0)
//	g.AddEdge("C", "D", 0)
//
//	inv, err := wl.Invariant(g)        // 1-WL, run to stabilization
//	inv2, err := wl.Invariant2WL(g)    // 2-WL, stronger and slower
//	feats, err := wl.NeighbourhoodHash(g, 4) // per-node feature rows
//
// Invariants depend on the refinement dimension, the iteration count
// and the seed: only compare values produced with identical settings.
//
// Performance:
//
//   - 1-WL: O(K·(V+E)) time, O(V) memory
//   - 2-WL: O(K·V³) time, O(V²) memory
//
// See example_test.go for runnable snippets; the package tests cover
// the classic cases (regular graphs, directed chains, kernel features).
package wl
