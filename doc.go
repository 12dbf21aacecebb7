// Package wlgraph computes structural graph invariants with the
// Weisfeiler-Leman (WL) color-refinement procedure — a fast, sound but
// incomplete isomorphism test, also usable for graph-kernel features.
//
// 🚀 What is wlgraph?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• 1-WL refinement: per-node colors, O(V+E) per round
//		• 2-WL refinement: per-node-pair colors, stronger but O(V³) per round
//		• Graph invariants: one order-independent hash per graph
//		• Neighbourhood hashing: per-node feature sequences for kernels
//		• I/O adapters: edge-list reader/writer, DOT export with color classes
//
// ✨ Why choose wlgraph?
//
//   - Sound – different invariants prove two graphs non-isomorphic
//   - Deterministic – identical output for any vertex relabeling
//   - Pure Go – no cgo, a minimal dependency surface
//   - Tunable – fixed iteration counts or run-to-stabilization
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	wl/       — 1-WL and 2-WL refinement, invariants, neighbourhood hashes
//	edgelist/ — line-oriented "<src> <dst>" text reader/writer
//	dot/      — Graphviz DOT export annotated with color classes
//
// Quick ASCII example:
//
//	    A───B
//	     ╲ ╱
//	      C───D
//
//	a triangle with a pendant vertex: after one refinement round D,
//	A/B and C already occupy three distinct color classes.
//
// Remember: equal invariants mean *possibly* isomorphic. Only unequal
// invariants carry a guarantee.
//
//	go get github.com/katalvlaran/wlgraph
package wlgraph
