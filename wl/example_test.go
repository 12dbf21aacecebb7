package wl_test

import (
	"fmt"

	"github.com/katalvlaran/wlgraph/core"
	"github.com/katalvlaran/wlgraph/wl"
)

// ExampleInvariant compares a triangle-with-pendant against a relabeled
// copy and against a 4-cycle. Raw invariant values depend on the seed
// and dimension, so meaningful programs compare them rather than print
// them.
func ExampleInvariant() {
	build := func(edges [][2]string) *core.Graph {
		g := core.NewGraph()
		for _, e := range edges {
			g.AddEdge(e[0], e[1], 0)
		}
		return g
	}

	g1 := build([][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}, {"2", "3"}})
	g2 := build([][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}, {"0", "3"}})
	g3 := build([][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"0", "3"}})

	h1, _ := wl.Invariant(g1)
	h2, _ := wl.Invariant(g2)
	h3, _ := wl.Invariant(g3)

	fmt.Println("g1 possibly isomorphic to g2:", h1 == h2)
	fmt.Println("g1 possibly isomorphic to g3:", h1 == h3)
	// Output:
	// g1 possibly isomorphic to g2: true
	// g1 possibly isomorphic to g3: false
}

// ExampleInvariant2WL shows 2-WL separating two 2-regular graphs that
// 1-WL cannot tell apart.
func ExampleInvariant2WL() {
	cycle := func(g *core.Graph, ids []string) {
		for i := range ids {
			g.AddEdge(ids[i], ids[(i+1)%len(ids)], 0)
		}
	}

	hexagon := core.NewGraph()
	cycle(hexagon, []string{"0", "1", "2", "3", "4", "5"})

	triangles := core.NewGraph()
	cycle(triangles, []string{"a0", "a1", "a2"})
	cycle(triangles, []string{"b0", "b1", "b2"})

	h1a, _ := wl.Invariant(hexagon)
	h1b, _ := wl.Invariant(triangles)
	h2a, _ := wl.Invariant2WL(hexagon)
	h2b, _ := wl.Invariant2WL(triangles)

	fmt.Println("1-WL separates them:", h1a != h1b)
	fmt.Println("2-WL separates them:", h2a != h2b)
	// Output:
	// 1-WL separates them: false
	// 2-WL separates them: true
}

// ExampleNeighbourhoodHash extracts per-node feature rows for a kernel.
func ExampleNeighbourhoodHash() {
	g := core.NewGraph()
	g.AddEdge("0", "1", 0)
	g.AddEdge("1", "2", 0)
	g.AddEdge("2", "3", 0)
	g.AddEdge("3", "4", 0)

	feats, _ := wl.NeighbourhoodHash(g, 3)

	// the mirror automorphism of the path swaps 0↔4 and 1↔3
	fmt.Println("rows(0) == rows(4):", fmt.Sprint(feats["0"]) == fmt.Sprint(feats["4"]))
	fmt.Println("rows(0) == rows(2):", fmt.Sprint(feats["0"]) == fmt.Sprint(feats["2"]))
	fmt.Println("rounds per node:", len(feats["0"]))
	// Output:
	// rows(0) == rows(4): true
	// rows(0) == rows(2): false
	// rounds per node: 4
}
