package wl_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wlgraph/core"
)

// buildGraph assembles a graph from an edge list; IDs are used verbatim.
func buildGraph(t *testing.T, directed bool, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithMultiEdges(), core.WithLoops())
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}

	return g
}

// cycleGraph builds the undirected cycle v0—v1—…—v(n-1)—v0 with the
// given ID prefix.
func cycleGraph(t *testing.T, n int, prefix string) *core.Graph {
	t.Helper()
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]string{
			fmt.Sprintf("%s%d", prefix, i),
			fmt.Sprintf("%s%d", prefix, (i+1)%n),
		})
	}

	return buildGraph(t, false, edges)
}

// trianglePendant is the documented example graph: a triangle 0-1-2
// with pendant 3 attached to "tail".
func trianglePendant(t *testing.T, tail string) *core.Graph {
	t.Helper()

	return buildGraph(t, false, [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "0"}, {tail, "3"},
	})
}
