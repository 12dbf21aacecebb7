package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wlgraph/core"
)

// TestAddVertex_Validation covers vertex insertion and the empty-ID guard.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty ID: want ErrEmptyVertexID, got %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	if !g.HasVertex("A") {
		t.Error("HasVertex(A) = false after AddVertex")
	}
	// re-adding is a no-op
	if err := g.AddVertex("A"); err != nil {
		t.Errorf("duplicate AddVertex: %v", err)
	}
	if n := g.VertexCount(); n != 1 {
		t.Errorf("VertexCount = %d; want 1", n)
	}
}

// TestVertexLabels covers SetVertexLabel/VertexLabel round trips and errors.
func TestVertexLabels(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")

	if err := g.SetVertexLabel("missing", 7); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("label missing vertex: want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.VertexLabel("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("read missing label: want ErrVertexNotFound, got %v", err)
	}

	lbl, err := g.VertexLabel("A")
	if err != nil || lbl != 0 {
		t.Errorf("unlabeled vertex: got (%d, %v); want (0, nil)", lbl, err)
	}
	if err = g.SetVertexLabel("A", 42); err != nil {
		t.Fatalf("SetVertexLabel: %v", err)
	}
	if lbl, _ = g.VertexLabel("A"); lbl != 42 {
		t.Errorf("VertexLabel = %d; want 42", lbl)
	}
}

// TestAddEdge_Validation exercises the full rejection order.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("", "B", 0); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty from: want ErrEmptyVertexID, got %v", err)
	}
	if _, err := g.AddEdge("A", "B", 3); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("weight on unweighted: want ErrBadWeight, got %v", err)
	}
	if _, err := g.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("loop: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge(A,B): %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	// undirected: the mirrored direction is also a duplicate
	if _, err := g.AddEdge("B", "A", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("mirrored parallel edge: want ErrMultiEdgeNotAllowed, got %v", err)
	}
}

// TestAddEdge_AutoCreatesEndpoints confirms missing endpoints are created.
func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("X", "Y", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasVertex("X") || !g.HasVertex("Y") {
		t.Error("endpoints not auto-created")
	}
	if want := []string{"X", "Y"}; !reflect.DeepEqual(g.Vertices(), want) {
		t.Errorf("Vertices = %v; want %v", g.Vertices(), want)
	}
}

// TestNeighbors_Undirected verifies symmetric, sorted, per-edge listings.
func TestNeighbors_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	g.AddEdge("A", "C", 0)
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "B", 0) // parallel: B must appear twice

	nbrs, err := g.NeighborIDs("A")
	if err != nil {
		t.Fatalf("NeighborIDs: %v", err)
	}
	if want := []string{"B", "B", "C"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("NeighborIDs(A) = %v; want %v", nbrs, want)
	}

	// symmetric view from B
	nbrs, _ = g.NeighborIDs("B")
	if want := []string{"A", "A"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("NeighborIDs(B) = %v; want %v", nbrs, want)
	}

	if _, err = g.NeighborIDs("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing vertex: want ErrVertexNotFound, got %v", err)
	}
}

// TestNeighbors_Directed verifies the out/in split.
func TestNeighbors_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 0)
	g.AddEdge("C", "A", 0)

	out, err := g.OutNeighborIDs("A")
	if err != nil {
		t.Fatalf("OutNeighborIDs: %v", err)
	}
	if want := []string{"B"}; !reflect.DeepEqual(out, want) {
		t.Errorf("OutNeighborIDs(A) = %v; want %v", out, want)
	}
	in, _ := g.InNeighborIDs("A")
	if want := []string{"C"}; !reflect.DeepEqual(in, want) {
		t.Errorf("InNeighborIDs(A) = %v; want %v", in, want)
	}

	if !g.HasEdge("A", "B") || g.HasEdge("B", "A") {
		t.Error("HasEdge must respect direction")
	}
}

// TestDegree covers directed and undirected degree counting.
func TestDegree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 0)
	g.AddEdge("A", "C", 0)
	g.AddEdge("B", "A", 0)

	out, in, err := g.Degree("A")
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	if out != 2 || in != 1 {
		t.Errorf("Degree(A) = (%d,%d); want (2,1)", out, in)
	}

	u := core.NewGraph()
	u.AddEdge("A", "B", 0)
	out, in, _ = u.Degree("A")
	if out != 1 || in != 1 {
		t.Errorf("undirected Degree(A) = (%d,%d); want (1,1)", out, in)
	}

	if _, _, err = g.Degree("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing vertex: want ErrVertexNotFound, got %v", err)
	}
}

// TestEdges_Snapshot verifies deterministic edge listing and counts.
func TestEdges_Snapshot(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 7)

	es := g.Edges()
	if len(es) != 2 || g.EdgeCount() != 2 {
		t.Fatalf("edge count = %d/%d; want 2", len(es), g.EdgeCount())
	}
	if es[0].ID != "e1" || es[1].ID != "e2" {
		t.Errorf("edge order = [%s %s]; want [e1 e2]", es[0].ID, es[1].ID)
	}
	if es[0].Weight != 5 {
		t.Errorf("edge weight = %d; want 5", es[0].Weight)
	}

	// mutation of the snapshot must not leak into the graph
	es[0].Weight = 99
	if g.Edges()[0].Weight != 5 {
		t.Error("Edges() must return copies")
	}
}

// TestLoops verifies loops are stored once both ways when allowed.
func TestLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	if _, err := g.AddEdge("A", "A", 0); err != nil {
		t.Fatalf("loop on loop-enabled graph: %v", err)
	}
	if !g.HasEdge("A", "A") {
		t.Error("HasEdge(A,A) = false after adding loop")
	}
}
