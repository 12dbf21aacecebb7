package wl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlgraph/wl"
)

// TestNeighbourhoodHash_Shape verifies one row per vertex and one
// column per round, including round 0.
func TestNeighbourhoodHash_Shape(t *testing.T) {
	g := buildGraph(t, false, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}})

	feats, err := wl.NeighbourhoodHash(g, 4)
	require.NoError(t, err)
	require.Len(t, feats, 4)
	for v, seq := range feats {
		require.Len(t, seq, 5, "vertex %s: rounds 0..4 inclusive", v)
	}
}

// TestNeighbourhoodHash_Restartable confirms the documented purity:
// two calls with identical inputs yield identical sequences.
func TestNeighbourhoodHash_Restartable(t *testing.T) {
	g := buildGraph(t, false, [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "0"}, {"2", "3"}, {"3", "4"},
	})

	a, err := wl.NeighbourhoodHash(g, 3)
	require.NoError(t, err)
	b, err := wl.NeighbourhoodHash(g, 3)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestNeighbourhoodHash_SymmetryAndSeparation checks that structurally
// equivalent nodes share whole rows while distinguishable nodes split.
func TestNeighbourhoodHash_SymmetryAndSeparation(t *testing.T) {
	// P5: ends 0/4 are swapped by the mirror automorphism, as are 1/3.
	g := buildGraph(t, false, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}})

	feats, err := wl.NeighbourhoodHash(g, 3)
	require.NoError(t, err)
	require.Equal(t, feats["0"], feats["4"])
	require.Equal(t, feats["1"], feats["3"])
	require.NotEqual(t, feats["0"], feats["1"])
	// the center splits from the inner pair at round 1, not round 0
	require.Equal(t, feats["1"][0], feats["2"][0])
	require.NotEqual(t, feats["1"][1], feats["2"][1])
}

// TestNeighbourhoodStable_StopsAtFixedPoint pins P5's stabilization
// round: sequences cover rounds 0, 1 and 2.
func TestNeighbourhoodStable_StopsAtFixedPoint(t *testing.T) {
	g := buildGraph(t, false, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}})

	feats, err := wl.NeighbourhoodStable(g)
	require.NoError(t, err)
	for v, seq := range feats {
		require.Len(t, seq, 3, "vertex %s", v)
	}
}

// TestMonotoneClassCount asserts the refinement invariant: the number
// of distinct colors per round never decreases, and once it stops
// growing it stays constant.
func TestMonotoneClassCount(t *testing.T) {
	g := buildGraph(t, false, [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "0"}, {"2", "3"}, {"3", "4"}, {"4", "5"},
	})

	feats, err := wl.NeighbourhoodHash(g, 6)
	require.NoError(t, err)

	rounds := len(feats["0"])
	prev, frozen := 0, false
	for tr := 0; tr < rounds; tr++ {
		distinct := make(map[wl.Color]struct{}, len(feats))
		for _, seq := range feats {
			distinct[seq[tr]] = struct{}{}
		}
		n := len(distinct)
		require.GreaterOrEqual(t, n, prev, "class count shrank at round %d", tr)
		if frozen {
			require.Equal(t, prev, n, "class count grew again after freezing at round %d", tr)
		}
		if tr > 0 && n == prev {
			frozen = true
		}
		prev = n
	}
}

// TestFeatures_Errors covers the rejection paths.
func TestFeatures_Errors(t *testing.T) {
	_, err := wl.NeighbourhoodHash(nil, 2)
	require.ErrorIs(t, err, wl.ErrNilGraph)

	g := buildGraph(t, false, [][2]string{{"a", "b"}})
	_, err = wl.NeighbourhoodHash(g, -1)
	require.ErrorIs(t, err, wl.ErrBadIterations)

	_, err = wl.NeighbourhoodStable(nil)
	require.ErrorIs(t, err, wl.ErrNilGraph)
}
