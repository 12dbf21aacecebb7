package wl

import "fmt"

// refiner1D is the 1-WL iteration engine: one Color per node.
//
// The graph topology is resolved once, at construction, into integer
// slot adjacency; rounds never touch the Graph again, so the topology
// is read-only for the duration of the run by construction.
type refiner1D struct {
	seed     uint64
	directed bool
	verts    []string // slot → vertex ID, sorted
	out      [][]int  // outgoing neighbor slots (the only list when undirected)
	in       [][]int  // incoming neighbor slots (directed only)
	table    *colorTable

	cur, next []Color
	scratch   []Color

	track   bool
	history [][]Color // one snapshot per completed round
}

// newRefiner1D resolves the topology and seeds the round-0 colors:
// intern(label, degree) for undirected nodes and
// intern(label, out-degree, in-degree) for directed ones, so that an
// unlabeled graph still starts with meaningful distinguishing power.
func newRefiner1D(g Graph, o Options, track bool) (*refiner1D, error) {
	verts := g.Vertices()
	n := len(verts)

	r := &refiner1D{
		seed:     o.Seed,
		directed: g.Directed(),
		verts:    verts,
		out:      make([][]int, n),
		table:    newColorTable(o.Seed),
		cur:      make([]Color, n),
		next:     make([]Color, n),
		track:    track,
	}
	if r.directed {
		r.in = make([][]int, n)
	}

	slot := make(map[string]int, n)
	for i, v := range verts {
		slot[v] = i
	}

	maxDeg := 0
	for i, v := range verts {
		outIDs, err := g.OutNeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, v, err)
		}
		r.out[i] = resolve(slot, outIDs)

		label, err := g.VertexLabel(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrVertexLookup, v, err)
		}

		deg := len(outIDs)
		if r.directed {
			inIDs, inErr := g.InNeighborIDs(v)
			if inErr != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, v, inErr)
			}
			r.in[i] = resolve(slot, inIDs)
			r.cur[i] = r.table.intern(tagSeedD, Color(label), Color(len(outIDs)), Color(len(inIDs)))
			deg += len(inIDs)
		} else {
			r.cur[i] = r.table.intern(tagSeedU, Color(label), Color(deg), 0)
		}
		if deg > maxDeg {
			maxDeg = deg
		}
	}
	// +1 for the anchor slot appended by combine
	r.scratch = make([]Color, 0, maxDeg+1)

	return r, nil
}

// resolve maps neighbor IDs to slots, preserving multiplicity.
func resolve(slot map[string]int, ids []string) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = slot[id]
	}

	return out
}

// step runs one synchronous round: every node's next color is derived
// from the previous snapshot only.
func (r *refiner1D) step() {
	for i := range r.verts {
		r.next[i] = r.recolor(i)
	}
	r.cur, r.next = r.next, r.cur
}

// recolor folds node i's own color with the multiset of its neighbor
// descriptors. Undirected neighbors contribute their raw colors;
// directed neighbors are first interned with an out/in tag so that the
// two edge orientations stay distinguishable inside one sorted
// multiset.
func (r *refiner1D) recolor(i int) Color {
	ms := r.scratch[:0]
	if r.directed {
		for _, j := range r.out[i] {
			ms = append(ms, r.table.intern(tagOut, r.cur[j], 0, 0))
		}
		for _, j := range r.in[i] {
			ms = append(ms, r.table.intern(tagIn, r.cur[j], 0, 0))
		}
	} else {
		for _, j := range r.out[i] {
			ms = append(ms, r.cur[j])
		}
	}

	return combine(r.seed, r.cur[i], ms)
}

func (r *refiner1D) current() []Color { return r.cur }

// previous returns the pre-swap buffer: valid only right after step().
func (r *refiner1D) previous() []Color { return r.next }

func (r *refiner1D) record() {
	if !r.track {
		return
	}
	r.history = append(r.history, append(make([]Color, 0, len(r.cur)), r.cur...))
}

// roundCap: 1-WL stabilizes within |V| rounds, each non-final round
// splits at least one class.
func (r *refiner1D) roundCap() int { return len(r.verts) + 1 }

// featureMap exposes the recorded history as per-node color sequences,
// one entry per completed round from 0 to the stopping round.
func (r *refiner1D) featureMap() map[string][]Color {
	feats := make(map[string][]Color, len(r.verts))
	for i, v := range r.verts {
		seq := make([]Color, len(r.history))
		for t, snap := range r.history {
			seq[t] = snap[i]
		}
		feats[v] = seq
	}

	return feats
}
