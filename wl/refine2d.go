package wl

import (
	"fmt"
	"math"
	"sync"
)

// refiner2D is the 2-WL iteration engine: one Color per ordered vertex
// pair (u,v), including the diagonal. Each round costs O(n) per pair
// over O(n²) pairs — the cubic price of the extra distinguishing power,
// critical on regular graphs where every node's 1-WL neighborhood looks
// identical.
type refiner2D struct {
	seed    uint64
	verts   []string
	n       int
	workers int

	// tables[w] is worker w's intern cache; intern is a pure function
	// of the descriptor, so per-worker caches cannot diverge.
	tables []*colorTable

	cur, next []Color // n*n colors, pair (u,v) at slot u*n+v
}

// newRefiner2D seeds the round-0 pair colors from role descriptors:
// the diagonal (u,u) interns the node label; an off-diagonal (u,v)
// interns the edge orientation bits (u→v, v→u) together with both
// labels, which distinguishes forward, backward, mutual and absent
// edges and keeps the u/v roles apart.
func newRefiner2D(g Graph, o Options) (*refiner2D, error) {
	verts := g.Vertices()
	n := len(verts)
	if n > 0 && n > math.MaxInt/n {
		return nil, fmt.Errorf("%w: %d vertices", ErrGraphTooLarge, n)
	}

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n && n > 0 {
		workers = n
	}

	r := &refiner2D{
		seed:    o.Seed,
		verts:   verts,
		n:       n,
		workers: workers,
		tables:  make([]*colorTable, workers),
		cur:     make([]Color, n*n),
		next:    make([]Color, n*n),
	}
	for w := range r.tables {
		r.tables[w] = newColorTable(o.Seed)
	}
	if n == 0 {
		return r, nil
	}

	labels := make([]Color, n)
	for i, v := range verts {
		label, err := g.VertexLabel(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrVertexLookup, v, err)
		}
		labels[i] = Color(label)
	}

	table := r.tables[0]
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				r.cur[u*n+v] = table.intern(tagDiag, labels[u], 0, 0)

				continue
			}
			var role Color
			if g.HasEdge(verts[u], verts[v]) {
				role |= 1
			}
			if g.HasEdge(verts[v], verts[u]) {
				role |= 2
			}
			r.cur[u*n+v] = table.intern(tagRole, role, labels[u], labels[v])
		}
	}

	return r, nil
}

// step runs one synchronous round over all ordered pairs, fanning the
// pair rows out across workers. Every update reads only the previous
// snapshot and writes its own slot, so the result is identical for any
// worker count; the WaitGroup is the barrier between rounds.
func (r *refiner2D) step() {
	if r.workers <= 1 {
		r.recolorRows(0, r.n, r.tables[0])
	} else {
		var wg sync.WaitGroup
		chunk := (r.n + r.workers - 1) / r.workers
		for w := 0; w < r.workers; w++ {
			lo := w * chunk
			hi := min(lo+chunk, r.n)
			if lo >= hi {
				break
			}
			wg.Add(1)
			go func(lo, hi int, t *colorTable) {
				defer wg.Done()
				r.recolorRows(lo, hi, t)
			}(lo, hi, r.tables[w])
		}
		wg.Wait()
	}
	r.cur, r.next = r.next, r.cur
}

// recolorRows recolors all pairs (u,v) with lo ≤ u < hi. For each pair
// the multiset ranges over every third node w: the link colors
// (color(u,w), color(w,v)) are interned into a single Color first, so
// the pair feeds the same combiner as 1-WL. The link pair is not
// symmetrized — edge direction and the u/v roles must survive.
func (r *refiner2D) recolorRows(lo, hi int, table *colorTable) {
	n := r.n
	ms := make([]Color, 0, n+1)
	for u := lo; u < hi; u++ {
		for v := 0; v < n; v++ {
			ms = ms[:0]
			for w := 0; w < n; w++ {
				ms = append(ms, table.intern(tagLink, r.cur[u*n+w], r.cur[w*n+v], 0))
			}
			r.next[u*n+v] = combine(r.seed, r.cur[u*n+v], ms)
		}
	}
}

func (r *refiner2D) current() []Color { return r.cur }

// previous returns the pre-swap buffer: valid only right after step().
func (r *refiner2D) previous() []Color { return r.next }

// record is a no-op: per-iteration feature extraction is a 1-WL
// facility only.
func (r *refiner2D) record() {}

// roundCap: the pair partition stabilizes within |V|² rounds.
func (r *refiner2D) roundCap() int { return r.n*r.n + 1 }
