package wl

// Descriptor tags keep the interned descriptor spaces disjoint: two
// descriptors with different tags can never encode the same stream.
const (
	// tagSeedU seeds an undirected node: (label, degree).
	tagSeedU Color = iota + 1

	// tagSeedD seeds a directed node: (label, out-degree, in-degree).
	tagSeedD

	// tagOut marks a neighbor color reached via an outgoing edge.
	tagOut

	// tagIn marks a neighbor color reached via an incoming edge.
	tagIn

	// tagDiag seeds a 2-WL diagonal pair (u,u): (label).
	tagDiag

	// tagRole seeds a 2-WL off-diagonal pair: (edge bits, label u, label v).
	tagRole

	// tagLink encodes a 2-WL third-node link: (color(u,w), color(w,v)).
	tagLink
)

// colorTable interns structural descriptors into Colors. It is owned by
// exactly one refinement run (never a process-wide singleton), so
// concurrent independent runs cannot interfere.
//
// intern is a pure function of (seed, descriptor): the memo is only a
// cache, which is why parallel 2-WL workers may each hold their own
// table without ever diverging.
type colorTable struct {
	seed uint64
	memo map[[4]Color]Color
}

// newColorTable returns an empty table bound to the run seed.
func newColorTable(seed uint64) *colorTable {
	return &colorTable{seed: seed, memo: make(map[[4]Color]Color)}
}

// intern maps the descriptor (tag, a, b, c) to its Color. Unused
// trailing words are zero; every tag has a fixed arity, so padding
// cannot collide with a genuine word. Equal descriptors always yield
// the same Color, and the value does not depend on encounter order —
// first-come dense numbering would leak vertex enumeration order into
// the colors and break relabeling invariance of the reduced invariant.
func (t *colorTable) intern(tag, a, b, c Color) Color {
	key := [4]Color{tag, a, b, c}
	if col, ok := t.memo[key]; ok {
		return col
	}
	col := hashWords(t.seed, key[:])
	t.memo[key] = col

	return col
}
