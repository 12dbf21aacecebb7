package wl

import "sort"

// engine is the round contract shared by the 1-WL and 2-WL refiners.
// One step() computes every entity's next color from the previous
// round's snapshot only (synchronous update), then swaps buffers; no
// entity ever observes a same-round color.
type engine interface {
	// step runs one synchronous refinement round.
	step()

	// current returns the colors after the most recent round.
	current() []Color

	// previous returns the colors before the most recent round.
	previous() []Color

	// record archives the current assignment for feature extraction
	// (no-op when history tracking is off).
	record()

	// roundCap bounds run-to-stabilization; crossing it is fatal.
	roundCap() int
}

// drive advances eng under the caller's iteration policy.
//
// iters >= 0: exactly iters rounds — even if the partition stabilized
// earlier, because invariants are documented to depend on the iteration
// count. iters < 0: run until the induced partition stops refining and
// return at that round, capped by eng.roundCap().
func drive(eng engine, iters int) error {
	eng.record() // round 0: initial coloring

	if iters >= 0 {
		for t := 0; t < iters; t++ {
			eng.step()
			eng.record()
		}

		return nil
	}

	for t := 1; ; t++ {
		if t > eng.roundCap() {
			return ErrStabilizationOverflow
		}
		eng.step()
		eng.record()
		if stabilized(eng.previous(), eng.current()) {
			return nil
		}
	}
}

// stabilized reports whether the partition induced by cur equals the
// partition induced by prev. Refinement only ever splits classes (the
// class count is monotonically non-decreasing), so an unchanged class
// count plus an unchanged class-size multiset already implies that no
// entity moved.
func stabilized(prev, cur []Color) bool {
	ps, cs := classSizes(prev), classSizes(cur)
	if len(ps) != len(cs) {
		return false
	}
	for i := range ps {
		if ps[i] != cs[i] {
			return false
		}
	}

	return true
}

// classSizes returns the sorted multiset of color-class sizes.
func classSizes(colors []Color) []int {
	counts := make(map[Color]int, len(colors))
	for _, c := range colors {
		counts[c]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)

	return sizes
}
