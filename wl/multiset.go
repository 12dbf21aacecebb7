package wl

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// hashWords folds a word sequence into one Color via xxhash64. The run
// seed leads the stream and every word enters in little-endian byte
// order, so the value is identical on any architecture.
func hashWords(seed uint64, words []Color) Color {
	var (
		d   = xxhash.New()
		buf [8]byte
	)
	binary.LittleEndian.PutUint64(buf[:], seed)
	_, _ = d.Write(buf[:])
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], uint64(w))
		_, _ = d.Write(buf[:])
	}

	return Color(d.Sum64())
}

// combine folds an anchor color and an unordered color collection into
// a new Color. The collection is canonicalized by an ascending sort
// before folding, which makes the result independent of iteration order
// while keeping true multiset semantics: {a,a} and {a} fold to
// different values, unlike a plain sum or XOR reducer. The anchor is
// appended after the sorted sequence so that the entity's own previous
// color always occupies the final slot of the stream.
//
// ms is sorted in place.
func combine(seed uint64, anchor Color, ms []Color) Color {
	sort.Slice(ms, func(i, j int) bool { return ms[i] < ms[j] })
	ms = append(ms, anchor)

	return hashWords(seed, ms)
}

// reduce folds a whole color assignment into one scalar graph
// invariant. Sorting first makes the value invariant under any
// bijective relabeling of the underlying entities. The input is not
// modified.
func reduce(seed uint64, colors []Color) Color {
	cp := append(make([]Color, 0, len(colors)), colors...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	return hashWords(seed, cp)
}
