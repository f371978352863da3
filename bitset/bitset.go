package bitset

import "math/bits"

const wordBits = 64

// Dense is a fixed-universe bitset over integer ids in [0, n), backed by a
// word-packed []uint64 slice. It is not safe for concurrent mutation by
// multiple goroutines; callers that shard work across SCCs must ensure a
// given Dense is only ever unioned-into by a single goroutine at a time
// (the reverse-topological sweep in package metric guarantees this: a
// child SCC's bitset is fully built before any of its parents read it).
type Dense struct {
	words []uint64
	n     int // universe size
}

// NewDense allocates a Dense bitset over the universe [0, n).
// Complexity: O(n/64).
func NewDense(n int) *Dense {
	return &Dense{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Len reports the universe size this bitset was constructed with.
func (d *Dense) Len() int { return d.n }

// Set marks bit i as present. Panics if i is out of [0, n) — a
// programmer error, not a runtime condition callers should branch on.
func (d *Dense) Set(i int) {
	if i < 0 || i >= d.n {
		panic("bitset: index out of range")
	}
	d.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Has reports whether bit i is present.
func (d *Dense) Has(i int) bool {
	return d.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// UnionInto ORs src into d in place and reports whether d changed.
// Complexity: O(n/64).
func (d *Dense) UnionInto(src *Dense) bool {
	changed := false
	for i, w := range src.words {
		if nw := d.words[i] | w; nw != d.words[i] {
			d.words[i] = nw
			changed = true
		}
	}
	return changed
}

// Count returns the number of set bits.
// Complexity: O(n/64).
func (d *Dense) Count() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// ForEach calls fn once per set bit, in ascending order.
func (d *Dense) ForEach(fn func(i int)) {
	for wi, w := range d.words {
		base := wi * wordBits
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(base + tz)
			w &^= 1 << uint(tz)
		}
	}
}

// Clone returns an independent copy of d.
func (d *Dense) Clone() *Dense {
	out := &Dense{words: make([]uint64, len(d.words)), n: d.n}
	copy(out.words, d.words)
	return out
}
