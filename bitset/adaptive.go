package bitset

// Set is the common descendant-set contract shared by Dense and Sparse,
// so the metric and coupling engines can be written once against an
// interface and let representation choice stay a per-SCC implementation
// detail.
type Set interface {
	Len() int
	Set(i int)
	Has(i int) bool
	Count() int
	ForEach(fn func(i int))
	Clone() Set
}

// denseAdapter and sparseAdapter satisfy Set by delegating to the
// concrete Dense and Sparse types; Union below uses their UnionInto
// when both sides share a representation, so the sweep can still union
// two sets of possibly-different representations.
type denseAdapter struct{ *Dense }

func (d denseAdapter) Clone() Set { return denseAdapter{d.Dense.Clone()} }

type sparseAdapter struct{ *Sparse }

func (s sparseAdapter) Clone() Set { return sparseAdapter{s.Sparse.Clone()} }

// DenseSparseThreshold is the universe size below which NewAdaptive
// always chooses a Dense bitset: at small C the word-packed bitset's
// fixed O(C/64) footprint is cheaper than a hashed set's per-entry
// overhead regardless of expected density.
const DenseSparseThreshold = 4096

// NewAdaptive returns a new, empty Set over the universe [0, n),
// choosing Dense when n is small or expectedDensity is high (dense
// descendant sets, typical of super-critical networks where C is much
// smaller than N), and Sparse otherwise (typical of sub-critical
// networks where C≈N and most SCCs reach only a few others).
// expectedDensity is the caller's estimate of |descendants|/n; pass 1.0
// when no better estimate exists, which is safely dense-biased.
func NewAdaptive(n int, expectedDensity float64) Set {
	if n <= DenseSparseThreshold || expectedDensity >= 0.10 {
		return denseAdapter{NewDense(n)}
	}
	return sparseAdapter{NewSparse(n)}
}

// Union merges src into dst in place, handling the case where dst and
// src use different representations by falling back to a ForEach copy.
// Returns true if dst changed.
func Union(dst, src Set) bool {
	if d, ok := dst.(denseAdapter); ok {
		if s, ok := src.(denseAdapter); ok {
			return d.UnionInto(s.Dense)
		}
	}
	if d, ok := dst.(sparseAdapter); ok {
		if s, ok := src.(sparseAdapter); ok {
			return d.UnionInto(s.Sparse)
		}
	}
	changed := false
	src.ForEach(func(i int) {
		if !dst.Has(i) {
			dst.Set(i)
			changed = true
		}
	})
	return changed
}
