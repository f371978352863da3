package bitset_test

import (
	"testing"

	"github.com/oliviagraph/olivia/bitset"
	"github.com/stretchr/testify/require"
)

func TestDense_SetHasUnion(t *testing.T) {
	a := bitset.NewDense(10)
	b := bitset.NewDense(10)
	a.Set(1)
	a.Set(3)
	b.Set(3)
	b.Set(7)

	require.True(t, a.Has(1))
	require.False(t, a.Has(2))

	changed := a.UnionInto(b)
	require.True(t, changed)
	require.True(t, a.Has(7))
	require.Equal(t, 3, a.Count())

	// A second union of the same source changes nothing.
	require.False(t, a.UnionInto(b))
}

func TestDense_ForEachOrder(t *testing.T) {
	d := bitset.NewDense(200)
	d.Set(199)
	d.Set(0)
	d.Set(64)

	var seen []int
	d.ForEach(func(i int) { seen = append(seen, i) })
	require.Equal(t, []int{0, 64, 199}, seen)
}

func TestSparse_SetHasUnion(t *testing.T) {
	a := bitset.NewSparse(1000)
	b := bitset.NewSparse(1000)
	a.Set(5)
	b.Set(5)
	b.Set(900)

	require.True(t, a.UnionInto(b))
	require.True(t, a.Has(900))
	require.Equal(t, 2, a.Count())
}

func TestNewAdaptive_Selection(t *testing.T) {
	small := bitset.NewAdaptive(100, 0.01)
	_, isDenseSmall := small.(interface{ UnionInto(*bitset.Dense) bool })
	require.True(t, isDenseSmall)

	largeSparse := bitset.NewAdaptive(1_000_000, 0.001)
	largeSparse.Set(42)
	require.True(t, largeSparse.Has(42))
	require.Equal(t, 1, largeSparse.Count())

	largeDense := bitset.NewAdaptive(1_000_000, 0.5)
	largeDense.Set(7)
	require.True(t, largeDense.Has(7))
}

func TestUnion_CrossRepresentation(t *testing.T) {
	dense := bitset.NewAdaptive(50, 1.0)
	sparse := bitset.NewAdaptive(2_000_000, 0.0001)
	sparse.Set(10)
	sparse.Set(20)

	changed := bitset.Union(dense, sparse)
	require.True(t, changed)
	require.True(t, dense.Has(10))
	require.True(t, dense.Has(20))
}
