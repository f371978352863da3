package stats_test

import (
	"testing"

	"github.com/oliviagraph/olivia/stats"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, values map[string]float64) *stats.MetricStats {
	t.Helper()
	m, err := stats.New(values)
	require.NoError(t, err)
	return m
}

func TestTopBottom_PathGraphScenario(t *testing.T) {
	reach := mustNew(t, map[string]float64{"0": 5, "1": 4, "2": 3, "3": 2, "4": 1})
	top := reach.Top(5, nil)
	require.Equal(t, []stats.Pair{
		{Name: "0", Value: 5}, {Name: "1", Value: 4}, {Name: "2", Value: 3},
		{Name: "3", Value: 2}, {Name: "4", Value: 1},
	}, top)
}

func TestTop_TieBreakByName(t *testing.T) {
	m := mustNew(t, map[string]float64{"z": 1, "a": 1, "m": 1})
	top := m.Top(2, nil)
	require.Equal(t, []stats.Pair{{Name: "a", Value: 1}, {Name: "m", Value: 1}}, top)
}

func TestArithmetic_DomainMismatch(t *testing.T) {
	a := mustNew(t, map[string]float64{"x": 1})
	b := mustNew(t, map[string]float64{"y": 2})
	_, err := a.Add(b)
	require.Error(t, err)
}

func TestArithmetic_CommutativeAssociative(t *testing.T) {
	a := mustNew(t, map[string]float64{"x": 2, "y": 3})
	b := mustNew(t, map[string]float64{"x": 5, "y": 7})
	c := mustNew(t, map[string]float64{"x": 11, "y": 13})

	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	require.ElementsMatch(t, ab.Names(), ba.Names())
	vx, _ := ab.Get("x")
	vy, _ := ba.Get("x")
	require.Equal(t, vx, vy)

	abc1, err := mustCombine(t, a, b, c)
	require.NoError(t, err)
	abc2v, _ := abc1.Get("x")
	require.Equal(t, float64(2+5+11), abc2v)

	bc, err := b.Add(c)
	require.NoError(t, err)
	abc2, err := a.Add(bc)
	require.NoError(t, err)
	abc2x, _ := abc2.Get("x")
	require.Equal(t, abc2v, abc2x)
}

func mustCombine(t *testing.T, a, b, c *stats.MetricStats) (*stats.MetricStats, error) {
	t.Helper()
	ab, err := a.Add(b)
	if err != nil {
		return nil, err
	}
	return ab.Add(c)
}

func TestBroadcast_ScalarIdentity(t *testing.T) {
	reach := mustNew(t, map[string]float64{"0": 5, "1": 4, "2": 3, "3": 2, "4": 1})
	size := float64(5)
	ratio, err := reach.DivScalar(size)
	require.NoError(t, err)
	top := ratio.Top(1, nil)
	require.Equal(t, []stats.Pair{{Name: "0", Value: 1.0}}, top)

	squared, err := reach.PowScalar(2)
	require.NoError(t, err)
	v, ok := squared.Get("0")
	require.True(t, ok)
	require.Equal(t, float64(25), v)
}

func TestSummary_MinMaxMeanSum(t *testing.T) {
	m := mustNew(t, map[string]float64{"a": 1, "b": 2, "c": 3})
	require.Equal(t, float64(1), m.Min())
	require.Equal(t, float64(3), m.Max())
	require.Equal(t, float64(6), m.Sum())
	require.Equal(t, float64(2), m.Mean())
}
