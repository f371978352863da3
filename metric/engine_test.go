package metric_test

import (
	"strconv"
	"testing"

	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
	"github.com/oliviagraph/olivia/metric"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, edges [][2]string) (*graph.Graph, *condensation.Condensation) {
	t.Helper()
	b := graph.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddDependency(e[0], e[1]))
	}
	g, err := b.Freeze()
	require.NoError(t, err)
	c, err := condensation.Build(g)
	require.NoError(t, err)
	return g, c
}

// TestCompute_PathGraph reproduces spec §8 scenario 1 exactly.
func TestCompute_PathGraph(t *testing.T) {
	g, c := build(t, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}})

	reach, err := metric.Compute(g, c, metric.Reach, nil)
	require.NoError(t, err)
	top := reach.Top(5, nil)
	require.Len(t, top, 5)
	for i, want := range []string{"0", "1", "2", "3", "4"} {
		require.Equal(t, want, top[i].Name)
		require.Equal(t, float64(5-i), top[i].Value)
	}

	surface, err := metric.Compute(g, c, metric.Surface, nil)
	require.NoError(t, err)
	v0, _ := surface.Get("0")
	v4, _ := surface.Get("4")
	require.Equal(t, float64(1), v0)
	require.Equal(t, float64(5), v4)

	impact, err := metric.Compute(g, c, metric.Impact, nil)
	require.NoError(t, err)
	i0, _ := impact.Get("0")
	i4, _ := impact.Get("4")
	require.Equal(t, float64(4), i0)
	require.Equal(t, float64(0), i4)
}

// TestCompute_CyclePlusDependant reproduces spec §8 scenario 2. The
// cycle {a,b,c} is a condensation sink (no outgoing arcs to d: only
// d→a exists), so its Reach is its own size (3); d's Reach is 4
// (itself plus the whole cycle it depends on).
func TestCompute_CyclePlusDependant(t *testing.T) {
	g, c := build(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "a"}})

	reach, err := metric.Compute(g, c, metric.Reach, nil)
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c"} {
		v, _ := reach.Get(name)
		require.Equal(t, float64(3), v)
	}
	rd, _ := reach.Get("d")
	require.Equal(t, float64(4), rd)

	impact, err := metric.Compute(g, c, metric.Impact, nil)
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c"} {
		v, _ := impact.Get(name)
		require.Equal(t, float64(3), v)
	}
	vd, _ := impact.Get("d")
	require.Equal(t, float64(4), vd)
}

// TestCompute_StarIn reproduces spec §8 scenario 3. h depends directly
// on all 10 leaves (the orientation forced by reach(h)=11: h must
// reach everyone, so its out-edges go to every leaf), each leaf
// depending on nothing further.
func TestCompute_StarIn(t *testing.T) {
	edges := make([][2]string, 0, 10)
	for i := 0; i < 10; i++ {
		edges = append(edges, [2]string{"h", string(rune('a' + i))})
	}
	g, c := build(t, edges)

	reach, err := metric.Compute(g, c, metric.Reach, nil)
	require.NoError(t, err)
	rh, _ := reach.Get("h")
	ra, _ := reach.Get("a")
	require.Equal(t, float64(11), rh)
	require.Equal(t, float64(1), ra)

	dependencies, err := metric.Compute(g, c, metric.DependenciesCount, nil)
	require.NoError(t, err)
	dh, _ := dependencies.Get("h")
	require.Equal(t, float64(10), dh)
}

func TestCompute_Idempotent(t *testing.T) {
	g, c := build(t, [][2]string{{"0", "1"}, {"1", "2"}})
	first, err := metric.Compute(g, c, metric.Reach, nil)
	require.NoError(t, err)
	second, err := metric.Compute(g, c, metric.Reach, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, first.Names(), second.Names())
	v1, _ := first.Get("0")
	v2, _ := second.Get("0")
	require.Equal(t, v1, v2)
}

func TestProgressObserver_Invoked(t *testing.T) {
	edges := make([][2]string, 0, 1500)
	prev := "n0"
	for i := 1; i < 1500; i++ {
		cur := "n" + strconv.Itoa(i)
		edges = append(edges, [2]string{prev, cur})
		prev = cur
	}
	g, c := build(t, edges)

	var calls int
	obs := metric.ObserverFunc(func(stage string, processed, total int) { calls++ })
	_, err := metric.Compute(g, c, metric.Reach, obs)
	require.NoError(t, err)
	require.GreaterOrEqual(t, calls, 1)
}
