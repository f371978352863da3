package network_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/oliviagraph/olivia/graph"
	"github.com/oliviagraph/olivia/metric"
	"github.com/oliviagraph/olivia/network"
	"github.com/oliviagraph/olivia/vulnerability"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T, edges [][2]string) *network.Model {
	t.Helper()
	b := graph.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddDependency(e[0], e[1]))
	}
	g, err := b.Freeze()
	require.NoError(t, err)
	m, err := network.New(g, nil)
	require.NoError(t, err)
	return m
}

func pathEdges(n int) [][2]string {
	edges := make([][2]string, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]string{string(rune('0' + i)), string(rune('0' + i + 1))})
	}
	return edges
}

func TestModel_DirectAndTransitiveQueries(t *testing.T) {
	m := buildModel(t, pathEdges(5))

	deps, err := m.DirectDependencies("0")
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, deps)

	trans, err := m.TransitiveDependencies("0")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"1", "2", "3", "4"}, trans)

	dependants, err := m.TransitiveDependants("4")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"0", "1", "2", "3"}, dependants)
}

func TestModel_UnknownPackage(t *testing.T) {
	m := buildModel(t, pathEdges(3))
	_, err := m.DirectDependencies("nope")
	require.Error(t, err)
}

func TestModel_GetMetric_CachesAndConcurrentCallersCoalesce(t *testing.T) {
	m := buildModel(t, pathEdges(5))

	var wg sync.WaitGroup
	results := make([]float64, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ms, err := m.GetMetric(metric.Reach)
			require.NoError(t, err)
			v, ok := ms.Get("0")
			require.True(t, ok)
			results[idx] = v
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		require.Equal(t, 5.0, v)
	}
}

func TestModel_CouplingProfile(t *testing.T) {
	m := buildModel(t, [][2]string{
		{"v", "p"}, {"v", "q"}, {"v", "r"},
		{"q", "s"}, {"s", "u"}, {"r", "u"},
	})
	profile, err := m.CouplingProfile("v")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"q", "r"}, profile["u"])
}

func TestModel_FailureVulnerabilityAndImmunizationDelta(t *testing.T) {
	edges := make([][2]string, 0, 10)
	for i := 0; i < 10; i++ {
		edges = append(edges, [2]string{"h", string(rune('a' + i))})
	}
	m := buildModel(t, edges)

	fv, err := m.FailureVulnerability(metric.Reach)
	require.NoError(t, err)
	require.InDelta(t, 21.0/11.0, fv, 1e-9)

	delta, err := m.ImmunizationDelta([]string{"h"}, metric.Reach, vulnerability.NetworkAlgorithm)
	require.NoError(t, err)
	require.InDelta(t, 10.0/11.0, delta, 1e-9)
}

func TestModel_SaveLoad_RoundTrip(t *testing.T) {
	m := buildModel(t, pathEdges(5))
	_, err := m.GetMetric(metric.Reach)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	restored, err := network.Load(&buf, nil)
	require.NoError(t, err)

	deps, err := restored.DirectDependencies("0")
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, deps)

	ms, err := restored.GetMetric(metric.Reach)
	require.NoError(t, err)
	v, ok := ms.Get("0")
	require.True(t, ok)
	require.Equal(t, 5.0, v)
}
