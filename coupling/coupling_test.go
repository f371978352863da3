package coupling_test

import (
	"testing"

	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/coupling"
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

func idOf(t *testing.T, g *graph.Graph, name string) graph.ID {
	t.Helper()
	id, ok := g.IDOf(name)
	require.True(t, ok)
	return id
}

// TestInterfaceFrom_TransitiveCouplingExample reproduces spec §8
// scenario 4: v has direct deps {p,q,r}; q->s->u, r->u, p unrelated.
func TestInterfaceFrom_TransitiveCouplingExample(t *testing.T) {
	g, c := build(t, [][2]string{
		{"v", "p"}, {"v", "q"}, {"v", "r"},
		{"q", "s"}, {"s", "u"}, {"r", "u"},
	})
	closures := metric.ReachClosures(c, nil)

	u, v := idOf(t, g, "u"), idOf(t, g, "v")
	iface, err := coupling.InterfaceFrom(g, c, closures, u, v)
	require.NoError(t, err)

	names := make([]string, len(iface))
	for i, id := range iface {
		names[i] = g.NameOf(id)
	}
	require.ElementsMatch(t, []string{"q", "r"}, names)

	n, err := coupling.TransitiveCoupling(g, c, closures, u, v)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestCouplingProfile_TransitiveCouplingExample checks the full profile
// of v on the same graph as the scenario-4 example: every transitive
// dependency of v should appear with its correct interface.
func TestCouplingProfile_TransitiveCouplingExample(t *testing.T) {
	g, c := build(t, [][2]string{
		{"v", "p"}, {"v", "q"}, {"v", "r"},
		{"q", "s"}, {"s", "u"}, {"r", "u"},
	})
	closures := metric.ReachClosures(c, nil)

	v := idOf(t, g, "v")
	profile, err := coupling.CouplingProfile(g, c, closures, v)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"p", "q", "r", "s", "u"}, keysOf(profile))
	require.ElementsMatch(t, []string{"p"}, profile["p"])
	require.ElementsMatch(t, []string{"q"}, profile["q"])
	require.ElementsMatch(t, []string{"r"}, profile["r"])
	require.ElementsMatch(t, []string{"q"}, profile["s"])
	require.ElementsMatch(t, []string{"q", "r"}, profile["u"])
}

func keysOf(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// TestTransitiveDependencyIDs_ExcludesSelfIncludesSCCSiblings checks
// that a package's own non-trivial SCC co-members count as transitive
// dependencies of it, while the package itself never does.
func TestTransitiveDependencyIDs_ExcludesSelfIncludesSCCSiblings(t *testing.T) {
	g, c := build(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "a"}})
	closures := metric.ReachClosures(c, nil)

	a := idOf(t, g, "a")
	deps, err := coupling.TransitiveDependencyIDs(c, closures, a)
	require.NoError(t, err)

	var names []string
	for _, id := range deps {
		names = append(names, g.NameOf(id))
	}
	require.ElementsMatch(t, []string{"b", "c"}, names)
}
