package coupling

import (
	"sort"

	"github.com/oliviagraph/olivia/bitset"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
)

// reachableFrom reports whether to is reachable from from — including
// from==to — using the Reach sweep's descendant closures. closures
// must be metric.ReachClosures(c, ...) for the same condensation c.
func reachableFrom(closures []bitset.Set, c *condensation.Condensation, from, to graph.ID) (bool, error) {
	fromSCC := int(c.SCCOf(from))
	if fromSCC >= len(closures) {
		return false, errClosuresTooShort(fromSCC, len(closures))
	}
	return closures[fromSCC].Has(int(c.SCCOf(to))), nil
}

// InterfaceFrom returns the coupling interface of u over v: the subset
// of v's direct dependencies through which u is reachable. u is
// expected to be a transitive dependency of v, but the function is
// well-defined (and returns an empty slice) regardless.
//
// Result order matches v's direct-dependency insertion order.
func InterfaceFrom(g *graph.Graph, c *condensation.Condensation, closures []bitset.Set, u, v graph.ID) ([]graph.ID, error) {
	var out []graph.ID
	for _, d := range g.ForwardNeighbors(v) {
		ok, err := reachableFrom(closures, c, d, u)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// TransitiveCoupling returns |InterfaceFrom(g, c, closures, u, v)|.
func TransitiveCoupling(g *graph.Graph, c *condensation.Condensation, closures []bitset.Set, u, v graph.ID) (int, error) {
	iface, err := InterfaceFrom(g, c, closures, u, v)
	if err != nil {
		return 0, err
	}
	return len(iface), nil
}

// TransitiveDependencyIDs returns every package id reachable from v,
// excluding v itself: the union of members of every SCC in v's Forward
// closure, minus v. Order is ascending by id, so callers get a
// deterministic iteration order for coupling_profile.
func TransitiveDependencyIDs(c *condensation.Condensation, closures []bitset.Set, v graph.ID) ([]graph.ID, error) {
	vSCC := int(c.SCCOf(v))
	if vSCC >= len(closures) {
		return nil, errClosuresTooShort(vSCC, len(closures))
	}
	var out []graph.ID
	closures[vSCC].ForEach(func(scc int) {
		for _, member := range c.Members(condensation.SCCID(scc)) {
			if member != v {
				out = append(out, member)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// CouplingProfile returns, for every transitive dependency u of v, its
// coupling interface over v (as package names). Entries with an empty
// interface are omitted — they cannot arise for genuine transitive
// dependencies but are excluded defensively for well-definedness.
func CouplingProfile(g *graph.Graph, c *condensation.Condensation, closures []bitset.Set, v graph.ID) (map[string][]string, error) {
	deps, err := TransitiveDependencyIDs(c, closures, v)
	if err != nil {
		return nil, err
	}
	profile := make(map[string][]string, len(deps))
	for _, u := range deps {
		iface, err := InterfaceFrom(g, c, closures, u, v)
		if err != nil {
			return nil, err
		}
		if len(iface) == 0 {
			continue
		}
		names := make([]string, len(iface))
		for i, id := range iface {
			names[i] = g.NameOf(id)
		}
		profile[g.NameOf(u)] = names
	}
	return profile, nil
}
