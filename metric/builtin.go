package metric

import (
	"github.com/oliviagraph/olivia/bitset"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
)

// ReachKind computes Reach(u): the number of packages reachable from u
// along dependency arcs, including u itself (u plus its transitive
// dependencies, summed over u's descendant SCCs in the condensation).
var ReachKind = Kind{Name: "reach", Direction: Forward, Step: sumMemberCounts}

// SurfaceKind computes Surface(u): the number of packages from which u
// is reachable, including u itself (u plus its transitive dependants).
// Identical step shape to Reach, just swept over ascendants instead of
// descendants.
var SurfaceKind = Kind{Name: "surface", Direction: Reverse, Step: sumMemberCounts}

// ImpactKind computes Impact(u): the number of directed arcs inside
// the subgraph induced by u and its transitive dependencies.
var ImpactKind = Kind{Name: "impact", Direction: Forward, Step: sumArcCounts}

// DependentsCountKind computes the number of direct dependants of a
// package (its in-degree in the original graph).
var DependentsCountKind = Kind{Name: "dependents_count", Direct: func(g *graph.Graph, id graph.ID) float64 {
	return float64(g.InDegree(id))
}}

// DependenciesCountKind computes the number of direct dependencies of
// a package (its out-degree in the original graph).
var DependenciesCountKind = Kind{Name: "dependencies_count", Direct: func(g *graph.Graph, id graph.ID) float64 {
	return float64(g.OutDegree(id))
}}

// Reach is the public name of the built-in Reach kind, for callers that
// want `get_metric(metric.Reach)` instead of the string form.
var Reach = mustGet("reach")

// Surface is the public name of the built-in Surface kind.
var Surface = mustGet("surface")

// Impact is the public name of the built-in Impact kind.
var Impact = mustGet("impact")

// DependentsCount is the public name of the built-in DependentsCount kind.
var DependentsCount = mustGet("dependents_count")

// DependenciesCount is the public name of the built-in DependenciesCount kind.
var DependenciesCount = mustGet("dependencies_count")

// sumMemberCounts implements Reach/Surface: Σ over T in closure of |T|.
func sumMemberCounts(scc condensation.SCCID, closure bitset.Set, c *condensation.Condensation) float64 {
	var total float64
	closure.ForEach(func(t int) {
		total += float64(len(c.Members(condensation.SCCID(t))))
	})
	return total
}

// sumArcCounts implements Impact: Σ over T in closure of (intra-SCC
// arcs of T + cross-SCC arcs out of T). Because closure is exactly the
// downward-closed descendant set for Forward sweeps, every arc leaving
// a T in closure lands in another SCC that is itself in closure, so
// summing intraArcs+crossArcs over the whole closure counts every arc
// of the induced subgraph exactly once, with no double-counting and no
// need to look at individual successors.
func sumArcCounts(scc condensation.SCCID, closure bitset.Set, c *condensation.Condensation) float64 {
	var total float64
	closure.ForEach(func(ti int) {
		t := condensation.SCCID(ti)
		total += float64(c.IntraArcs(t))
		total += float64(c.CrossArcs(t))
	})
	return total
}
