package metric

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/oliviagraph/olivia/bitset"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
	"github.com/oliviagraph/olivia/stats"
)

const progressEvery = 1000

// progressStep reports true once processed has crossed a new multiple
// of progressEvery since the last batch of size delta was applied.
func progressStep(processedBefore, delta int) bool {
	return processedBefore/progressEvery != (processedBefore+delta)/progressEvery
}

// neighborsOf returns scc's condensation successors (Forward) or
// predecessors (Reverse) — the set whose closures must already be
// known before scc's own closure can be computed.
func neighborsOf(c *condensation.Condensation, dir Direction, scc condensation.SCCID) []condensation.SCCID {
	if dir == Forward {
		return c.Successors(scc)
	}
	return c.Predecessors(scc)
}

// processingOrder returns SCC ids in the order required for closure
// accumulation: ascending (sinks first) for Forward, since a
// condensation successor always has a strictly smaller id than its
// predecessor by construction (see package condensation's doc);
// descending (sources first) for Reverse, for the symmetric reason.
func processingOrder(numSCC int, dir Direction) []condensation.SCCID {
	order := make([]condensation.SCCID, numSCC)
	if dir == Forward {
		for i := 0; i < numSCC; i++ {
			order[i] = condensation.SCCID(i)
		}
	} else {
		for i := 0; i < numSCC; i++ {
			order[i] = condensation.SCCID(numSCC - 1 - i)
		}
	}
	return order
}

// closures computes, for every SCC, its closure bitset: itself plus
// every SCC reachable via dir's adjacency (descendants for Forward,
// ascendants for Reverse). SCCs whose mutual non-adjacency lets them
// be computed independently (same DAG "level", i.e. same longest
// distance from a boundary node) are swept concurrently, bounded by a
// worker pool sized to GOMAXPROCS via errgroup, per spec §5.
func closures(c *condensation.Condensation, dir Direction, obs Observer) []bitset.Set {
	numSCC := c.NumSCCs()
	order := processingOrder(numSCC, dir)

	level := make([]int, numSCC)
	for _, s := range order {
		maxL := -1
		for _, n := range neighborsOf(c, dir, s) {
			if level[n] > maxL {
				maxL = level[n]
			}
		}
		level[s] = maxL + 1
	}

	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}
	groups := make([][]condensation.SCCID, maxLevel+1)
	for _, s := range order {
		groups[level[s]] = append(groups[level[s]], s)
	}

	result := make([]bitset.Set, numSCC)
	processed := 0
	stage := "forward-sweep"
	if dir == Reverse {
		stage = "reverse-sweep"
	}

	for _, group := range groups {
		var eg errgroup.Group
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for _, s := range group {
			s := s
			eg.Go(func() error {
				neigh := neighborsOf(c, dir, s)
				density := float64(len(neigh)+1) / float64(numSCC+1)
				closure := bitset.NewAdaptive(numSCC, density)
				closure.Set(int(s))
				for _, n := range neigh {
					bitset.Union(closure, result[n])
				}
				result[s] = closure
				return nil
			})
		}
		_ = eg.Wait() // no goroutine in this loop can return a non-nil error

		if obs != nil && progressStep(processed, len(group)) {
			obs.OnProgress(stage, processed+len(group), numSCC)
		}
		processed += len(group)
	}

	return result
}

// ReachClosures exposes the Forward-direction descendant closures used
// by ReachKind/ImpactKind, so package coupling can reuse them directly
// instead of re-running the sweep for the same direction.
func ReachClosures(c *condensation.Condensation, obs Observer) []bitset.Set {
	return closures(c, Forward, obs)
}

// SurfaceClosures exposes the Reverse-direction ascendant closures used
// by SurfaceKind, so package vulnerability can identify which SCCs are
// upstream of a given target without re-running the sweep.
func SurfaceClosures(c *condensation.Condensation, obs Observer) []bitset.Set {
	return closures(c, Reverse, obs)
}

// RecomputeAffectedForward resweeps Forward closures restricted to the
// SCCs in affected, using base as the already-known closures for every
// SCC outside affected (those are assumed provably unchanged by
// whatever modification produced the successorsOverride function). SCCs
// are processed in ascending id order, matching Forward's normal
// processing order, so every successor used as a dependency is computed
// (or inherited from base) before the SCC that needs it.
//
// Grounded on package vulnerability's analytic immunization-delta
// algorithm: reruns the Reach sweep only over the SCCs upstream of a
// target set, without rebuilding the whole graph and condensation.
func RecomputeAffectedForward(c *condensation.Condensation, base []bitset.Set, affected []bool, successorsOverride func(condensation.SCCID) []condensation.SCCID) []bitset.Set {
	numSCC := c.NumSCCs()
	result := make([]bitset.Set, numSCC)
	for s := 0; s < numSCC; s++ {
		if !affected[s] {
			result[s] = base[s]
			continue
		}
		scc := condensation.SCCID(s)
		neigh := successorsOverride(scc)
		density := float64(len(neigh)+1) / float64(numSCC+1)
		closure := bitset.NewAdaptive(numSCC, density)
		closure.Set(s)
		for _, n := range neigh {
			bitset.Union(closure, result[n])
		}
		result[s] = closure
	}
	return result
}

// Compute evaluates kind over g/c and returns a MetricStats keyed by
// package name. Every member of an SCC receives the same value for a
// sweep-based kind, per spec §3's SCC invariant.
func Compute(g *graph.Graph, c *condensation.Condensation, kind Kind, obs Observer) (*stats.MetricStats, error) {
	values := make(map[string]float64, g.Size())

	if kind.IsSweep() {
		closed := closures(c, kind.Direction, obs)
		for s := 0; s < c.NumSCCs(); s++ {
			scc := condensation.SCCID(s)
			v := kind.Step(scc, closed[s], c)
			for _, pkgID := range c.Members(scc) {
				values[g.NameOf(pkgID)] = v
			}
		}
		return stats.New(values)
	}

	for id := int32(0); id < int32(g.Size()); id++ {
		values[g.NameOf(id)] = kind.Direct(g, id)
	}
	return stats.New(values)
}
