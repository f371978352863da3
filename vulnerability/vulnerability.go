package vulnerability

import (
	"github.com/oliviagraph/olivia/bitset"
	"github.com/oliviagraph/olivia/condensation"
	"github.com/oliviagraph/olivia/graph"
	"github.com/oliviagraph/olivia/metric"
)

// Algorithm selects how ImmunizationDelta computes the post-removal
// metric.
type Algorithm int

const (
	// NetworkAlgorithm rebuilds the graph with every target's
	// out-edges removed, rebuilds the condensation, and recomputes the
	// metric from scratch. Correct for any metric kind.
	NetworkAlgorithm Algorithm = iota
	// AnalyticAlgorithm resweeps only the SCCs upstream of the target
	// set over the existing condensation. Reach only; falls back to
	// NetworkAlgorithm whenever a target lies in a non-singleton SCC.
	AnalyticAlgorithm
)

// FailureVulnerability returns the arithmetic mean of kind over every
// package (spec §4.G).
func FailureVulnerability(g *graph.Graph, c *condensation.Condensation, kind metric.Kind, obs metric.Observer) (float64, error) {
	m, err := metric.Compute(g, c, kind, obs)
	if err != nil {
		return 0, err
	}
	return m.Mean(), nil
}

// ImmunizationDelta returns the non-negative decrease in mean(kind)
// achieved by treating every package in targetNames as if its defects
// no longer propagate (its out-edges are removed).
func ImmunizationDelta(g *graph.Graph, c *condensation.Condensation, targetNames []string, kind metric.Kind, algo Algorithm, obs metric.Observer) (float64, error) {
	targetIDs := make([]graph.ID, len(targetNames))
	for i, name := range targetNames {
		id, ok := g.IDOf(name)
		if !ok {
			return 0, errUnknownTarget(name)
		}
		targetIDs[i] = id
	}

	if algo == AnalyticAlgorithm {
		if kind.Name != metric.Reach.Name {
			return 0, errAnalyticMetric(kind.Name)
		}
		if singleton := allSingletonSCCs(c, targetIDs); singleton {
			return analyticDelta(g, c, targetIDs, obs)
		}
		// Fall back to the network algorithm: a target sharing a
		// non-singleton SCC with other packages can split that SCC
		// once its out-edges are removed, which a restricted sweep
		// over the unmodified condensation cannot represent.
	}
	return networkDelta(g, c, targetIDs, kind, obs)
}

func allSingletonSCCs(c *condensation.Condensation, targets []graph.ID) bool {
	for _, id := range targets {
		if len(c.Members(c.SCCOf(id))) > 1 {
			return false
		}
	}
	return true
}

func clampNonNegative(delta float64) float64 {
	if delta < 0 && delta > -1e-9 {
		return 0
	}
	return delta
}

// networkDelta materializes the modified graph (target out-edges
// stripped), rebuilds the condensation, and diffs the recomputed mean
// metric against the original.
func networkDelta(g *graph.Graph, c *condensation.Condensation, targets []graph.ID, kind metric.Kind, obs metric.Observer) (float64, error) {
	before, err := metric.Compute(g, c, kind, obs)
	if err != nil {
		return 0, err
	}

	isTarget := make(map[graph.ID]bool, len(targets))
	for _, id := range targets {
		isTarget[id] = true
	}

	b := graph.NewBuilder()
	for id := graph.ID(0); id < graph.ID(g.Size()); id++ {
		if _, err := b.AddPackage(g.NameOf(id)); err != nil {
			return 0, err
		}
	}
	for id := graph.ID(0); id < graph.ID(g.Size()); id++ {
		if isTarget[id] {
			continue
		}
		for _, nb := range g.ForwardNeighbors(id) {
			if err := b.AddDependency(g.NameOf(id), g.NameOf(nb)); err != nil {
				return 0, err
			}
		}
	}
	g2, err := b.Freeze()
	if err != nil {
		return 0, err
	}
	c2, err := condensation.Build(g2)
	if err != nil {
		return 0, err
	}

	after, err := metric.Compute(g2, c2, kind, obs)
	if err != nil {
		return 0, err
	}
	return clampNonNegative(before.Mean() - after.Mean()), nil
}

// analyticDelta resweeps Forward (Reach) closures restricted to the
// SCCs upstream of any target SCC, reusing the original condensation
// and its already-computed closures for every SCC the removal cannot
// affect (spec §4.G's analytic algorithm).
func analyticDelta(g *graph.Graph, c *condensation.Condensation, targets []graph.ID, obs metric.Observer) (float64, error) {
	numSCC := c.NumSCCs()
	targetSCCs := make(map[condensation.SCCID]bool, len(targets))
	for _, id := range targets {
		targetSCCs[c.SCCOf(id)] = true
	}

	base := metric.ReachClosures(c, obs)

	affected := make([]bool, numSCC)
	for s := 0; s < numSCC; s++ {
		for t := range targetSCCs {
			if base[s].Has(int(t)) {
				affected[s] = true
				break
			}
		}
	}

	successorsOverride := func(s condensation.SCCID) []condensation.SCCID {
		if targetSCCs[s] {
			return nil
		}
		return c.Successors(s)
	}
	after := metric.RecomputeAffectedForward(c, base, affected, successorsOverride)

	var sumBefore, sumAfter float64
	for s := 0; s < numSCC; s++ {
		if !affected[s] {
			continue
		}
		scc := condensation.SCCID(s)
		n := float64(len(c.Members(scc)))
		sumBefore += n * sumMemberCounts(base[s], c)
		sumAfter += n * sumMemberCounts(after[s], c)
	}

	delta := (sumBefore - sumAfter) / float64(g.Size())
	return clampNonNegative(delta), nil
}

func sumMemberCounts(closure bitset.Set, c *condensation.Condensation) float64 {
	var total float64
	closure.ForEach(func(t int) {
		total += float64(len(c.Members(condensation.SCCID(t))))
	})
	return total
}
