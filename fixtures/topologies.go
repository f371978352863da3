package fixtures

import (
	"fmt"

	"github.com/oliviagraph/olivia/graph"
)

const (
	minPathPackages  = 2
	minCyclePackages = 3
	minStarLeaves    = 1
	minWheelSpokes   = 3
)

// PackageName returns the deterministic name assigned to index i by
// every generator in this file: "pkg0", "pkg1", and so on.
func PackageName(i int) string { return fmt.Sprintf("pkg%d", i) }

// Apply feeds edges into b in order. Convenience for composing several
// generators into a single graph.Builder before Freeze.
func Apply(b *graph.Builder, edges [][2]string) error {
	for _, e := range edges {
		if err := b.AddDependency(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the edges of a simple dependency chain
// pkg0 -> pkg1 -> ... -> pkg(n-1), matching spec §8 scenario 1: pkg0
// is the root depending (transitively) on everything, pkg(n-1) is the
// sink depending on nothing.
func Path(n int) ([][2]string, error) {
	if n < minPathPackages {
		return nil, errTooFewPackages("Path", n, minPathPackages)
	}
	edges := make([][2]string, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]string{PackageName(i), PackageName(i + 1)})
	}
	return edges, nil
}

// Cycle returns the edges of a simple n-package dependency ring
// pkg0 -> pkg1 -> ... -> pkg(n-1) -> pkg0. All n packages land in a
// single strongly connected component.
func Cycle(n int) ([][2]string, error) {
	if n < minCyclePackages {
		return nil, errTooFewPackages("Cycle", n, minCyclePackages)
	}
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]string{PackageName(i), PackageName((i + 1) % n)})
	}
	return edges, nil
}

// CyclePlusDependant returns a cyclePackages-sized cycle (see Cycle)
// plus one extra package "dependant" with a single edge
// dependant -> pkg0, matching spec §8 scenario 2: a non-singleton SCC
// that is a condensation sink, plus one package depending on it from
// outside.
func CyclePlusDependant(cyclePackages int) ([][2]string, error) {
	edges, err := Cycle(cyclePackages)
	if err != nil {
		return nil, err
	}
	edges = append(edges, [2]string{"dependant", PackageName(0)})
	return edges, nil
}

// StarIn returns the edges of a hub-and-spoke topology: a single "hub"
// package directly depending on each of k leaves (pkg0..pkg(k-1)).
// This is spec §8 scenario 3's topology under the corrected edge
// direction documented in DESIGN.md: the hub is the condensation
// source and each leaf is an isolated sink, which is the only
// direction consistent with the scenario's literal reach and
// immunization-delta numbers.
func StarIn(k int) ([][2]string, error) {
	if k < minStarLeaves {
		return nil, errTooFewPackages("StarIn", k, minStarLeaves)
	}
	edges := make([][2]string, 0, k)
	for i := 0; i < k; i++ {
		edges = append(edges, [2]string{"hub", PackageName(i)})
	}
	return edges, nil
}

// Wheel returns the edges of a wheel topology: an (n-1)-package outer
// ring (see Cycle) plus a "hub" package depending directly on every
// ring member, following StarIn's hub-depends-on-leaf direction.
func Wheel(n int) ([][2]string, error) {
	if n < minWheelSpokes+1 {
		return nil, errTooFewPackages("Wheel", n, minWheelSpokes+1)
	}
	ring, err := Cycle(n - 1)
	if err != nil {
		return nil, err
	}
	spokes, err := StarIn(n - 1)
	if err != nil {
		return nil, err
	}
	edges := make([][2]string, 0, len(ring)+len(spokes))
	edges = append(edges, ring...)
	edges = append(edges, spokes...)
	return edges, nil
}
