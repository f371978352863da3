// Package coupling computes transitive-coupling values and
// coupling-interface sets between packages, grounded on spec.md §4.F.
//
// A coupling interface answers: through which of v's direct
// dependencies does u, a transitive dependency of v, influence v? The
// membership test "is u reachable from d?" is a single bitset lookup
// against the Reach sweep's per-SCC descendant closures (package
// metric), so no new graph walk is needed once those closures exist.
package coupling
