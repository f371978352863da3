// Package metric computes whole-network package metrics over a
// condensation DAG: Reach, Impact, Surface, DependentsCount, and
// DependenciesCount, plus any custom Kind an external caller registers.
//
// Reach, Impact, and Surface share one sweep shape (spec §4.D): process
// SCCs in an order where every SCC's dependencies (Reach/Impact) or
// dependants (Surface) have already been processed, union each SCC's
// already-computed closure into its own, and derive a scalar from the
// resulting closure. The sweep is grounded on the reverse-post-order
// accumulation already latent in the teacher's dfs/topological.go, but
// generalized from a single linear order into a per-SCC bitset union,
// and parallelized across DAG levels with golang.org/x/sync/errgroup
// (spec §5: "free to parallelize ... across independent subtrees").
//
// DependentsCount and DependenciesCount need no sweep at all — they
// are direct per-package in/out-degree counts on the original graph —
// so Kind supports both a sweep-based Step and a Direct per-node
// function, unified behind one registry (spec §9: "polymorphism as a
// capability set").
package metric
