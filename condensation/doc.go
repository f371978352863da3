// Package condensation builds the SCC-quotient ("condensation") DAG of
// a graph.Graph: Tarjan's algorithm finds every strongly connected
// component, then the quotient graph's arcs, reverse arcs, and a
// reverse-topological order (sinks first) are derived from it.
//
// Grounded on the teacher's depth-first traversal idiom (dfs/cycle.go,
// dfs/topological.go: explicit White/Gray/Black state, sentinel
// errors, a dedicated walker struct) but generalized from the
// teacher's native-recursion DFS to an explicit frame stack, because
// spec §4.B calls out that recursion depth could exceed 10^6 nodes on
// large dependency networks.
//
// A well-known property of Tarjan's algorithm is exploited directly:
// components are completed (and thus assigned ids) in an order where a
// component is never completed before all components it can reach are
// already completed. That is exactly a reverse-topological order of
// the condensation DAG (sinks first), so no separate topological sort
// pass is needed once Tarjan has run.
package condensation
