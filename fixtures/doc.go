// Package fixtures generates small, deterministic dependency-network
// topologies — paths, cycles, hub/leaf stars, wheels — for tests and
// examples that need a graph.Graph shaped a specific way rather than
// loaded from a real package manifest.
//
// Every generator returns a plain edge list ([2]string{from, to}) in a
// stable emission order, for the caller to feed into a graph.Builder
// via Apply; none of them touch a Builder directly, so callers remain
// free to compose several topologies into one graph before freezing.
package fixtures
