package graph

// ID is the dense, zero-based package identifier assigned at build
// time. Packages never change id across a Graph's lifetime.
type ID = int32

// Graph is an immutable labeled directed graph: N packages, a
// name↔id bimap, and CSR forward/reverse adjacency. Once returned by
// Builder.Freeze, a Graph is never mutated again; every method is safe
// for concurrent use by multiple goroutines without any locking.
type Graph struct {
	names []string      // id -> name, in id order
	ids   map[string]ID // name -> id

	// forwardOff[u] .. forwardOff[u+1] indexes into forwardTgt for u's
	// out-neighbors, in first-seen insertion order.
	forwardOff []int32
	forwardTgt []int32

	// reverseOff/reverseTgt mirror forwardOff/forwardTgt for in-neighbors.
	reverseOff []int32
	reverseTgt []int32

	arcCount int // total deduplicated, non-loop arcs
}

// Size returns the number of packages (N).
func (g *Graph) Size() int { return len(g.names) }

// ArcCount returns the total number of deduplicated, non-self-loop arcs.
func (g *Graph) ArcCount() int { return g.arcCount }

// Contains reports whether name is a registered package.
func (g *Graph) Contains(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// IDOf returns the dense id for name, or (0, false) if absent.
func (g *Graph) IDOf(name string) (ID, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// NameOf returns the name for a valid id. Panics if id is out of range,
// which callers are expected to have already validated via IDOf.
func (g *Graph) NameOf(id ID) string { return g.names[id] }

// Iter returns all package names in id order. The returned slice is
// owned by the caller and safe to mutate.
func (g *Graph) Iter() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// ForwardNeighbors returns the out-neighbor ids of id, in first-seen
// insertion order. The returned slice must not be mutated by the
// caller; it aliases Graph's internal storage.
func (g *Graph) ForwardNeighbors(id ID) []int32 {
	return g.forwardTgt[g.forwardOff[id]:g.forwardOff[id+1]]
}

// ReverseNeighbors returns the in-neighbor ids of id, in first-seen
// insertion order. The returned slice must not be mutated by the
// caller.
func (g *Graph) ReverseNeighbors(id ID) []int32 {
	return g.reverseTgt[g.reverseOff[id]:g.reverseOff[id+1]]
}

// OutDegree returns the number of distinct out-neighbors of id.
func (g *Graph) OutDegree(id ID) int {
	return int(g.forwardOff[id+1] - g.forwardOff[id])
}

// InDegree returns the number of distinct in-neighbors of id.
func (g *Graph) InDegree(id ID) int {
	return int(g.reverseOff[id+1] - g.reverseOff[id])
}
