package condensation

// SCCID is the dense, zero-based strongly-connected-component
// identifier assigned by Build. SCC ids are already in reverse
// topological order of the condensation DAG: id 0 is a sink, id C-1 is
// a source (see package doc).
type SCCID = int32

// Condensation is the immutable SCC-quotient DAG of some graph.Graph,
// plus bookkeeping the metric engine needs directly (intra-SCC arc
// counts) so it never has to walk the original graph again.
type Condensation struct {
	nodeSCC []SCCID   // package id -> scc id
	members [][]int32 // scc id -> member package ids, Tarjan stack-pop order

	// condOut[s]/condIn[s] list s's deduplicated condensation
	// successors/predecessors, in first-seen order (deterministic).
	condOut [][]SCCID
	condIn  [][]SCCID

	intraArcs []int64 // scc id -> arcs with both endpoints inside it
	crossArcs []int64 // scc id -> arcs with tail inside it, head in another scc
}

// NumSCCs returns the number of strongly connected components (C).
func (c *Condensation) NumSCCs() int { return len(c.members) }

// SCCOf returns the SCC id containing package id.
func (c *Condensation) SCCOf(id int32) SCCID { return c.nodeSCC[id] }

// Members returns the package ids belonging to scc, in the order Build
// popped them off Tarjan's stack (the reverse of DFS discovery order).
// The returned slice must not be mutated by the caller.
func (c *Condensation) Members(scc SCCID) []int32 { return c.members[scc] }

// Successors returns scc's deduplicated condensation out-neighbors.
// The returned slice must not be mutated by the caller.
func (c *Condensation) Successors(scc SCCID) []SCCID { return c.condOut[scc] }

// Predecessors returns scc's deduplicated condensation in-neighbors.
// The returned slice must not be mutated by the caller.
func (c *Condensation) Predecessors(scc SCCID) []SCCID { return c.condIn[scc] }

// IntraArcs returns the number of original-graph arcs with both
// endpoints inside scc.
func (c *Condensation) IntraArcs(scc SCCID) int64 { return c.intraArcs[scc] }

// CrossArcs returns the number of original-graph arcs with tail inside
// scc and head in some other SCC. Unlike Successors, this counts every
// such arc, not just the distinct successor SCCs they land in.
func (c *Condensation) CrossArcs(scc SCCID) int64 { return c.crossArcs[scc] }

// ReverseTopoOrder returns all SCC ids in reverse topological order
// (sinks first). This is simply 0..C-1, a direct consequence of how
// Build assigns ids (see package doc); the method exists so callers
// never need to know or depend on that implementation detail.
func (c *Condensation) ReverseTopoOrder() []SCCID {
	order := make([]SCCID, len(c.members))
	for i := range order {
		order[i] = SCCID(i)
	}
	return order
}
