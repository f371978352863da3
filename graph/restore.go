package graph

// FromCSR reconstructs a Graph directly from already-materialized
// forward and reverse adjacency lists, one per package in id order,
// bypassing Builder's edge-by-edge dedup bookkeeping entirely.
//
// It exists for package modelio: a persisted Container stores both the
// forward and reverse CSR sections verbatim, and replaying only the
// forward edges through a fresh Builder cannot reproduce an arbitrary
// original reverse-insertion order (Builder derives reverse adjacency
// from forward-insertion order grouped by ascending source id). FromCSR
// trusts its caller that forward and reverse are already consistent,
// deduplicated mirror images of one another, exactly as Save wrote them.
func FromCSR(names []string, forward, reverse [][]int32) (*Graph, error) {
	n := len(names)
	if len(forward) != n || len(reverse) != n {
		return nil, ErrCSRMismatch
	}

	g := &Graph{
		names:      make([]string, n),
		ids:        make(map[string]ID, n),
		forwardOff: make([]int32, n+1),
		reverseOff: make([]int32, n+1),
	}
	copy(g.names, names)
	for id, name := range names {
		g.ids[name] = ID(id)
	}

	for u := 0; u < n; u++ {
		g.forwardOff[u+1] = g.forwardOff[u] + int32(len(forward[u]))
	}
	g.forwardTgt = make([]int32, g.forwardOff[n])
	for u := 0; u < n; u++ {
		copy(g.forwardTgt[g.forwardOff[u]:], forward[u])
	}

	for u := 0; u < n; u++ {
		g.reverseOff[u+1] = g.reverseOff[u] + int32(len(reverse[u]))
	}
	g.reverseTgt = make([]int32, g.reverseOff[n])
	for u := 0; u < n; u++ {
		copy(g.reverseTgt[g.reverseOff[u]:], reverse[u])
	}

	g.arcCount = int(g.forwardOff[n])

	return g, nil
}
