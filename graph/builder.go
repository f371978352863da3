package graph

// Builder accumulates packages and directed dependency edges, then
// freezes them into an immutable CSR Graph. It mirrors the teacher's
// core.Graph.AddEdge dedup/self-loop-drop contract, but targets a
// frozen result rather than a live mutable graph: once Freeze returns,
// the Builder itself must not be reused.
//
// Builder is not safe for concurrent use; callers that ingest from
// multiple goroutines must serialize their own calls (see package
// ingest, which does this with a single parsing goroutine).
type Builder struct {
	ids   map[string]ID
	names []string

	// fwd[u] lists out-neighbor ids of u in first-seen order; fwdSeen
	// deduplicates. rev mirrors fwd for in-neighbors.
	fwd     [][]ID
	fwdSeen []map[ID]struct{}
	rev     [][]ID
	revSeen []map[ID]struct{}

	arcCount int
	frozen   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{ids: make(map[string]ID)}
}

// AddPackage registers name if not already present and returns its id.
// Complexity: amortized O(1).
func (b *Builder) AddPackage(name string) (ID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if id, ok := b.ids[name]; ok {
		return id, nil
	}
	id := ID(len(b.names))
	b.ids[name] = id
	b.names = append(b.names, name)
	b.fwd = append(b.fwd, nil)
	b.fwdSeen = append(b.fwdSeen, nil)
	b.rev = append(b.rev, nil)
	b.revSeen = append(b.revSeen, nil)
	return id, nil
}

// AddDependency records that package `from` directly depends on
// package `to`. Both names are auto-registered if new (spec §6:
// "unknown names appearing only as dependencies are auto-registered").
// Self-loops are silently dropped; duplicate edges are silently
// collapsed, per spec §3.
func (b *Builder) AddDependency(from, to string) error {
	u, err := b.AddPackage(from)
	if err != nil {
		return err
	}
	v, err := b.AddPackage(to)
	if err != nil {
		return err
	}
	if u == v {
		return nil // self-loop drop
	}
	if b.fwdSeen[u] == nil {
		b.fwdSeen[u] = make(map[ID]struct{})
	}
	if _, dup := b.fwdSeen[u][v]; dup {
		return nil
	}
	b.fwdSeen[u][v] = struct{}{}
	b.fwd[u] = append(b.fwd[u], v)

	if b.revSeen[v] == nil {
		b.revSeen[v] = make(map[ID]struct{})
	}
	b.revSeen[v][u] = struct{}{}
	b.rev[v] = append(b.rev[v], u)

	b.arcCount++
	return nil
}

// Freeze materializes the accumulated packages and edges into an
// immutable CSR Graph. The Builder must not be used again afterward.
// Complexity: O(N + E).
func (b *Builder) Freeze() (*Graph, error) {
	if b.frozen {
		return nil, ErrAlreadyFrozen
	}
	b.frozen = true

	n := len(b.names)
	g := &Graph{
		names:      make([]string, n),
		ids:        make(map[string]ID, n),
		forwardOff: make([]int32, n+1),
		reverseOff: make([]int32, n+1),
		arcCount:   b.arcCount,
	}
	copy(g.names, b.names)
	for name, id := range b.ids {
		g.ids[name] = id
	}

	for u := 0; u < n; u++ {
		g.forwardOff[u+1] = g.forwardOff[u] + int32(len(b.fwd[u]))
	}
	g.forwardTgt = make([]int32, g.forwardOff[n])
	for u := 0; u < n; u++ {
		copy(g.forwardTgt[g.forwardOff[u]:], b.fwd[u])
	}

	for u := 0; u < n; u++ {
		g.reverseOff[u+1] = g.reverseOff[u] + int32(len(b.rev[u]))
	}
	g.reverseTgt = make([]int32, g.reverseOff[n])
	for u := 0; u < n; u++ {
		copy(g.reverseTgt[g.reverseOff[u]:], b.rev[u])
	}

	return g, nil
}
