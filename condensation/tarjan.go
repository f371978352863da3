package condensation

import "github.com/oliviagraph/olivia/graph"

// frame is one level of the explicit DFS stack that stands in for
// native Go call-stack recursion, so traversal depth is bounded only
// by heap size rather than goroutine stack size.
type frame struct {
	node      int32
	childIdx  int32 // index into g.ForwardNeighbors(node) to resume from
}

// Build runs an iterative Tarjan's algorithm over g and derives the
// full condensation DAG: SCC membership, condensation adjacency (both
// directions, deduplicated), intra-SCC arc counts, and the implicit
// reverse-topological order described in the package doc.
//
// Complexity: O(V + E) time, O(V) additional memory for the explicit
// stack and bookkeeping slices.
func Build(g *graph.Graph) (*Condensation, error) {
	n := g.Size()

	indices := make([]int32, n)
	lowlink := make([]int32, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = -1
	}
	nodeSCC := make([]int32, n)
	for i := range nodeSCC {
		nodeSCC[i] = -1
	}

	var tstack []int32 // Tarjan's "S" stack of onStack nodes
	var members [][]int32
	var counter int32

	for start := int32(0); start < int32(n); start++ {
		if indices[start] != -1 {
			continue
		}
		runTarjanFrom(g, start, indices, lowlink, onStack, &tstack, &members, nodeSCC, &counter)
	}

	for id, scc := range nodeSCC {
		if scc == -1 {
			return nil, errUnassigned(int32(id))
		}
	}

	c := &Condensation{
		nodeSCC:   nodeSCC,
		members:   members,
		intraArcs: make([]int64, len(members)),
		crossArcs: make([]int64, len(members)),
	}
	c.buildCondensationAdjacency(g)

	return c, nil
}

// runTarjanFrom performs one DFS tree of Tarjan's algorithm rooted at
// start, using an explicit stack of frames instead of recursion.
func runTarjanFrom(
	g *graph.Graph,
	start int32,
	indices, lowlink []int32,
	onStack []bool,
	tstack *[]int32,
	members *[][]int32,
	nodeSCC []int32,
	counter *int32,
) {
	stack := []frame{{node: start}}
	indices[start] = *counter
	lowlink[start] = *counter
	*counter++
	*tstack = append(*tstack, start)
	onStack[start] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.node
		neighbors := g.ForwardNeighbors(v)

		if int(top.childIdx) < len(neighbors) {
			w := neighbors[top.childIdx]
			top.childIdx++

			switch {
			case indices[w] == -1:
				indices[w] = *counter
				lowlink[w] = *counter
				*counter++
				onStack[w] = true
				*tstack = append(*tstack, w)
				stack = append(stack, frame{node: w})
			case onStack[w]:
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
			continue
		}

		// All of v's neighbors explored; pop v's frame.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			if lowlink[v] < lowlink[parent] {
				lowlink[parent] = lowlink[v]
			}
		}

		if lowlink[v] == indices[v] {
			sccID := int32(len(*members))
			var comp []int32
			for {
				w := (*tstack)[len(*tstack)-1]
				*tstack = (*tstack)[:len(*tstack)-1]
				onStack[w] = false
				nodeSCC[w] = sccID
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			*members = append(*members, comp)
		}
	}
}

// buildCondensationAdjacency derives condOut/condIn/intraArcs/crossArcs
// from a single pass over every arc of the original graph, deduplicating
// condensation arcs with a first-seen slice+set pattern so the result
// is deterministic regardless of map iteration order. crossArcs counts
// every cross-SCC arc, not just the distinct successor SCCs they land
// in, since that total (not the dedup count) is what the impact metric
// needs.
func (c *Condensation) buildCondensationAdjacency(g *graph.Graph) {
	numSCC := len(c.members)
	c.condOut = make([][]SCCID, numSCC)
	c.condIn = make([][]SCCID, numSCC)
	outSeen := make([]map[SCCID]struct{}, numSCC)
	inSeen := make([]map[SCCID]struct{}, numSCC)

	for u := int32(0); u < int32(g.Size()); u++ {
		su := c.nodeSCC[u]
		for _, v := range g.ForwardNeighbors(u) {
			sv := c.nodeSCC[v]
			if su == sv {
				c.intraArcs[su]++
				continue
			}
			c.crossArcs[su]++
			if outSeen[su] == nil {
				outSeen[su] = make(map[SCCID]struct{})
			}
			if _, dup := outSeen[su][sv]; !dup {
				outSeen[su][sv] = struct{}{}
				c.condOut[su] = append(c.condOut[su], sv)
			}
			if inSeen[sv] == nil {
				inSeen[sv] = make(map[SCCID]struct{})
			}
			if _, dup := inSeen[sv][su]; !dup {
				inSeen[sv][su] = struct{}{}
				c.condIn[sv] = append(c.condIn[sv], su)
			}
		}
	}
}
