package liu

// EdgeClass tags the role a graph edge plays in the matching computed by
// Calculate, per the Liu edge classifier: redundant (removable without
// changing the driver set), ordinary (lies on an alternating cycle or on
// an alternating path from an unmatched vertex, so some equally-valid
// matching excludes it), or critical (every maximum matching uses it).
type EdgeClass int

const (
	// Redundant edges can be removed without changing the driver set.
	Redundant EdgeClass = iota
	// Ordinary edges belong to at least one alternating cycle, or are
	// reachable along an alternating path from an unmatched vertex, in
	// the bipartite graph derived from the matching.
	Ordinary
	// Critical edges are used by every maximum matching of B(G).
	Critical
)

// String renders the class name used by the annotated-graph output mode.
func (c EdgeClass) String() string {
	switch c {
	case Redundant:
		return "redundant"
	case Ordinary:
		return "ordinary"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

type bipArc struct {
	to   int
	pair [2]int
}

// ClassifyEdges runs the Regin-1994-style edge classifier over the
// matching produced by the last Calculate call, returning one EdgeClass
// per entry of g.EdgeList(), in that order. Parallel edges sharing the
// same (u, v) pair always receive the same class, except that critical
// promotion (step 6) only ever promotes the lowest-index edge of the
// pair: genuine duplicates of a matched edge stay redundant, since the
// matching only depends on one of them existing.
func (s *Solver) ClassifyEdges() ([]EdgeClass, error) {
	if s.g == nil {
		return nil, ErrNoGraph
	}
	if !s.calculated {
		return nil, ErrNotCalculated
	}

	n := s.g.VCount()
	edgeList := s.g.EdgeList()
	classes := make([]EdgeClass, len(edgeList))
	if n == 0 {
		return classes, nil
	}

	type pairInfo struct {
		matched bool
		edges   []int
	}
	pairs := make(map[[2]int]*pairInfo)
	var order [][2]int
	for i, uv := range edgeList {
		p := [2]int{uv[0], uv[1]}
		info, ok := pairs[p]
		if !ok {
			info = &pairInfo{matched: s.m.MatchIn(p[1]) == p[0]}
			pairs[p] = info
			order = append(order, p)
		}
		info.edges = append(info.edges, i)
	}

	// Oriented bipartite graph over 2n nodes: left u = u, right v = n+v.
	adj := make(map[int][]bipArc)
	rev := make(map[int][]bipArc)
	addArc := func(from, to int, pair [2]int) {
		adj[from] = append(adj[from], bipArc{to: to, pair: pair})
		rev[to] = append(rev[to], bipArc{to: from, pair: pair})
	}
	for _, p := range order {
		u, v := p[0], p[1]
		info := pairs[p]
		if info.matched {
			addArc(n+v, u, p) // matched edge oriented right -> left
		} else {
			addArc(u, n+v, p) // unmatched edge oriented left -> right
		}
	}

	touched := make(map[[2]int]bool)

	var seeds []int
	for v := 0; v < n; v++ {
		if s.m.MatchIn(v) == -1 {
			seeds = append(seeds, n+v)
		}
	}
	for u := 0; u < n; u++ {
		if !s.m.IsMatching(u) {
			seeds = append(seeds, u)
		}
	}

	bfsMark := func(graphAdj map[int][]bipArc) {
		visited := make(map[int]bool, 2*n)
		queue := append([]int(nil), seeds...)
		for _, seed := range seeds {
			visited[seed] = true
		}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, arc := range graphAdj[cur] {
				touched[arc.pair] = true
				if !visited[arc.to] {
					visited[arc.to] = true
					queue = append(queue, arc.to)
				}
			}
		}
	}
	bfsMark(adj)
	bfsMark(rev)

	for _, pair := range sccTouchedPairs(n, adj) {
		touched[pair] = true
	}

	for _, p := range order {
		class := Redundant
		if touched[p] {
			class = Ordinary
		}
		for _, idx := range pairs[p].edges {
			classes[idx] = class
		}
	}

	for _, p := range order {
		info := pairs[p]
		if !info.matched {
			continue
		}
		e := s.g.EID(p[0], p[1])
		if classes[e] == Redundant {
			classes[e] = Critical
		}
	}

	return classes, nil
}

// sccTouchedPairs returns every edge pair whose two bipartite endpoints
// lie in the same strongly-connected component of the oriented bipartite
// graph, via an iterative Tarjan pass (the same iterative-stack shape
// graph.StrongComponents uses, reimplemented here since this operates on
// an internal adjacency rather than a *graph.Graph).
func sccTouchedPairs(n int, adj map[int][]bipArc) [][2]int {
	size := 2 * n
	index := make([]int, size)
	lowlink := make([]int, size)
	onStack := make([]bool, size)
	visited := make([]bool, size)
	comp := make([]int, size)
	for i := range index {
		index[i] = -1
	}

	var stack []int
	var nextIndex, nextComp int

	type frame struct {
		v        int
		childPos int
	}

	for start := 0; start < size; start++ {
		if visited[start] {
			continue
		}
		var callStack []frame
		pushNode := func(v int) {
			visited[v] = true
			index[v] = nextIndex
			lowlink[v] = nextIndex
			nextIndex++
			stack = append(stack, v)
			onStack[v] = true
			callStack = append(callStack, frame{v: v, childPos: 0})
		}
		pushNode(start)

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.v
			arcs := adj[v]
			if top.childPos < len(arcs) {
				w := arcs[top.childPos].to
				top.childPos++
				if !visited[w] {
					pushNode(w)
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			if lowlink[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}
		}
	}

	var pairs [][2]int
	for from, arcs := range adj {
		for _, arc := range arcs {
			if comp[from] == comp[arc.to] {
				pairs = append(pairs, arc.pair)
			}
		}
	}
	return pairs
}
