package sbd

import "github.com/ntamas/netctrl/graph"

// EdgeClass tags the role a graph edge plays in the switchboard driver
// count: distinguished (removing it would let the solver drop a driver),
// redundant (no effect), or critical (removing it forces an additional
// driver).
type EdgeClass int

const (
	// Distinguished edges, if removed, decrease the driver count.
	Distinguished EdgeClass = iota
	// Redundant edges, if removed, never change the driver count.
	Redundant
	// Critical edges, if removed, force an additional driver.
	Critical
)

// String renders the class name used by the annotated-graph output mode.
func (c EdgeClass) String() string {
	switch c {
	case Distinguished:
		return "distinguished"
	case Redundant:
		return "redundant"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// ClassifyEdges runs the degree-difference edge classifier over the
// attached graph, returning one EdgeClass per entry of g.EdgeList(), in
// that order. It only reads degree and component structure — it does not
// require Calculate to have run, since the classification is a pure
// function of G's degree-difference vector, independent of any one walk
// packing.
//
// This implementation is this module's literal reading of an
// underspecified scoring rule; see DESIGN.md for the exact interpretation
// chosen for each bullet and why.
func (s *Solver) ClassifyEdges() ([]EdgeClass, error) {
	if s.g == nil {
		return nil, ErrNoGraph
	}

	n := s.g.VCount()
	edgeList := s.g.EdgeList()
	classes := make([]EdgeClass, len(edgeList))
	if n == 0 {
		return classes, nil
	}

	d := make([]int, n)
	for v := 0; v < n; v++ {
		d[v] = s.g.Degree(v, graph.In) - s.g.Degree(v, graph.Out)
	}

	for i, uv := range edgeList {
		u, v := uv[0], uv[1]
		score := 0

		if d[u] == -1 {
			score--
		}
		if d[v] == 0 {
			score++
		}
		if d[u] == 0 && d[v] == 0 && nonTrivialBalancedComponent(s.g, d, u, v) {
			score--
		}
		if d[v] == 1 && nonTrivialBalancedComponent(s.g, d, v, u) {
			score++
		}
		if d[u] == -1 && nonTrivialBalancedComponent(s.g, d, u, v) {
			score--
		}

		switch {
		case score < 0:
			classes[i] = Distinguished
		case score > 0:
			classes[i] = Critical
		default:
			classes[i] = Redundant
		}
	}

	return classes, nil
}

// nonTrivialBalancedComponent reports whether origin (treated as
// balanced regardless of its own real d value, to support the
// hypothetical-removal checks) reaches at least one other genuinely
// balanced vertex (d == 0) via a walk that never passes through exclude.
func nonTrivialBalancedComponent(g *graph.Graph, d []int, origin, exclude int) bool {
	visited := map[int]bool{origin: true, exclude: true}
	queue := []int{origin}
	reached := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(v, graph.All) {
			if visited[w] || d[w] != 0 {
				continue
			}
			visited[w] = true
			reached++
			queue = append(queue, w)
		}
	}
	return reached >= 1
}
