// Package liu implements the Liu et al. structural-controllability
// solver: it reduces driver-node discovery to maximum bipartite matching
// on a derived bipartite graph, then reconstructs control paths (stems
// and buds) from the matching. It also implements the Liu edge
// classifier (a Regin-1994-style redundant/ordinary/critical analysis),
// since the classifier reads the solver's matching directly.
//
// Only the untargeted problem (steer every vertex, not a chosen subset)
// is implemented. The targeted variant is explicitly left out: the
// design this was distilled from left it partly implemented with
// debugging scaffolding and an acknowledged unreliable fallthrough for
// "a stem that does not include a driver node," and is not a settled
// enough algorithm to reproduce faithfully. See DESIGN.md.
package liu

import (
	"github.com/ntamas/netctrl/ctrlpath"
	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/matching"
)

// Solver computes a driver set and control-path decomposition for a
// directed graph under the Liu structural-controllability model.
//
// A Solver is single-threaded: Calculate replaces any previous result,
// and the matching and control paths it exposes are borrowed views owned
// by the Solver for as long as no further Calculate or SetGraph call is
// made.
type Solver struct {
	g *graph.Graph

	calculated bool
	drivers    []int
	m          *matching.Matching
	paths      []*ctrlpath.Path
}

// New returns a Solver attached to g. Passing a nil g is legal; Calculate
// will then fail with ErrNoGraph until SetGraph attaches one.
func New(g *graph.Graph) *Solver {
	return &Solver{g: g}
}

// SetGraph attaches g to the solver, invalidating any previous result.
func (s *Solver) SetGraph(g *graph.Graph) {
	s.g = g
	s.invalidate()
}

func (s *Solver) invalidate() {
	s.calculated = false
	s.drivers = nil
	s.m = nil
	s.paths = nil
}

// Clone returns a new, stateless Solver attached to the same graph;
// results are not copied, matching spec's "clone() returns a stateless
// duplicate attached to the same graph" contract.
func (s *Solver) Clone() *Solver {
	return &Solver{g: s.g}
}

// Drivers returns the driver set computed by the last Calculate call, or
// nil if Calculate has not run.
func (s *Solver) Drivers() []int {
	return s.drivers
}

// Paths returns the control paths computed by the last Calculate call,
// borrowed from the solver's internal storage; callers that need them to
// outlive a later Calculate/SetGraph must copy them.
func (s *Solver) Paths() []*ctrlpath.Path {
	return s.paths
}

// Matching returns the bipartite matching computed by the last Calculate
// call, or nil if Calculate has not run.
func (s *Solver) Matching() *matching.Matching {
	return s.m
}

// Controllability returns |drivers| / |V|, the node-based controllability
// measure, or an error if Calculate has not run.
func (s *Solver) Controllability() (float64, error) {
	if s.g == nil {
		return 0, ErrNoGraph
	}
	if !s.calculated {
		return 0, ErrNotCalculated
	}
	n := s.g.VCount()
	if n == 0 {
		return 0, nil
	}
	return float64(len(s.drivers)) / float64(n), nil
}

// Calculate computes the driver set, bipartite matching, and control-path
// decomposition for the attached graph, replacing any previous result.
func (s *Solver) Calculate() error {
	if s.g == nil {
		return ErrNoGraph
	}
	n := s.g.VCount()
	s.invalidate()

	if n == 0 {
		s.m = matching.New(0)
		s.drivers = []int{}
		s.paths = nil
		s.calculated = true
		return nil
	}

	leftAdj := buildLeftAdjacency(s.g, n)
	matchRight, _ := graph.MaxBipartiteMatching(n, n, leftAdj)

	m := matching.New(n)
	for v, u := range matchRight {
		if u != -1 {
			m.SetMatch(u, v)
		}
	}

	var originalDrivers []int
	for v, u := range matchRight {
		if u == -1 {
			originalDrivers = append(originalDrivers, v)
		}
	}

	used := make([]bool, n)
	stemOf := make(map[int]int, n)
	var paths []*ctrlpath.Path
	var drivers []int

	if len(originalDrivers) == 0 {
		// Perfect matching on the bipartite graph: the construction
		// guarantees no stems, and the forced fallback driver does not
		// anchor a real stem (see DESIGN.md's open-question resolution).
		drivers = []int{0}
	} else {
		drivers = originalDrivers
		for _, d := range originalDrivers {
			seq := []int{d}
			used[d] = true
			cur := d
			for {
				outs := m.MatchOut(cur)
				if len(outs) == 0 {
					break
				}
				next := outs[0]
				used[next] = true
				seq = append(seq, next)
				cur = next
			}
			idx := len(paths)
			paths = append(paths, ctrlpath.NewStem(seq))
			for _, v := range seq {
				stemOf[v] = idx
			}
		}
	}

	// Buds: every remaining matched-but-unused vertex lies on exactly one
	// simple cycle of the matching's functional graph.
	for u := 0; u < n; u++ {
		if used[u] || !m.IsMatching(u) {
			continue
		}
		seq := []int{u}
		used[u] = true
		cur := u
		for {
			outs := m.MatchOut(cur)
			if len(outs) == 0 {
				break
			}
			next := outs[0]
			seq = append(seq, next)
			if used[next] {
				break
			}
			used[next] = true
			cur = next
		}
		if len(seq) > 1 && seq[0] == seq[len(seq)-1] {
			seq = seq[:len(seq)-1]
		}
		bud := ctrlpath.NewBud(seq)
		if idx, ok := findStemAttachment(s.g, seq, stemOf); ok {
			bud.AttachToStem(idx)
		}
		paths = append(paths, bud)
	}

	s.m = m
	s.drivers = drivers
	s.paths = paths
	s.calculated = true
	return nil
}

// buildLeftAdjacency returns leftAdj[u] = the right-side vertices
// reachable from left vertex u in B(G), in edge-index order (so the
// resulting matching is deterministic, per spec's reproducibility rule).
func buildLeftAdjacency(g *graph.Graph, n int) [][]int {
	leftAdj := make([][]int, n)
	for _, uv := range g.EdgeList() {
		u, v := uv[0], uv[1]
		leftAdj[u] = append(leftAdj[u], v)
	}
	return leftAdj
}

// findStemAttachment scans the in-neighbors (in G) of every bud vertex
// for one that belongs to a stem, returning the first stem index found,
// in bud-vertex then in-neighbor-edge order (deterministic).
func findStemAttachment(g *graph.Graph, budVertices []int, stemOf map[int]int) (int, bool) {
	for _, v := range budVertices {
		for _, w := range g.Neighbors(v, graph.In) {
			if idx, ok := stemOf[w]; ok {
				return idx, true
			}
		}
	}
	return 0, false
}
