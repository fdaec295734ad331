// Package sbd implements the switchboard (SBD) structural-controllability
// solver: it identifies drivers from per-vertex degree imbalance and
// packs the graph's edges into open and closed walks. It also exposes a
// degree-difference edge classifier that reads the graph's in/out degrees
// directly, independent of any walk packing (no matching involved, unlike
// liu).
package sbd

import (
	"github.com/ntamas/netctrl/ctrlpath"
	"github.com/ntamas/netctrl/graph"
)

// Measure selects which controllability fraction Controllability reports.
type Measure int

const (
	// NodeMeasure reports |drivers| / |V|.
	NodeMeasure Measure = iota
	// EdgeMeasure reports (# open walks + # balanced components) / |E|.
	EdgeMeasure
)

// Solver computes a driver set and walk-packed control-path
// decomposition for a directed graph under the switchboard model.
type Solver struct {
	g *graph.Graph

	calculated         bool
	drivers            []int
	paths              []*ctrlpath.Path
	balancedComponents int
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
	s.paths = nil
	s.balancedComponents = 0
}

// Clone returns a new, stateless Solver attached to the same graph.
func (s *Solver) Clone() *Solver {
	return &Solver{g: s.g}
}

// Drivers returns the driver set computed by the last Calculate call.
func (s *Solver) Drivers() []int {
	return s.drivers
}

// Paths returns the control paths (open and closed walks) computed by
// the last Calculate call.
func (s *Solver) Paths() []*ctrlpath.Path {
	return s.paths
}

// Controllability returns the requested controllability fraction, or an
// error if Calculate has not run.
func (s *Solver) Controllability(measure Measure) (float64, error) {
	if s.g == nil {
		return 0, ErrNoGraph
	}
	if !s.calculated {
		return 0, ErrNotCalculated
	}
	switch measure {
	case NodeMeasure:
		n := s.g.VCount()
		if n == 0 {
			return 0, nil
		}
		return float64(len(s.drivers)) / float64(n), nil
	case EdgeMeasure:
		m := s.g.ECount()
		if m == 0 {
			return 0, nil
		}
		openWalks := 0
		for _, p := range s.paths {
			if p.Kind == ctrlpath.OpenWalk {
				openWalks++
			}
		}
		return float64(openWalks+s.balancedComponents) / float64(m), nil
	default:
		return 0, nil
	}
}

type outEdge struct {
	idx    int
	target int
}

// Calculate computes the driver set and walk packing for the attached
// graph, replacing any previous result.
func (s *Solver) Calculate() error {
	if s.g == nil {
		return ErrNoGraph
	}
	n := s.g.VCount()
	s.invalidate()

	if n == 0 {
		s.drivers = []int{}
		s.paths = nil
		s.calculated = true
		return nil
	}

	outRes := make([]int, n)
	inRes := make([]int, n)
	for v := 0; v < n; v++ {
		outRes[v] = s.g.Degree(v, graph.Out)
		inRes[v] = s.g.Degree(v, graph.In)
	}
	// Phase 1 packs the vertices that started divergent, not whichever
	// are still divergent mid-drain, so keep an untouched copy.
	originalOut := append([]int(nil), outRes...)
	originalIn := append([]int(nil), inRes...)

	outEdges := make([][]outEdge, n)
	for i, uv := range s.g.EdgeList() {
		outEdges[uv[0]] = append(outEdges[uv[0]], outEdge{idx: i, target: uv[1]})
	}

	var drivers []int
	for v := 0; v < n; v++ {
		if outRes[v] > inRes[v] {
			drivers = append(drivers, v)
		}
	}

	weak, numComponents := s.g.WeakComponents()
	balancedComponents := 0
	for c := 0; c < numComponents; c++ {
		allBalanced := true
		lowest := -1
		for v := 0; v < n; v++ {
			if weak[v] != c {
				continue
			}
			if lowest == -1 {
				lowest = v
			}
			if !(outRes[v] == inRes[v] && outRes[v] > 0) {
				allBalanced = false
				break
			}
		}
		if allBalanced && lowest != -1 {
			drivers = append(drivers, lowest)
			balancedComponents++
		}
	}

	edgeUsed := make([]bool, len(s.g.EdgeList()))
	walkFrom := func(v int) *ctrlpath.Path {
		cur := v
		seq := []int{v}
		started := false
		for {
			found := false
			for _, e := range outEdges[cur] {
				if edgeUsed[e.idx] {
					continue
				}
				edgeUsed[e.idx] = true
				outRes[cur]--
				inRes[e.target]--
				seq = append(seq, e.target)
				cur = e.target
				found = true
				started = true
				break
			}
			if !found {
				break
			}
		}
		if !started {
			return nil
		}
		if len(seq) > 1 && seq[0] == seq[len(seq)-1] {
			return ctrlpath.NewClosedWalk(seq[:len(seq)-1])
		}
		return ctrlpath.NewOpenWalk(seq)
	}

	var openWalks, closedWalks []*ctrlpath.Path

	// Phase 1: divergent vertices drain their excess out-degree first.
	for v := 0; v < n; v++ {
		if !(originalOut[v] > originalIn[v]) {
			continue
		}
		for outRes[v] > inRes[v] {
			p := walkFrom(v)
			if p == nil {
				break
			}
			if p.Kind == ctrlpath.ClosedWalk {
				closedWalks = append(closedWalks, p)
			} else {
				openWalks = append(openWalks, p)
			}
		}
	}

	// Phase 2: remaining unused out-edges, vertex index order.
	for v := 0; v < n; v++ {
		for outRes[v] > 0 {
			p := walkFrom(v)
			if p == nil {
				break
			}
			if p.Kind == ctrlpath.ClosedWalk {
				closedWalks = append(closedWalks, p)
			} else {
				openWalks = append(openWalks, p)
			}
		}
	}

	mergeClosedWalks(&openWalks, &closedWalks)

	s.drivers = drivers
	s.paths = append(openWalks, closedWalks...)
	s.balancedComponents = balancedComponents
	s.calculated = true
	return nil
}

// mergeClosedWalks splices every closed walk into an open walk sharing a
// vertex with it, falling back to another closed walk that has already
// been through this same process, in emission order (see DESIGN.md's
// resolution of the merge-order open question). A closed walk that
// fails to merge into anything is promoted into the survivor set
// immediately, not just once the whole pass is done — so a later closed
// walk in the same pass can still splice into it. Because a later splice
// can give an open walk a vertex that an earlier survivor shares, the
// pass is repeated over the survivors until one full pass merges
// nothing.
func mergeClosedWalks(openWalks, closedWalks *[]*ctrlpath.Path) {
	pending := *closedWalks
	for {
		var survivors []*ctrlpath.Path
		progress := false
		for _, c := range pending {
			merged := false
			for _, w := range *openWalks {
				if splice(w, c) {
					merged = true
					break
				}
			}
			if !merged {
				for _, w := range survivors {
					if splice(w, c) {
						merged = true
						break
					}
				}
			}
			if merged {
				progress = true
			} else {
				survivors = append(survivors, c)
			}
		}
		pending = survivors
		if !progress {
			break
		}
	}
	*closedWalks = pending
}

// splice inserts closed walk c into w at their first shared vertex
// (scanning w in order, then c in order, for determinism), returning
// whether a shared vertex was found. c's own closing edge (last
// vertex -> first vertex) is implicit in its Vertices slice, so the
// splice re-emits the shared vertex after c's body to represent that
// closing edge explicitly in the merged trail.
func splice(w, c *ctrlpath.Path) bool {
	for j, wv := range w.Vertices {
		for i, cv := range c.Vertices {
			if wv != cv {
				continue
			}
			rotated := make([]int, 0, len(c.Vertices))
			rotated = append(rotated, c.Vertices[i:]...)
			rotated = append(rotated, c.Vertices[:i]...)

			merged := make([]int, 0, len(w.Vertices)+len(rotated)+1)
			merged = append(merged, w.Vertices[:j+1]...)
			merged = append(merged, rotated[1:]...)
			merged = append(merged, wv)
			merged = append(merged, w.Vertices[j+1:]...)
			w.Vertices = merged
			return true
		}
	}
	return false
}
