package analysis

import (
	"github.com/ntamas/netctrl/ctrlpath"
	"github.com/ntamas/netctrl/graph"
)

// runGraph implements ModeGraph: annotate g in place with spec's §6
// attribute set and return it for the (out-of-scope) I/O layer to
// serialize.
//
//   - every vertex gets is_driver (bool).
//   - every edge gets edge_class (string), from the chosen classifier.
//   - every edge that lies on some control path additionally gets
//     path_type, path_indices (the path's position in the solver's path
//     list), and path_order (the edge's 0-based position within that
//     path).
func (o *Orchestrator) runGraph(g *graph.Graph, model Model) (Result, error) {
	n := g.VCount()
	isDriver := make([]bool, n)
	var paths []*ctrlpath.Path
	var classNames []string

	switch model {
	case Liu:
		r, err := o.calculateLiu(g)
		if err != nil {
			return Result{}, err
		}
		for _, v := range r.drivers {
			isDriver[v] = true
		}
		paths = r.paths
		classNames = make([]string, len(r.classes))
		for i, c := range r.classes {
			classNames[i] = c.String()
		}
	case Switchboard:
		r, err := o.calculateSBD(g)
		if err != nil {
			return Result{}, err
		}
		for _, v := range r.drivers {
			isDriver[v] = true
		}
		paths = r.paths
		classNames = make([]string, len(r.classes))
		for i, c := range r.classes {
			classNames[i] = c.String()
		}
	}

	for v := 0; v < n; v++ {
		if err := g.SetVertexAttr(v, "is_driver", isDriver[v]); err != nil {
			return Result{}, err
		}
	}
	for e, name := range classNames {
		if err := g.SetEdgeAttr(e, "edge_class", name); err != nil {
			return Result{}, err
		}
	}
	// Parallel edges: each path step takes the lowest-indexed u->v edge
	// not already annotated by an earlier step, so every copy a walk
	// traverses gets its own attributes.
	edgeList := g.EdgeList()
	onPath := make([]bool, len(edgeList))
	for pathIdx, p := range paths {
		for order, uv := range p.Edges() {
			e := -1
			for _, idx := range g.Incident(uv[0], graph.Out) {
				if edgeList[idx][1] == uv[1] && !onPath[idx] {
					e = idx
					break
				}
			}
			if e == -1 {
				continue
			}
			onPath[e] = true
			if err := g.SetEdgeAttr(e, "path_type", p.Kind.String()); err != nil {
				return Result{}, err
			}
			if err := g.SetEdgeAttr(e, "path_indices", pathIdx); err != nil {
				return Result{}, err
			}
			if err := g.SetEdgeAttr(e, "path_order", order); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{Mode: ModeGraph, Graph: &GraphResult{Graph: g}}, nil
}
