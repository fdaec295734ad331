package analysis

import (
	"github.com/ntamas/netctrl/ctrlpath"
	"github.com/ntamas/netctrl/graph"
)

// runControlPaths implements ModeControlPaths: list the textual form of
// every control path the chosen solver produced, in solver order.
func (o *Orchestrator) runControlPaths(g *graph.Graph, model Model) (Result, error) {
	var paths []*ctrlpath.Path
	switch model {
	case Liu:
		r, err := o.calculateLiu(g)
		if err != nil {
			return Result{}, err
		}
		paths = r.paths
	case Switchboard:
		r, err := o.calculateSBD(g)
		if err != nil {
			return Result{}, err
		}
		paths = r.paths
	}
	lines := make([]string, len(paths))
	for i, p := range paths {
		lines[i] = p.String()
	}
	return Result{
		Mode:         ModeControlPaths,
		ControlPaths: &ControlPathsResult{Lines: lines},
	}, nil
}
