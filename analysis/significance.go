package analysis

import (
	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/liu"
	"github.com/ntamas/netctrl/nullmodel"
	"github.com/ntamas/netctrl/sbd"
)

// runSignificance implements ModeSignificance: the observed
// controllability plus the three null-model ensemble means (§4.G), via
// nullmodel.Run.
func (o *Orchestrator) runSignificance(g *graph.Graph, model Model) (Result, error) {
	var solver nullmodel.Solver
	switch model {
	case Liu:
		solver = nullmodel.NewLiuAdapter(liu.New(nil))
	case Switchboard:
		solver = nullmodel.NewSBDAdapter(sbd.New(nil), o.sbdMeasure)
	}

	res, err := nullmodel.Run(g, solver,
		nullmodel.WithTrials(o.trials),
		nullmodel.WithLogger(o.logger),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Mode: ModeSignificance, Significance: &res}, nil
}
