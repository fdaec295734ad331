package analysis

import "github.com/ntamas/netctrl/graph"

// runDrivers implements ModeDrivers: list the driver set's vertex
// indices and (when set) names.
func (o *Orchestrator) runDrivers(g *graph.Graph, model Model) (Result, error) {
	var drivers []int
	switch model {
	case Liu:
		r, err := o.calculateLiu(g)
		if err != nil {
			return Result{}, err
		}
		drivers = r.drivers
	case Switchboard:
		r, err := o.calculateSBD(g)
		if err != nil {
			return Result{}, err
		}
		drivers = r.drivers
	}
	return Result{
		Mode:    ModeDrivers,
		Drivers: &DriversResult{Drivers: driverEntries(g, drivers)},
	}, nil
}
