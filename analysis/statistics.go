package analysis

import (
	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/liu"
	"github.com/ntamas/netctrl/sbd"
)

// runStatistics implements ModeStatistics: totals and fractions of
// drivers and each edge class, spec's §6 two-row table. Liu never
// produces Distinguished edges; Switchboard never produces Ordinary
// ones, so whichever the model doesn't produce is reported as zero.
func (o *Orchestrator) runStatistics(g *graph.Graph, model Model) (Result, error) {
	var numDrivers int
	var numDistinguished, numRedundant, numOrdinary, numCritical int

	switch model {
	case Liu:
		r, err := o.calculateLiu(g)
		if err != nil {
			return Result{}, err
		}
		numDrivers = len(r.drivers)
		for _, c := range r.classes {
			switch c {
			case liu.Redundant:
				numRedundant++
			case liu.Ordinary:
				numOrdinary++
			case liu.Critical:
				numCritical++
			}
		}
	case Switchboard:
		r, err := o.calculateSBD(g)
		if err != nil {
			return Result{}, err
		}
		numDrivers = len(r.drivers)
		for _, c := range r.classes {
			switch c {
			case sbd.Distinguished:
				numDistinguished++
			case sbd.Redundant:
				numRedundant++
			case sbd.Critical:
				numCritical++
			}
		}
	}

	n := g.VCount()
	m := g.ECount()
	var fracDrivers, fracDistinguished, fracRedundant, fracOrdinary, fracCritical float64
	if n > 0 {
		fracDrivers = float64(numDrivers) / float64(n)
	}
	if m > 0 {
		fracDistinguished = float64(numDistinguished) / float64(m)
		fracRedundant = float64(numRedundant) / float64(m)
		fracOrdinary = float64(numOrdinary) / float64(m)
		fracCritical = float64(numCritical) / float64(m)
	}

	return Result{
		Mode: ModeStatistics,
		Statistics: &StatisticsResult{
			NumDrivers:        numDrivers,
			NumDistinguished:  numDistinguished,
			NumRedundant:      numRedundant,
			NumOrdinary:       numOrdinary,
			NumCritical:       numCritical,
			FracDrivers:       fracDrivers,
			FracDistinguished: fracDistinguished,
			FracRedundant:     fracRedundant,
			FracOrdinary:      fracOrdinary,
			FracCritical:      fracCritical,
		},
	}, nil
}
