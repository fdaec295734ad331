package nullmodel

import (
	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/liu"
	"github.com/ntamas/netctrl/sbd"
)

// Solver is the minimal contract the null-model driver needs from a
// controllability solver: a graph can be attached, a result can be
// (re)computed, the resulting controllability fraction can be read back,
// and a stateless duplicate attached to the same graph can be produced.
// liu.Solver and sbd.Solver both provide SetGraph and Calculate directly;
// neither Clone matches (each returns its own concrete type), and
// Controllability differs in signature between the two (sbd.Solver takes
// a Measure), so each is wrapped by a thin adapter below rather than
// changing either solver's public contract for this one caller.
type Solver interface {
	SetGraph(g *graph.Graph)
	Calculate() error
	Controllability() (float64, error)
	Clone() Solver
}

// LiuAdapter adapts *liu.Solver to Solver; its Controllability signature
// already matches, so the adapter only needs to re-wrap Clone's return
// type.
type LiuAdapter struct {
	*liu.Solver
}

// NewLiuAdapter wraps s for use as a null-model Solver.
func NewLiuAdapter(s *liu.Solver) *LiuAdapter {
	return &LiuAdapter{Solver: s}
}

// Clone returns a LiuAdapter wrapping a stateless clone of the underlying
// liu.Solver, attached to the same graph.
func (a *LiuAdapter) Clone() Solver {
	return &LiuAdapter{Solver: a.Solver.Clone()}
}

// SBDAdapter adapts *sbd.Solver to Solver, pinning the controllability
// measure (node-based or edge-based) a given null-model run reports.
type SBDAdapter struct {
	*sbd.Solver
	Measure sbd.Measure
}

// NewSBDAdapter wraps s for use as a null-model Solver, reporting
// controllability under the given measure.
func NewSBDAdapter(s *sbd.Solver, measure sbd.Measure) *SBDAdapter {
	return &SBDAdapter{Solver: s, Measure: measure}
}

// Controllability reports the fraction under the adapter's pinned
// Measure.
func (a *SBDAdapter) Controllability() (float64, error) {
	return a.Solver.Controllability(a.Measure)
}

// Clone returns an SBDAdapter wrapping a stateless clone of the
// underlying sbd.Solver, attached to the same graph, preserving the
// pinned Measure.
func (a *SBDAdapter) Clone() Solver {
	return &SBDAdapter{Solver: a.Solver.Clone(), Measure: a.Measure}
}
