package analysis

import (
	"github.com/ntamas/netctrl/ctrlpath"
	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/internal/xlog"
	"github.com/ntamas/netctrl/liu"
	"github.com/ntamas/netctrl/nullmodel"
	"github.com/ntamas/netctrl/sbd"
)

// Orchestrator runs one model/mode combination against a graph. It is
// stateless across calls to Run; every call builds a fresh solver.
type Orchestrator struct {
	logger     *xlog.Logger
	sbdMeasure sbd.Measure
	trials     int
}

// Option configures an Orchestrator via functional arguments, mirroring
// bfs.Option / dfs.Option / builder.BuilderOption.
type Option func(*Orchestrator)

// WithLogger attaches a logger for the phase-level messages: Run logs
// "calculating", and ModeSignificance passes the logger on to
// nullmodel.Run, which logs "testing null models". No "loading" message
// is logged, since graph loading happens outside this package. The
// default is a discarding logger (silent, verbosity 0).
func WithLogger(l *xlog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithSBDMeasure selects which controllability fraction (node- or
// edge-based) ModeSignificance reports when Model is Switchboard.
// ModeStatistics does not use it: its driver fraction is always
// |drivers| / |V|. Default is sbd.NodeMeasure.
func WithSBDMeasure(m sbd.Measure) Option {
	return func(o *Orchestrator) { o.sbdMeasure = m }
}

// WithNullModelTrials overrides the per-ensemble trial count
// ModeSignificance passes to nullmodel.Run. Default is
// nullmodel.DefaultTrials.
func WithNullModelTrials(trials int) Option {
	return func(o *Orchestrator) { o.trials = trials }
}

// New returns an Orchestrator configured by opts.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:     xlog.Discard(),
		sbdMeasure: sbd.NodeMeasure,
		trials:     nullmodel.DefaultTrials,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run computes the requested model's result for g and dispatches to the
// output shape mode selects.
func (o *Orchestrator) Run(g *graph.Graph, model Model, mode Mode) (Result, error) {
	if g == nil {
		return Result{}, ErrNoGraph
	}
	if model != Liu && model != Switchboard {
		return Result{}, ErrUnknownModel
	}

	o.logger.Phasef("calculating: model=%s mode=%s", model, mode)

	switch mode {
	case ModeDrivers:
		return o.runDrivers(g, model)
	case ModeControlPaths:
		return o.runControlPaths(g, model)
	case ModeStatistics:
		return o.runStatistics(g, model)
	case ModeSignificance:
		return o.runSignificance(g, model)
	case ModeGraph:
		return o.runGraph(g, model)
	default:
		return Result{}, ErrUnknownMode
	}
}

// liuResult bundles the outputs a calculated liu.Solver exposes, so each
// mode handler can request exactly what it needs from one Calculate call.
type liuResult struct {
	drivers []int
	paths   []*ctrlpath.Path
	classes []liu.EdgeClass
}

// calculateLiu builds a liu.Solver over g, runs Calculate, detects and
// logs the forced single-driver fallback (spec's §9 open question), and
// returns its drivers, paths, and edge classification.
func (o *Orchestrator) calculateLiu(g *graph.Graph) (liuResult, error) {
	s := liu.New(g)
	if err := s.Calculate(); err != nil {
		return liuResult{}, err
	}
	drivers := s.Drivers()
	paths := s.Paths()
	if len(drivers) == 1 && drivers[0] == 0 && !hasStem(paths) && g.VCount() > 0 {
		o.logger.Phasef("forced zero-driver fallback: every vertex was matched, drivers={0}")
	}
	classes, err := s.ClassifyEdges()
	if err != nil {
		return liuResult{}, err
	}
	return liuResult{drivers: drivers, paths: paths, classes: classes}, nil
}

func hasStem(paths []*ctrlpath.Path) bool {
	for _, p := range paths {
		if p.Kind == ctrlpath.Stem {
			return true
		}
	}
	return false
}

// sbdResult bundles the outputs a calculated sbd.Solver exposes.
type sbdResult struct {
	drivers []int
	paths   []*ctrlpath.Path
	classes []sbd.EdgeClass
}

func (o *Orchestrator) calculateSBD(g *graph.Graph) (sbdResult, error) {
	s := sbd.New(g)
	if err := s.Calculate(); err != nil {
		return sbdResult{}, err
	}
	classes, err := s.ClassifyEdges()
	if err != nil {
		return sbdResult{}, err
	}
	return sbdResult{drivers: s.Drivers(), paths: s.Paths(), classes: classes}, nil
}

// driverEntries converts raw vertex indices into DriverEntry values,
// reading each vertex's optional name from g.
func driverEntries(g *graph.Graph, drivers []int) []DriverEntry {
	entries := make([]DriverEntry, len(drivers))
	for i, v := range drivers {
		entries[i] = DriverEntry{Index: v, Name: g.Name(v)}
	}
	return entries
}
