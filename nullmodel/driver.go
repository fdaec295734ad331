// Package nullmodel repeats a controllability solver across random-graph
// ensembles for significance testing (spec's §4.G): Erdos-Renyi G(n, m),
// the configuration model (preserving the joint in/out-degree sequence),
// and a shuffled-configuration variant (preserving only the marginals).
//
// Grounded on tsp/solve.go's dispatcher shape: one construction plus one
// metric computed per trial, averaged across trials, rather than any
// bespoke statistics machinery.
package nullmodel

import (
	"math/rand"

	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/internal/xlog"
)

// DefaultTrials is the trial count spec's §4.G names for each of the
// three ensembles.
const DefaultTrials = 100

// Result holds the observed controllability alongside the mean
// controllability of each of the three null-model ensembles, ready to
// render as spec's significance output (§6): "Observed", "ER",
// "Configuration", "Configuration_no_joint".
type Result struct {
	Observed             float64
	ErdosRenyiMean       float64
	ConfigurationMean    float64
	ConfigurationNoJoint float64
}

// Options configures a Run.
type Options struct {
	trials int
	rng    *rand.Rand
	logger *xlog.Logger
}

// Option configures a null-model Run via functional arguments, mirroring
// bfs.Option / dfs.Option / builder.BuilderOption.
type Option func(*Options)

func defaultOptions() Options {
	return Options{trials: DefaultTrials, rng: rand.New(rand.NewSource(1)), logger: xlog.Discard()}
}

// WithTrials overrides the per-ensemble trial count (default
// DefaultTrials).
func WithTrials(trials int) Option {
	return func(o *Options) { o.trials = trials }
}

// WithRNG supplies the random source driving every generated graph. The
// same rng instance is shared and advanced across all three ensembles
// and all trials within each, so a Run is reproducible given a
// deterministically-seeded rng.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithLogger attaches a logger for phase/detail messages (§7: "testing
// null models"). Only the null-model driver and the analysis
// orchestrator log; solvers stay silent.
func WithLogger(l *xlog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// Run attaches observed to a clone of s, computes the observed
// controllability, then generates Options.trials graphs from each of the
// three null-model ensembles, recomputing controllability on a fresh
// solver clone per trial and averaging.
//
// s must already be configured the way the caller wants every clone
// configured (e.g. an SBDAdapter pinned to the desired Measure); Run only
// ever calls s.Clone(), never mutates s itself.
func Run(observed *graph.Graph, s Solver, opts ...Option) (Result, error) {
	if observed == nil {
		return Result{}, ErrNoGraph
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.trials <= 0 {
		return Result{}, ErrInvalidTrials
	}

	cfg.logger.Phasef("testing null models: observed graph")
	observedVal, err := evaluate(s, observed)
	if err != nil {
		return Result{}, err
	}

	n := observed.VCount()
	m := observed.ECount()
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for v := 0; v < n; v++ {
		outDeg[v] = observed.Degree(v, graph.Out)
		inDeg[v] = observed.Degree(v, graph.In)
	}

	cfg.logger.Phasef("testing null models: erdos-renyi G(%d, %d)", n, m)
	erMean, err := runTrials(s, cfg, func() (*graph.Graph, error) {
		return graph.ErdosRenyiGNM(n, m, cfg.rng)
	})
	if err != nil {
		return Result{}, err
	}

	cfg.logger.Phasef("testing null models: configuration model")
	cfgMean, err := runTrials(s, cfg, func() (*graph.Graph, error) {
		return graph.ConfigurationModel(outDeg, inDeg, cfg.rng)
	})
	if err != nil {
		return Result{}, err
	}

	cfg.logger.Phasef("testing null models: configuration model (shuffled, no joint)")
	cfgNoJointMean, err := runTrials(s, cfg, func() (*graph.Graph, error) {
		return graph.ConfigurationModelShuffled(outDeg, inDeg, cfg.rng)
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Observed:             observedVal,
		ErdosRenyiMean:       erMean,
		ConfigurationMean:    cfgMean,
		ConfigurationNoJoint: cfgNoJointMean,
	}, nil
}

// runTrials runs cfg.trials independent trials of gen, each on a fresh
// clone of s, and returns the mean controllability. A generation or
// solver failure in any single trial invalidates the whole significance
// run (§7: "there is no partial-success reporting").
func runTrials(s Solver, cfg Options, gen func() (*graph.Graph, error)) (float64, error) {
	var sum float64
	for trial := 0; trial < cfg.trials; trial++ {
		g, err := gen()
		if err != nil {
			return 0, err
		}
		v, err := evaluate(s, g)
		if err != nil {
			return 0, err
		}
		sum += v
		cfg.logger.Detailf("trial %d/%d: controllability=%f", trial+1, cfg.trials, v)
	}
	return sum / float64(cfg.trials), nil
}

// evaluate clones s, attaches g, runs Calculate, and returns the
// resulting controllability fraction.
func evaluate(s Solver, g *graph.Graph) (float64, error) {
	clone := s.Clone()
	clone.SetGraph(g)
	if err := clone.Calculate(); err != nil {
		return 0, err
	}
	return clone.Controllability()
}
