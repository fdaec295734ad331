package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntamas/netctrl/analysis"
	"github.com/ntamas/netctrl/graph"
)

func mustGraph(t *testing.T, n int, pairs ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	if len(pairs) > 0 {
		_, err := g.AddEdges(pairs)
		require.NoError(t, err)
	}
	return g
}

func TestRunNilGraph(t *testing.T) {
	o := analysis.New()
	_, err := o.Run(nil, analysis.Liu, analysis.ModeDrivers)
	assert.ErrorIs(t, err, analysis.ErrNoGraph)
}

func TestRunUnknownModel(t *testing.T) {
	o := analysis.New()
	_, err := o.Run(mustGraph(t, 1), analysis.Model(99), analysis.ModeDrivers)
	assert.ErrorIs(t, err, analysis.ErrUnknownModel)
}

func TestRunDriversLiuDirectedPath(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	o := analysis.New()
	res, err := o.Run(g, analysis.Liu, analysis.ModeDrivers)
	require.NoError(t, err)
	require.NotNil(t, res.Drivers)
	require.Len(t, res.Drivers.Drivers, 1)
	assert.Equal(t, 0, res.Drivers.Drivers[0].Index)
}

func TestRunDriversSBDDirectedPath(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	o := analysis.New()
	res, err := o.Run(g, analysis.Switchboard, analysis.ModeDrivers)
	require.NoError(t, err)
	require.Len(t, res.Drivers.Drivers, 1)
	assert.Equal(t, 0, res.Drivers.Drivers[0].Index)
}

func TestRunDriversUsesVertexNames(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 1})
	require.NoError(t, g.SetName(0, "alpha"))
	o := analysis.New()
	res, err := o.Run(g, analysis.Liu, analysis.ModeDrivers)
	require.NoError(t, err)
	require.Len(t, res.Drivers.Drivers, 1)
	assert.Equal(t, "alpha", res.Drivers.Drivers[0].Name)
}

func TestRunControlPathsDirectedCycle(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	o := analysis.New()
	res, err := o.Run(g, analysis.Liu, analysis.ModeControlPaths)
	require.NoError(t, err)
	require.Len(t, res.ControlPaths.Lines, 1)
	assert.Contains(t, res.ControlPaths.Lines[0], "bud")
}

func TestRunStatisticsDirectedPathLiu(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	o := analysis.New()
	res, err := o.Run(g, analysis.Liu, analysis.ModeStatistics)
	require.NoError(t, err)
	stats := res.Statistics
	assert.Equal(t, 1, stats.NumDrivers)
	assert.Equal(t, 3, stats.NumCritical)
	assert.Equal(t, 0, stats.NumOrdinary)
	assert.Equal(t, 0, stats.NumRedundant)
	assert.Equal(t, 0, stats.NumDistinguished)
	assert.InDelta(t, 0.25, stats.FracDrivers, 1e-9)
	assert.InDelta(t, 1.0, stats.FracCritical, 1e-9)
}

func TestRunStatisticsSwitchboardNeverProducesOrdinary(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	o := analysis.New()
	res, err := o.Run(g, analysis.Switchboard, analysis.ModeStatistics)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Statistics.NumOrdinary)
}

func TestRunSignificanceEmptyGraphIsFullyDriven(t *testing.T) {
	g := mustGraph(t, 5)
	o := analysis.New(analysis.WithNullModelTrials(3))
	res, err := o.Run(g, analysis.Liu, analysis.ModeSignificance)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Significance.Observed, 1e-9)
}

func TestRunGraphAnnotatesDriversAndClasses(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	o := analysis.New()
	res, err := o.Run(g, analysis.Liu, analysis.ModeGraph)
	require.NoError(t, err)

	isDriver, ok := res.Graph.Graph.VertexAttr(0, "is_driver")
	require.True(t, ok)
	assert.Equal(t, true, isDriver)

	isDriver1, ok := res.Graph.Graph.VertexAttr(1, "is_driver")
	require.True(t, ok)
	assert.Equal(t, false, isDriver1)

	class, ok := res.Graph.Graph.EdgeAttr(0, "edge_class")
	require.True(t, ok)
	assert.Equal(t, "critical", class)

	pathType, ok := res.Graph.Graph.EdgeAttr(0, "path_type")
	require.True(t, ok)
	assert.Equal(t, "stem", pathType)

	order, ok := res.Graph.Graph.EdgeAttr(0, "path_order")
	require.True(t, ok)
	assert.Equal(t, 0, order)
}

func TestRunModeDispatchUnknownMode(t *testing.T) {
	g := mustGraph(t, 1)
	o := analysis.New()
	_, err := o.Run(g, analysis.Liu, analysis.Mode(99))
	assert.ErrorIs(t, err, analysis.ErrUnknownMode)
}
