// Package analysis implements the orchestrator (spec's §4.H): given a
// model selection, a mode selection, and a graph, it runs the chosen
// solver and dispatches to exactly one of the five output shapes §4.H
// and §6 describe. It accepts already-built graph.Graph values and
// returns in-memory Result values; formatting them as CLI text or
// GraphML/GML is the out-of-scope I/O collaborator's job (spec's §1).
package analysis

import (
	"errors"

	"github.com/ntamas/netctrl/graph"
	"github.com/ntamas/netctrl/nullmodel"
)

// Sentinel errors for the orchestrator.
var (
	// ErrNoGraph indicates Run was called with a nil graph.
	ErrNoGraph = errors.New("analysis: no graph")

	// ErrUnknownModel indicates an out-of-range Model value.
	ErrUnknownModel = errors.New("analysis: unknown model")

	// ErrUnknownMode indicates an out-of-range Mode value.
	ErrUnknownMode = errors.New("analysis: unknown mode")
)

// Model selects which controllability solver drives the run.
type Model int

const (
	// Liu selects the bipartite-matching-based solver (package liu).
	Liu Model = iota
	// Switchboard selects the degree-imbalance solver (package sbd).
	Switchboard
)

// String renders the model name used in logging.
func (m Model) String() string {
	switch m {
	case Liu:
		return "liu"
	case Switchboard:
		return "switchboard"
	default:
		return "unknown"
	}
}

// Mode selects which of the five orchestrator outputs a Run produces.
type Mode int

const (
	// ModeDrivers lists the driver set.
	ModeDrivers Mode = iota
	// ModeControlPaths lists the textual form of each control path.
	ModeControlPaths
	// ModeStatistics reports totals and fractions of drivers and edge
	// classes.
	ModeStatistics
	// ModeSignificance reports observed controllability plus three
	// null-model averages.
	ModeSignificance
	// ModeGraph annotates the input graph with driver/path/class
	// attributes.
	ModeGraph
)

// String renders the mode name used in logging.
func (m Mode) String() string {
	switch m {
	case ModeDrivers:
		return "driver_nodes"
	case ModeControlPaths:
		return "control_paths"
	case ModeStatistics:
		return "statistics"
	case ModeSignificance:
		return "significance"
	case ModeGraph:
		return "graph"
	default:
		return "unknown"
	}
}

// DriverEntry is one member of a driver set: its vertex index and
// optional name (empty if the vertex carries no name attribute).
type DriverEntry struct {
	Index int
	Name  string
}

// DriversResult is the ModeDrivers output.
type DriversResult struct {
	Drivers []DriverEntry
}

// ControlPathsResult is the ModeControlPaths output: the textual form of
// every control path the solver produced, in solver order.
type ControlPathsResult struct {
	Lines []string
}

// StatisticsResult is the ModeStatistics output: spec's §6 two-row table
// (totals, then totals divided by |V| for drivers and |E| for edge
// classes) as fields rather than pre-formatted text.
type StatisticsResult struct {
	NumDrivers       int
	NumDistinguished int
	NumRedundant     int
	NumOrdinary      int
	NumCritical      int

	FracDrivers       float64
	FracDistinguished float64
	FracRedundant     float64
	FracOrdinary      float64
	FracCritical      float64
}

// SignificanceResult is the ModeSignificance output: the observed
// controllability plus the three null-model ensemble means, spec's §6
// "Observed / ER / Configuration / Configuration_no_joint" rows.
type SignificanceResult = nullmodel.Result

// GraphResult is the ModeGraph output: the input graph, mutated in place
// with the node/edge attributes spec's §6 annotated-graph output names
// (is_driver; path_type, path_indices, path_order, edge_class).
// Serializing it to GraphML or GML is the out-of-scope I/O collaborator's
// job (spec's §1) — this package only sets the attributes.
type GraphResult struct {
	Graph *graph.Graph
}

// Result is the tagged-union output of a Run: exactly one field is
// populated, matching the Mode that was requested.
type Result struct {
	Mode Mode

	Drivers      *DriversResult
	ControlPaths *ControlPathsResult
	Statistics   *StatisticsResult
	Significance *SignificanceResult
	Graph        *GraphResult
}
