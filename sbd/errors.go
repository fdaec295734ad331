package sbd

import "errors"

// Sentinel errors for the switchboard solver.
var (
	// ErrNoGraph indicates an operation was attempted before a graph was
	// attached via New or SetGraph.
	ErrNoGraph = errors.New("sbd: no graph attached")

	// ErrNotCalculated indicates an operation that depends on a prior
	// Calculate() was invoked before one ran.
	ErrNotCalculated = errors.New("sbd: calculate has not run")

	// ErrUnsupported indicates a targeted request, which switchboard
	// never supports (see spec's unsupported-operation failure mode).
	ErrUnsupported = errors.New("sbd: targeting is not supported")
)
