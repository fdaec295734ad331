package liu

import "errors"

// Sentinel errors for the Liu solver.
var (
	// ErrNoGraph indicates an operation was attempted before a graph was
	// attached via New or SetGraph.
	ErrNoGraph = errors.New("liu: no graph attached")

	// ErrNotCalculated indicates an operation that depends on a prior
	// Calculate() was invoked before one ran.
	ErrNotCalculated = errors.New("liu: calculate has not run")
)
