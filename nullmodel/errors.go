package nullmodel

import "errors"

// Sentinel errors for the null-model driver.
var (
	// ErrNoGraph indicates Run was asked to compare against a nil observed
	// graph.
	ErrNoGraph = errors.New("nullmodel: no observed graph")

	// ErrInvalidTrials indicates a non-positive trial count was supplied.
	ErrInvalidTrials = errors.New("nullmodel: trial count must be positive")
)
