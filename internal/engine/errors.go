package engine

import "errors"

// Domain errors for engine operations.
var (
	// ErrUnknownAlgorithm indicates a run was requested for a name the
	// registry does not know.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrInvalidArray indicates an empty, oversized or non-integral input.
	ErrInvalidArray = errors.New("engine: invalid input array")

	// ErrStopped signals cooperative cancellation inside a step sequence.
	// It never reaches callers of Run: a stopped run yields a Result with
	// Success=false and a nil Err.
	ErrStopped = errors.New("engine: run stopped")
)
