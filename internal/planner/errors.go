package planner

import "errors"

var (
	// ErrInvalidInput is returned for arguments outside the planner's
	// preconditions: non-positive horizons, rates at or below -1, and
	// non-finite values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConvergence is returned when bisection exhausts its iteration cap.
	// With a valid bracket this indicates a logic error.
	ErrConvergence = errors.New("solver did not converge")
)
