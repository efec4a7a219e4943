package domain

import "errors"

// ErrEmptyInput indicates a selection operation was invoked with zero
// candidates. This is an upstream logic bug, not a recoverable condition.
var ErrEmptyInput = errors.New("empty input: at least one candidate is required")

// RouteCalculationError wraps a genuine collaborator failure that aborted a
// route calculation. An absent forecast is not one of these; only failures
// that leave the result unusable (e.g. the point repository erroring) are
// reported this way, with the cause attached for diagnostics.
type RouteCalculationError struct {
	Cause error
}

func (e *RouteCalculationError) Error() string {
	return "route calculation failed: " + e.Cause.Error()
}

func (e *RouteCalculationError) Unwrap() error { return e.Cause }
