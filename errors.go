package maze

import (
	"errors"
)

// Errors returned by this library. They are always wrapped with more detail,
// so check for them using errors.Is.
var (
	// A maze must have at least one room, so both dimensions must be positive.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	// A search endpoint was off the grid or on a wall.
	ErrBlockedEndpoint = errors.New("start or end point is blocked")
	// The search start and end were the same cell.
	ErrSameEndpoints = errors.New("start and end points are the same")
	// The search frontier emptied without reaching the end.
	ErrNotFound = errors.New("no path found")
	// A Validator rejected a step.
	ErrInvalidStep = errors.New("invalid step")
)
