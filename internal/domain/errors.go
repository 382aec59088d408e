package domain

import "errors"

// Sentinel errors shared across the API and worker boundaries. Handlers map
// these to status codes with errors.Is; everything else is a 500.
var (
	// ErrNotFound covers a missing job, dataset record, or result.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput covers malformed query or job parameters.
	ErrInvalidInput = errors.New("invalid input")
)
