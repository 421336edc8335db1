package search

import "errors"

// Domain errors
var (
	// ErrSearchFailed - the catalog store query failed
	ErrSearchFailed = errors.New("search: catalog query failed")

	// ErrHydrationFailed - the hydration query failed after scoring succeeded
	ErrHydrationFailed = errors.New("search: hydration failed")

	// ErrInvalidEvent - a consumed search event is malformed
	ErrInvalidEvent = errors.New("search: invalid search event")
)
