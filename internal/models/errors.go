package models

import "errors"

// Sentinel errors for the failure taxonomy. Repositories return these
// wrapped with fmt.Errorf("%w") so callers can classify with errors.Is.
var (
	// ErrNodeNotFound is returned when an operation references a node id
	// that does not exist
	ErrNodeNotFound = errors.New("node not found")
	// ErrVideoNotFound is returned when an operation references a video id
	// that does not exist
	ErrVideoNotFound = errors.New("video not found")
	// ErrExternalService is returned when a catalog sync or chat proxy call
	// fails; surfaced to the user as a message, never fatal
	ErrExternalService = errors.New("external service failure")
)
