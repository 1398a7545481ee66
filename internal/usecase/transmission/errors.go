// Package transmission provides use cases for publishing and browsing
// transmissions. It implements validation, filter resolution, and tag
// association handling on top of the transmission repository.
package transmission

import "errors"

// Sentinel errors for transmission use case operations.
var (
	// ErrTransmissionNotFound indicates that the requested transmission
	// does not exist in the repository.
	ErrTransmissionNotFound = errors.New("transmission not found")

	// ErrInvalidTransmissionID indicates that the provided ID is empty.
	ErrInvalidTransmissionID = errors.New("invalid transmission ID")

	// ErrUnknownSource indicates that the referenced source does not exist.
	ErrUnknownSource = errors.New("unknown source")
)
