// Package source provides use cases for managing transmission sources.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrDuplicateSource indicates that a source with the same name or
	// derived slug already exists.
	ErrDuplicateSource = errors.New("source with this name already exists")
)
