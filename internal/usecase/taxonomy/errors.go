// Package taxonomy provides use cases for the category and tag hierarchy
// that drives transmission filtering.
package taxonomy

import "errors"

// Sentinel errors for taxonomy use case operations.
var (
	// ErrCategoryNotFound indicates that the referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateTag indicates that a tag with the same slug already exists
	// in the configured uniqueness scope.
	ErrDuplicateTag = errors.New("tag with this slug already exists")
)
