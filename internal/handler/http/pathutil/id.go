// Package pathutil contains small helpers for working with URL paths.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts an opaque ID from a URL path by removing the prefix.
// The remainder must be a single non-empty segment.
//
// Example:
//
//	id, err := ExtractID("/transmissions/9f4c…", "/transmissions/")
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || id == path || strings.ContainsRune(id, '/') {
		return "", ErrInvalidID
	}
	return id, nil
}
