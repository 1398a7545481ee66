package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes, most specific first. Pre-compiled
// at initialization; transmission IDs are UUIDs so the segment match is
// loose on purpose.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/transmissions/[^/]+$`), Template: "/transmissions/:id"},
	{Pattern: regexp.MustCompile(`^/sources/\d+$`), Template: "/sources/:id"},
	{Pattern: regexp.MustCompile(`^/categories/[^/]+$`), Template: "/categories/:id"},
}

// NormalizePath collapses dynamic URL paths to template form so metrics
// path labels stay low-cardinality. Static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/transmissions/9f4c-…")  // "/transmissions/:id"
//	NormalizePath("/transmissions?page=2")  // "/transmissions"
//	NormalizePath("/timeline")              // "/timeline" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
