// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a slug from a display name: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
//
// Examples:
//
//	Make("Discord - Pipeline") // "discord-pipeline"
//	Make("4.3.1")              // "4-3-1"
//	Make("ISC (Inside Star Citizen)") // "isc-inside-star-citizen"
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
