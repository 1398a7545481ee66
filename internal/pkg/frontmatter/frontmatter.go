// Package frontmatter parses the minimal YAML-like metadata block used by
// seed content files. The block is delimited by lines containing only "---";
// inside it, "key: value" pairs set scalar fields and a bare "key:" followed
// by "  - item" continuation lines builds a list. This is a deliberately
// small hand-rolled format, not a YAML subset.
package frontmatter

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Document is the parsed form of a seed content file.
type Document struct {
	fields map[string]string
	lists  map[string][]string

	// Body is everything after the closing delimiter.
	Body string
}

// Parse splits src into a frontmatter Document. Input without a leading
// "---" line has no metadata; the whole input becomes the body.
func Parse(src string) (*Document, error) {
	doc := &Document{
		fields: make(map[string]string),
		lists:  make(map[string][]string),
	}

	scanner := bufio.NewScanner(strings.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		doc.Body = src
		return doc, nil
	}

	var listKey string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}

		// List continuation: "  - item" appends to the most recent bare key.
		if trimmed := strings.TrimLeft(line, " \t"); strings.HasPrefix(trimmed, "- ") && len(line) > len(trimmed) {
			if listKey == "" {
				return nil, fmt.Errorf("frontmatter: list item %q without a preceding key", trimmed)
			}
			doc.lists[listKey] = append(doc.lists[listKey], strings.TrimSpace(trimmed[2:]))
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("frontmatter: malformed line %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			// Bare "key:" opens a list.
			listKey = key
			if _, ok := doc.lists[key]; !ok {
				doc.lists[key] = nil
			}
			continue
		}
		listKey = ""
		doc.fields[key] = strings.Trim(value, `"`)
	}
	if !closed {
		return nil, fmt.Errorf("frontmatter: missing closing delimiter")
	}

	var body strings.Builder
	for scanner.Scan() {
		body.WriteString(scanner.Text())
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("frontmatter: scan: %w", err)
	}
	doc.Body = strings.TrimPrefix(body.String(), "\n")
	return doc, nil
}

// Get returns the scalar value for key, or "" when absent.
func (d *Document) Get(key string) string { return d.fields[key] }

// Has reports whether a scalar value exists for key.
func (d *Document) Has(key string) bool {
	_, ok := d.fields[key]
	return ok
}

// List returns the list items collected under key.
func (d *Document) List(key string) []string { return d.lists[key] }

// GetBool interprets the scalar at key as a boolean, defaulting to false.
func (d *Document) GetBool(key string) bool {
	v, err := strconv.ParseBool(d.fields[key])
	return err == nil && v
}

// GetInt interprets the scalar at key as an integer, returning fallback when
// absent or malformed.
func (d *Document) GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(d.fields[key])
	if err != nil {
		return fallback
	}
	return v
}

// GetTime parses the scalar at key as RFC3339, or as a bare date.
func (d *Document) GetTime(key string) (time.Time, error) {
	raw := d.fields[key]
	if raw == "" {
		return time.Time{}, fmt.Errorf("frontmatter: %s is not set", key)
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("frontmatter: parse %s: %w", key, err)
	}
	return ts, nil
}
