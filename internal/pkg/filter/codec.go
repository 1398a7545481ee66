// Package filter implements the compact filter token used by paginated
// transmission list requests. A filter descriptor is serialized to JSON,
// base64-encoded and made URL-safe ('+'→'-', '/'→'_', padding stripped).
//
// Decoding is defensive: the token is externally supplied and potentially
// malformed, so Decode never fails. Each field that is not well-typed is
// silently dropped, degrading to "no filter" for that field.
package filter

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
)

// Filter describes the active tag/year/publisher restrictions of a list
// request. Zero values mean "unrestricted". TagIDs have set semantics
// downstream: ordering is irrelevant and duplicates are harmless.
type Filter struct {
	TagIDs    []int64
	Year      *int
	Publisher *string
}

// IsZero reports whether no restriction is active.
func (f Filter) IsZero() bool {
	return len(f.TagIDs) == 0 && f.Year == nil && f.Publisher == nil
}

// wireFilter is the JSON shape of a filter token.
type wireFilter struct {
	Tags      []int64 `json:"tags,omitempty"`
	Year      *int    `json:"year,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
}

// Encode serializes a filter into its URL-safe token form.
func Encode(f Filter) string {
	data, err := json.Marshal(wireFilter{
		Tags:      f.TagIDs,
		Year:      f.Year,
		Publisher: f.Publisher,
	})
	if err != nil {
		// A wireFilter cannot fail to marshal; keep the contract total anyway.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode parses a filter token. Malformed tokens (non-base64, truncated,
// valid base64 but not JSON) yield the empty filter; ill-typed fields are
// dropped individually.
func Decode(token string) Filter {
	if token == "" {
		return Filter{}
	}

	// Reverse the URL-safe substitutions and re-pad to a multiple of four so
	// that tokens produced by standard encoders also decode.
	normalized := strings.ReplaceAll(token, "-", "+")
	normalized = strings.ReplaceAll(normalized, "_", "/")
	if rem := len(normalized) % 4; rem != 0 {
		normalized += strings.Repeat("=", 4-rem)
	}

	data, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return Filter{}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Filter{}
	}

	var f Filter
	if raw, ok := fields["tags"]; ok {
		var ids []int64
		if err := json.Unmarshal(raw, &ids); err == nil {
			f.TagIDs = ids
		}
	}
	if raw, ok := fields["year"]; ok {
		if year, ok := coerceYear(raw); ok {
			f.Year = &year
		}
	}
	if raw, ok := fields["publisher"]; ok {
		var publisher string
		if err := json.Unmarshal(raw, &publisher); err == nil {
			f.Publisher = &publisher
		}
	}
	return f
}

// coerceYear accepts a JSON number or a numeric string.
func coerceYear(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}
	return 0, false
}
