package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength defines the maximum allowed length for source URLs.
const maxURLLength = 2048

// ValidateSourceURL validates the format of an optional source URL.
// An empty URL is allowed (transmissions may omit an external link); a
// non-empty one must be well-formed http(s) with a host.
func ValidateSourceURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "sourceUrl",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "sourceUrl", Message: "url is not well-formed"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "sourceUrl", Message: "URL must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: "sourceUrl", Message: "URL must have a valid host"}
	}
	return nil
}
