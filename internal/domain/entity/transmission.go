// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Transmission,
// Tag, Category and Source, along with their validation rules and domain errors.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// TransmissionType classifies the provenance of a transmission.
type TransmissionType string

const (
	TypeOfficial   TransmissionType = "OFFICIAL"
	TypeLeak       TransmissionType = "LEAK"
	TypePrediction TransmissionType = "PREDICTION"
	TypeCommentary TransmissionType = "COMMENTARY"
)

// ParseTransmissionType validates and normalizes a transmission type string.
// Returns a ValidationError for anything outside the allowed enum.
func ParseTransmissionType(s string) (TransmissionType, error) {
	switch TransmissionType(strings.ToUpper(s)) {
	case TypeOfficial, TypeLeak, TypePrediction, TypeCommentary:
		return TransmissionType(strings.ToUpper(s)), nil
	}
	return "", &ValidationError{Field: "type", Message: fmt.Sprintf("invalid transmission type %q", s)}
}

// TransmissionStatus tracks the publication lifecycle of a transmission.
type TransmissionStatus string

const (
	StatusDraft     TransmissionStatus = "DRAFT"
	StatusPublished TransmissionStatus = "PUBLISHED"
)

// Transmission represents a publishable news item.
// A transmission with a nil PublishedAt is excluded from all timeline and
// listing views.
type Transmission struct {
	ID          string
	Title       string
	SubTitle    string
	Content     string
	Type        TransmissionType
	Status      TransmissionStatus
	IsHighlight bool
	SourceID    int64
	SourceURL   string
	PublishedAt *time.Time
	PublisherID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasContent reports whether the transmission carries a non-blank body.
// Whitespace-only content counts as empty so the client can render the
// "no content" state and skip auto-expansion.
func (t *Transmission) HasContent() bool {
	return strings.TrimSpace(t.Content) != ""
}
