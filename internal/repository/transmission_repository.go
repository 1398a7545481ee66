// Package repository defines the persistence interfaces the use cases depend
// on, along with the cross-layer row types they exchange.
package repository

import (
	"context"
	"time"

	"verse-report/internal/domain/entity"
)

// TransmissionQuery is the decoded filter a list request restricts by.
// All fields are optional; nil/empty means unrestricted. The published
// predicate (published_at IS NOT NULL) is always applied.
type TransmissionQuery struct {
	// TagIDs restricts to transmissions associated with at least one of the
	// given tags (OR semantics across tags).
	TagIDs []int64
	// PublishedFrom/PublishedTo bound published_at as [from, to).
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	// PublisherID is an exact match on the publishing user.
	PublisherID *string
}

// TransmissionRow is a transmission with its source and publisher resolved.
type TransmissionRow struct {
	Transmission  *entity.Transmission
	SourceName    string
	PublisherName string
}

// TransmissionTagRef is one tag association of a transmission, denormalized
// with the tag's owning-category slug for the wire view.
type TransmissionTagRef struct {
	TransmissionID string
	TagID          int64
	Name           string
	Slug           string
	CategorySlug   string
}

type TransmissionRepository interface {
	// ListPublished retrieves one page of published transmissions matching
	// the query, ordered by published_at DESC with id DESC as tiebreak.
	ListPublished(ctx context.Context, q TransmissionQuery, offset, limit int) ([]TransmissionRow, error)
	// CountPublished returns the total number of published transmissions
	// matching the query, for pagination metadata.
	CountPublished(ctx context.Context, q TransmissionQuery) (int64, error)
	// TagsFor resolves the tag associations for a set of transmission ids in
	// one query, keyed by transmission id.
	TagsFor(ctx context.Context, transmissionIDs []string) (map[string][]TransmissionTagRef, error)
	// Get retrieves a transmission with source and publisher resolved.
	// Returns (nil, nil) if the id does not exist.
	Get(ctx context.Context, id string) (*TransmissionRow, error)
	// Create inserts the transmission and its tag associations atomically.
	Create(ctx context.Context, t *entity.Transmission, tagIDs []int64) error
	// Update rewrites the transmission and replaces its full tag association
	// set (delete-all then re-create) atomically.
	Update(ctx context.Context, t *entity.Transmission, tagIDs []int64) error
	// Delete removes the transmission; tag associations cascade.
	Delete(ctx context.Context, id string) error
	// FilterExistingTagIDs returns the subset of ids that exist as tags.
	FilterExistingTagIDs(ctx context.Context, ids []int64) ([]int64, error)
	// ListPublishDates returns every non-null publish timestamp, newest
	// first. Feeds the timeline availability index.
	ListPublishDates(ctx context.Context) ([]time.Time, error)
}
