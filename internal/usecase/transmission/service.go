package transmission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"verse-report/internal/common/pagination"
	"verse-report/internal/domain/entity"
	"verse-report/internal/observability/metrics"
	"verse-report/internal/pkg/filter"
	"verse-report/internal/repository"
)

// TagView is a tag reference rendered on a transmission.
type TagView struct {
	ID           int64
	Name         string
	Slug         string
	CategorySlug string
}

// View is a fully assembled transmission ready for serialization: the
// entity joined with its source name, publisher name, and tag references.
type View struct {
	Transmission  *entity.Transmission
	SourceName    string
	PublisherName string
	Tags          []TagView
}

// CreateInput represents the input parameters for creating a transmission.
type CreateInput struct {
	Title       string
	SubTitle    string
	Content     string
	Type        string
	IsHighlight bool
	SourceID    int64
	SourceURL   string
	PublishedAt *time.Time
	PublisherID string
	TagIDs      []int64
}

// UpdateInput represents the input parameters for updating a transmission.
// Fields with nil values will not be updated. TagIDs, when non-nil,
// replaces the full tag association set.
type UpdateInput struct {
	ID          string
	Title       *string
	SubTitle    *string
	Content     *string
	Type        *string
	IsHighlight *bool
	SourceID    *int64
	SourceURL   *string
	PublishedAt *time.Time
	TagIDs      []int64
}

// PaginatedResult represents one page of transmissions with its metadata.
type PaginatedResult struct {
	Data       []View
	Pagination pagination.Metadata
}

// Service provides transmission management use cases.
type Service struct {
	Repo    repository.TransmissionRepository
	Sources repository.SourceRepository

	// Loc is the display timezone. Year filters resolve to calendar-year
	// bounds in this zone.
	Loc *time.Location
}

// ListPublished retrieves one page of published transmissions matching the
// filter, newest first.
func (s *Service) ListPublished(ctx context.Context, f filter.Filter, params pagination.Params) (*PaginatedResult, error) {
	q := s.buildQuery(f)

	total, err := s.Repo.CountPublished(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count transmissions: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	rows, err := s.Repo.ListPublished(ctx, q, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list transmissions: %w", err)
	}

	views, err := s.assemble(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &PaginatedResult{
		Data:       views,
		Pagination: pagination.NewMetadata(total, params),
	}, nil
}

// Get retrieves a single assembled transmission by its ID.
// Returns ErrInvalidTransmissionID if the ID is empty.
// Returns ErrTransmissionNotFound if the transmission does not exist or
// has not been published yet. Drafts stay invisible on the public surface.
func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	if id == "" {
		return nil, ErrInvalidTransmissionID
	}

	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transmission: %w", err)
	}
	if row == nil || row.Transmission.PublishedAt == nil {
		return nil, ErrTransmissionNotFound
	}

	views, err := s.assemble(ctx, []repository.TransmissionRow{*row})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create creates a new transmission with the provided input and returns
// its generated ID. Unknown tag IDs are dropped rather than rejected.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if in.Title == "" {
		return "", &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.SubTitle == "" {
		return "", &entity.ValidationError{Field: "subtitle", Message: "is required"}
	}
	typ, err := entity.ParseTransmissionType(in.Type)
	if err != nil {
		return "", err
	}
	if in.SourceID <= 0 {
		return "", &entity.ValidationError{Field: "sourceId", Message: "must be positive"}
	}
	if err := entity.ValidateSourceURL(in.SourceURL); err != nil {
		return "", err
	}
	if in.PublisherID == "" {
		return "", &entity.ValidationError{Field: "publisherId", Message: "is required"}
	}

	exists, err := s.Sources.Exists(ctx, in.SourceID)
	if err != nil {
		return "", fmt.Errorf("check source: %w", err)
	}
	if !exists {
		return "", ErrUnknownSource
	}

	tagIDs, err := s.Repo.FilterExistingTagIDs(ctx, in.TagIDs)
	if err != nil {
		return "", fmt.Errorf("resolve tags: %w", err)
	}

	now := time.Now()
	t := &entity.Transmission{
		ID:          uuid.NewString(),
		Title:       in.Title,
		SubTitle:    in.SubTitle,
		Content:     in.Content,
		Type:        typ,
		Status:      statusFor(in.PublishedAt),
		IsHighlight: in.IsHighlight,
		SourceID:    in.SourceID,
		SourceURL:   in.SourceURL,
		PublishedAt: in.PublishedAt,
		PublisherID: in.PublisherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, t, tagIDs); err != nil {
		metrics.RecordTransmissionWrite("create", err)
		return "", fmt.Errorf("create transmission: %w", err)
	}
	metrics.RecordTransmissionWrite("create", nil)
	return t.ID, nil
}

// Update modifies an existing transmission with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrTransmissionNotFound if the transmission does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID == "" {
		return ErrInvalidTransmissionID
	}

	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get transmission: %w", err)
	}
	if row == nil {
		return ErrTransmissionNotFound
	}
	t := row.Transmission

	if in.Title != nil {
		if *in.Title == "" {
			return &entity.ValidationError{Field: "title", Message: "is required"}
		}
		t.Title = *in.Title
	}
	if in.SubTitle != nil {
		if *in.SubTitle == "" {
			return &entity.ValidationError{Field: "subtitle", Message: "is required"}
		}
		t.SubTitle = *in.SubTitle
	}
	if in.Content != nil {
		t.Content = *in.Content
	}
	if in.Type != nil {
		typ, err := entity.ParseTransmissionType(*in.Type)
		if err != nil {
			return err
		}
		t.Type = typ
	}
	if in.IsHighlight != nil {
		t.IsHighlight = *in.IsHighlight
	}
	if in.SourceID != nil {
		exists, err := s.Sources.Exists(ctx, *in.SourceID)
		if err != nil {
			return fmt.Errorf("check source: %w", err)
		}
		if !exists {
			return ErrUnknownSource
		}
		t.SourceID = *in.SourceID
	}
	if in.SourceURL != nil {
		if err := entity.ValidateSourceURL(*in.SourceURL); err != nil {
			return err
		}
		t.SourceURL = *in.SourceURL
	}
	if in.PublishedAt != nil {
		t.PublishedAt = in.PublishedAt
	}
	t.Status = statusFor(t.PublishedAt)
	t.UpdatedAt = time.Now()

	var newTags []int64
	if in.TagIDs != nil {
		newTags, err = s.Repo.FilterExistingTagIDs(ctx, in.TagIDs)
		if err != nil {
			return fmt.Errorf("resolve tags: %w", err)
		}
	} else {
		refs, err := s.Repo.TagsFor(ctx, []string{t.ID})
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		newTags = lo.Map(refs[t.ID], func(r repository.TransmissionTagRef, _ int) int64 { return r.TagID })
	}

	if err := s.Repo.Update(ctx, t, newTags); err != nil {
		metrics.RecordTransmissionWrite("update", err)
		return fmt.Errorf("update transmission: %w", err)
	}
	metrics.RecordTransmissionWrite("update", nil)
	return nil
}

// Delete removes a transmission and its tag associations.
// Returns ErrTransmissionNotFound if the transmission does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidTransmissionID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		metrics.RecordTransmissionWrite("delete", err)
		if err == entity.ErrNotFound {
			return ErrTransmissionNotFound
		}
		return fmt.Errorf("delete transmission: %w", err)
	}
	metrics.RecordTransmissionWrite("delete", nil)
	return nil
}

// buildQuery resolves the decoded filter into repository predicates. A year
// filter becomes a half-open calendar-year range in the display timezone.
func (s *Service) buildQuery(f filter.Filter) repository.TransmissionQuery {
	q := repository.TransmissionQuery{
		TagIDs:      f.TagIDs,
		PublisherID: f.Publisher,
	}
	if f.Year != nil {
		loc := s.Loc
		if loc == nil {
			loc = time.UTC
		}
		from := time.Date(*f.Year, time.January, 1, 0, 0, 0, 0, loc)
		to := from.AddDate(1, 0, 0)
		q.PublishedFrom = &from
		q.PublishedTo = &to
	}
	return q
}

// assemble joins rows with their tag references in one batched query.
func (s *Service) assemble(ctx context.Context, rows []repository.TransmissionRow) ([]View, error) {
	ids := lo.Map(rows, func(r repository.TransmissionRow, _ int) string { return r.Transmission.ID })
	tags, err := s.Repo.TagsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}

	return lo.Map(rows, func(r repository.TransmissionRow, _ int) View {
		return View{
			Transmission:  r.Transmission,
			SourceName:    r.SourceName,
			PublisherName: r.PublisherName,
			Tags: lo.Map(tags[r.Transmission.ID], func(ref repository.TransmissionTagRef, _ int) TagView {
				return TagView{ID: ref.TagID, Name: ref.Name, Slug: ref.Slug, CategorySlug: ref.CategorySlug}
			}),
		}
	}), nil
}

func statusFor(publishedAt *time.Time) entity.TransmissionStatus {
	if publishedAt != nil {
		return entity.StatusPublished
	}
	return entity.StatusDraft
}
