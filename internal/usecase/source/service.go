package source

import (
	"context"
	"fmt"

	"verse-report/internal/domain/entity"
	"verse-report/internal/observability/metrics"
	"verse-report/internal/pkg/slug"
	"verse-report/internal/repository"
)

// CreateInput represents the input parameters for creating a source.
type CreateInput struct {
	Name        string
	Description string
}

// Service provides source management use cases.
type Service struct {
	Repo repository.SourceRepository
}

// List retrieves all sources in display order.
func (s *Service) List(ctx context.Context) ([]*entity.Source, error) {
	sources, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Create creates a new source with a slug derived from its name, appended
// to the display order.
// Returns ErrDuplicateSource if the name or slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Source, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	srcSlug := slug.Make(in.Name)
	if srcSlug == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "must contain letters or digits"}
	}

	byName, err := s.Repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("check source name: %w", err)
	}
	bySlug, err := s.Repo.ExistsBySlug(ctx, srcSlug)
	if err != nil {
		return nil, fmt.Errorf("check source slug: %w", err)
	}
	if byName || bySlug {
		return nil, ErrDuplicateSource
	}

	sortOrder, err := s.Repo.NextSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("next source sort order: %w", err)
	}

	src := &entity.Source{
		Name:        in.Name,
		Slug:        srcSlug,
		Description: in.Description,
		SortOrder:   sortOrder,
	}
	if err := s.Repo.Create(ctx, src); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	metrics.RecordSourceCreated()
	return src, nil
}
