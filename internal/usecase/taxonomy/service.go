package taxonomy

import (
	"context"
	"fmt"

	"verse-report/internal/config"
	"verse-report/internal/domain/entity"
	"verse-report/internal/observability/metrics"
	"verse-report/internal/pkg/slug"
	"verse-report/internal/repository"
)

// CreateTagInput represents the input parameters for creating a tag.
type CreateTagInput struct {
	Name         string
	CategoryID   string
	ShipFamilyID *int64
}

// Service provides taxonomy use cases.
type Service struct {
	Repo repository.TaxonomyRepository

	// SlugScope controls whether tag slugs are unique per category or
	// across all categories. Defaults to per-category when empty.
	SlugScope string
}

// Categories retrieves every category that carries at least one tag,
// with tags and ship families resolved.
func (s *Service) Categories(ctx context.Context) ([]repository.CategoryWithTags, error) {
	categories, err := s.Repo.ListCategoriesWithTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateTag creates a tag under a category. The slug is derived from the
// name and the tag is appended to the category's display order.
// Returns ErrCategoryNotFound if the category does not exist.
// Returns ErrDuplicateTag if the slug collides in the configured scope.
func (s *Service) CreateTag(ctx context.Context, in CreateTagInput) (*entity.Tag, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.CategoryID == "" {
		return nil, &entity.ValidationError{Field: "categoryId", Message: "is required"}
	}

	category, err := s.Repo.GetCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	tagSlug := slug.Make(in.Name)
	if tagSlug == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "must contain letters or digits"}
	}

	scope := &in.CategoryID
	if s.SlugScope == config.SlugScopeGlobal {
		scope = nil
	}
	exists, err := s.Repo.TagSlugExists(ctx, tagSlug, scope)
	if err != nil {
		return nil, fmt.Errorf("check tag slug: %w", err)
	}
	if exists {
		return nil, ErrDuplicateTag
	}

	sortOrder, err := s.Repo.NextTagSortOrder(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("next tag sort order: %w", err)
	}

	tag := &entity.Tag{
		Name:         in.Name,
		Slug:         tagSlug,
		CategoryID:   in.CategoryID,
		ShipFamilyID: in.ShipFamilyID,
		SortOrder:    sortOrder,
	}
	if err := s.Repo.CreateTag(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	metrics.RecordTagCreated()
	return tag, nil
}
