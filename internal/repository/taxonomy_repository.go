package repository

import (
	"context"

	"verse-report/internal/domain/entity"
)

// TagWithFamily pairs a tag with its optional ship family.
type TagWithFamily struct {
	Tag        *entity.Tag
	ShipFamily *entity.ShipFamily
}

// CategoryWithTags is a category and its tags, both in display order.
type CategoryWithTags struct {
	Category *entity.Category
	Tags     []TagWithFamily
}

type TaxonomyRepository interface {
	// ListCategoriesWithTags retrieves categories having at least one tag,
	// ordered by sort_order, each with its tags (ordered) and their optional
	// ship families. Tagless categories are not surfaced.
	ListCategoriesWithTags(ctx context.Context) ([]CategoryWithTags, error)
	// GetCategory returns (nil, nil) when the id does not exist.
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	// TagSlugExists checks slug uniqueness. A nil categoryID checks across
	// all categories (global scope); otherwise only within that category.
	TagSlugExists(ctx context.Context, slug string, categoryID *string) (bool, error)
	// NextTagSortOrder returns 1 + the highest sort order in the category.
	NextTagSortOrder(ctx context.Context, categoryID string) (int, error)
	// CreateTag inserts the tag and fills in its assigned id.
	CreateTag(ctx context.Context, tag *entity.Tag) error
}
