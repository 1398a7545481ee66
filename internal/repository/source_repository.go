package repository

import (
	"context"

	"verse-report/internal/domain/entity"
)

type SourceRepository interface {
	// List retrieves all sources ordered by sort_order, then name.
	List(ctx context.Context) ([]*entity.Source, error)
	// ExistsByName and ExistsBySlug back the duplicate checks on creation.
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// NextSortOrder returns 1 + the highest sort order across all sources.
	NextSortOrder(ctx context.Context) (int, error)
	// Create inserts the source and fills in its assigned id.
	Create(ctx context.Context, source *entity.Source) error
	// Exists reports whether a source id is present (transmission creation
	// validates its source reference).
	Exists(ctx context.Context, id int64) (bool, error)
}
