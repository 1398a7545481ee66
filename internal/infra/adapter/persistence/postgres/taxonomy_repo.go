package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"verse-report/internal/domain/entity"
	"verse-report/internal/repository"
)

type TaxonomyRepo struct {
	db *sql.DB
}

func NewTaxonomyRepo(db *sql.DB) repository.TaxonomyRepository {
	return &TaxonomyRepo{db: db}
}

func (repo *TaxonomyRepo) ListCategoriesWithTags(ctx context.Context) ([]repository.CategoryWithTags, error) {
	const categoryQuery = `
SELECT id, name, slug, type, description, color, sort_order
FROM categories
ORDER BY sort_order, id`

	rows, err := repo.db.QueryContext(ctx, categoryQuery)
	if err != nil {
		return nil, fmt.Errorf("ListCategoriesWithTags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []repository.CategoryWithTags
	index := make(map[string]int)
	for rows.Next() {
		var (
			c     entity.Category
			desc  sql.NullString
			color sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &desc, &color, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("ListCategoriesWithTags: Scan: %w", err)
		}
		c.Description = desc.String
		c.Color = color.String
		index[c.ID] = len(categories)
		categories = append(categories, repository.CategoryWithTags{Category: &c})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategoriesWithTags: %w", err)
	}

	const tagQuery = `
SELECT t.id, t.name, t.slug, t.category_id, t.ship_family_id, t.sort_order, f.name, f.slug
FROM tags t
LEFT JOIN ship_families f ON t.ship_family_id = f.id
ORDER BY t.sort_order, t.id`

	tagRows, err := repo.db.QueryContext(ctx, tagQuery)
	if err != nil {
		return nil, fmt.Errorf("ListCategoriesWithTags: tags: %w", err)
	}
	defer func() { _ = tagRows.Close() }()

	for tagRows.Next() {
		var (
			t          entity.Tag
			familyID   sql.NullInt64
			familyName sql.NullString
			familySlug sql.NullString
		)
		if err := tagRows.Scan(&t.ID, &t.Name, &t.Slug, &t.CategoryID, &familyID, &t.SortOrder, &familyName, &familySlug); err != nil {
			return nil, fmt.Errorf("ListCategoriesWithTags: tags: Scan: %w", err)
		}
		twf := repository.TagWithFamily{Tag: &t}
		if familyID.Valid {
			id := familyID.Int64
			t.ShipFamilyID = &id
			twf.ShipFamily = &entity.ShipFamily{ID: id, Name: familyName.String, Slug: familySlug.String}
		}
		if i, ok := index[t.CategoryID]; ok {
			categories[i].Tags = append(categories[i].Tags, twf)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategoriesWithTags: tags: %w", err)
	}

	// Categories without any tag carry no filtering value for clients.
	result := make([]repository.CategoryWithTags, 0, len(categories))
	for _, c := range categories {
		if len(c.Tags) > 0 {
			result = append(result, c)
		}
	}
	return result, nil
}

func (repo *TaxonomyRepo) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	const query = `
SELECT id, name, slug, type, description, color, sort_order
FROM categories
WHERE id = $1
LIMIT 1`

	var (
		c     entity.Category
		desc  sql.NullString
		color sql.NullString
	)
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Type, &desc, &color, &c.SortOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCategory: %w", err)
	}
	c.Description = desc.String
	c.Color = color.String
	return &c, nil
}

// TagSlugExists reports whether a tag with the given slug exists. A nil
// categoryID checks across all categories, otherwise only within the one.
func (repo *TaxonomyRepo) TagSlugExists(ctx context.Context, slug string, categoryID *string) (bool, error) {
	var (
		query string
		args  []any
	)
	if categoryID != nil {
		query = `SELECT EXISTS (SELECT 1 FROM tags WHERE slug = $1 AND category_id = $2)`
		args = []any{slug, *categoryID}
	} else {
		query = `SELECT EXISTS (SELECT 1 FROM tags WHERE slug = $1)`
		args = []any{slug}
	}

	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("TagSlugExists: %w", err)
	}
	return exists, nil
}

func (repo *TaxonomyRepo) NextTagSortOrder(ctx context.Context, categoryID string) (int, error) {
	const query = `SELECT COALESCE(MAX(sort_order), 0) + 1 FROM tags WHERE category_id = $1`

	var next int
	if err := repo.db.QueryRowContext(ctx, query, categoryID).Scan(&next); err != nil {
		return 0, fmt.Errorf("NextTagSortOrder: %w", err)
	}
	return next, nil
}

func (repo *TaxonomyRepo) CreateTag(ctx context.Context, t *entity.Tag) error {
	const query = `
INSERT INTO tags (name, slug, category_id, ship_family_id, sort_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	var familyID sql.NullInt64
	if t.ShipFamilyID != nil {
		familyID = sql.NullInt64{Int64: *t.ShipFamilyID, Valid: true}
	}
	if err := repo.db.QueryRowContext(ctx, query, t.Name, t.Slug, t.CategoryID, familyID, t.SortOrder).Scan(&t.ID); err != nil {
		return fmt.Errorf("CreateTag: %w", err)
	}
	return nil
}
