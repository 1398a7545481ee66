package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"verse-report/internal/domain/entity"
	"verse-report/internal/repository"
)

type SourceRepo struct {
	db *sql.DB
}

func NewSourceRepo(db *sql.DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

func (repo *SourceRepo) List(ctx context.Context) ([]*entity.Source, error) {
	const query = `
SELECT id, name, slug, description, sort_order
FROM sources
ORDER BY sort_order, id`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sources []*entity.Source
	for rows.Next() {
		var (
			s    entity.Source
			desc sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &desc, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		s.Description = desc.String
		sources = append(sources, &s)
	}
	return sources, rows.Err()
}

func (repo *SourceRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sources WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsByName: %w", err)
	}
	return exists, nil
}

func (repo *SourceRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sources WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}

func (repo *SourceRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := repo.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sources WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func (repo *SourceRepo) NextSortOrder(ctx context.Context) (int, error) {
	var next int
	err := repo.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) + 1 FROM sources`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("NextSortOrder: %w", err)
	}
	return next, nil
}

func (repo *SourceRepo) Create(ctx context.Context, s *entity.Source) error {
	const query = `
INSERT INTO sources (name, slug, description, sort_order)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var desc sql.NullString
	if s.Description != "" {
		desc = sql.NullString{String: s.Description, Valid: true}
	}
	if err := repo.db.QueryRowContext(ctx, query, s.Name, s.Slug, desc, s.SortOrder).Scan(&s.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
