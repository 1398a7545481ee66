// Package seed populates the database with reference data (roles, sources,
// categories, ship families, tags) and optionally ingests markdown content
// files as transmissions. All reference inserts are idempotent upserts so
// the seeder can run on every deploy.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Seeder writes the reference data set.
type Seeder struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// Run seeds roles, sources, categories, ship families and tags, in
// dependency order.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"roles", s.seedRoles},
		{"sources", s.seedSources},
		{"categories", s.seedCategories},
		{"ship families", s.seedShipFamilies},
		{"tags", s.seedTags},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.Logger.Info("seeded", slog.String("step", step.name))
	}
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	const q = `
INSERT INTO roles (name, description)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description`
	for _, r := range roles {
		if _, err := s.DB.ExecContext(ctx, q, r.Name, r.Description); err != nil {
			return fmt.Errorf("role %s: %w", r.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedSources(ctx context.Context) error {
	const q = `
INSERT INTO sources (name, slug, description, sort_order)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE SET
    name        = EXCLUDED.name,
    description = EXCLUDED.description,
    sort_order  = EXCLUDED.sort_order`
	for _, src := range sources {
		if _, err := s.DB.ExecContext(ctx, q, src.Name, src.Slug, src.Description, src.SortOrder); err != nil {
			return fmt.Errorf("source %s: %w", src.Slug, err)
		}
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	const q = `
INSERT INTO categories (id, name, slug, type, description, color, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (slug) DO UPDATE SET
    name        = EXCLUDED.name,
    type        = EXCLUDED.type,
    description = EXCLUDED.description,
    color       = EXCLUDED.color,
    sort_order  = EXCLUDED.sort_order`
	for _, c := range categories {
		if _, err := s.DB.ExecContext(ctx, q, c.ID, c.Name, c.Slug, string(c.Type), c.Description, c.Color, c.SortOrder); err != nil {
			return fmt.Errorf("category %s: %w", c.Slug, err)
		}
	}
	return nil
}

func (s *Seeder) seedShipFamilies(ctx context.Context) error {
	const q = `
INSERT INTO ship_families (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name`
	for _, f := range shipFamilies {
		if _, err := s.DB.ExecContext(ctx, q, f.Name, f.Slug); err != nil {
			return fmt.Errorf("ship family %s: %w", f.Slug, err)
		}
	}
	return nil
}

func (s *Seeder) seedTags(ctx context.Context) error {
	// Category and family ids are resolved inline; the family subselect
	// yields NULL for tags without one.
	const q = `
INSERT INTO tags (name, slug, category_id, ship_family_id, sort_order)
SELECT $1, $2, c.id, (SELECT id FROM ship_families WHERE slug = $4), $5
FROM categories c
WHERE c.slug = $3
ON CONFLICT (category_id, slug) DO UPDATE SET
    name           = EXCLUDED.name,
    ship_family_id = EXCLUDED.ship_family_id,
    sort_order     = EXCLUDED.sort_order`
	for _, t := range tags {
		if _, err := s.DB.ExecContext(ctx, q, t.Name, t.Slug, t.CategorySlug, t.FamilySlug, t.SortOrder); err != nil {
			return fmt.Errorf("tag %s: %w", t.Slug, err)
		}
	}
	return nil
}
