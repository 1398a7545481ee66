// Package postgres implements the repository interfaces against PostgreSQL
// using database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"verse-report/internal/domain/entity"
	"verse-report/internal/repository"
)

type TransmissionRepo struct {
	db           *sql.DB
	queryBuilder *TransmissionQueryBuilder
}

func NewTransmissionRepo(db *sql.DB) repository.TransmissionRepository {
	return &TransmissionRepo{
		db:           db,
		queryBuilder: NewTransmissionQueryBuilder(),
	}
}

const transmissionColumns = `t.id, t.title, t.sub_title, t.content, t.type, t.status, t.is_highlight,
       t.source_id, t.source_url, t.published_at, t.publisher_id, t.created_at, t.updated_at`

func scanTransmissionRow(scanner interface{ Scan(...any) error }) (repository.TransmissionRow, error) {
	var (
		t           entity.Transmission
		content     sql.NullString
		sourceURL   sql.NullString
		publishedAt sql.NullTime
		sourceName  string
		pubName     sql.NullString
	)
	err := scanner.Scan(&t.ID, &t.Title, &t.SubTitle, &content, &t.Type, &t.Status, &t.IsHighlight,
		&t.SourceID, &sourceURL, &publishedAt, &t.PublisherID, &t.CreatedAt, &t.UpdatedAt,
		&sourceName, &pubName)
	if err != nil {
		return repository.TransmissionRow{}, err
	}
	t.Content = content.String
	t.SourceURL = sourceURL.String
	if publishedAt.Valid {
		ts := publishedAt.Time
		t.PublishedAt = &ts
	}
	return repository.TransmissionRow{
		Transmission:  &t,
		SourceName:    sourceName,
		PublisherName: pubName.String,
	}, nil
}

func (repo *TransmissionRepo) ListPublished(ctx context.Context, q repository.TransmissionQuery, offset, limit int) ([]repository.TransmissionRow, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(q, "t")
	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT %s, s.name AS source_name, u.name AS publisher_name
FROM transmissions t
INNER JOIN sources s ON t.source_id = s.id
INNER JOIN users u   ON t.publisher_id = u.id
%s
ORDER BY t.published_at DESC, t.id DESC
LIMIT $%d OFFSET $%d`, transmissionColumns, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.TransmissionRow, 0, limit)
	for rows.Next() {
		row, err := scanTransmissionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPublished: Scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (repo *TransmissionRepo) CountPublished(ctx context.Context, q repository.TransmissionQuery) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(q, "t")
	query := "SELECT COUNT(*) FROM transmissions t " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublished: %w", err)
	}
	return count, nil
}

func (repo *TransmissionRepo) TagsFor(ctx context.Context, transmissionIDs []string) (map[string][]repository.TransmissionTagRef, error) {
	result := make(map[string][]repository.TransmissionTagRef)
	if len(transmissionIDs) == 0 {
		return result, nil
	}

	const query = `
SELECT tt.transmission_id, tg.id, tg.name, tg.slug, c.slug AS category_slug
FROM transmission_tags tt
INNER JOIN tags tg      ON tt.tag_id = tg.id
INNER JOIN categories c ON tg.category_id = c.id
WHERE tt.transmission_id = ANY($1)
ORDER BY tg.sort_order, tg.id`

	rows, err := repo.db.QueryContext(ctx, query, pq.Array(transmissionIDs))
	if err != nil {
		return nil, fmt.Errorf("TagsFor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var ref repository.TransmissionTagRef
		if err := rows.Scan(&ref.TransmissionID, &ref.TagID, &ref.Name, &ref.Slug, &ref.CategorySlug); err != nil {
			return nil, fmt.Errorf("TagsFor: Scan: %w", err)
		}
		result[ref.TransmissionID] = append(result[ref.TransmissionID], ref)
	}
	return result, rows.Err()
}

func (repo *TransmissionRepo) Get(ctx context.Context, id string) (*repository.TransmissionRow, error) {
	query := fmt.Sprintf(`
SELECT %s, s.name AS source_name, u.name AS publisher_name
FROM transmissions t
INNER JOIN sources s ON t.source_id = s.id
INNER JOIN users u   ON t.publisher_id = u.id
WHERE t.id = $1
LIMIT 1`, transmissionColumns)

	row, err := scanTransmissionRow(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &row, nil
}

func (repo *TransmissionRepo) Create(ctx context.Context, t *entity.Transmission, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
INSERT INTO transmissions
       (id, title, sub_title, content, type, status, is_highlight,
        source_id, source_url, published_at, publisher_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err := tx.ExecContext(ctx, query,
		t.ID, t.Title, t.SubTitle, nullString(t.Content), t.Type, t.Status, t.IsHighlight,
		t.SourceID, nullString(t.SourceURL), nullTime(t.PublishedAt), t.PublisherID,
		t.CreatedAt, t.UpdatedAt,
	); err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	if err := insertTagAssociations(ctx, tx, t.ID, tagIDs); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: commit: %w", err)
	}
	return nil
}

func (repo *TransmissionRepo) Update(ctx context.Context, t *entity.Transmission, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
UPDATE transmissions SET
       title        = $1,
       sub_title    = $2,
       content      = $3,
       type         = $4,
       status       = $5,
       is_highlight = $6,
       source_id    = $7,
       source_url   = $8,
       published_at = $9,
       updated_at   = $10
WHERE id = $11`
	res, err := tx.ExecContext(ctx, query,
		t.Title, t.SubTitle, nullString(t.Content), t.Type, t.Status, t.IsHighlight,
		t.SourceID, nullString(t.SourceURL), nullTime(t.PublishedAt), t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}

	// Full replacement of the tag association set.
	if _, err := tx.ExecContext(ctx, `DELETE FROM transmission_tags WHERE transmission_id = $1`, t.ID); err != nil {
		return fmt.Errorf("Update: delete tags: %w", err)
	}
	if err := insertTagAssociations(ctx, tx, t.ID, tagIDs); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Update: commit: %w", err)
	}
	return nil
}

func (repo *TransmissionRepo) Delete(ctx context.Context, id string) error {
	// transmission_tags rows cascade via the FK constraint.
	res, err := repo.db.ExecContext(ctx, `DELETE FROM transmissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *TransmissionRepo) FilterExistingTagIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := repo.db.QueryContext(ctx, `SELECT id FROM tags WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("FilterExistingTagIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	existing := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("FilterExistingTagIDs: Scan: %w", err)
		}
		existing = append(existing, id)
	}
	return existing, rows.Err()
}

func (repo *TransmissionRepo) ListPublishDates(ctx context.Context) ([]time.Time, error) {
	const query = `
SELECT published_at
FROM transmissions
WHERE published_at IS NOT NULL
ORDER BY published_at DESC`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListPublishDates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	dates := make([]time.Time, 0, 100)
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("ListPublishDates: Scan: %w", err)
		}
		dates = append(dates, ts)
	}
	return dates, rows.Err()
}

func insertTagAssociations(ctx context.Context, tx *sql.Tx, transmissionID string, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transmission_tags (transmission_id, tag_id) VALUES ($1, $2)`,
			transmissionID, tagID,
		); err != nil {
			return fmt.Errorf("insert tag %d: %w", tagID, err)
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
