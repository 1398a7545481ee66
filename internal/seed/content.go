package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"verse-report/internal/domain/entity"
	"verse-report/internal/pkg/frontmatter"
)

// contentFile is a markdown transmission parsed from a seed content file.
type contentFile struct {
	Transmission entity.Transmission
	SourceSlug   string
	TagSlugs     []string
	Confidence   int
}

// parseContentFile reads one markdown file's frontmatter into a transmission.
// The markdown body becomes the content; a publishedAt timestamp marks the
// transmission published, otherwise it stays a draft.
func parseContentFile(src, publisherID string) (*contentFile, error) {
	doc, err := frontmatter.Parse(src)
	if err != nil {
		return nil, err
	}

	title := doc.Get("title")
	if title == "" {
		return nil, fmt.Errorf("seed content: title is required")
	}
	typ, err := entity.ParseTransmissionType(doc.Get("type"))
	if err != nil {
		return nil, err
	}
	sourceSlug := doc.Get("source")
	if sourceSlug == "" {
		return nil, fmt.Errorf("seed content: source is required")
	}
	if err := entity.ValidateSourceURL(doc.Get("sourceUrl")); err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	status := entity.StatusDraft
	if doc.Has("publishedAt") {
		ts, err := doc.GetTime("publishedAt")
		if err != nil {
			return nil, err
		}
		publishedAt = &ts
		status = entity.StatusPublished
	}

	now := time.Now()
	return &contentFile{
		Transmission: entity.Transmission{
			ID:          uuid.NewString(),
			Title:       title,
			SubTitle:    doc.Get("subtitle"),
			Content:     strings.TrimSpace(doc.Body),
			Type:        typ,
			Status:      status,
			IsHighlight: doc.GetBool("highlight"),
			SourceURL:   doc.Get("sourceUrl"),
			PublishedAt: publishedAt,
			PublisherID: publisherID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		SourceSlug: sourceSlug,
		TagSlugs:   doc.List("tags"),
		Confidence: doc.GetInt("confidence", 100),
	}, nil
}

// SeedContent ingests every .md file under dir as a transmission attributed
// to publisherID. Unknown tag slugs are skipped with a warning; an unknown
// source slug fails the file.
func (s *Seeder) SeedContent(ctx context.Context, dir, publisherID string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read content dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name())) // #nosec G304
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Name(), err)
		}
		cf, err := parseContentFile(string(raw), publisherID)
		if err != nil {
			return fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		if err := s.insertContent(ctx, cf); err != nil {
			return fmt.Errorf("insert %s: %w", e.Name(), err)
		}
		s.Logger.Info("seeded transmission",
			slog.String("file", e.Name()),
			slog.String("title", cf.Transmission.Title))
	}
	return nil
}

func (s *Seeder) insertContent(ctx context.Context, cf *contentFile) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var sourceID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM sources WHERE slug = $1`, cf.SourceSlug).Scan(&sourceID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("unknown source %q", cf.SourceSlug)
	}
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}

	t := cf.Transmission
	var sourceURL any
	if t.SourceURL != "" {
		sourceURL = t.SourceURL
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO transmissions (id, title, sub_title, content, type, status, is_highlight,
                           source_id, source_url, published_at, publisher_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.Title, t.SubTitle, t.Content, string(t.Type), string(t.Status), t.IsHighlight,
		sourceID, sourceURL, t.PublishedAt, t.PublisherID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transmission: %w", err)
	}

	for _, tagSlug := range cf.TagSlugs {
		var tagID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM tags WHERE slug = $1`, tagSlug).Scan(&tagID)
		if err == sql.ErrNoRows {
			s.Logger.Warn("unknown tag slug skipped", slog.String("slug", tagSlug))
			continue
		}
		if err != nil {
			return fmt.Errorf("resolve tag %q: %w", tagSlug, err)
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO transmission_tags (transmission_id, tag_id, confidence)
VALUES ($1, $2, $3)`, t.ID, tagID, cf.Confidence)
		if err != nil {
			return fmt.Errorf("link tag %q: %w", tagSlug, err)
		}
	}

	return tx.Commit()
}
