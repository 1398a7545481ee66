package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/* ───── reference data integrity ───── */

func TestReferenceData_SlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range categories {
		assert.False(t, seen[c.Slug], "duplicate category slug %s", c.Slug)
		seen[c.Slug] = true
	}
	seen = map[string]bool{}
	for _, src := range sources {
		assert.False(t, seen[src.Slug], "duplicate source slug %s", src.Slug)
		seen[src.Slug] = true
	}
	seen = map[string]bool{}
	for _, tag := range tags {
		assert.False(t, seen[tag.Slug], "duplicate tag slug %s", tag.Slug)
		seen[tag.Slug] = true
	}
}

func TestReferenceData_TagRefsResolve(t *testing.T) {
	categorySlugs := map[string]bool{}
	for _, c := range categories {
		categorySlugs[c.Slug] = true
	}
	familySlugs := map[string]bool{}
	for _, f := range shipFamilies {
		familySlugs[f.Slug] = true
	}

	for _, tag := range tags {
		assert.True(t, categorySlugs[tag.CategorySlug], "tag %s references unknown category %s", tag.Slug, tag.CategorySlug)
		if tag.FamilySlug != "" {
			assert.True(t, familySlugs[tag.FamilySlug], "tag %s references unknown family %s", tag.Slug, tag.FamilySlug)
		}
	}
}

func TestRun_UpsertsInDependencyOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range roles {
		mock.ExpectExec("INSERT INTO roles").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range sources {
		mock.ExpectExec("INSERT INTO sources").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range categories {
		mock.ExpectExec("INSERT INTO categories").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range shipFamilies {
		mock.ExpectExec("INSERT INTO ship_families").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range tags {
		mock.ExpectExec("INSERT INTO tags").WillReturnResult(sqlmock.NewResult(0, 1))
	}

	s := &Seeder{DB: db, Logger: testLogger()}
	require.NoError(t, s.Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ───── content files ───── */

const sampleContent = `---
title: Ironclad Assault Ship Unveiled
subtitle: Drake reveals new heavy assault ship
type: OFFICIAL
highlight: true
source: spectrum
sourceUrl: https://robertsspaceindustries.com/ironclad
publishedAt: 2026-01-15T10:00:00Z
tags:
  - ironclad-assault
  - nyx
confidence: 90
---

The **Ironclad Assault** drops the cargo modules for gun emplacements.
`

func TestParseContentFile(t *testing.T) {
	cf, err := parseContentFile(sampleContent, "user-1")
	require.NoError(t, err)

	tr := cf.Transmission
	assert.Equal(t, "Ironclad Assault Ship Unveiled", tr.Title)
	assert.Equal(t, "Drake reveals new heavy assault ship", tr.SubTitle)
	assert.True(t, tr.IsHighlight)
	assert.Equal(t, "user-1", tr.PublisherID)
	require.NotNil(t, tr.PublishedAt)
	assert.Equal(t, "PUBLISHED", string(tr.Status))
	assert.NotEmpty(t, tr.ID)
	assert.Contains(t, tr.Content, "Ironclad Assault")

	assert.Equal(t, "spectrum", cf.SourceSlug)
	assert.Equal(t, []string{"ironclad-assault", "nyx"}, cf.TagSlugs)
	assert.Equal(t, 90, cf.Confidence)
}

func TestParseContentFile_DraftWithoutPublishDate(t *testing.T) {
	src := "---\ntitle: WIP\ntype: LEAK\nsource: reddit\n---\nbody\n"
	cf, err := parseContentFile(src, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "DRAFT", string(cf.Transmission.Status))
	assert.Nil(t, cf.Transmission.PublishedAt)
	assert.Equal(t, 100, cf.Confidence)
}

func TestParseContentFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing title", src: "---\ntype: LEAK\nsource: reddit\n---\n"},
		{name: "bad type", src: "---\ntitle: x\ntype: RUMOR\nsource: reddit\n---\n"},
		{name: "missing source", src: "---\ntitle: x\ntype: LEAK\n---\n"},
		{name: "bad url", src: "---\ntitle: x\ntype: LEAK\nsource: reddit\nsourceUrl: ftp://x\n---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseContentFile(tt.src, "user-1")
			assert.Error(t, err)
		})
	}
}

func TestInsertContent_SkipsUnknownTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cf, err := parseContentFile(sampleContent, "user-1")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM sources").
		WithArgs("spectrum").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO transmissions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM tags").
		WithArgs("ironclad-assault").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectExec("INSERT INTO transmission_tags").
		WithArgs(cf.Transmission.ID, int64(2), 90).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM tags").
		WithArgs("nyx").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	s := &Seeder{DB: db, Logger: testLogger()}
	require.NoError(t, s.insertContent(context.Background(), cf))
	assert.NoError(t, mock.ExpectationsWereMet())
}
