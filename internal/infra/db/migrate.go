package db

import (
	"database/sql"
)

// MigrateUp creates the schema when it does not exist yet. Statements are
// idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	tables := []string{
		`
CREATE TABLE IF NOT EXISTS categories (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    slug        TEXT NOT NULL UNIQUE,
    type        VARCHAR(20) NOT NULL,
    description TEXT,
    color       VARCHAR(20),
    sort_order  INTEGER NOT NULL DEFAULT 0
)`,
		`
CREATE TABLE IF NOT EXISTS ship_families (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE
)`,
		`
CREATE TABLE IF NOT EXISTS tags (
    id             SERIAL PRIMARY KEY,
    name           TEXT NOT NULL,
    slug           TEXT NOT NULL,
    category_id    TEXT NOT NULL REFERENCES categories(id),
    ship_family_id INTEGER REFERENCES ship_families(id),
    sort_order     INTEGER NOT NULL DEFAULT 0,
    UNIQUE (category_id, slug)
)`,
		`
CREATE TABLE IF NOT EXISTS sources (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    slug        TEXT NOT NULL UNIQUE,
    description TEXT,
    sort_order  INTEGER NOT NULL DEFAULT 0
)`,
		`
CREATE TABLE IF NOT EXISTS users (
    id    TEXT PRIMARY KEY,
    name  TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE
)`,
		`
CREATE TABLE IF NOT EXISTS roles (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT ''
)`,
		`
CREATE TABLE IF NOT EXISTS user_roles (
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role_id INTEGER NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, role_id)
)`,
		`
CREATE TABLE IF NOT EXISTS transmissions (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    sub_title    TEXT NOT NULL DEFAULT '',
    content      TEXT,
    type         VARCHAR(20) NOT NULL,
    status       VARCHAR(20) NOT NULL DEFAULT 'DRAFT',
    is_highlight BOOLEAN NOT NULL DEFAULT FALSE,
    source_id    INTEGER NOT NULL REFERENCES sources(id),
    source_url   TEXT,
    published_at TIMESTAMPTZ,
    publisher_id TEXT NOT NULL REFERENCES users(id),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS transmission_tags (
    transmission_id TEXT NOT NULL REFERENCES transmissions(id) ON DELETE CASCADE,
    tag_id          INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    confidence      INTEGER NOT NULL DEFAULT 100,
    PRIMARY KEY (transmission_id, tag_id)
)`,
	}
	for _, stmt := range tables {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		// timeline ordering and year-range scans
		`CREATE INDEX IF NOT EXISTS idx_transmissions_published_at ON transmissions(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transmissions_publisher_id ON transmissions(publisher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transmissions_source_id ON transmissions(source_id)`,
		// tag filter EXISTS probes
		`CREATE INDEX IF NOT EXISTS idx_transmission_tags_tag_id ON transmission_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tags_category_id ON tags(category_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
