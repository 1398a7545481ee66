// Command seed populates the database with reference data. With -content
// it additionally ingests markdown transmissions from a directory,
// attributed to -publisher or to the first known user.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"verse-report/internal/infra/db"
	"verse-report/internal/observability/logging"
	"verse-report/internal/seed"
)

func main() {
	contentDir := flag.String("content", "", "directory of markdown transmission files to ingest")
	publisher := flag.String("publisher", "", "user id transmissions are attributed to (defaults to the first user)")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	seeder := &seed.Seeder{DB: database, Logger: logger}

	if err := seeder.Run(ctx); err != nil {
		logger.Error("seed reference data", slog.Any("error", err))
		os.Exit(1)
	}

	if *contentDir == "" {
		return
	}

	publisherID := *publisher
	if publisherID == "" {
		var err error
		publisherID, err = firstUser(ctx, database)
		if err != nil {
			logger.Error("no publisher available; log in once or pass -publisher", slog.Any("error", err))
			os.Exit(1)
		}
	}

	if err := seeder.SeedContent(ctx, *contentDir, publisherID); err != nil {
		logger.Error("seed content", slog.Any("error", err))
		os.Exit(1)
	}
}

func firstUser(ctx context.Context, database *sql.DB) (string, error) {
	var id string
	err := database.QueryRowContext(ctx, `SELECT id FROM users ORDER BY id LIMIT 1`).Scan(&id)
	return id, err
}
