package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateScrapeRuns, downCreateScrapeRuns)
}

func upCreateScrapeRuns(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS scrape_runs (
		id           VARCHAR PRIMARY KEY,
		instance     VARCHAR NOT NULL,
		username     VARCHAR NOT NULL,
		account_id   VARCHAR NOT NULL DEFAULT '',
		method       VARCHAR NOT NULL,
		total_posts  INTEGER NOT NULL DEFAULT 0,
		total_images INTEGER NOT NULL DEFAULT 0,
		output_path  VARCHAR NOT NULL,
		started_at   TIMESTAMP WITH TIME ZONE NOT NULL,
		duration_ms  BIGINT NOT NULL DEFAULT 0,
		error        TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS scrape_runs_username_started_at_idx ON scrape_runs (username, started_at DESC);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downCreateScrapeRuns(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS scrape_runs;
	`)
	if err != nil {
		return err
	}
	return nil
}
