// Package schema bootstraps the tables this service owns. Statements are
// idempotent so running them on every startup is safe.
package schema

import (
	"context"
	"fmt"

	"job-hunt-agent/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS postings (
		canonical_id text PRIMARY KEY,
		id           uuid NOT NULL,
		source       text NOT NULL DEFAULT '',
		external_id  text NOT NULL DEFAULT '',
		title        text NOT NULL,
		company      text NOT NULL,
		location     text NOT NULL DEFAULT '',
		description  text NOT NULL DEFAULT '',
		apply_url    text NOT NULL,
		posted_at    timestamptz NULL,
		ingested_at  timestamptz NOT NULL,
		score        double precision NOT NULL DEFAULT 0,
		breakdown    jsonb NOT NULL DEFAULT '{}'::jsonb
	)`,
	`CREATE INDEX IF NOT EXISTS idx_postings_score ON postings (score DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_postings_ingested_at ON postings (ingested_at)`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		id           integer PRIMARY KEY,
		full_name    text NOT NULL DEFAULT '',
		roles        jsonb NOT NULL DEFAULT '[]'::jsonb,
		skills       jsonb NOT NULL DEFAULT '[]'::jsonb,
		locations    jsonb NOT NULL DEFAULT '[]'::jsonb,
		bad_keywords jsonb NOT NULL DEFAULT '[]'::jsonb,
		remote_only  boolean NOT NULL DEFAULT false,
		weights      jsonb NOT NULL DEFAULT '{}'::jsonb,
		updated_at   timestamptz NOT NULL DEFAULT now()
	)`,
}

func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
