package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitStories, downInitStories)
}

func upInitStories(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS profiles (
		id           TEXT PRIMARY KEY,
		display_name TEXT NOT NULL DEFAULT '',
		avatar_url   TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS stories (
		id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
		author_id  TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		media_url  TEXT NOT NULL,
		media_kind TEXT NOT NULL CHECK (media_kind IN ('image', 'video')),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS stories_created_at_idx ON stories (created_at);
	CREATE INDEX IF NOT EXISTS stories_author_idx ON stories (author_id, created_at);
	`)
	return err
}

func downInitStories(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS stories;
	DROP TABLE IF EXISTS profiles;
	`)
	return err
}
