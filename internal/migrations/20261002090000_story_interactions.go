package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upStoryInteractions, downStoryInteractions)
}

func upStoryInteractions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS story_views (
		story_id  TEXT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
		viewer_id TEXT NOT NULL,
		viewed_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		UNIQUE (story_id, viewer_id)
	);

	CREATE TABLE IF NOT EXISTS story_likes (
		story_id   TEXT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
		viewer_id  TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		UNIQUE (story_id, viewer_id)
	);

	CREATE TABLE IF NOT EXISTS story_replies (
		id         SERIAL PRIMARY KEY,
		story_id   TEXT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
		sender_id  TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS story_views_viewer_idx ON story_views (viewer_id);
	CREATE INDEX IF NOT EXISTS story_replies_story_idx ON story_replies (story_id);
	`)
	return err
}

func downStoryInteractions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS story_replies;
	DROP TABLE IF EXISTS story_likes;
	DROP TABLE IF EXISTS story_views;
	`)
	return err
}
