package view

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/soccervitae/soccerapp/internal/repositories"
	"github.com/soccervitae/soccerapp/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("ViewRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, storyID, viewerID string) error {
	query, args, err := repositories.SqBuilder.
		Insert("story_views").
		Columns("story_id", "viewer_id", "viewed_at").
		Values(storyID, viewerID, time.Now()).
		Suffix("ON CONFLICT (story_id, viewer_id) DO NOTHING").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record view of %s: %w", storyID, err)
	}
	return nil
}

func (r *PgxRepository) CountByStory(ctx context.Context, storyID string) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("COUNT(*)").
		From("story_views").
		Where(sq.Eq{"story_id": storyID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count views of %s: %w", storyID, err)
	}
	return n, nil
}

func (r *PgxRepository) SeenStoryIDs(ctx context.Context, viewerID string, storyIDs []string) (map[string]bool, error) {
	seen := make(map[string]bool, len(storyIDs))
	if viewerID == "" || len(storyIDs) == 0 {
		return seen, nil
	}

	query, args, err := repositories.SqBuilder.
		Select("story_id").
		From("story_views").
		Where(sq.Eq{"viewer_id": viewerID, "story_id": storyIDs}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query seen stories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan seen story: %w", err)
		}
		seen[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seen stories: %w", err)
	}

	return seen, nil
}
