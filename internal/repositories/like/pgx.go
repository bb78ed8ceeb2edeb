package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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
		logger: logger.WithComponent("LikeRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Exists(ctx context.Context, storyID, viewerID string) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From("story_likes").
		Where(sq.Eq{"story_id": storyID, "viewer_id": viewerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return true, nil
}

func (r *PgxRepository) Create(ctx context.Context, storyID, viewerID string) error {
	query, args, err := repositories.SqBuilder.
		Insert("story_likes").
		Columns("story_id", "viewer_id", "created_at").
		Values(storyID, viewerID, time.Now()).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == repositories.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to like story %s: %w", storyID, err)
	}
	return nil
}

func (r *PgxRepository) Delete(ctx context.Context, storyID, viewerID string) error {
	query, args, err := repositories.SqBuilder.
		Delete("story_likes").
		Where(sq.Eq{"story_id": storyID, "viewer_id": viewerID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to unlike story %s: %w", storyID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
