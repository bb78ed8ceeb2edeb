package reply

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/soccervitae/soccerapp/internal/domain"
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
		logger: logger.WithComponent("ReplyRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, reply domain.Reply) error {
	createdAt := reply.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args, err := repositories.SqBuilder.
		Insert("story_replies").
		Columns("story_id", "sender_id", "body", "created_at").
		Values(reply.StoryID, reply.SenderID, reply.Body, createdAt).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return errors.Join(fmt.Errorf("failed to create reply to %s: %w", reply.StoryID, err), ErrCannotCreate)
	}
	return nil
}

func (r *PgxRepository) CountByStory(ctx context.Context, storyID string) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("COUNT(*)").
		From("story_replies").
		Where(sq.Eq{"story_id": storyID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count replies to %s: %w", storyID, err)
	}
	return n, nil
}
