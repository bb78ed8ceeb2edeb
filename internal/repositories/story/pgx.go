package story

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/soccervitae/soccerapp/internal/domain"
	"github.com/soccervitae/soccerapp/internal/repositories"
	"github.com/soccervitae/soccerapp/pkg/logger"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("StoryRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) ListActive(ctx context.Context, since time.Time) ([]Row, error) {
	query, args, err := repositories.SqBuilder.
		Select("s.id", "s.author_id", "s.media_url", "s.media_kind", "s.created_at",
			"COALESCE(pr.display_name, '')", "COALESCE(pr.avatar_url, '')").
		From("stories s").
		LeftJoin("profiles pr ON pr.id = s.author_id").
		Where(sq.Gt{"s.created_at": since}).
		OrderBy("s.created_at ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active stories: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.AuthorID, &r.MediaURL, &r.MediaKind, &r.CreatedAt, &r.DisplayName, &r.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan story row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating story rows: %w", err)
	}

	return out, nil
}

func (p *Pgx) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "author_id", "media_url", "media_kind", "created_at").
		From("stories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var s domain.Story
	err = p.pg.QueryRow(ctx, query, args...).Scan(&s.ID, &s.AuthorID, &s.MediaURL, &s.MediaKind, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story by id: %w", err)
	}

	return &s, nil
}

func (p *Pgx) Delete(ctx context.Context, id, authorID string) error {
	query, args, err := repositories.SqBuilder.
		Delete("stories").
		Where(sq.Eq{"id": id, "author_id": authorID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete story %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *Pgx) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete("stories").
		Where(sq.LtOrEq{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired stories: %w", err)
	}

	return result.RowsAffected(), nil
}
