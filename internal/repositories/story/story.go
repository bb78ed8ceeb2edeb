package story

import (
	"context"
	"errors"
	"time"

	"github.com/soccervitae/soccerapp/internal/domain"
)

// Row is a story joined with its author's profile.
type Row struct {
	domain.Story
	DisplayName string
	AvatarURL   string
}

var ErrNotFound = errors.New("story not found")

//go:generate go run go.uber.org/mock/mockgen -source=story.go -destination=mocks/mock.go

type Repository interface {
	// ListActive returns stories created after since, oldest first.
	ListActive(ctx context.Context, since time.Time) ([]Row, error)
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	// Delete removes the story if authorID wrote it.
	Delete(ctx context.Context, id, authorID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
