package reply

import (
	"context"
	"errors"

	"github.com/soccervitae/soccerapp/internal/domain"
)

var ErrCannotCreate = errors.New("error create story reply")

//go:generate go run go.uber.org/mock/mockgen -source=reply.go -destination=mocks/mock.go

type Repository interface {
	Create(ctx context.Context, reply domain.Reply) error
	CountByStory(ctx context.Context, storyID string) (int, error)
}
