package like

import (
	"context"
	"errors"
)

var (
	ErrAlreadyExists = errors.New("story already liked")
	ErrNotFound      = errors.New("story like not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=like.go -destination=mocks/mock.go

type Repository interface {
	Exists(ctx context.Context, storyID, viewerID string) (bool, error)
	Create(ctx context.Context, storyID, viewerID string) error
	Delete(ctx context.Context, storyID, viewerID string) error
}
