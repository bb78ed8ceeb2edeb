package view

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=view.go -destination=mocks/mock.go

type Repository interface {
	// Create records that viewerID saw storyID. Recording twice is not an error.
	Create(ctx context.Context, storyID, viewerID string) error
	CountByStory(ctx context.Context, storyID string) (int, error)
	// SeenStoryIDs returns the subset of storyIDs already seen by viewerID.
	SeenStoryIDs(ctx context.Context, viewerID string, storyIDs []string) (map[string]bool, error)
}
