package storyservice

import (
	"context"

	"github.com/soccervitae/soccerapp/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=storyservice.go -destination=mocks/mock.go

// Client is the data service the story viewer reads from and writes to.
type Client interface {
	// FetchGroupedStories returns one group per author with active stories. The
	// viewer's own group comes first, then groups with unseen stories.
	FetchGroupedStories(ctx context.Context, viewerID string) ([]domain.StoryGroup, error)
	RecordView(ctx context.Context, storyID, viewerID string) error
	FetchLikeStatus(ctx context.Context, storyID, viewerID string) (bool, error)
	ToggleLike(ctx context.Context, storyID, viewerID string, wasLiked bool) error
	SendReply(ctx context.Context, storyID, viewerID, text string) error
	DeleteStory(ctx context.Context, storyID, viewerID string) error
	FetchViewerCount(ctx context.Context, storyID string) (int, error)
	FetchReplyCount(ctx context.Context, storyID string) (int, error)
}
