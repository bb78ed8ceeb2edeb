package storyserviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/soccervitae/soccerapp/internal/domain"
	"github.com/soccervitae/soccerapp/internal/repositories/like"
	"github.com/soccervitae/soccerapp/internal/repositories/story"
	apperrors "github.com/soccervitae/soccerapp/pkg/errors"
)

func (s *StoryServiceImpl) RecordView(ctx context.Context, storyID, viewerID string) error {
	if viewerID == "" {
		return apperrors.WrapWithCode(apperrors.ErrInvalidInput, "anonymous_view", "views are only recorded for signed in viewers")
	}
	return s.ViewRepo.Create(ctx, storyID, viewerID)
}

func (s *StoryServiceImpl) FetchLikeStatus(ctx context.Context, storyID, viewerID string) (bool, error) {
	if viewerID == "" {
		return false, nil
	}
	return s.LikeRepo.Exists(ctx, storyID, viewerID)
}

// ToggleLike flips the like from wasLiked. A like that is already in the
// wanted state counts as success.
func (s *StoryServiceImpl) ToggleLike(ctx context.Context, storyID, viewerID string, wasLiked bool) error {
	if wasLiked {
		if err := s.LikeRepo.Delete(ctx, storyID, viewerID); err != nil && !errors.Is(err, like.ErrNotFound) {
			return err
		}
		return nil
	}
	if err := s.LikeRepo.Create(ctx, storyID, viewerID); err != nil && !errors.Is(err, like.ErrAlreadyExists) {
		return err
	}
	return nil
}

func (s *StoryServiceImpl) SendReply(ctx context.Context, storyID, viewerID, text string) error {
	body := strings.TrimSpace(text)
	if body == "" {
		return apperrors.WrapWithCode(apperrors.ErrInvalidInput, "empty_reply", "reply text is empty")
	}
	return s.ReplyRepo.Create(ctx, domain.Reply{
		StoryID:   storyID,
		SenderID:  viewerID,
		Body:      body,
		CreatedAt: s.Now(),
	})
}

func (s *StoryServiceImpl) DeleteStory(ctx context.Context, storyID, viewerID string) error {
	st, err := s.StoryRepo.GetByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			return apperrors.WrapWithCode(apperrors.ErrNotFound, "story_not_found", "story does not exist")
		}
		return err
	}
	if !st.OwnedBy(viewerID) {
		return apperrors.WrapWithCode(apperrors.ErrForbidden, "not_owner", "only the author can delete a story")
	}

	if err := s.StoryRepo.Delete(ctx, storyID, viewerID); err != nil {
		return fmt.Errorf("failed to delete story %s: %w", storyID, err)
	}
	s.Logger.Info("Story deleted", "story_id", storyID, "author_id", viewerID)
	return nil
}

func (s *StoryServiceImpl) FetchViewerCount(ctx context.Context, storyID string) (int, error) {
	return s.ViewRepo.CountByStory(ctx, storyID)
}

func (s *StoryServiceImpl) FetchReplyCount(ctx context.Context, storyID string) (int, error) {
	return s.ReplyRepo.CountByStory(ctx, storyID)
}
