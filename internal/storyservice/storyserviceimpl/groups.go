package storyserviceimpl

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/soccervitae/soccerapp/internal/domain"
	"github.com/soccervitae/soccerapp/internal/repositories/story"
)

func (s *StoryServiceImpl) FetchGroupedStories(ctx context.Context, viewerID string) ([]domain.StoryGroup, error) {
	rows, err := s.StoryRepo.ListActive(ctx, s.Now().Add(-s.TTL))
	if err != nil {
		return nil, fmt.Errorf("failed to list active stories: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	seen, err := s.ViewRepo.SeenStoryIDs(ctx, viewerID, lo.Map(rows, func(r story.Row, _ int) string {
		return r.ID
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to load seen stories: %w", err)
	}

	groups := groupByAuthor(rows, seen)
	orderGroups(groups, viewerID)

	s.Logger.Debug("Grouped active stories", "viewer_id", viewerID, "groups", len(groups), "stories", len(rows))
	return groups, nil
}

// groupByAuthor keeps the row order (oldest first) inside each group.
func groupByAuthor(rows []story.Row, seen map[string]bool) []domain.StoryGroup {
	byAuthor := lo.GroupBy(rows, func(r story.Row) string {
		return r.AuthorID
	})
	authors := lo.Uniq(lo.Map(rows, func(r story.Row, _ int) string {
		return r.AuthorID
	}))

	groups := make([]domain.StoryGroup, 0, len(authors))
	for _, author := range authors {
		authorRows := byAuthor[author]
		stories := lo.Map(authorRows, func(r story.Row, _ int) domain.Story {
			return r.Story
		})
		groups = append(groups, domain.StoryGroup{
			AuthorID:    author,
			DisplayName: authorRows[0].DisplayName,
			AvatarURL:   authorRows[0].AvatarURL,
			Stories:     stories,
			HasUnseenStory: lo.SomeBy(stories, func(st domain.Story) bool {
				return !seen[st.ID]
			}),
		})
	}
	return groups
}

// orderGroups puts the viewer's own group first, then groups with unseen
// stories, then the rest; ties go to the most recent story.
func orderGroups(groups []domain.StoryGroup, viewerID string) {
	rank := func(g domain.StoryGroup) int {
		switch {
		case viewerID != "" && g.AuthorID == viewerID:
			return 0
		case g.HasUnseenStory:
			return 1
		default:
			return 2
		}
	}
	latest := func(g domain.StoryGroup) int64 {
		return g.Stories[len(g.Stories)-1].CreatedAt.UnixNano()
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ri, rj := rank(groups[i]), rank(groups[j])
		if ri != rj {
			return ri < rj
		}
		return latest(groups[i]) > latest(groups[j])
	})
}
