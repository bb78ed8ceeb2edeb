package domain

// StoryGroup holds the active stories of one author, oldest first.
type StoryGroup struct {
	AuthorID       string  `json:"author_id"`
	DisplayName    string  `json:"display_name"`
	AvatarURL      string  `json:"avatar_url"`
	Stories        []Story `json:"stories"`
	HasUnseenStory bool    `json:"has_unseen_story"`
}

func (g StoryGroup) Len() int {
	return len(g.Stories)
}

// IndexOf returns the index of the story with the given id or -1.
func (g StoryGroup) IndexOf(storyID string) int {
	for i, s := range g.Stories {
		if s.ID == storyID {
			return i
		}
	}
	return -1
}
