package domain

import "time"

// Reply is a direct message sent in response to a story.
type Reply struct {
	ID        int
	StoryID   string
	SenderID  string
	Body      string
	CreatedAt time.Time
}
