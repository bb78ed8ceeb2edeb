package domain

import "time"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	return k == MediaKindImage || k == MediaKindVideo
}

// Story is a single ephemeral media item.
type Story struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"` // back-reference to the group author
	MediaURL  string    `json:"media_url"`
	MediaKind MediaKind `json:"media_kind"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedBy reports whether viewerID authored the story.
func (s Story) OwnedBy(viewerID string) bool {
	return viewerID != "" && s.AuthorID == viewerID
}
