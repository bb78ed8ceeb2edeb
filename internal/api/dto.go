package api

import "github.com/soccervitae/soccerapp/internal/replay"

type OpenRequest struct {
	ViewerID          string      `json:"viewer_id"`
	InitialGroupIndex int         `json:"initial_group_index"`
	Origin            replay.Rect `json:"origin"`
	Viewport          replay.Size `json:"viewport"`
}

type JumpRequest struct {
	Index int `json:"index"`
}

type DragMoveRequest struct {
	Translation float64 `json:"translation"`
}

type DragEndRequest struct {
	Translation float64 `json:"translation"`
	Velocity    float64 `json:"velocity"`
}

type DraftRequest struct {
	Text string `json:"text"`
}

type LikeRequest struct {
	WasLiked bool `json:"was_liked"`
}

type LikeStatusResponse struct {
	StoryID string `json:"story_id"`
	Liked   bool   `json:"liked"`
}

// FooterResponse is what the author sees under their own story.
type FooterResponse struct {
	StoryID     string `json:"story_id"`
	ViewerCount int    `json:"viewer_count"`
	ReplyCount  int    `json:"reply_count"`
	Views       string `json:"views"`
	Replies     string `json:"replies"`
}
