package viewer

import (
	"context"

	"github.com/soccervitae/soccerapp/internal/replay"
	apperrors "github.com/soccervitae/soccerapp/pkg/errors"
)

var (
	ErrNotOpen     = apperrors.WrapWithCode(apperrors.ErrConflict, "viewer_not_open", "no story viewer is open")
	ErrAlreadyOpen = apperrors.WrapWithCode(apperrors.ErrConflict, "viewer_already_open", "a story viewer is already open")
	ErrRateLimited = apperrors.WrapWithCode(apperrors.ErrTooManyRequests, "rate_limited", "too many likes or replies, slow down")
)

type OpenRequest struct {
	ViewerID          string
	InitialGroupIndex int
	// Origin is the on-screen frame of the tapped thumbnail.
	Origin   replay.Rect
	Viewport replay.Size
	// OnClose is called once, on the session goroutine, when the viewer closes.
	OnClose func(replay.CloseReason)
}

type OpenResult struct {
	SessionID string           `json:"session_id"`
	Transform replay.Transform `json:"transform"`
	Snapshot  replay.Snapshot  `json:"snapshot"`
}

type DragResult struct {
	Dismissal replay.Dismissal `json:"dismissal"`
	Snapshot  replay.Snapshot  `json:"snapshot"`
}

//go:generate go run go.uber.org/mock/mockgen -source=viewer.go -destination=mocks/mock.go

// Client drives the single full-screen story viewer. Every call is applied on
// the session's own goroutine and returns the resulting snapshot.
type Client interface {
	Open(ctx context.Context, req OpenRequest) (OpenResult, error)
	Close(ctx context.Context) (replay.Snapshot, error)
	Snapshot(ctx context.Context) (replay.Snapshot, error)

	Advance(ctx context.Context) (replay.Snapshot, error)
	Retreat(ctx context.Context) (replay.Snapshot, error)
	JumpToStory(ctx context.Context, index int) (replay.Snapshot, error)

	AddPauseReason(ctx context.Context, reason replay.Reason) (replay.Snapshot, error)
	RemovePauseReason(ctx context.Context, reason replay.Reason) (replay.Snapshot, error)

	BeginDrag(ctx context.Context) (replay.Snapshot, error)
	MoveDrag(ctx context.Context, translation float64) (replay.Snapshot, error)
	EndDrag(ctx context.Context, translation, velocity float64) (DragResult, error)

	SetDraft(ctx context.Context, text string) (replay.Snapshot, error)
	ToggleLike(ctx context.Context, wasLiked bool) (replay.Snapshot, error)
	SendReply(ctx context.Context) (replay.Snapshot, error)
	DeleteStory(ctx context.Context) (replay.Snapshot, error)

	// Refresh reloads the grouped stories and reconciles the open session with them.
	Refresh(ctx context.Context) (replay.Snapshot, error)
}
