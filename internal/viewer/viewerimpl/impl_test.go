package viewerimpl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/soccervitae/soccerapp/internal/domain"
	"github.com/soccervitae/soccerapp/internal/replay"
	mock_storyservice "github.com/soccervitae/soccerapp/internal/storyservice/mocks"
	"github.com/soccervitae/soccerapp/internal/viewer"
	"github.com/soccervitae/soccerapp/pkg/config"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

const me = "me"

var (
	ctx     = context.Background()
	created = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
)

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

type harness struct {
	t       *testing.T
	v       *ViewerImpl
	clock   *clockwork.FakeClock
	stories *mock_storyservice.MockClient
	cfg     *config.Config
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Replay.TickInterval = 100 * time.Millisecond
	cfg.Replay.ProgressStep = 50
	cfg.Replay.ExitDelay = 150 * time.Millisecond
	cfg.Replay.EnterDelay = 300 * time.Millisecond
	cfg.Replay.LikeBurst = time.Second
	cfg.Replay.DismissDistance = 100
	cfg.Replay.DismissVelocity = 500
	cfg.Replay.DragResistance = 0.55
	cfg.Replay.DragMaxOffset = 200
	cfg.Coordinator.Workers = 2
	cfg.Coordinator.RequestTimeout = time.Second
	cfg.Coordinator.ActionsPer = time.Second
	cfg.Coordinator.ActionsBurst = 5
	return cfg
}

func newHarness(t *testing.T, customize ...func(*Opts)) *harness {
	ctrl := gomock.NewController(t)
	lc := fxtest.NewLifecycle(t)
	h := &harness{
		t:       t,
		clock:   clockwork.NewFakeClock(),
		stories: mock_storyservice.NewMockClient(ctrl),
		cfg:     testConfig(),
	}

	opts := Opts{
		Lifecycle: lc,
		Stories:   h.stories,
		Logger:    logger.NewNop(),
		Config:    h.cfg,
		Clock:     h.clock,
	}
	for _, c := range customize {
		c(&opts)
	}

	v, err := New(opts)
	require.NoError(t, err)
	h.v = v

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })
	return h
}

func group(author string, n int) domain.StoryGroup {
	g := domain.StoryGroup{AuthorID: author, DisplayName: author, HasUnseenStory: true}
	for i := 0; i < n; i++ {
		g.Stories = append(g.Stories, domain.Story{
			ID:        fmt.Sprintf("%s-%d", author, i),
			AuthorID:  author,
			MediaURL:  fmt.Sprintf("https://cdn.example.com/%s/%d.jpg", author, i),
			MediaKind: domain.MediaKindImage,
			CreatedAt: created.Add(time.Duration(i) * time.Minute),
		})
	}
	return g
}

func (h *harness) allowViews() {
	h.stories.EXPECT().RecordView(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (h *harness) open(groups []domain.StoryGroup, initial int) viewer.OpenResult {
	h.t.Helper()
	h.stories.EXPECT().FetchGroupedStories(gomock.Any(), me).Return(groups, nil)
	res, err := h.v.Open(ctx, viewer.OpenRequest{ViewerID: me, InitialGroupIndex: initial})
	require.NoError(h.t, err)
	return res
}

func (h *harness) snapshot() replay.Snapshot {
	h.t.Helper()
	snap, err := h.v.Snapshot(ctx)
	require.NoError(h.t, err)
	return snap
}

// eventually polls the viewer, moving the clock by step between polls.
func (h *harness) eventually(step time.Duration, cond func(replay.Snapshot) bool) {
	h.t.Helper()
	require.Eventually(h.t, func() bool {
		if step > 0 {
			h.clock.Advance(step)
		}
		return cond(h.snapshot())
	}, 2*time.Second, 5*time.Millisecond)
}

func TestOpenRecordsViewAndReportsTransform(t *testing.T) {
	h := newHarness(t)
	viewed := make(chan string, 4)
	h.stories.EXPECT().RecordView(gomock.Any(), gomock.Any(), me).
		DoAndReturn(func(_ context.Context, storyID, _ string) error {
			viewed <- storyID
			return nil
		}).AnyTimes()

	h.stories.EXPECT().FetchGroupedStories(gomock.Any(), me).Return([]domain.StoryGroup{group("alice", 2)}, nil)
	res, err := h.v.Open(ctx, viewer.OpenRequest{
		ViewerID:          me,
		InitialGroupIndex: 0,
		Origin:            replay.Rect{X: 10, Y: 20, Width: 80, Height: 160},
		Viewport:          replay.Size{Width: 400, Height: 800},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, replay.StatePlaying, res.Snapshot.State)
	assert.Equal(t, "alice-0", res.Snapshot.Story.ID)
	assert.InDelta(t, 0.2, res.Transform.ScaleX, 1e-9)
	assert.InDelta(t, -150.0, res.Transform.TranslateX, 1e-9)

	select {
	case id := <-viewed:
		assert.Equal(t, "alice-0", id)
	case <-time.After(time.Second):
		t.Fatal("view of the first story was not recorded")
	}

	h.eventually(h.cfg.Replay.TickInterval, func(s replay.Snapshot) bool {
		return s.Position.Story == 1
	})

	select {
	case id := <-viewed:
		assert.Equal(t, "alice-1", id)
	case <-time.After(time.Second):
		t.Fatal("view of the second story was not recorded")
	}
}

func TestOpenTwiceFails(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1)}, 0)

	_, err := h.v.Open(ctx, viewer.OpenRequest{ViewerID: me})
	assert.ErrorIs(t, err, viewer.ErrAlreadyOpen)
}

func TestOpenWithoutContentClosesImmediately(t *testing.T) {
	h := newHarness(t)
	closed := make(chan replay.CloseReason, 1)

	h.stories.EXPECT().FetchGroupedStories(gomock.Any(), me).Return(nil, nil)
	res, err := h.v.Open(ctx, viewer.OpenRequest{
		ViewerID: me,
		OnClose:  func(r replay.CloseReason) { closed <- r },
	})
	require.NoError(t, err)
	assert.Equal(t, replay.StateClosed, res.Snapshot.State)
	assert.Equal(t, replay.CloseMissingContent, <-closed)

	_, err = h.v.Advance(ctx)
	assert.ErrorIs(t, err, viewer.ErrNotOpen)
}

func TestCloseNotifiesOnceAndAllowsReopen(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	closed := make(chan replay.CloseReason, 2)

	h.stories.EXPECT().FetchGroupedStories(gomock.Any(), me).Return([]domain.StoryGroup{group("alice", 2)}, nil).Times(2)
	_, err := h.v.Open(ctx, viewer.OpenRequest{
		ViewerID: me,
		OnClose:  func(r replay.CloseReason) { closed <- r },
	})
	require.NoError(t, err)

	snap, err := h.v.Close(ctx)
	require.NoError(t, err)
	assert.Equal(t, replay.StateClosed, snap.State)
	assert.Equal(t, replay.CloseExplicit, <-closed)

	snap = h.snapshot()
	assert.Equal(t, replay.StateClosed, snap.State)
	assert.Equal(t, replay.CloseExplicit, snap.CloseReason)

	_, err = h.v.Close(ctx)
	assert.ErrorIs(t, err, viewer.ErrNotOpen)
	assert.Empty(t, closed)

	_, err = h.v.Open(ctx, viewer.OpenRequest{ViewerID: me})
	require.NoError(t, err)
}

func TestCrossGroupAdvanceAnimatesOnClock(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1), group("bob", 2)}, 0)

	snap, err := h.v.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, replay.StateTransitioning, snap.State)
	assert.Equal(t, replay.Position{Group: 1, Story: 0}, snap.Transition.Target)

	_, err = h.v.Advance(ctx)
	assert.ErrorIs(t, err, replay.ErrTransitioning)

	h.eventually(50*time.Millisecond, func(s replay.Snapshot) bool {
		return s.State == replay.StatePlaying
	})
	snap = h.snapshot()
	assert.Equal(t, "bob-0", snap.Story.ID)
}

func TestPauseHoldsProgress(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 2)}, 0)

	snap, err := h.v.AddPauseReason(ctx, replay.ReasonPressHold)
	require.NoError(t, err)
	assert.Equal(t, replay.StatePaused, snap.State)

	for i := 0; i < 5; i++ {
		h.clock.Advance(h.cfg.Replay.TickInterval)
	}
	snap = h.snapshot()
	assert.Zero(t, snap.Progress)
	assert.Equal(t, 0, snap.Position.Story)

	_, err = h.v.RemovePauseReason(ctx, replay.ReasonPressHold)
	require.NoError(t, err)
	h.eventually(h.cfg.Replay.TickInterval, func(s replay.Snapshot) bool {
		return s.Progress > 0 || s.Position.Story == 1
	})
}

func TestLikeArmsBurst(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1)}, 0)

	liked := make(chan struct{})
	h.stories.EXPECT().ToggleLike(gomock.Any(), "alice-0", me, false).
		DoAndReturn(func(context.Context, string, string, bool) error {
			close(liked)
			return nil
		})

	_, err := h.v.AddPauseReason(ctx, replay.ReasonInputFocus)
	require.NoError(t, err)
	_, err = h.v.ToggleLike(ctx, false)
	require.NoError(t, err)
	<-liked

	h.eventually(0, func(s replay.Snapshot) bool { return s.LikeBurst })
	h.eventually(200*time.Millisecond, func(s replay.Snapshot) bool { return !s.LikeBurst })
	assert.Equal(t, replay.StatePaused, h.snapshot().State)
}

func TestLikeOwnStoryRejected(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group(me, 1)}, 0)

	_, err := h.v.ToggleLike(ctx, false)
	assert.ErrorIs(t, err, replay.ErrOwnStory)
}

func TestRateLimitedLikeIsRefused(t *testing.T) {
	h := newHarness(t, func(o *Opts) { o.Limiter = denyAll{} })
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1)}, 0)

	_, err := h.v.ToggleLike(ctx, false)
	require.ErrorIs(t, err, viewer.ErrRateLimited)
	_, err = h.v.SendReply(ctx)
	require.ErrorIs(t, err, viewer.ErrRateLimited)

	snap := h.snapshot()
	assert.False(t, snap.LikeBurst)
	assert.Equal(t, replay.StatePlaying, snap.State)
}

func TestViewsRecordedWhileWorkersBusy(t *testing.T) {
	h := newHarness(t)

	var (
		mu   sync.Mutex
		seen []string
	)
	release := make(chan struct{})
	h.stories.EXPECT().RecordView(gomock.Any(), gomock.Any(), me).
		DoAndReturn(func(_ context.Context, storyID, _ string) error {
			<-release
			mu.Lock()
			seen = append(seen, storyID)
			mu.Unlock()
			return nil
		}).Times(6)

	h.open([]domain.StoryGroup{group("alice", 6)}, 0)
	for i := 1; i < 6; i++ {
		snap, err := h.v.Advance(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("alice-%d", i), snap.Story.ID)
	}
	close(release)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 6
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"alice-0", "alice-1", "alice-2", "alice-3", "alice-4", "alice-5"}, seen)
}

func TestSendReplyClearsDraft(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1)}, 0)

	h.stories.EXPECT().SendReply(gomock.Any(), "alice-0", me, "great save").Return(nil)

	_, err := h.v.SetDraft(ctx, "  great save ")
	require.NoError(t, err)
	_, err = h.v.SendReply(ctx)
	require.NoError(t, err)

	h.eventually(0, func(s replay.Snapshot) bool { return s.Draft == "" })
}

func TestDeleteStoryReindexesAndDismissesSheets(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group(me, 2), group("alice", 1)}, 0)

	release := make(chan struct{})
	h.stories.EXPECT().DeleteStory(gomock.Any(), "me-0", me).
		DoAndReturn(func(context.Context, string, string) error {
			<-release
			return nil
		})

	_, err := h.v.AddPauseReason(ctx, replay.ReasonDeleteDialog)
	require.NoError(t, err)
	snap, err := h.v.DeleteStory(ctx)
	require.NoError(t, err)
	assert.True(t, snap.DeleteInFlight)

	_, err = h.v.DeleteStory(ctx)
	assert.ErrorIs(t, err, replay.ErrDeleteInFlight)
	close(release)

	h.eventually(0, func(s replay.Snapshot) bool { return !s.DeleteInFlight })
	snap = h.snapshot()
	assert.Equal(t, "me-1", snap.Story.ID)
	assert.Equal(t, 1, snap.StoryCount)
	assert.Empty(t, snap.PauseReasons)
}

func TestDeletingLastStoryCloses(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	closed := make(chan replay.CloseReason, 1)

	h.stories.EXPECT().FetchGroupedStories(gomock.Any(), me).Return([]domain.StoryGroup{group(me, 1)}, nil)
	h.stories.EXPECT().DeleteStory(gomock.Any(), "me-0", me).Return(nil)

	_, err := h.v.Open(ctx, viewer.OpenRequest{ViewerID: me, OnClose: func(r replay.CloseReason) { closed <- r }})
	require.NoError(t, err)
	_, err = h.v.DeleteStory(ctx)
	require.NoError(t, err)

	select {
	case r := <-closed:
		assert.Equal(t, replay.CloseDeletionExhausted, r)
	case <-time.After(2 * time.Second):
		t.Fatal("viewer did not close after deleting its last story")
	}
}

func TestRefreshFollowsCurrentStory(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1), group("bob", 2)}, 1)

	_, err := h.v.JumpToStory(ctx, 1)
	require.NoError(t, err)

	h.stories.EXPECT().FetchGroupedStories(gomock.Any(), me).
		Return([]domain.StoryGroup{group("bob", 2), group("carol", 1)}, nil)
	snap, err := h.v.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, replay.Position{Group: 0, Story: 1}, snap.Position)
	assert.Equal(t, "bob-1", snap.Story.ID)
}

func TestEndDragPastThresholdCloses(t *testing.T) {
	h := newHarness(t)
	h.allowViews()
	h.open([]domain.StoryGroup{group("alice", 1)}, 0)

	snap, err := h.v.BeginDrag(ctx)
	require.NoError(t, err)
	assert.Equal(t, replay.StatePaused, snap.State)

	_, err = h.v.MoveDrag(ctx, 60)
	require.NoError(t, err)

	res, err := h.v.EndDrag(ctx, 40, 0)
	require.NoError(t, err)
	assert.Equal(t, replay.DismissSpringBack, res.Dismissal)
	assert.Equal(t, replay.StatePlaying, res.Snapshot.State)

	_, err = h.v.BeginDrag(ctx)
	require.NoError(t, err)
	res, err = h.v.EndDrag(ctx, 150, 0)
	require.NoError(t, err)
	assert.Equal(t, replay.DismissClose, res.Dismissal)
	assert.Equal(t, replay.CloseGesture, res.Snapshot.CloseReason)
}

func TestStopClosesOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	stories := mock_storyservice.NewMockClient(ctrl)
	stories.EXPECT().RecordView(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	stories.EXPECT().FetchGroupedStories(gomock.Any(), me).Return([]domain.StoryGroup{group("alice", 1)}, nil)

	lc := fxtest.NewLifecycle(t)
	v, err := New(Opts{
		Lifecycle: lc,
		Stories:   stories,
		Logger:    logger.NewNop(),
		Config:    testConfig(),
		Clock:     clockwork.NewFakeClock(),
	})
	require.NoError(t, err)
	lc.RequireStart()

	closed := make(chan replay.CloseReason, 1)
	_, err = v.Open(ctx, viewer.OpenRequest{ViewerID: me, OnClose: func(r replay.CloseReason) { closed <- r }})
	require.NoError(t, err)

	lc.RequireStop()
	assert.Equal(t, replay.CloseExplicit, <-closed)
}
