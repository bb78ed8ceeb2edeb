package viewerimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
	"github.com/soccervitae/soccerapp/internal/ratelimit"
	"github.com/soccervitae/soccerapp/internal/replay"
	"github.com/soccervitae/soccerapp/internal/storyservice"
	"github.com/soccervitae/soccerapp/internal/viewer"
	"github.com/soccervitae/soccerapp/pkg/config"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Lifecycle fx.Lifecycle
	Stories   storyservice.Client
	Logger    logger.Logger
	Config    *config.Config
	Clock     clockwork.Clock   `optional:"true"`
	Limiter   ratelimit.Limiter `optional:"true"`
}

type ViewerImpl struct {
	Stories storyservice.Client
	Logger  logger.Logger
	Clock   clockwork.Clock
	Limiter ratelimit.Limiter

	replayCfg replay.Config
	timeout   time.Duration
	pool      *ants.Pool
	ctx       context.Context
	cancel    context.CancelFunc

	mu      sync.Mutex
	opening bool
	session *session
	last    replay.Snapshot
}

func New(opts Opts) (*ViewerImpl, error) {
	cfg := opts.Config

	pool, err := ants.NewPool(cfg.Coordinator.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create story action pool: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.NewInMemoryLimiter(1, cfg.Coordinator.ActionsPer, cfg.Coordinator.ActionsBurst)
	}

	ctx, cancel := context.WithCancel(context.Background())
	v := &ViewerImpl{
		Stories:   opts.Stories,
		Logger:    opts.Logger.WithComponent("Viewer"),
		Clock:     clock,
		Limiter:   limiter,
		replayCfg: replayConfig(cfg),
		timeout:   cfg.Coordinator.RequestTimeout,
		pool:      pool,
		ctx:       ctx,
		cancel:    cancel,
	}

	opts.Lifecycle.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			if s := v.current(); s != nil {
				_, _ = s.call(stopCtx, func(m *replay.Machine) error {
					m.Close(replay.CloseExplicit)
					return nil
				})
			}
			v.cancel()
			return v.pool.ReleaseTimeout(5 * time.Second)
		},
	})

	return v, nil
}

var _ viewer.Client = (*ViewerImpl)(nil)

func replayConfig(cfg *config.Config) replay.Config {
	r := cfg.Replay
	return replay.Config{
		TickInterval:    r.TickInterval,
		ProgressStep:    r.ProgressStep,
		ExitDelay:       r.ExitDelay,
		EnterDelay:      r.EnterDelay,
		LikeBurst:       r.LikeBurst,
		DismissDistance: r.DismissDistance,
		DismissVelocity: r.DismissVelocity,
		DragResistance:  r.DragResistance,
		DragMaxOffset:   r.DragMaxOffset,
	}
}

func (v *ViewerImpl) current() *session {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session
}

// detach releases s. final, when set, is what Snapshot reports afterwards.
func (v *ViewerImpl) detach(s *session, final *replay.Snapshot) {
	v.mu.Lock()
	if v.session == s {
		v.session = nil
		if final != nil {
			v.last = *final
		}
	}
	v.mu.Unlock()
	s.stop()
}

func (v *ViewerImpl) Open(ctx context.Context, req viewer.OpenRequest) (viewer.OpenResult, error) {
	v.mu.Lock()
	if v.session != nil || v.opening {
		v.mu.Unlock()
		return viewer.OpenResult{}, viewer.ErrAlreadyOpen
	}
	v.opening = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.opening = false
		v.mu.Unlock()
	}()

	groups, err := v.Stories.FetchGroupedStories(ctx, req.ViewerID)
	if err != nil {
		return viewer.OpenResult{}, fmt.Errorf("failed to load stories: %w", err)
	}

	s := newSession(uuid.NewString(), req.ViewerID, v.Clock, v.replayCfg.TickInterval)
	log := v.Logger.With("session_id", s.id)
	coord := newCoordinator(s, v.Stories, v.pool, v.timeout, v.ctx, log)
	s.machine = replay.NewMachine(v.replayCfg, coord, s)

	onClose := func(reason replay.CloseReason) {
		log.Info("Story viewer closed", "reason", reason)
		if req.OnClose != nil {
			req.OnClose(reason)
		}
		final := s.machine.Snapshot()
		v.detach(s, &final)
	}

	v.mu.Lock()
	v.session = s
	v.mu.Unlock()
	go s.run()
	go coord.dispatch(s.done)

	log.Info("Opening story viewer", "viewer_id", req.ViewerID, "groups", len(groups), "initial_group", req.InitialGroupIndex)

	snap, err := s.call(ctx, func(m *replay.Machine) error {
		return m.Open(req.ViewerID, groups, req.InitialGroupIndex, onClose)
	})
	if err != nil {
		v.detach(s, nil)
		return viewer.OpenResult{}, err
	}

	return viewer.OpenResult{
		SessionID: s.id,
		Transform: replay.InitialTransform(req.Origin, req.Viewport),
		Snapshot:  snap,
	}, nil
}

func (v *ViewerImpl) Close(ctx context.Context) (replay.Snapshot, error) {
	return v.apply(ctx, func(m *replay.Machine) error {
		m.Close(replay.CloseExplicit)
		return nil
	})
}

// Snapshot returns the last state of a closed viewer when none is open.
func (v *ViewerImpl) Snapshot(ctx context.Context) (replay.Snapshot, error) {
	v.mu.Lock()
	s, last := v.session, v.last
	v.mu.Unlock()
	if s == nil {
		return last, nil
	}
	return s.call(ctx, func(*replay.Machine) error { return nil })
}

func (v *ViewerImpl) Advance(ctx context.Context) (replay.Snapshot, error) {
	return v.apply(ctx, (*replay.Machine).Advance)
}

func (v *ViewerImpl) Retreat(ctx context.Context) (replay.Snapshot, error) {
	return v.apply(ctx, (*replay.Machine).Retreat)
}

func (v *ViewerImpl) JumpToStory(ctx context.Context, index int) (replay.Snapshot, error) {
	return v.apply(ctx, func(m *replay.Machine) error {
		return m.JumpToStory(index)
	})
}

func (v *ViewerImpl) AddPauseReason(ctx context.Context, reason replay.Reason) (replay.Snapshot, error) {
	return v.apply(ctx, func(m *replay.Machine) error {
		return m.AddReason(reason)
	})
}

func (v *ViewerImpl) RemovePauseReason(ctx context.Context, reason replay.Reason) (replay.Snapshot, error) {
	return v.apply(ctx, func(m *replay.Machine) error {
		return m.RemoveReason(reason)
	})
}

func (v *ViewerImpl) BeginDrag(ctx context.Context) (replay.Snapshot, error) {
	return v.apply(ctx, (*replay.Machine).BeginDrag)
}

func (v *ViewerImpl) MoveDrag(ctx context.Context, translation float64) (replay.Snapshot, error) {
	return v.apply(ctx, func(m *replay.Machine) error {
		return m.MoveDrag(translation)
	})
}

func (v *ViewerImpl) EndDrag(ctx context.Context, translation, velocity float64) (viewer.DragResult, error) {
	var dismissal replay.Dismissal
	snap, err := v.apply(ctx, func(m *replay.Machine) error {
		var err error
		dismissal, err = m.EndDrag(translation, velocity)
		return err
	})
	if err != nil {
		return viewer.DragResult{}, err
	}
	return viewer.DragResult{Dismissal: dismissal, Snapshot: snap}, nil
}

func (v *ViewerImpl) SetDraft(ctx context.Context, text string) (replay.Snapshot, error) {
	return v.apply(ctx, func(m *replay.Machine) error {
		return m.SetDraft(text)
	})
}

func (v *ViewerImpl) ToggleLike(ctx context.Context, wasLiked bool) (replay.Snapshot, error) {
	return v.applyLimited(ctx, "like", func(m *replay.Machine) error {
		return m.ToggleLike(wasLiked)
	})
}

func (v *ViewerImpl) SendReply(ctx context.Context) (replay.Snapshot, error) {
	return v.applyLimited(ctx, "reply", (*replay.Machine).SendReply)
}

func (v *ViewerImpl) DeleteStory(ctx context.Context) (replay.Snapshot, error) {
	return v.apply(ctx, (*replay.Machine).DeleteStory)
}

func (v *ViewerImpl) Refresh(ctx context.Context) (replay.Snapshot, error) {
	s := v.current()
	if s == nil {
		return replay.Snapshot{}, viewer.ErrNotOpen
	}

	groups, err := v.Stories.FetchGroupedStories(ctx, s.viewerID)
	if err != nil {
		return replay.Snapshot{}, fmt.Errorf("failed to reload stories: %w", err)
	}
	return s.call(ctx, func(m *replay.Machine) error {
		m.Refresh(groups)
		return nil
	})
}

// applyLimited is apply behind the per-viewer action limit. A refused action
// leaves the machine untouched.
func (v *ViewerImpl) applyLimited(ctx context.Context, action string, fn func(m *replay.Machine) error) (replay.Snapshot, error) {
	s := v.current()
	if s == nil {
		return replay.Snapshot{}, viewer.ErrNotOpen
	}
	if !v.Limiter.Allow(s.viewerID) {
		v.Logger.Warn("Story action refused by rate limiter", "session_id", s.id, "action", action)
		return replay.Snapshot{}, viewer.ErrRateLimited
	}
	return s.call(ctx, fn)
}

func (v *ViewerImpl) apply(ctx context.Context, fn func(m *replay.Machine) error) (replay.Snapshot, error) {
	s := v.current()
	if s == nil {
		return replay.Snapshot{}, viewer.ErrNotOpen
	}
	return s.call(ctx, fn)
}
