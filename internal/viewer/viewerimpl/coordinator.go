package viewerimpl

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/soccervitae/soccerapp/internal/domain"
	"github.com/soccervitae/soccerapp/internal/replay"
	"github.com/soccervitae/soccerapp/internal/storyservice"
	"github.com/soccervitae/soccerapp/pkg/logger"
)

// coordinator runs the machine's remote side effects on the worker pool and
// posts their results back to the session goroutine. Effects are queued in
// order and handed to the pool by dispatch, so the session goroutine never
// waits for a free worker and no effect is lost.
type coordinator struct {
	session *session
	stories storyservice.Client
	pool    *ants.Pool
	timeout time.Duration
	baseCtx context.Context
	logger  logger.Logger

	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

func newCoordinator(s *session, stories storyservice.Client, pool *ants.Pool, timeout time.Duration, baseCtx context.Context, log logger.Logger) *coordinator {
	return &coordinator{
		session: s,
		stories: stories,
		pool:    pool,
		timeout: timeout,
		baseCtx: baseCtx,
		logger:  log,
		wake:    make(chan struct{}, 1),
	}
}

var _ replay.Effects = (*coordinator)(nil)

func (c *coordinator) RecordView(story domain.Story) {
	c.submit("record_view", story.ID, func(ctx context.Context) error {
		return c.stories.RecordView(ctx, story.ID, c.session.viewerID)
	}, nil)
}

func (c *coordinator) ToggleLike(story domain.Story, wasLiked bool) {
	c.submit("toggle_like", story.ID, func(ctx context.Context) error {
		return c.stories.ToggleLike(ctx, story.ID, c.session.viewerID, wasLiked)
	}, func(err error) {
		c.session.machine.LikeToggled(story.ID, wasLiked, err)
	})
}

func (c *coordinator) SendReply(story domain.Story, text string) {
	c.submit("send_reply", story.ID, func(ctx context.Context) error {
		return c.stories.SendReply(ctx, story.ID, c.session.viewerID, text)
	}, func(err error) {
		c.session.machine.ReplySent(story.ID, text, err)
	})
}

func (c *coordinator) DeleteStory(story domain.Story) {
	c.submit("delete_story", story.ID, func(ctx context.Context) error {
		return c.stories.DeleteStory(ctx, story.ID, c.session.viewerID)
	}, func(err error) {
		c.session.machine.StoryDeleted(story.ID, err)
	})
}

func (c *coordinator) submit(op, storyID string, call func(ctx context.Context) error, complete func(err error)) {
	task := func() {
		ctx, cancel := context.WithTimeout(c.baseCtx, c.timeout)
		defer cancel()

		err := call(ctx)
		if err != nil {
			c.logger.Error("Story action failed", "op", op, "story_id", storyID, "error", err)
		} else {
			c.logger.Debug("Story action done", "op", op, "story_id", storyID)
		}
		if complete != nil {
			c.session.post(func() { complete(err) })
		}
	}

	c.mu.Lock()
	c.queue = append(c.queue, func() {
		if err := c.pool.Submit(task); err != nil {
			c.logger.Error("Failed to submit story action to ants pool", "op", op, "story_id", storyID, "error", err)
			if complete != nil {
				c.session.post(func() { complete(err) })
			}
		}
	})
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// dispatch hands queued effects to the pool in order, blocking while every
// worker is busy. Once done is closed it drains what is left and returns.
func (c *coordinator) dispatch(done <-chan struct{}) {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.mu.Unlock()
			select {
			case <-c.wake:
				continue
			case <-done:
			}
			c.mu.Lock()
			if len(c.queue) == 0 {
				c.mu.Unlock()
				return
			}
		}
		next := c.queue[0]
		c.queue[0] = nil
		c.queue = c.queue[1:]
		c.mu.Unlock()

		next()
	}
}
