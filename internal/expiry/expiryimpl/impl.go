package expiryimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/soccervitae/soccerapp/internal/expiry"
	"github.com/soccervitae/soccerapp/internal/repositories/story"
	"github.com/soccervitae/soccerapp/pkg/config"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"go.uber.org/fx"
)

const sweepTimeout = 5 * time.Minute

type Opts struct {
	fx.In

	StoryRepo story.Repository
	Logger    logger.Logger
	Config    *config.Config
	Clock     clockwork.Clock `optional:"true"`
}

type ExpiryImpl struct {
	StoryRepo story.Repository
	Logger    logger.Logger
	Clock     clockwork.Clock
	TTL       time.Duration
	Interval  time.Duration
}

func New(opts Opts) *ExpiryImpl {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ExpiryImpl{
		StoryRepo: opts.StoryRepo,
		Logger:    opts.Logger.WithComponent("Expiry"),
		Clock:     clock,
		TTL:       opts.Config.Expiry.TTL,
		Interval:  opts.Config.Expiry.SweepInterval,
	}
}

var _ expiry.Client = (*ExpiryImpl)(nil)

func (e *ExpiryImpl) Sweep(ctx context.Context) (int64, error) {
	cutoff := e.Clock.Now().Add(-e.TTL)
	n, err := e.StoryRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stories older than %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}

func (e *ExpiryImpl) Schedule(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(e.Clock))
	if err != nil {
		return fmt.Errorf("failed to create expiry scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(e.Interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				e.Logger.Info("Context cancelled, skipping story sweep")
				return
			}

			sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
			defer cancel()

			n, err := e.Sweep(sweepCtx)
			if err != nil {
				e.Logger.Error("Story sweep failed", "error", err)
				return
			}
			e.Logger.Info("Story sweep completed", "rows_deleted", n)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule story sweep: %w", err)
	}

	scheduler.Start()
	e.Logger.Info("Story sweep scheduled", "interval", e.Interval, "ttl", e.TTL)

	go func() {
		<-ctx.Done()
		e.Logger.Info("Stopping story sweep scheduler")
		if err := scheduler.Shutdown(); err != nil {
			e.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
